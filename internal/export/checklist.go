package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/turbogarage/garage/internal/model"
)

// Format represents supported checklist export formats.
//
// Each format targets a different consumer:
//   - Text: plain checklist for printing or pasting
//   - Markdown: task-list rendering on forums and trackers
//   - CSV: spreadsheets
type Format int

const (
	// FormatText creates plain .txt checklists.
	FormatText Format = iota

	// FormatMarkdown creates .md checklists with task-list checkboxes.
	FormatMarkdown

	// FormatCSV creates .csv files with one row per car.
	FormatCSV
)

// ParseFormat maps a user-supplied string to a Format.
// Unrecognized input falls back to FormatText.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return FormatMarkdown
	case "csv":
		return FormatCSV
	default:
		return FormatText
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Writer generates collection checklists in various formats.
//
// Writer takes an ordered car list and renders every car, grouped by
// category in list order, marking acquired and favorite cars. The output
// is a string ready to be written to a file.
//
// Example:
//
//	w := export.NewWriter(export.FormatMarkdown)
//	content := w.Render(mgr.Snapshot(), mgr.Stats())
//	os.WriteFile("checklist"+export.FormatMarkdown.Extension(), []byte(content), 0644)
type Writer struct {
	format Format
}

// NewWriter creates a new checklist Writer.
func NewWriter(format Format) *Writer {
	return &Writer{format: format}
}

// Render generates checklist content for a collection snapshot.
func (w *Writer) Render(cars []model.Car, stats model.Stats) string {
	switch w.format {
	case FormatMarkdown:
		return w.renderMarkdown(cars, stats)
	case FormatCSV:
		return w.renderCSV(cars)
	default:
		return w.renderText(cars, stats)
	}
}

// renderText generates a plain-text checklist grouped by category.
func (w *Writer) renderText(cars []model.Car, stats model.Stats) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Turbo Garage checklist — %d cars, %d acquired, %d favorites\n",
		stats.Total, stats.Acquired, stats.Favorites)

	for _, group := range groupByCategory(cars) {
		fmt.Fprintf(&sb, "\n%s\n", group.name)
		for _, c := range group.cars {
			mark := " "
			if c.Acquired {
				mark = "x"
			}
			fmt.Fprintf(&sb, "  [%s] %s%s%s\n", mark, c.Name, numberSuffix(c), favoriteSuffix(c))
		}
	}

	return sb.String()
}

// renderMarkdown generates a Markdown task-list checklist.
func (w *Writer) renderMarkdown(cars []model.Car, stats model.Stats) string {
	var sb strings.Builder

	sb.WriteString("# Turbo Garage checklist\n\n")
	fmt.Fprintf(&sb, "%d cars, %d acquired, %d favorites\n", stats.Total, stats.Acquired, stats.Favorites)

	for _, group := range groupByCategory(cars) {
		fmt.Fprintf(&sb, "\n## %s\n\n", group.name)
		for _, c := range group.cars {
			mark := " "
			if c.Acquired {
				mark = "x"
			}
			fmt.Fprintf(&sb, "- [%s] %s%s%s\n", mark, c.Name, numberSuffix(c), favoriteSuffix(c))
		}
	}

	return sb.String()
}

// renderCSV generates one row per car with a header row.
func (w *Writer) renderCSV(cars []model.Car) string {
	var sb strings.Builder

	cw := csv.NewWriter(&sb)
	cw.Write([]string{"id", "name", "year", "collection", "number", "variant", "color", "favorite", "acquired"})
	for _, c := range cars {
		cw.Write([]string{
			c.ID,
			c.Name,
			strconv.Itoa(c.Year),
			c.Collection,
			c.Number,
			c.Variant,
			c.Color,
			strconv.FormatBool(c.Favorite),
			strconv.FormatBool(c.Acquired),
		})
	}
	cw.Flush()

	return sb.String()
}

func numberSuffix(c model.Car) string {
	if c.Number == "" {
		return ""
	}
	return " #" + c.Number
}

func favoriteSuffix(c model.Car) string {
	if !c.Favorite {
		return ""
	}
	return " ♥"
}

type categoryGroup struct {
	name string
	cars []model.Car
}

// groupByCategory groups cars by collection name, keeping both the
// category first-seen order and the car order within each category.
func groupByCategory(cars []model.Car) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, c := range cars {
		i, ok := index[c.Collection]
		if !ok {
			i = len(groups)
			index[c.Collection] = i
			groups = append(groups, categoryGroup{name: c.Collection})
		}
		groups[i].cars = append(groups[i].cars, c)
	}
	return groups
}
