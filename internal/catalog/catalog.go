package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/turbogarage/garage/internal/model"
)

// ErrEmptyCatalog is returned when a seed dataset yields zero cars.
//
// This typically occurs when:
//   - The dataset file exists but has no categories
//   - Every category has an empty car list
//   - The wrong file was supplied as a seed dataset
var ErrEmptyCatalog = errors.New("seed catalog contains no cars")

// SeedFile is the top-level shape of a seed dataset document.
//
// A seed dataset describes one edition year and its categories in
// declaration order. Order matters: it determines both the initial
// collection order and the deterministic seed IDs.
type SeedFile struct {
	// Year is the edition year applied to every seed car.
	Year int `json:"year"`

	// Categories lists the catalog's categories in declaration order.
	Categories []SeedCategory `json:"categories"`
}

// SeedCategory is one category within a seed dataset.
type SeedCategory struct {
	// Name is the category name, also used as the Collection of its cars.
	Name string `json:"name"`

	// Cars lists the category's cars in declaration order.
	Cars []SeedCar `json:"cars"`
}

// SeedCar is the raw per-car entry of a seed dataset.
type SeedCar struct {
	Name         string `json:"name"`
	SeriesNumber string `json:"series_number"`
	Variant      string `json:"variant"`
	Image        string `json:"image"`
}

// Parse decodes a seed dataset document.
//
// Returns an error if the JSON is malformed or the dataset yields zero
// cars (ErrEmptyCatalog). Callers treat both as a reported, non-fatal
// load failure and start with whatever state they have.
func Parse(data []byte) (*SeedFile, error) {
	var sf SeedFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	total := 0
	for _, cat := range sf.Categories {
		total += len(cat.Cars)
	}
	if total == 0 {
		return nil, ErrEmptyCatalog
	}

	return &sf, nil
}

// Load reads and parses a seed dataset from a file.
func Load(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded 2025 seed catalog.
func Default() (*SeedFile, error) {
	return Parse(seedData)
}

// Cars flattens the dataset into the initial ordered collection.
//
// For each category in declaration order, for each car in declaration
// order, one model.Car is emitted with:
//   - ID:         "<category>-<index within category>"
//   - Year:       the dataset's edition year
//   - Collection: the category name
//   - Favorite / Acquired: false
//   - Color:      empty (the seed carries no color data)
func (sf *SeedFile) Cars() []model.Car {
	var cars []model.Car
	for _, cat := range sf.Categories {
		for i, sc := range cat.Cars {
			cars = append(cars, model.Car{
				ID:         model.SeedID(cat.Name, i),
				Name:       sc.Name,
				Year:       sf.Year,
				Collection: cat.Name,
				Number:     sc.SeriesNumber,
				Variant:    sc.Variant,
				Image:      sc.Image,
			})
		}
	}
	return cars
}

// CategoryNames returns the category names in declaration order.
func (sf *SeedFile) CategoryNames() []string {
	names := make([]string, len(sf.Categories))
	for i, cat := range sf.Categories {
		names[i] = cat.Name
	}
	return names
}
