package collection

import (
	"strings"

	"github.com/turbogarage/garage/internal/model"
)

// Query describes one filtered view over a collection snapshot.
//
// Predicates are applied as a conjunction in a fixed order: year, then
// category, then acquisition status, then free-text search. A zero field
// disables its predicate (Year 0 means "any year", which is safe because
// validation rejects cars with a zero year).
type Query struct {
	// Year keeps only cars of this edition year. 0 disables.
	Year int

	// Category keeps only cars of this collection name. "" disables.
	Category string

	// Filter keeps only cars matching the acquisition mode.
	// The zero value ("") behaves like model.FilterAll.
	Filter model.AcquisitionFilter

	// Search keeps cars whose name, collection or variant contains this
	// text, case-insensitively. "" disables.
	Search string
}

// Apply filters a snapshot and returns the surviving cars.
//
// The filter is stable: survivors keep the snapshot's order, nothing is
// re-sorted. Applying the same query twice yields identical results.
func Apply(cars []model.Car, q Query) []model.Car {
	needle := strings.ToLower(q.Search)

	var out []model.Car
	for i := range cars {
		c := &cars[i]
		if q.Year != 0 && c.Year != q.Year {
			continue
		}
		if q.Category != "" && c.Collection != q.Category {
			continue
		}
		if !q.Filter.Matches(c) {
			continue
		}
		if needle != "" && !matchesSearch(c, needle) {
			continue
		}
		out = append(out, *c)
	}
	return out
}

// matchesSearch reports whether the lower-cased needle occurs in the
// car's name, collection or variant.
func matchesSearch(c *model.Car, needle string) bool {
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Collection), needle) ||
		strings.Contains(strings.ToLower(c.Variant), needle)
}

// ComputeStats derives summary counters from a snapshot.
//
// Categories counts the distinct collection names present in the
// snapshot; the Manager substitutes the known seed category count when
// one is available.
func ComputeStats(cars []model.Car) model.Stats {
	stats := model.Stats{Total: len(cars)}
	seen := make(map[string]bool)
	for i := range cars {
		if cars[i].Favorite {
			stats.Favorites++
		}
		if cars[i].Acquired {
			stats.Acquired++
		}
		if !seen[cars[i].Collection] {
			seen[cars[i].Collection] = true
			stats.Categories++
		}
	}
	return stats
}

// CategoryCount counts the cars in a category for a given year.
// A year of 0 counts across all years.
func CategoryCount(cars []model.Car, category string, year int) int {
	n := 0
	for i := range cars {
		if cars[i].Collection != category {
			continue
		}
		if year != 0 && cars[i].Year != year {
			continue
		}
		n++
	}
	return n
}

// DistinctCategories returns the collection names present in a snapshot,
// in first-seen order.
func DistinctCategories(cars []model.Car) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range cars {
		if !seen[cars[i].Collection] {
			seen[cars[i].Collection] = true
			out = append(out, cars[i].Collection)
		}
	}
	return out
}
