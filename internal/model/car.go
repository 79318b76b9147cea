package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidCar is returned when a car fails validation at the add/edit
// boundary.
//
// A car is valid when Name, Year and Collection are all set. Optional
// fields (Number, Variant, Color, Image) may be empty.
var ErrInvalidCar = errors.New("car must have a name, a year and a collection")

// Car represents one collectible car in the collection.
//
// Car is the single record shape used everywhere: cars loaded from the
// seed catalog and cars added by the user live in the same list and are
// indistinguishable after load.
//
// Example:
//
//	car := model.Car{
//	    Name:       "Twin Mill",
//	    Year:       2025,
//	    Collection: "HW Originals",
//	    Number:     "3/10",
//	}
//	if err := car.Validate(); err != nil {
//	    // missing required field
//	}
type Car struct {
	// ID uniquely identifies the car within the collection.
	// Seed cars use "<category>-<index>"; user-added cars get a UUID.
	ID string `json:"id"`

	// Name is the display name. Required.
	Name string `json:"name"`

	// Year is the edition year. Required (non-zero).
	Year int `json:"year"`

	// Collection is the category name this car belongs to. Required.
	// It references a known category by name but is not enforced as a
	// foreign key.
	Collection string `json:"collection"`

	// Number is the optional series number, e.g. "131/250".
	Number string `json:"number,omitempty"`

	// Variant is an optional variant label, e.g. "Treasure Hunt".
	Variant string `json:"variant,omitempty"`

	// Color is an optional free-text color.
	Color string `json:"color,omitempty"`

	// Favorite marks the car as a favorite.
	Favorite bool `json:"favorite"`

	// Acquired marks the car as owned.
	Acquired bool `json:"acquired"`

	// Image is an optional data-URI-encoded image, or empty.
	Image string `json:"image,omitempty"`
}

// Validate reports whether the car satisfies the required-field rules.
//
// Returns ErrInvalidCar (wrapped with the offending detail) when Name,
// Year or Collection is missing. Optional fields are never checked.
func (c *Car) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidCar)
	case c.Year == 0:
		return fmt.Errorf("%w: zero year", ErrInvalidCar)
	case c.Collection == "":
		return fmt.Errorf("%w: empty collection", ErrInvalidCar)
	}
	return nil
}

// SeedID builds the deterministic ID for a seed-catalog car:
// the category name joined with the car's position within that category.
//
// Example:
//
//	model.SeedID("Muscle Mania", 0) // "Muscle Mania-0"
func SeedID(category string, index int) string {
	return fmt.Sprintf("%s-%d", category, index)
}

// NewID generates a unique ID for a user-added car.
//
// UUIDv4 is used rather than a creation timestamp so that two adds in
// the same clock tick cannot collide.
func NewID() string {
	return uuid.NewString()
}

// Stats summarizes a collection snapshot.
//
// All counts are recomputed from the full list on every call site; there
// are no incremental counters to keep in sync.
type Stats struct {
	// Total is the number of cars in the collection.
	Total int

	// Favorites is the number of cars marked favorite.
	Favorites int

	// Acquired is the number of cars marked acquired.
	Acquired int

	// Categories is the number of distinct collection names present.
	Categories int
}

// Missing returns the number of cars not yet acquired.
func (s Stats) Missing() int {
	return s.Total - s.Acquired
}
