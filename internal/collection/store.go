package collection

import "github.com/turbogarage/garage/internal/model"

// Store holds the ordered list of cars currently known.
//
// Store is the single in-memory source of truth during a session. It is
// not safe for concurrent use on its own; the Manager serializes access.
// Order is preserved by every operation: Upsert replaces in place when
// the ID exists and appends otherwise, Remove closes the gap.
//
// The invariant maintained here is that no two cars ever share an ID
// after any operation.
type Store struct {
	cars []model.Car
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps the entire contents for the given list.
//
// The slice is copied, so the caller keeps ownership of its argument.
func (s *Store) Replace(cars []model.Car) {
	s.cars = make([]model.Car, len(cars))
	copy(s.cars, cars)
}

// Upsert inserts or updates a car by ID.
//
// If a car with the same ID exists it is replaced in place, keeping its
// position; otherwise the car is appended. Either way the ID-uniqueness
// invariant holds afterwards.
func (s *Store) Upsert(car model.Car) {
	for i := range s.cars {
		if s.cars[i].ID == car.ID {
			s.cars[i] = car
			return
		}
	}
	s.cars = append(s.cars, car)
}

// Remove deletes the car with the given ID, preserving the order of the
// remaining cars. Returns false if no car matched.
func (s *Store) Remove(id string) bool {
	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the car with the given ID.
func (s *Store) Get(id string) (model.Car, bool) {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return s.cars[i], true
		}
	}
	return model.Car{}, false
}

// Snapshot returns a copy of the full ordered list.
func (s *Store) Snapshot() []model.Car {
	out := make([]model.Car, len(s.cars))
	copy(out, s.cars)
	return out
}

// Len returns the number of cars in the store.
func (s *Store) Len() int {
	return len(s.cars)
}
