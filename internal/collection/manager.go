package collection

import (
	"fmt"
	"sync"

	"github.com/turbogarage/garage/internal/catalog"
	"github.com/turbogarage/garage/internal/config"
	ioutils "github.com/turbogarage/garage/internal/io"
	"github.com/turbogarage/garage/internal/model"
)

// Mirror is the persistence boundary for the full collection.
//
// Load returns the previously persisted snapshot; found is false when no
// snapshot has ever been written. Save overwrites the snapshot with the
// given full list.
type Mirror interface {
	Load() (cars []model.Car, found bool, err error)
	Save(cars []model.Car) error
}

// Manager owns the collection state and exposes every mutation.
//
// Manager is the state container the application root holds: all writes
// go through it, every committed mutation is mirrored to persistence
// synchronously, and the front ends read filtered views and aggregates
// from it. Reads take a read lock and operate on copies, so callers can
// never observe a torn state.
//
// Example:
//
//	mirror, _ := persist.Open(settings.DatabasePath)
//	mgr := collection.NewManager(settings, mirror, func(e collection.ChangeEvent) {
//	    fmt.Println(e.Message)
//	})
//	if err := mgr.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//	cars := mgr.Filter(collection.Query{Category: "Muscle Mania"})
type Manager struct {
	settings *config.Settings
	store    *Store
	mirror   Mirror

	seedCars   []model.Car
	categories []string

	onChange func(ChangeEvent)
	mu       sync.RWMutex
}

// NewManager creates a new collection Manager.
//
// mirror may be nil, in which case nothing is persisted (useful for
// dry runs and tests). onChange may be nil to discard events.
func NewManager(settings *config.Settings, mirror Mirror, onChange func(ChangeEvent)) *Manager {
	return &Manager{
		settings: settings,
		store:    NewStore(),
		mirror:   mirror,
		onChange: onChange,
	}
}

// Initialize loads the seed catalog and the persisted snapshot and
// decides the initial state.
//
// The ordering rule is explicit: a persisted snapshot, when present and
// decodable, supersedes the seed catalog entirely; otherwise the seed
// catalog's cars become the initial state. A corrupt snapshot falls back
// to the seed with a reported warning. A failing seed load is reported
// and leaves the corresponding state empty rather than failing startup.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadSeed()

	if m.mirror != nil {
		persisted, found, err := m.mirror.Load()
		if err != nil {
			m.change(ChangeEvent{
				Message: fmt.Sprintf("Saved collection could not be read, starting from the catalog: %v", err),
				Level:   LevelWarning,
			})
		} else if found {
			m.store.Replace(persisted)
			m.change(ChangeEvent{
				Message: fmt.Sprintf("Loaded saved collection (%d cars)", len(persisted)),
				Level:   LevelInfo,
			})
			m.fillCategories()
			return nil
		}
	}

	m.store.Replace(m.seedCars)
	if len(m.seedCars) > 0 {
		m.change(ChangeEvent{
			Message: fmt.Sprintf("Loaded %d cars from the seed catalog", len(m.seedCars)),
			Level:   LevelInfo,
		})
	}
	m.fillCategories()
	return nil
}

// loadSeed reads the configured seed dataset. Must hold m.mu.
func (m *Manager) loadSeed() {
	var (
		sf  *catalog.SeedFile
		err error
	)
	if m.settings.SeedPath != "" {
		sf, err = catalog.Load(m.settings.SeedPath)
	} else {
		sf, err = catalog.Default()
	}
	if err != nil {
		m.change(ChangeEvent{
			Message: fmt.Sprintf("Seed catalog failed to load: %v", err),
			Level:   LevelError,
		})
		return
	}

	m.seedCars = sf.Cars()
	m.categories = sf.CategoryNames()
}

// fillCategories derives the known-category list from the store when the
// seed did not provide one. Must hold m.mu.
func (m *Manager) fillCategories() {
	if len(m.categories) == 0 {
		m.categories = DistinctCategories(m.store.Snapshot())
	}
}

// Save adds or edits a car.
//
// A car without an ID is treated as an add: it is validated, assigned a
// fresh unique ID and appended. A car with an ID is treated as an edit:
// the existing car is replaced in place, preserving ID and position.
// Validation failure leaves the store untouched and returns an error
// wrapping model.ErrInvalidCar.
//
// Returns the stored car (with its final ID).
func (m *Manager) Save(car model.Car) (model.Car, error) {
	if err := car.Validate(); err != nil {
		return model.Car{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	adding := car.ID == ""
	if adding {
		car.ID = model.NewID()
	}
	m.store.Upsert(car)

	verb := "Updated"
	if adding {
		verb = "Added"
	}
	m.change(ChangeEvent{
		Message: fmt.Sprintf("%s %s (%s)", verb, car.Name, car.Collection),
		Level:   LevelSuccess,
	})

	m.persist()
	return car, nil
}

// Delete removes a car by ID after asking for confirmation.
//
// confirm is called exactly once when the ID exists; returning false
// leaves the store unchanged. A nil confirm deletes without asking.
// Returns true when a car was actually removed.
func (m *Manager) Delete(id string, confirm func(model.Car) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	car, ok := m.store.Get(id)
	if !ok {
		return false
	}
	if confirm != nil && !confirm(car) {
		return false
	}

	m.store.Remove(id)
	m.change(ChangeEvent{
		Message: fmt.Sprintf("Removed %s from the collection", car.Name),
		Level:   LevelInfo,
	})

	m.persist()
	return true
}

// ToggleFavorite flips the favorite flag of the car with the given ID.
// Unknown IDs are a no-op. Returns true when a car was updated.
func (m *Manager) ToggleFavorite(id string) bool {
	return m.toggle(id, func(c *model.Car) { c.Favorite = !c.Favorite })
}

// ToggleAcquired flips the acquired flag of the car with the given ID.
// Unknown IDs are a no-op. Returns true when a car was updated.
func (m *Manager) ToggleAcquired(id string) bool {
	return m.toggle(id, func(c *model.Car) { c.Acquired = !c.Acquired })
}

func (m *Manager) toggle(id string, flip func(*model.Car)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	car, ok := m.store.Get(id)
	if !ok {
		return false
	}
	flip(&car)
	m.store.Upsert(car)

	m.persist()
	return true
}

// AttachImage converts a local image file into a data URI suitable for a
// car's Image field, resizing it within the configured bounds.
//
// An empty path is a no-op and returns an empty string with no error.
// AttachImage never touches the store; the result only enters the
// collection when the caller commits it via Save.
func (m *Manager) AttachImage(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	maxSize := 0
	if m.settings.ResizeImages {
		maxSize = m.settings.ImageMaxSize
	}
	return ioutils.DataURIFromFile(path, maxSize)
}

// Reset discards all edits and restores the seed catalog state.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store.Replace(m.seedCars)
	m.change(ChangeEvent{
		Message: fmt.Sprintf("Collection reset to the seed catalog (%d cars)", len(m.seedCars)),
		Level:   LevelInfo,
	})
	m.persist()
}

// Filter returns the filtered ordered view for a query.
func (m *Manager) Filter(q Query) []model.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Apply(m.store.Snapshot(), q)
}

// Get returns a copy of the car with the given ID.
func (m *Manager) Get(id string) (model.Car, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Get(id)
}

// Snapshot returns a copy of the full ordered collection.
func (m *Manager) Snapshot() []model.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Snapshot()
}

// Len returns the number of cars in the collection.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Len()
}

// Stats recomputes the summary counters from the current state.
//
// The category counter reflects the known seed categories when the seed
// loaded; otherwise it counts the distinct categories present.
func (m *Manager) Stats() model.Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := ComputeStats(m.store.Snapshot())
	if len(m.categories) > 0 {
		stats.Categories = len(m.categories)
	}
	return stats
}

// Categories returns the known category names in catalog order.
func (m *Manager) Categories() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// CategoryCount counts the cars of a category for the given year.
// A year of 0 counts across all years.
func (m *Manager) CategoryCount(category string, year int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return CategoryCount(m.store.Snapshot(), category, year)
}

// persist mirrors the current state. Must hold m.mu. Failures are
// reported as warnings and never roll back the in-memory mutation.
func (m *Manager) persist() {
	if m.mirror == nil {
		return
	}
	if err := m.mirror.Save(m.store.Snapshot()); err != nil {
		m.change(ChangeEvent{
			Message: fmt.Sprintf("Could not save the collection: %v", err),
			Level:   LevelWarning,
		})
	}
}

func (m *Manager) change(event ChangeEvent) {
	if m.onChange != nil {
		m.onChange(event)
	}
}
