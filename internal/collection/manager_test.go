package collection

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbogarage/garage/internal/config"
	"github.com/turbogarage/garage/internal/model"
)

// fakeMirror is an in-memory Mirror for tests.
type fakeMirror struct {
	cars    []model.Car
	found   bool
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeMirror) Load() ([]model.Car, bool, error) {
	return f.cars, f.found, f.loadErr
}

func (f *fakeMirror) Save(cars []model.Car) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cars = make([]model.Car, len(cars))
	copy(f.cars, cars)
	f.found = true
	f.saves++
	return nil
}

// writeSeed writes a small two-car seed catalog and returns its path.
func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	data := `{
		"year": 2025,
		"categories": [
			{"name": "Mainline", "cars": [
				{"name": "Twin Mill", "series_number": "1/10", "variant": "", "image": ""},
				{"name": "Bone Shaker", "series_number": "2/10", "variant": "", "image": ""}
			]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func newTestManager(t *testing.T, mirror Mirror) *Manager {
	t.Helper()
	settings := config.DefaultSettings()
	settings.SeedPath = writeSeed(t)
	return NewManager(settings, mirror, nil)
}

func TestManager_InitializeFromSeed(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	assert.Equal(t, 2, mgr.Len())
	assert.Equal(t, []string{"Mainline"}, mgr.Categories())

	first, ok := mgr.Get("Mainline-0")
	require.True(t, ok)
	assert.Equal(t, "Twin Mill", first.Name)
	assert.Equal(t, 2025, first.Year)
}

func TestManager_InitializePersistedWins(t *testing.T) {
	mirror := &fakeMirror{
		cars:  []model.Car{{ID: "custom", Name: "Custom X", Year: 2025, Collection: "Customs", Acquired: true}},
		found: true,
	}
	mgr := newTestManager(t, mirror)
	require.NoError(t, mgr.Initialize())

	// The persisted snapshot supersedes the seed entirely.
	assert.Equal(t, 1, mgr.Len())
	got, ok := mgr.Get("custom")
	require.True(t, ok)
	assert.True(t, got.Acquired)

	// Known categories still come from the seed catalog.
	assert.Equal(t, []string{"Mainline"}, mgr.Categories())
}

func TestManager_InitializeCorruptFallsBackToSeed(t *testing.T) {
	var events []ChangeEvent
	settings := config.DefaultSettings()
	settings.SeedPath = writeSeed(t)
	mirror := &fakeMirror{loadErr: errors.New("unexpected end of JSON input")}
	mgr := NewManager(settings, mirror, func(e ChangeEvent) { events = append(events, e) })

	require.NoError(t, mgr.Initialize())
	assert.Equal(t, 2, mgr.Len())

	warned := false
	for _, e := range events {
		if e.Level == LevelWarning {
			warned = true
		}
	}
	assert.True(t, warned, "corrupt snapshot should be reported")
}

func TestManager_InitializeBadSeedReportsAndStaysEmpty(t *testing.T) {
	var events []ChangeEvent
	settings := config.DefaultSettings()
	settings.SeedPath = filepath.Join(t.TempDir(), "missing.json")
	mgr := NewManager(settings, &fakeMirror{}, func(e ChangeEvent) { events = append(events, e) })

	require.NoError(t, mgr.Initialize())
	assert.Equal(t, 0, mgr.Len())

	failed := false
	for _, e := range events {
		if e.Level == LevelError {
			failed = true
		}
	}
	assert.True(t, failed, "seed load failure should be reported")
}

func TestManager_SaveAdd(t *testing.T) {
	mirror := &fakeMirror{}
	mgr := newTestManager(t, mirror)
	require.NoError(t, mgr.Initialize())

	before := mgr.Len()
	saved, err := mgr.Save(model.Car{Name: "Custom X", Year: 2025, Collection: "Mainline"})
	require.NoError(t, err)

	assert.Equal(t, before+1, mgr.Len())
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, mgr.Len(), len(mirror.cars), "mutation should be mirrored")
}

func TestManager_SaveInvalidIsNoop(t *testing.T) {
	mirror := &fakeMirror{}
	mgr := newTestManager(t, mirror)
	require.NoError(t, mgr.Initialize())

	before := mgr.Len()
	saves := mirror.saves

	for _, invalid := range []model.Car{
		{Year: 2025, Collection: "Mainline"},
		{Name: "No Year", Collection: "Mainline"},
		{Name: "No Collection", Year: 2025},
	} {
		_, err := mgr.Save(invalid)
		require.ErrorIs(t, err, model.ErrInvalidCar)
	}

	assert.Equal(t, before, mgr.Len())
	assert.Equal(t, saves, mirror.saves, "failed saves must not persist")
}

func TestManager_SaveEditPreservesIDAndPosition(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	edited, err := mgr.Save(model.Car{ID: "Mainline-0", Name: "Twin Mill III", Year: 2025, Collection: "Mainline"})
	require.NoError(t, err)
	assert.Equal(t, "Mainline-0", edited.ID)

	snap := mgr.Snapshot()
	assert.Equal(t, "Mainline-0", snap[0].ID)
	assert.Equal(t, "Twin Mill III", snap[0].Name)
	assert.Equal(t, 2, mgr.Len())
}

func TestManager_IDsStayUniqueAcrossOperations(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	for i := 0; i < 20; i++ {
		_, err := mgr.Save(model.Car{Name: "Custom", Year: 2025, Collection: "Mainline"})
		require.NoError(t, err)
	}
	mgr.Delete("Mainline-0", nil)
	_, err := mgr.Save(model.Car{ID: "Mainline-1", Name: "Edited", Year: 2025, Collection: "Mainline"})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range mgr.Snapshot() {
		require.False(t, seen[c.ID], "duplicate ID %s", c.ID)
		seen[c.ID] = true
	}
}

func TestManager_DeleteConfirmDenied(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	before := mgr.Len()
	removed := mgr.Delete("Mainline-0", func(model.Car) bool { return false })
	assert.False(t, removed)
	assert.Equal(t, before, mgr.Len())
}

func TestManager_DeleteConfirmGranted(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	before := mgr.Len()
	var asked model.Car
	removed := mgr.Delete("Mainline-0", func(c model.Car) bool {
		asked = c
		return true
	})
	require.True(t, removed)
	assert.Equal(t, "Twin Mill", asked.Name)
	assert.Equal(t, before-1, mgr.Len())

	// The removed ID is gone from every future view.
	for _, c := range mgr.Filter(Query{}) {
		assert.NotEqual(t, "Mainline-0", c.ID)
	}
}

func TestManager_DeleteUnknownID(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	confirmed := false
	removed := mgr.Delete("missing", func(model.Car) bool {
		confirmed = true
		return true
	})
	assert.False(t, removed)
	assert.False(t, confirmed, "confirm must not be asked for unknown IDs")
	assert.Equal(t, 2, mgr.Len())
}

func TestManager_ToggleFavoriteInvolution(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	original, _ := mgr.Get("Mainline-0")

	require.True(t, mgr.ToggleFavorite("Mainline-0"))
	flipped, _ := mgr.Get("Mainline-0")
	assert.Equal(t, !original.Favorite, flipped.Favorite)

	require.True(t, mgr.ToggleFavorite("Mainline-0"))
	back, _ := mgr.Get("Mainline-0")
	assert.Equal(t, original.Favorite, back.Favorite)
}

func TestManager_ToggleAcquiredFilterScenario(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	require.True(t, mgr.ToggleAcquired("Mainline-1"))

	got := mgr.Filter(Query{Filter: model.FilterAcquired})
	require.Len(t, got, 1)
	assert.Equal(t, "Mainline-1", got[0].ID)
}

func TestManager_ToggleUnknownID(t *testing.T) {
	mirror := &fakeMirror{}
	mgr := newTestManager(t, mirror)
	require.NoError(t, mgr.Initialize())
	saves := mirror.saves

	assert.False(t, mgr.ToggleFavorite("missing"))
	assert.False(t, mgr.ToggleAcquired("missing"))
	assert.Equal(t, saves, mirror.saves)
}

func TestManager_CategoryCountScenario(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	// Seed has category "Mainline" with 2 cars of year 2025.
	assert.Equal(t, 2, mgr.CategoryCount("Mainline", 2025))
	assert.Equal(t, 0, mgr.CategoryCount("Mainline", 2024))
}

func TestManager_Stats(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	mgr.ToggleAcquired("Mainline-0")
	mgr.ToggleFavorite("Mainline-0")

	stats := mgr.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Acquired)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 1, stats.Categories)
}

func TestManager_PersistFailureKeepsState(t *testing.T) {
	var events []ChangeEvent
	settings := config.DefaultSettings()
	settings.SeedPath = writeSeed(t)
	mirror := &fakeMirror{saveErr: errors.New("disk full")}
	mgr := NewManager(settings, mirror, func(e ChangeEvent) { events = append(events, e) })
	require.NoError(t, mgr.Initialize())

	_, err := mgr.Save(model.Car{Name: "Custom X", Year: 2025, Collection: "Mainline"})
	require.NoError(t, err, "persistence failure must not fail the mutation")
	assert.Equal(t, 3, mgr.Len())

	warned := false
	for _, e := range events {
		if e.Level == LevelWarning {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestManager_AttachImageEmptyPath(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	uri, err := mgr.AttachImage("")
	require.NoError(t, err)
	assert.Empty(t, uri)
}

func TestManager_Reset(t *testing.T) {
	mgr := newTestManager(t, &fakeMirror{})
	require.NoError(t, mgr.Initialize())

	_, err := mgr.Save(model.Car{Name: "Custom X", Year: 2025, Collection: "Mainline"})
	require.NoError(t, err)
	mgr.ToggleAcquired("Mainline-0")
	require.Equal(t, 3, mgr.Len())

	mgr.Reset()
	assert.Equal(t, 2, mgr.Len())
	first, _ := mgr.Get("Mainline-0")
	assert.False(t, first.Acquired)
}
