package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbogarage/garage/internal/model"
)

func sampleCars() []model.Car {
	return []model.Car{
		{ID: "Mainline-0", Name: "Twin Mill", Year: 2025, Collection: "Mainline", Variant: "Chrome"},
		{ID: "Mainline-1", Name: "Bone Shaker", Year: 2025, Collection: "Mainline", Acquired: true},
		{ID: "Premium-0", Name: "Datsun 510", Year: 2024, Collection: "Premium", Favorite: true},
		{ID: "Premium-1", Name: "Skyline GT-R", Year: 2025, Collection: "Premium", Acquired: true, Favorite: true},
	}
}

func TestApply_NoFilters(t *testing.T) {
	got := Apply(sampleCars(), Query{})
	assert.Len(t, got, 4)
}

func TestApply_Year(t *testing.T) {
	got := Apply(sampleCars(), Query{Year: 2025})
	require.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, 2025, c.Year)
	}
}

func TestApply_Category(t *testing.T) {
	got := Apply(sampleCars(), Query{Category: "Premium"})
	require.Len(t, got, 2)
	assert.Equal(t, "Premium-0", got[0].ID)
	assert.Equal(t, "Premium-1", got[1].ID)
}

func TestApply_Acquisition(t *testing.T) {
	acquired := Apply(sampleCars(), Query{Filter: model.FilterAcquired})
	require.Len(t, acquired, 2)

	missing := Apply(sampleCars(), Query{Filter: model.FilterNotAcquired})
	require.Len(t, missing, 2)
	assert.Equal(t, "Mainline-0", missing[0].ID)
}

func TestApply_SearchMatchesNameCollectionVariant(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"name match", "twin", []string{"Mainline-0"}},
		{"case insensitive", "BONE", []string{"Mainline-1"}},
		{"collection match", "premium", []string{"Premium-0", "Premium-1"}},
		{"variant match", "chrome", []string{"Mainline-0"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleCars(), Query{Search: tt.search})
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestApply_Conjunction(t *testing.T) {
	q := Query{Year: 2025, Category: "Premium", Filter: model.FilterAcquired, Search: "sky"}
	got := Apply(sampleCars(), q)
	require.Len(t, got, 1)
	assert.Equal(t, "Premium-1", got[0].ID)
}

func TestApply_StableAndIdempotent(t *testing.T) {
	cars := sampleCars()
	q := Query{Year: 2025}

	first := Apply(cars, q)
	second := Apply(cars, q)
	assert.Equal(t, first, second)

	// Survivors keep snapshot order.
	assert.Equal(t, "Mainline-0", first[0].ID)
	assert.Equal(t, "Mainline-1", first[1].ID)
	assert.Equal(t, "Premium-1", first[2].ID)

	// Filtering again over its own output changes nothing.
	assert.Equal(t, first, Apply(first, q))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleCars())
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Favorites)
	assert.Equal(t, 2, stats.Acquired)
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 2, stats.Missing())
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, model.Stats{}, ComputeStats(nil))
}

func TestCategoryCount(t *testing.T) {
	cars := sampleCars()
	assert.Equal(t, 2, CategoryCount(cars, "Mainline", 2025))
	assert.Equal(t, 1, CategoryCount(cars, "Premium", 2025))
	assert.Equal(t, 1, CategoryCount(cars, "Premium", 2024))
	assert.Equal(t, 2, CategoryCount(cars, "Premium", 0))
	assert.Equal(t, 0, CategoryCount(cars, "Nope", 0))
}

func TestDistinctCategories(t *testing.T) {
	got := DistinctCategories(sampleCars())
	assert.Equal(t, []string{"Mainline", "Premium"}, got)
}
