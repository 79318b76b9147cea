// Package collection holds the in-memory collection state and the
// operations over it.
//
// # Store
//
// Store is the ordered car list and the single source of truth during a
// session. It guarantees ID uniqueness across Replace, Upsert and Remove.
//
// # Manager
//
// Manager is the state container the application root owns. All writes
// go through its mutation operations (Save, Delete, ToggleFavorite,
// ToggleAcquired, Reset); after each committed mutation the full state
// is mirrored to persistence synchronously. Startup resolves the initial
// state deterministically: a persisted snapshot wins over the seed
// catalog when present, a corrupt snapshot falls back to the seed with a
// reported warning.
//
//	mgr := collection.NewManager(settings, mirror, onChange)
//	err := mgr.Initialize()
//	car, err := mgr.Save(model.Car{Name: "Custom X", Year: 2025, Collection: "Mainline"})
//
// # Filtering and aggregates
//
// Apply derives a filtered view from a snapshot: year, category,
// acquisition status and case-insensitive search, conjoined in that
// fixed order, preserving snapshot order. ComputeStats, CategoryCount
// and DistinctCategories recompute aggregates from the snapshot on
// every call; nothing is cached.
//
//	cars := collection.Apply(mgr.Snapshot(), collection.Query{
//	    Year:     2025,
//	    Category: "Muscle Mania",
//	    Filter:   model.FilterNotAcquired,
//	    Search:   "camaro",
//	})
package collection
