// Package persist mirrors the collection to a local bbolt database.
//
// The entire ordered car list lives under a single fixed key, mirroring
// how the collection is held in memory: every save serializes the full
// current state, so no write can observe or produce a torn state.
//
//	mirror, err := persist.Open(settings.DatabasePath)
//	if err != nil { ... }
//	defer mirror.Close()
//
//	cars, found, err := mirror.Load()
//	switch {
//	case errors.Is(err, persist.ErrCorruptSnapshot):
//	    // report and fall back to the seed catalog
//	case found:
//	    // persisted state supersedes the seed catalog
//	}
package persist
