// Package model defines the core data structures used throughout
// the Turbo Garage collection manager.
//
// # Car
//
// Car is the one record shape for every collectible, whether it came from
// the seed catalog or was added by the user:
//
//	car := model.Car{Name: "Bone Shaker", Year: 2025, Collection: "HW Originals"}
//	err := car.Validate() // nil; required fields are set
//
// # IDs
//
// Seed cars get deterministic position-based IDs, user cars get UUIDs:
//
//	model.SeedID("Muscle Mania", 3) // "Muscle Mania-3"
//	model.NewID()                   // "8b7f9c02-..."
//
// # Acquisition filter
//
// AcquisitionFilter is the three-way all/acquired/notAcquired view mode
// shared by the CLI flags, the TUI and saved settings.
package model
