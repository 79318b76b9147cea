// Package catalog loads the static seed dataset that forms a collection's
// initial state.
//
// A seed dataset is a JSON document listing one edition year and an
// ordered list of categories, each with an ordered list of cars:
//
//	{
//	  "year": 2025,
//	  "categories": [
//	    {"name": "Muscle Mania", "cars": [
//	      {"name": "'67 Camaro", "series_number": "3/10", "variant": "", "image": ""}
//	    ]}
//	  ]
//	}
//
// The 2025 mainline catalog is embedded in the binary and used by
// Default(); an alternative dataset can be supplied via Load(path).
//
// Flattening is deterministic: declaration order is preserved and seed
// IDs are derived from each car's position within its category, so the
// same dataset always produces the same initial collection.
package catalog
