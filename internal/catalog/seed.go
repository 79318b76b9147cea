package catalog

import _ "embed"

// seedData is the 2025 mainline catalog shipped with the application.
//
//go:embed data/hotwheels-2025.json
var seedData []byte
