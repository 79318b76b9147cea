// Package export derives file artifacts from a collection snapshot.
//
// # Checklists
//
// Writer renders the collection as a checklist grouped by category, in
// plain text, Markdown or CSV:
//
//	w := export.NewWriter(export.ParseFormat("markdown"))
//	content := w.Render(cars, stats)
//
// # Image dumps
//
// DumpImages writes every inline car image back out as a standalone
// file, concurrently:
//
//	n, err := export.DumpImages(ctx, cars, "/exports/images", 4)
package export
