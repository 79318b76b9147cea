// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing and directory creation
//   - Filename sanitization for cross-platform compatibility
//   - Image resizing and data-URI encoding for car attachments
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/file.txt", []byte("content"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("'67 Camaro: TH") // Returns "'67 Camaro_ TH"
//
// # Image Attachments
//
// Car images are stored inline as data URIs. The pipeline decodes a local
// file, optionally resizes it, re-encodes as JPEG and base64-encodes it:
//
//	uri, _ := ioutils.DataURIFromFile("/photos/car.png", 800)
//	data, ext, _ := ioutils.DecodeDataURI(uri)
package ioutils
