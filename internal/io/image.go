package ioutils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"
	"strings"

	"golang.org/x/image/draw"
)

const jpegDataURIPrefix = "data:image/jpeg;base64,"

// ErrNotDataURI is returned when decoding a string that is not a
// recognized image data URI.
var ErrNotDataURI = errors.New("not an image data URI")

// DataURIFromFile reads a local image file and encodes it as a JPEG
// data URI suitable for storing inline in a car record.
//
// When maxSize is greater than zero the image is first resized to fit
// within maxSize x maxSize pixels, preserving aspect ratio. A maxSize of
// zero keeps the original dimensions (the image is still re-encoded as
// JPEG for a consistent stored format).
//
// Example:
//
//	uri, err := DataURIFromFile("/photos/camaro.png", 800)
//	// uri: "data:image/jpeg;base64,/9j/4AAQ..."
func DataURIFromFile(path string, maxSize int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}

	if maxSize > 0 {
		data, err = ResizeImage(data, maxSize, maxSize)
	} else {
		data, err = ConvertToJPEG(data)
	}
	if err != nil {
		return "", fmt.Errorf("failed to process image %s: %w", path, err)
	}

	return jpegDataURIPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURI extracts the raw image bytes and extension from an
// image data URI.
//
// Returns ErrNotDataURI when the string does not look like
// "data:image/<type>;base64,<payload>".
//
// Example:
//
//	data, ext, err := DecodeDataURI(car.Image)
//	// ext: ".jpg"
func DecodeDataURI(uri string) (data []byte, ext string, err error) {
	if !strings.HasPrefix(uri, "data:image/") {
		return nil, "", ErrNotDataURI
	}

	rest := strings.TrimPrefix(uri, "data:image/")
	sep := strings.Index(rest, ";base64,")
	if sep == -1 {
		return nil, "", ErrNotDataURI
	}

	kind := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image data URI: %w", err)
	}

	switch kind {
	case "jpeg", "jpg":
		ext = ".jpg"
	case "png":
		ext = ".png"
	default:
		ext = "." + kind
	}
	return data, ext, nil
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. If the image is already smaller than the
// maximum dimensions, it will still be processed (re-encoded as JPEG).
//
// Returns the resized image as JPEG-encoded bytes.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// Resize to fit within 800x800, maintaining aspect ratio
//	resized, err := ResizeImage(imageData, 800, 800)
//	// A 1200x800 image becomes 800x533
//	// A 640x480 image remains 640x480 (but re-encoded)
func ResizeImage(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Calculate new dimensions maintaining aspect ratio
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			// Width is the limiting factor
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	// Create new image with calculated dimensions
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// Use Catmull-Rom for high-quality scaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	// Encode to JPEG with high quality
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertToJPEG converts an image to JPEG format without resizing.
//
// Returns the image as JPEG-encoded bytes with 90% quality.
//
// Note: If the input is already JPEG, it will be re-encoded, which may
// slightly change file size but ensures consistent encoding.
func ConvertToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
