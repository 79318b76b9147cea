package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-name", "normal-name"},
		{"name:with:colons", "name_with_colons"},
		{"name<with>brackets", "name_with_brackets"},
		{"name/with\\slashes", "name_with_slashes"},
		{"name|with|pipes", "name_with_pipes"},
		{"name?with*wildcards", "name_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFileAndEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	path := filepath.Join(dir, "out.txt")
	if err := WriteFile(context.Background(), path, []byte("content")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "content" {
		t.Errorf("file content = %q, want %q", data, "content")
	}
}

// writeTestPNG writes a width x height PNG and returns its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDataURIFromFile(t *testing.T) {
	path := writeTestPNG(t, 20, 10)

	uri, err := DataURIFromFile(path, 0)
	if err != nil {
		t.Fatalf("DataURIFromFile() error = %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("uri should be a JPEG data URI, got %q", uri[:30])
	}

	data, ext, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI() error = %v", err)
	}
	if ext != ".jpg" {
		t.Errorf("ext = %q, want .jpg", ext)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoded payload is not valid JPEG: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("dimensions = %dx%d, want 20x10", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDataURIFromFile_Resizes(t *testing.T) {
	path := writeTestPNG(t, 400, 200)

	uri, err := DataURIFromFile(path, 100)
	if err != nil {
		t.Fatalf("DataURIFromFile() error = %v", err)
	}

	data, _, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI() error = %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg.Decode() error = %v", err)
	}

	// 400x200 within 100x100 keeps the 2:1 aspect ratio.
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("dimensions = %dx%d, want 100x50", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDataURIFromFile_MissingFile(t *testing.T) {
	if _, err := DataURIFromFile(filepath.Join(t.TempDir(), "nope.png"), 0); err == nil {
		t.Error("DataURIFromFile() should fail for a missing file")
	}
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain text", "hello"},
		{"wrong scheme", "data:text/plain;base64,aGk="},
		{"missing payload marker", "data:image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeDataURI(tt.input); err == nil {
				t.Errorf("DecodeDataURI(%q) should fail", tt.input)
			}
		})
	}
}

func TestResizeImage_SmallImageKeepsSize(t *testing.T) {
	path := writeTestPNG(t, 40, 30)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	out, err := ResizeImage(data, 100, 100)
	if err != nil {
		t.Fatalf("ResizeImage() error = %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("jpeg.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestConvertToJPEG_InvalidData(t *testing.T) {
	if _, err := ConvertToJPEG([]byte("not an image")); err == nil {
		t.Error("ConvertToJPEG() should fail on garbage input")
	}
}
