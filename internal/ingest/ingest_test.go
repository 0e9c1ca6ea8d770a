package ingest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tobi-adeyemi/extractflow/internal/common"
)

func TestInspectImages(t *testing.T) {
	for _, filename := range []string{"scan.jpg", "scan.JPEG", "scan.png", "scan.tiff"} {
		t.Run(filename, func(t *testing.T) {
			unit, err := Inspect(Upload{Filename: filename, Content: []byte("image-bytes")})
			if err != nil {
				t.Fatalf("Inspect: %v", err)
			}
			if unit.Format != "IMAGE" {
				t.Errorf("Format = %q, want IMAGE", unit.Format)
			}
			if unit.PageCount != 1 {
				t.Errorf("PageCount = %d, want 1", unit.PageCount)
			}
			if len(unit.ContentHash) != 32 {
				t.Errorf("ContentHash length = %d, want sha256", len(unit.ContentHash))
			}
		})
	}
}

func TestInspectRejections(t *testing.T) {
	tests := []struct {
		name   string
		upload Upload
	}{
		{name: "disallowed extension", upload: Upload{Filename: "notes.docx", Content: []byte("x")}},
		{name: "no extension", upload: Upload{Filename: "mystery", Content: []byte("x")}},
		{name: "empty content", upload: Upload{Filename: "scan.jpg", Content: nil}},
		{name: "corrupt pdf", upload: Upload{Filename: "broken.pdf", Content: []byte("not a pdf")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inspect(tt.upload)
			if err == nil {
				t.Fatal("expected error")
			}
			var appErr *common.AppError
			if !errors.As(err, &appErr) {
				t.Errorf("err %v is not an AppError", err)
			}
		})
	}
}

func TestInspectAllFailsFast(t *testing.T) {
	uploads := []Upload{
		{Filename: "ok.jpg", Content: []byte("x")},
		{Filename: "bad.docx", Content: []byte("x")},
	}
	if _, err := InspectAll(uploads); err == nil {
		t.Fatal("expected error for invalid batch")
	}
}

func TestTotalPages(t *testing.T) {
	units := []Unit{{PageCount: 3}, {PageCount: 1}, {PageCount: 5}}
	if got := TotalPages(units); got != 9 {
		t.Errorf("TotalPages = %d, want 9", got)
	}
	if got := TotalPages(nil); got != 0 {
		t.Errorf("TotalPages(nil) = %d", got)
	}
}

func TestContentHashDiffers(t *testing.T) {
	a, err := Inspect(Upload{Filename: "a.jpg", Content: []byte("one")})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Inspect(Upload{Filename: "b.jpg", Content: []byte("two")})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.ContentHash, b.ContentHash) {
		t.Error("different content produced identical hashes")
	}
}
