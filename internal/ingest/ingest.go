package ingest

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/common"
)

// Upload is one file received from the client.
type Upload struct {
	Filename string
	Content  []byte
}

// Unit is an inspected upload ready to become a job.
type Unit struct {
	Filename    string
	Content     []byte
	Format      string // "PDF" | "IMAGE"
	PageCount   int
	ContentHash []byte
}

// Inspect validates the upload's extension, detects its format and counts
// its pages. Images always count as one page; PDFs are counted with pdfcpu.
func Inspect(u Upload) (*Unit, error) {
	ext := constants.NormalizeExt(filepath.Ext(u.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.NewAppError("UNSUPPORTED_FILE", fmt.Sprintf("extension %q is not allowed", ext), common.ErrInvalidInput)
	}
	if len(u.Content) == 0 {
		return nil, common.NewAppError("EMPTY_FILE", fmt.Sprintf("file %q is empty", u.Filename), common.ErrInvalidInput)
	}

	unit := &Unit{
		Filename:  u.Filename,
		Content:   u.Content,
		PageCount: 1,
	}
	h := sha256.Sum256(u.Content)
	unit.ContentHash = h[:]

	if ext == "pdf" {
		unit.Format = "PDF"
		pages, err := api.PageCount(bytes.NewReader(u.Content), nil)
		if err != nil {
			return nil, common.NewAppError("UNREADABLE_PDF", fmt.Sprintf("cannot count pages of %q", u.Filename), err)
		}
		if pages < 1 {
			return nil, common.NewAppError("EMPTY_PDF", fmt.Sprintf("%q has no pages", u.Filename), common.ErrInvalidInput)
		}
		unit.PageCount = pages
	} else {
		unit.Format = "IMAGE"
	}
	return unit, nil
}

// InspectAll inspects every upload, failing fast on the first invalid file.
func InspectAll(uploads []Upload) ([]Unit, error) {
	units := make([]Unit, 0, len(uploads))
	for _, u := range uploads {
		unit, err := Inspect(u)
		if err != nil {
			return nil, err
		}
		units = append(units, *unit)
	}
	return units, nil
}

// TotalPages sums the page counts across units; one credit is charged per page.
func TotalPages(units []Unit) int {
	total := 0
	for _, u := range units {
		total += u.PageCount
	}
	return total
}
