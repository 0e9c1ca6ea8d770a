package postprocess

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseColumns(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{name: "empty yields nil", raw: ""},
		{name: "valid", raw: `[{"field":"vendor","name":"Vendor"},{"field":"total"}]`, wantLen: 2},
		{name: "not json", raw: `42`, wantErr: true},
		{name: "column without field", raw: `[{"name":"Vendor"}]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func readSheet(t *testing.T, workbook []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Extracted")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	return rows
}

func TestBuildWorkbookConfiguredColumns(t *testing.T) {
	hidden := false
	cols := []Column{
		{Field: "vendor", DisplayName: "Vendor"},
		{Field: "total"},
		{Field: "internal_ref", Visible: &hidden},
		{Field: "date", DateFormat: "02 Jan 2006"},
	}
	data := []row{
		{Filename: "a.pdf", Fields: map[string]any{"vendor": "Acme", "total": 12.5, "date": "2026-03-15", "internal_ref": "x"}},
		{Filename: "b.pdf", Fields: map[string]any{"vendor": "Globex"}},
	}

	workbook, err := BuildWorkbook(data, cols)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	rows := readSheet(t, workbook)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	wantHeader := []string{"File", "Vendor", "total", "date"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "a.pdf" || rows[1][1] != "Acme" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[1][3] != "15 Mar 2026" {
		t.Errorf("date cell = %q, want reformatted date", rows[1][3])
	}
	for _, r := range rows {
		for _, cell := range r {
			if cell == "x" {
				t.Error("hidden column leaked into the sheet")
			}
		}
	}
}

func TestBuildWorkbookInfersColumns(t *testing.T) {
	data := []row{
		{Filename: "a.pdf", Fields: map[string]any{"b_field": "1", "a_field": "2"}},
		{Filename: "b.pdf", Fields: map[string]any{"c_field": "3"}},
	}
	workbook, err := BuildWorkbook(data, nil)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	rows := readSheet(t, workbook)
	wantHeader := []string{"File", "a_field", "b_field", "c_field"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}
}
