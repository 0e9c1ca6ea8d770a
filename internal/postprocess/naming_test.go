package postprocess

import (
	"encoding/json"
	"testing"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		wantLen int
	}{
		{name: "empty yields nil", raw: "", wantLen: 0},
		{name: "valid mixed", raw: `[{"type":"literal","text":"inv-"},{"type":"field","field":"vendor"}]`, wantLen: 2},
		{name: "not json", raw: `{nope`, wantErr: true},
		{name: "literal without text", raw: `[{"type":"literal"}]`, wantErr: true},
		{name: "field without name", raw: `[{"type":"field"}]`, wantErr: true},
		{name: "unknown type", raw: `[{"type":"glob"}]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTemplate(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestTemplateRender(t *testing.T) {
	fields := map[string]any{
		"vendor":    "Acme Corp",
		"vendor_de": "Münchener Rück",
		"date":      "2026-03-15",
		"total":     float64(42),
	}

	tests := []struct {
		name     string
		template Template
		want     string
	}{
		{
			name: "literals and fields",
			template: Template{
				{Type: "literal", Text: "inv_"},
				{Type: "field", Field: "vendor"},
			},
			want: "inv_Acme Corp",
		},
		{
			name: "case transform",
			template: Template{
				{Type: "field", Field: "vendor", Transform: &Transform{Case: "upper"}},
			},
			want: "ACME CORP",
		},
		{
			name: "date reformat",
			template: Template{
				{Type: "field", Field: "date", Transform: &Transform{DateFrom: "2006-01-02", DateTo: "20060102"}},
			},
			want: "20260315",
		},
		{
			name: "truncate",
			template: Template{
				{Type: "field", Field: "vendor", Transform: &Transform{Truncate: 4}},
			},
			want: "Acme",
		},
		{
			name: "truncate keeps multi-byte runes whole",
			template: Template{
				{Type: "field", Field: "vendor_de", Transform: &Transform{Truncate: 2}},
			},
			want: "Mü",
		},
		{
			name: "integer renders without decimal",
			template: Template{
				{Type: "field", Field: "total"},
			},
			want: "42",
		},
		{
			name: "missing field renders empty",
			template: Template{
				{Type: "literal", Text: "x_"},
				{Type: "field", Field: "absent"},
			},
			want: "x_",
		},
		{
			name: "all-empty falls back to source stem",
			template: Template{
				{Type: "field", Field: "absent"},
			},
			want: "scan_001",
		},
		{
			name:     "nil template falls back",
			template: nil,
			want:     "scan_001",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.template.Render(fields, "scan_001"); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b\\c:d", "a_b_c_d"},
		{"q?*<>|\"", "q______"},
		{"  spaced   out  ", "spaced out"},
		{"plain-name_1.ok", "plain-name_1.ok"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
