package postprocess

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/tobi-adeyemi/extractflow/internal/common"
)

// Element is one piece of a naming template: literal text or a reference to
// an extracted field, optionally transformed.
type Element struct {
	Type      string     `json:"type"` // "literal" | "field"
	Text      string     `json:"text,omitempty"`
	Field     string     `json:"field,omitempty"`
	Transform *Transform `json:"transform,omitempty"`
}

// Transform mutates a field value before it lands in the filename.
type Transform struct {
	Case     string `json:"case,omitempty"` // "upper" | "lower" | "title"
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Truncate int    `json:"truncate,omitempty"`
}

// Template is an ordered list of elements.
type Template []Element

// ParseTemplate decodes and validates a naming template. A nil or empty
// payload yields a nil template; callers fall back to source filenames.
func ParseTemplate(raw json.RawMessage) (Template, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var t Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, common.NewAppError("BAD_TEMPLATE", "naming template is not valid JSON", err)
	}
	for i, el := range t {
		switch el.Type {
		case "literal":
			if el.Text == "" {
				return nil, common.NewAppError("BAD_TEMPLATE", fmt.Sprintf("element %d: literal without text", i), common.ErrInvalidInput)
			}
		case "field":
			if el.Field == "" {
				return nil, common.NewAppError("BAD_TEMPLATE", fmt.Sprintf("element %d: field reference without name", i), common.ErrInvalidInput)
			}
		default:
			return nil, common.NewAppError("BAD_TEMPLATE", fmt.Sprintf("element %d: unknown type %q", i, el.Type), common.ErrInvalidInput)
		}
	}
	return t, nil
}

// Render builds a filename stem from extracted fields. Missing fields render
// as empty; an all-empty result falls back to the provided stem.
func (t Template) Render(fields map[string]any, fallback string) string {
	if len(t) == 0 {
		return fallback
	}
	var b strings.Builder
	for _, el := range t {
		switch el.Type {
		case "literal":
			b.WriteString(el.Text)
		case "field":
			b.WriteString(el.Transform.apply(stringify(fields[el.Field])))
		}
	}
	out := SanitizeFilename(b.String())
	if out == "" {
		return fallback
	}
	return out
}

func (tr *Transform) apply(v string) string {
	if tr == nil || v == "" {
		return v
	}
	if tr.DateFrom != "" && tr.DateTo != "" {
		if parsed, err := time.Parse(tr.DateFrom, v); err == nil {
			v = parsed.Format(tr.DateTo)
		}
	}
	switch tr.Case {
	case "upper":
		v = strings.ToUpper(v)
	case "lower":
		v = strings.ToLower(v)
	case "title":
		v = titleCase(v)
	}
	if tr.Truncate > 0 {
		// Cut on rune boundaries so multi-byte characters survive intact.
		if runes := []rune(v); len(runes) > tr.Truncate {
			v = string(runes[:tr.Truncate])
		}
	}
	return v
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		// JSON numbers decode as float64; render integers without a
		// trailing .0.
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%v", x)
	case bool:
		return fmt.Sprintf("%t", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func titleCase(s string) string {
	prevSpace := true
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			prevSpace = true
			return r
		}
		if prevSpace {
			prevSpace = false
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	}, s)
}

// SanitizeFilename strips path separators and characters that break common
// filesystems, collapsing runs of whitespace.
func SanitizeFilename(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
