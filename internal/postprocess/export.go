package postprocess

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tobi-adeyemi/extractflow/internal/common"
)

// Column configures one column of the tabular export.
type Column struct {
	Field       string `json:"field"`
	DisplayName string `json:"name,omitempty"`
	Visible     *bool  `json:"visible,omitempty"` // default true
	DateFormat  string `json:"date_format,omitempty"`
}

func (c Column) visible() bool { return c.Visible == nil || *c.Visible }

func (c Column) header() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Field
}

// ParseColumns decodes the export column config. Empty config means the
// sheet is built from the union of field names in first-seen order.
func ParseColumns(raw json.RawMessage) ([]Column, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var cols []Column
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, common.NewAppError("BAD_COLUMNS", "export column config is not valid JSON", err)
	}
	for i, c := range cols {
		if c.Field == "" {
			return nil, common.NewAppError("BAD_COLUMNS", fmt.Sprintf("column %d has no field", i), common.ErrInvalidInput)
		}
	}
	return cols, nil
}

// row pairs a renamed file with its extracted fields.
type row struct {
	Filename string
	Fields   map[string]any
}

// BuildWorkbook returns an XLSX workbook with one row per completed job.
func BuildWorkbook(rows []row, cols []Column) ([]byte, error) {
	if len(cols) == 0 {
		cols = inferColumns(rows)
	}
	visible := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.visible() {
			visible = append(visible, c)
		}
	}

	f := excelize.NewFile()
	const sheet = "Extracted"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, rowNum int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, rowNum)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "File")
	for i, c := range visible {
		write(i+2, 1, c.header())
	}

	for ri, r := range rows {
		write(1, ri+2, r.Filename)
		for ci, c := range visible {
			write(ci+2, ri+2, formatCell(r.Fields[c.Field], c.DateFormat))
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	if len(visible) > 0 {
		last, _ := excelize.ColumnNumberToName(len(visible) + 1)
		_ = f.SetColWidth(sheet, "B", last, 22)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCell(v any, dateFormat string) any {
	if v == nil {
		return ""
	}
	if dateFormat != "" {
		if s, ok := v.(string); ok {
			for _, layout := range []string{"2006-01-02", time.RFC3339, "01/02/2006"} {
				if parsed, err := time.Parse(layout, s); err == nil {
					return parsed.Format(dateFormat)
				}
			}
		}
	}
	return v
}

func inferColumns(rows []row) []Column {
	seen := map[string]struct{}{}
	var cols []Column
	for _, r := range rows {
		keys := make([]string, 0, len(r.Fields))
		for k := range r.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, Column{Field: k})
		}
	}
	return cols
}
