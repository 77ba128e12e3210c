package export

import (
	"fmt"
	"strings"

	"culturefest-api/internal/apperr"

	"github.com/iancoleman/orderedmap"
)

const (
	FormatExcel = "excel"
	FormatPDF   = "pdf"
	FormatCSV   = "csv"
)

// Table is one sheet (Excel) or one section (PDF, CSV) of an export.
type Table struct {
	Title   string
	Columns []string
	Rows    []*orderedmap.OrderedMap
}

func NewTable(title string, columns ...string) *Table {
	return &Table{Title: title, Columns: columns}
}

// Add appends a row; values are matched to Columns by position.
func (t *Table) Add(values ...interface{}) {
	row := orderedmap.New()
	for i, col := range t.Columns {
		var v interface{} = ""
		if i < len(values) && values[i] != nil {
			v = values[i]
		}
		row.Set(col, v)
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) cell(row *orderedmap.OrderedMap, col string) string {
	v, ok := row.Get(col)
	if !ok || v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return fmt.Sprintf("%.2f", x)
	default:
		return fmt.Sprint(x)
	}
}

// Render writes tables in format and returns the content type and file extension.
func Render(format string, tables ...*Table) (contentType, ext string, data []byte, err error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatExcel, "xlsx", "":
		data, err = Excel(tables...)
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx", data, err
	case FormatPDF:
		data, err = PDF(tables...)
		return "application/pdf", ".pdf", data, err
	case FormatCSV:
		data, err = CSV(tables...)
		return "text/csv; charset=utf-8", ".csv", data, err
	default:
		return "", "", nil, apperr.Validation("format", "format", "format must be one of excel, pdf, csv")
	}
}

// NormalizeFormat maps aliases onto the format names used in metrics labels.
func NormalizeFormat(format string) string {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", "xlsx":
		return FormatExcel
	default:
		return f
	}
}
