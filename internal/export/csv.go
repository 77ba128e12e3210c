package export

import (
	"bytes"
	"encoding/csv"
)

// CSV writes each table as a title line, a header line and its rows,
// separated by a blank line.
func CSV(tables ...*Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for i, t := range tables {
		if i > 0 {
			if err := w.Write([]string{}); err != nil {
				return nil, err
			}
		}
		if len(tables) > 1 {
			if err := w.Write([]string{t.Title}); err != nil {
				return nil, err
			}
		}
		if err := w.Write(t.Columns); err != nil {
			return nil, err
		}
		for _, row := range t.Rows {
			rec := make([]string, 0, len(t.Columns))
			for _, col := range t.Columns {
				rec = append(rec, t.cell(row, col))
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
