package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

func Excel(tables ...*Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})
	if err != nil {
		return nil, err
	}

	defaultSheet := f.GetSheetName(0)
	keepDefault := len(tables) == 0
	used := map[string]int{}

	for i, t := range tables {
		sheet := safeSheetName(t.Title)
		if sheet == "" {
			sheet = fmt.Sprintf("Sheet_%d", i+1)
		}
		if n, ok := used[sheet]; ok {
			n++
			used[sheet] = n
			sheet = fmt.Sprintf("%s_%d", truncate(sheet, 28), n)
		} else {
			used[sheet] = 1
		}
		if sheet == defaultSheet {
			keepDefault = true
		}

		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		sw, err := f.NewStreamWriter(sheet)
		if err != nil {
			return nil, err
		}

		header := make([]interface{}, 0, len(t.Columns))
		for _, col := range t.Columns {
			header = append(header, excelize.Cell{Value: col, StyleID: headerStyle})
		}
		if err := sw.SetRow("A1", header); err != nil {
			return nil, err
		}

		for r, row := range t.Rows {
			values := make([]interface{}, 0, len(t.Columns))
			for _, col := range t.Columns {
				v, ok := row.Get(col)
				if !ok || v == nil {
					v = ""
				}
				values = append(values, v)
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := sw.SetRow(cell, values); err != nil {
				return nil, err
			}
		}

		if err := sw.Flush(); err != nil {
			return nil, err
		}
	}

	if !keepDefault {
		_ = f.DeleteSheet(defaultSheet)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeSheetName(name string) string {
	n := strings.TrimSpace(name)
	n = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_").Replace(n)
	return truncate(n, 31)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}
