package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

const (
	pdfRowHeight    = 7.0
	pdfHeaderHeight = 8.0
	pdfCellPadding  = 4.0
)

// PDF lays every table out on landscape A4 pages, one table per page run.
func PDF(tables ...*Table) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(tables) == 0 {
		pdf.AddPage()
	}

	for _, t := range tables {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		widths := columnWidths(pdf, t, tr)

		header := func() {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(226, 232, 240)
			for i, col := range t.Columns {
				pdf.CellFormat(widths[i], pdfHeaderHeight, tr(col), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetFont("Helvetica", "", 10)
		}
		header()

		_, pageH := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		for _, row := range t.Rows {
			if pdf.GetY()+pdfRowHeight > pageH-bottom {
				pdf.AddPage()
				header()
			}
			for i, col := range t.Columns {
				pdf.CellFormat(widths[i], pdfRowHeight, tr(t.cell(row, col)), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columnWidths sizes columns to their widest text, scaled to the printable width.
func columnWidths(pdf *fpdf.Fpdf, t *Table, tr func(string) string) []float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	widths := make([]float64, len(t.Columns))
	total := 0.0
	for i, col := range t.Columns {
		w := pdf.GetStringWidth(tr(col))
		for _, row := range t.Rows {
			if cw := pdf.GetStringWidth(tr(t.cell(row, col))); cw > w {
				w = cw
			}
		}
		widths[i] = w + pdfCellPadding
		total += widths[i]
	}
	if total == 0 {
		return widths
	}
	scale := usable / total
	for i := range widths {
		widths[i] *= scale
	}
	return widths
}
