package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter lays a table out on landscape A4 pages with a repeated
// header row, shaded alternate rows and page numbers.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

const (
	pdfHeaderHeight = 8.0
	pdfRowHeight    = 7.0
)

// Render returns the encoded document. Columns share the printable width
// in proportion to Column.Width.
func (e *PDFExporter) Render(t Table, title string) ([]byte, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("pdf requires at least one column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	widths := columnWidths(t.Columns, pageWidth-left-right)

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(220, 220, 220)
		for i, c := range t.Columns {
			pdf.CellFormat(widths[i], pdfHeaderHeight, tr(c.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.AddPage()
	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}
	header()

	pdf.SetFillColor(245, 245, 245)
	for i, row := range t.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
			pdf.SetFillColor(245, 245, 245)
		}
		for j := range t.Columns {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(widths[j], pdfRowHeight, tr(cell), "1", 0, "", i%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}

	if t.Footer != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(0, 6, tr(t.Footer), "", 1, "L", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths splits total by the relative widths; non-positive weights
// count as 1.
func columnWidths(cols []Column, total float64) []float64 {
	var sum float64
	for _, c := range cols {
		sum += weight(c)
	}
	out := make([]float64, len(cols))
	for i, c := range cols {
		out[i] = total * weight(c) / sum
	}
	return out
}

func weight(c Column) float64 {
	if c.Width > 0 {
		return c.Width
	}
	return 1
}
