package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter writes a table as CSV with the column keys as header row.
// The footer is not written so the output stays machine-readable.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render quotes fields containing commas, quotes or line breaks.
func (e *CSVExporter) Render(t Table) ([]byte, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("csv requires at least one column")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(t.Keys()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("csv row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
