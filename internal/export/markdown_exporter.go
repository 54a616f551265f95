package export

import (
	"bytes"
	"fmt"
	"strings"
)

// MarkdownExporter renders tables as a GitHub-style pipe table.
type MarkdownExporter struct{}

// NewMarkdownExporter builds a Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Render produces the table, preceded by a heading when title is set and
// followed by the footer in italics.
func (e *MarkdownExporter) Render(t Table, title string) ([]byte, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("markdown requires at least one column")
	}
	buf := &bytes.Buffer{}
	if title != "" {
		fmt.Fprintf(buf, "# %s\n\n", title)
	}
	titles := make([]string, len(t.Columns))
	sep := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = c.Title
		sep[i] = "---"
	}
	writeRow(buf, titles)
	writeRow(buf, sep)
	for _, row := range t.Rows {
		writeRow(buf, row)
	}
	if t.Footer != "" {
		fmt.Fprintf(buf, "\n_%s_\n", t.Footer)
	}
	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		c = strings.ReplaceAll(c, "|", `\|`)
		escaped[i] = strings.ReplaceAll(c, "\n", " ")
	}
	fmt.Fprintf(buf, "| %s |\n", strings.Join(escaped, " | "))
}
