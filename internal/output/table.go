package output

import (
	"bufio"
	"io"

	"github.com/phyten/minigrep/internal/engine"
	"github.com/phyten/minigrep/internal/termcolor"
	"github.com/phyten/minigrep/internal/textutil"
)

const columnGap = "  "

// WriteTable renders an aligned table. Column widths are measured in terminal
// cells so wide characters and colour codes do not break alignment. Line
// numbers are right-aligned.
func WriteTable(w io.Writer, items []engine.Item, sel FieldSelection, color bool) error {
	headers := Headers(sel.Fields)
	rows := make([][]string, len(items))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for r, it := range items {
		row := RowValues(it, sel.Fields)
		for i := range row {
			row[i] = textutil.SanitizeCell(row[i])
			if vw := textutil.VisibleWidth(row[i]); vw > widths[i] {
				widths[i] = vw
			}
		}
		rows[r] = row
	}

	bw := bufio.NewWriter(w)
	writeRow := func(cells []string, style *termcolor.Style) {
		for i, cell := range cells {
			padded := cell
			switch {
			case sel.Fields[i].Key == "line":
				padded = textutil.PadLeft(cell, widths[i])
			case i < len(cells)-1:
				padded = textutil.PadRight(cell, widths[i])
			}
			if style != nil {
				padded = termcolor.Apply(*style, padded, color)
			}
			bw.WriteString(padded)
			if i < len(cells)-1 {
				bw.WriteString(columnGap)
			}
		}
		bw.WriteString("\n")
	}
	header := termcolor.HeaderStyle()
	writeRow(headers, &header)
	for _, row := range rows {
		writeRow(row, nil)
	}
	return bw.Flush()
}
