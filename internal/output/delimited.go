package output

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/phyten/minigrep/internal/engine"
	"github.com/phyten/minigrep/internal/textutil"
)

// rows yields the header followed by one value row per item.
func rows(items []engine.Item, sel FieldSelection) [][]string {
	out := make([][]string, 0, len(items)+1)
	out = append(out, Headers(sel.Fields))
	for _, it := range items {
		out = append(out, RowValues(it, sel.Fields))
	}
	return out
}

// WriteCSV renders RFC 4180 CSV with CRLF record endings. Quoting is left to
// encoding/csv, so values are written unmodified.
func WriteCSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.WriteAll(rows(items, sel)); err != nil {
		return err
	}
	return cw.Error()
}

// WriteTSV writes tab-separated rows. TSV has no quoting, so tabs and other
// control characters inside values are flattened first.
func WriteTSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows(items, sel) {
		for i := range row {
			row[i] = textutil.SanitizeCell(row[i])
		}
		bw.WriteString(strings.Join(row, "\t"))
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
