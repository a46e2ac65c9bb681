package output

import (
	"bufio"
	"io"
	"strconv"

	"github.com/phyten/minigrep/internal/engine"
	"github.com/phyten/minigrep/internal/termcolor"
)

// PlainOptions controls grep-style output.
type PlainOptions struct {
	WithFilename bool
	LineNumber   bool
	Color        bool
	MatchStyle   termcolor.Style
}

// WritePlain prints one matching line per output line, optionally prefixed
// with "file:" and "line:". Match ranges are highlighted when colour is on.
func WritePlain(w io.Writer, items []engine.Item, o PlainOptions) error {
	bw := bufio.NewWriter(w)
	sep := termcolor.Apply(termcolor.SeparatorStyle(), ":", o.Color)
	for _, it := range items {
		if o.WithFilename {
			bw.WriteString(termcolor.Apply(termcolor.FileStyle(), it.File, o.Color))
			bw.WriteString(sep)
		}
		if o.LineNumber {
			bw.WriteString(termcolor.Apply(termcolor.LineNumberStyle(), strconv.Itoa(it.Line), o.Color))
			bw.WriteString(sep)
		}
		bw.WriteString(termcolor.ApplyRanges(o.MatchStyle, it.Text, it.Ranges, o.Color))
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
