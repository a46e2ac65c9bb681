package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Range is a half-open byte interval [Start, End) inside a line.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Ranges returns the non-overlapping occurrences of query in line, scanning
// left to right. An empty query yields nil.
//
// In case-insensitive mode the line is lower-cased rune by rune and every
// offset is mapped back onto the original bytes, so runes whose lower-case
// form has a different encoded length still get exact ranges.
func Ranges(line, query string, ignoreCase bool) []Range {
	if query == "" {
		return nil
	}
	hay, needle := line, query
	var orig []int
	if ignoreCase {
		hay, orig = foldOffsets(line)
		needle = strings.ToLower(query)
	}
	var out []Range
	offset := 0
	for {
		i := strings.Index(hay[offset:], needle)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(needle)
		if orig != nil {
			out = append(out, Range{Start: orig[start], End: orig[end]})
		} else {
			out = append(out, Range{Start: start, End: end})
		}
		offset = end
	}
	return out
}

// foldOffsets lower-cases s the way strings.ToLower does and returns, for
// every byte of the folded text plus its end, the offset of the original rune
// it came from.
func foldOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	orig := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		n, _ := b.WriteRune(unicode.ToLower(r))
		for range n {
			orig = append(orig, i)
		}
		i += size
	}
	orig = append(orig, len(s))
	return b.String(), orig
}
