package search

import "strings"

// Lines splits contents into lines. Lines end at '\n'; a '\r' directly before
// the '\n' belongs to the terminator. A final terminator does not start an
// extra empty line, and empty contents have no lines at all.
//
// The returned strings alias contents.
func Lines(contents string) []string {
	out := []string{}
	eachLine(contents, func(line string) {
		out = append(out, line)
	})
	return out
}

func eachLine(contents string, fn func(string)) {
	rest := contents
	for rest != "" {
		var line string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
			line = strings.TrimSuffix(line, "\r")
		} else {
			line, rest = rest, ""
		}
		fn(line)
	}
}
