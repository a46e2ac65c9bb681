// Package search filters a block of text down to the lines that contain a
// query substring.
//
// Every function here is pure: results are sub-slices of the supplied
// contents, nothing is copied except the slice headers, and the inputs are
// never modified. All inputs are valid, so there is no error path.
package search

import "strings"

// Match is a single matching line together with its 1-based line number.
type Match struct {
	Number int
	Text   string
}

// SearchCaseSensitive returns the lines of contents that contain query,
// compared byte for byte. An empty query matches every line.
//
//	SearchCaseSensitive("duct", "Rust:\nsafe, fast, productive.\nPick three.")
//	// => []string{"safe, fast, productive."}
func SearchCaseSensitive(query, contents string) []string {
	return collect(query, contents, false)
}

// SearchCaseInsensitive returns the lines of contents that contain query
// after both sides are lower-cased. The returned lines keep their original
// case.
//
//	SearchCaseInsensitive("rUsT", "Rust:\nsafe, fast, productive.\nPick three.")
//	// => []string{"Rust:"}
func SearchCaseInsensitive(query, contents string) []string {
	return collect(query, contents, true)
}

// Find is the numbered form of the two search functions. Matches are returned
// in line order.
func Find(query, contents string, ignoreCase bool) []Match {
	var out []Match
	scan(query, contents, ignoreCase, func(n int, line string) {
		out = append(out, Match{Number: n, Text: line})
	})
	return out
}

func collect(query, contents string, ignoreCase bool) []string {
	out := []string{}
	scan(query, contents, ignoreCase, func(_ int, line string) {
		out = append(out, line)
	})
	return out
}

// matcher returns the line predicate behind every search function. In
// case-insensitive mode the query is folded once, up front.
func matcher(query string, ignoreCase bool) func(line string) bool {
	if !ignoreCase {
		return func(line string) bool { return strings.Contains(line, query) }
	}
	needle := strings.ToLower(query)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), needle)
	}
}

func scan(query, contents string, ignoreCase bool, emit func(int, string)) {
	match := matcher(query, ignoreCase)
	n := 0
	eachLine(contents, func(line string) {
		n++
		if match(line) {
			emit(n, line)
		}
	})
}
