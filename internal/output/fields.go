package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/minigrep/internal/engine"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"file":     "FILE",
	"path":     "FILE",
	"line":     "LINE",
	"lineno":   "LINE",
	"location": "LOCATION",
	"text":     "TEXT",
}

var canonicalKeys = map[string]string{
	"path":   "file",
	"lineno": "line",
}

// ResolveFields parses a comma-separated field list. An empty list yields the
// default columns: file when withFilename, line when lineNumber, then text.
func ResolveFields(raw string, withFilename, lineNumber bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	var keys []string
	if raw == "" {
		if withFilename {
			keys = append(keys, "file")
		}
		if lineNumber {
			keys = append(keys, "line")
		}
		keys = append(keys, "text")
	} else {
		seen := make(map[string]bool)
		for _, part := range strings.Split(raw, ",") {
			key := strings.ToLower(strings.TrimSpace(part))
			if key == "" {
				continue
			}
			if _, ok := fieldRegistry[key]; !ok {
				return FieldSelection{}, fmt.Errorf("unknown field: %s", part)
			}
			if canon, ok := canonicalKeys[key]; ok {
				key = canon
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
		if len(keys) == 0 {
			return FieldSelection{}, fmt.Errorf("fields must not be empty")
		}
	}
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	for _, key := range keys {
		sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldRegistry[key]})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(it engine.Item, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fieldValue(it, f.Key)
	}
	return out
}

func fieldValue(it engine.Item, key string) string {
	switch key {
	case "file":
		return it.File
	case "line":
		return strconv.Itoa(it.Line)
	case "location":
		return it.File + ":" + strconv.Itoa(it.Line)
	case "text":
		return it.Text
	default:
		return ""
	}
}
