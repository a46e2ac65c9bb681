package config

import "strings"

// resolve returns the last non-nil layer value, or def when every layer is
// unset.
func resolve[T any](def T, layers ...*T) T {
	out := def
	for _, v := range layers {
		if v != nil {
			out = *v
		}
	}
	return out
}

func ResolveString(def string, layers ...*string) string { return resolve(def, layers...) }

func ResolveInt(def int, layers ...*int) int { return resolve(def, layers...) }

func ResolveBool(def bool, layers ...*bool) bool { return resolve(def, layers...) }

// ResolveAndTrim is ResolveString with surrounding whitespace removed.
func ResolveAndTrim(def string, layers ...*string) string {
	return strings.TrimSpace(resolve(def, layers...))
}
