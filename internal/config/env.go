package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/minigrep/internal/engine/opts"
)

// envReader parses variables into config pointers and collects every parse
// error instead of stopping at the first.
type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) lookup(key string) (string, bool) {
	v := strings.TrimSpace(r.getenv(key))
	return v, v != ""
}

func (r *envReader) str(dst **string, key string) {
	if v, ok := r.lookup(key); ok {
		*dst = &v
	}
}

func (r *envReader) boolean(dst **bool, key string) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	b, err := engineopts.ParseBool(v, key)
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	*dst = &b
}

// nonNegative leaves the upper bound to NormalizeAndValidate so every input
// path reports range errors the same way.
func (r *envReader) nonNegative(dst **int, key string) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	n, err := engineopts.ParseIntInRange(v, key, 0, math.MaxInt)
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	*dst = &n
}

// filenameSwitch maps a boolean variable onto the always/never filename modes.
func (r *envReader) filenameSwitch(dst **string, key string) {
	var on *bool
	r.boolean(&on, key)
	if on == nil {
		return
	}
	mode := "never"
	if *on {
		mode = "always"
	}
	*dst = &mode
}

// FromEnv reads the MINIGREP_* variables plus the bare IGNORE_CASE switch.
// Parse failures are collected and returned together.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	r := &envReader{getenv: getenv}
	var cfg Config

	// IGNORE_CASE=anything turns the mode on; only a false literal turns it
	// off.
	if v, ok := r.lookup("IGNORE_CASE"); ok {
		on, err := engineopts.ParseBool(v, "IGNORE_CASE")
		if err != nil {
			on = true
		}
		cfg.Search.IgnoreCase = &on
	}
	r.boolean(&cfg.Search.IgnoreCase, "MINIGREP_IGNORE_CASE")
	r.nonNegative(&cfg.Search.Jobs, "MINIGREP_JOBS")
	r.nonNegative(&cfg.Search.MaxFileBytes, "MINIGREP_MAX_FILE_BYTES")
	r.nonNegative(&cfg.Search.TruncAll, "MINIGREP_TRUNCATE")

	r.str(&cfg.UI.Output, "MINIGREP_OUTPUT")
	r.str(&cfg.UI.Color, "MINIGREP_COLOR")
	r.filenameSwitch(&cfg.UI.Filename, "MINIGREP_WITH_FILENAME")
	r.str(&cfg.UI.Filename, "MINIGREP_FILENAME")
	r.boolean(&cfg.UI.LineNumber, "MINIGREP_LINE_NUMBER")
	r.str(&cfg.UI.Fields, "MINIGREP_FIELDS")
	r.str(&cfg.UI.MatchColor, "MINIGREP_MATCH_COLOR")

	return cfg, errors.Join(r.errs...)
}
