// Package opts holds the option defaults and the validation shared by the
// command line, the config file and the environment.
package opts

import (
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/phyten/minigrep/internal/engine"
)

const maxJobs = 64

var outputFormats = []string{"plain", "table", "tsv", "json", "ndjson", "csv", "markdown"}

// Defaults returns the baseline options: case-sensitive, one worker per CPU
// (capped at 64), no size limit and no truncation.
func Defaults() engine.Options {
	return engine.Options{
		Jobs: min(max(runtime.NumCPU(), 1), maxJobs),
	}
}

// NormalizeAndValidate checks numeric ranges and drops blank paths.
func NormalizeAndValidate(o *engine.Options) error {
	switch {
	case o.Jobs < 1 || o.Jobs > maxJobs:
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	case o.TruncAll < 0:
		return fmt.Errorf("truncate must be >= 0")
	case o.MaxFileBytes < 0:
		return fmt.Errorf("max_file_bytes must be >= 0")
	}
	o.Paths = slices.DeleteFunc(o.Paths, func(p string) bool {
		return strings.TrimSpace(p) == ""
	})
	for i, p := range o.Paths {
		o.Paths[i] = strings.TrimSpace(p)
	}
	return nil
}

// ParseBool accepts 1/0, true/false, yes/no and on/off in any case.
func ParseBool(raw, key string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value for %s: %q", key, raw)
	}
}

// ParseIntInRange parses raw and checks lo <= n <= hi. When hi < lo only the
// lower bound applies.
func ParseIntInRange(raw, key string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	bounded := hi >= lo
	if n < lo || (bounded && n > hi) {
		if bounded {
			return 0, fmt.Errorf("%s must be between %d and %d", key, lo, hi)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, lo)
	}
	return n, nil
}

// NormalizeOutput lower-cases an output format name; empty means plain.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "plain", nil
	}
	if !slices.Contains(outputFormats, v) {
		return "", fmt.Errorf("invalid --output: %s (want one of %s)", value, strings.Join(outputFormats, "|"))
	}
	return v, nil
}

// SplitMulti flattens repeated and comma-separated values, dropping blanks.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			if part := strings.TrimSpace(piece); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
