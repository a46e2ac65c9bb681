package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/minigrep/internal/engine/opts"
)

var searchKeyMap = map[string]string{
	"ignore_case":      "ignore_case",
	"case_insensitive": "ignore_case",
	"jobs":             "jobs",
	"max_file_bytes":   "max_file_bytes",
	"max_bytes":        "max_file_bytes",
	"truncate":         "truncate",
}

var uiKeyMap = map[string]string{
	"output":        "output",
	"format":        "output",
	"color":         "color",
	"colour":        "color",
	"filename":      "filename",
	"with_filename": "with_filename",
	"line_number":   "line_number",
	"line_numbers":  "line_number",
	"fields":        "fields",
	"match_color":   "match_color",
}

type decodeFunc func([]byte, any) error

var decoders = map[string]decodeFunc{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
	".json": json.Unmarshal,
}

// Load decodes a YAML, TOML or JSON config file chosen by extension. Keys may
// appear at the top level or inside "search" and "ui" sections; unknown keys
// are rejected. An empty path or an empty document yields a zero Config.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Config{}, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return Config{}, fmt.Errorf("unsupported config extension: %s", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var raw map[string]any
	if err := decode(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(raw) == 0 {
		return Config{}, nil
	}
	cfg, err := decodeConfigMap(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	searchSection := make(map[string]any)
	uiSection := make(map[string]any)

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "search":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("search: %w", err)
			}
			if err := fillSection(searchSection, sub, searchKeyMap, "search"); err != nil {
				return cfg, err
			}
		case "ui":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("ui: %w", err)
			}
			if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
				return cfg, err
			}
		default:
			if canonical, ok := searchKeyMap[norm]; ok {
				searchSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignSearch(searchSection, &cfg.Search); err != nil {
		return cfg, fmt.Errorf("search: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignSearch(section map[string]any, dst *SearchConfig) error {
	for key, value := range section {
		switch key {
		case "ignore_case":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.IgnoreCase = &b
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		case "max_file_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxFileBytes = &n
		case "truncate":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.TruncAll = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	// "filename" wins over the boolean shorthand when both are present.
	if raw, ok := section["with_filename"]; ok {
		b, err := expectBool(raw, "with_filename")
		if err != nil {
			return err
		}
		mode := "never"
		if b {
			mode = "always"
		}
		dst.Filename = &mode
	}

	for key, value := range section {
		switch key {
		case "with_filename":
			continue
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "filename":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Filename = &trimmed
		case "line_number":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.LineNumber = &b
		case "fields":
			str, err := expectFields(value, key)
			if err != nil {
				return err
			}
			dst.Fields = &str
		case "match_color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.MatchColor = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("%s cannot be null", field)
	default:
		return "", fmt.Errorf("expected string for %s, got %T", field, value)
	}
}

// expectBool accepts native booleans and the literals ParseBool understands,
// since env-style "yes"/"off" values are common in hand-written files.
func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

// expectInt normalises the integer shapes the three decoders produce: int
// from YAML, int64 from TOML and float64 from JSON.
func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

// expectFields accepts either a comma separated string or a list of names
// and returns the comma joined form.
func expectFields(value any, field string) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.Join(engineopts.SplitMulti([]string{v}), ","), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return "", err
			}
			parts = append(parts, str)
		}
		return strings.Join(engineopts.SplitMulti(parts), ","), nil
	default:
		return "", fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
