package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "minigrep"

var extensions = []string{".yaml", ".yml", ".toml", ".json"}

// Find locates the config file to load. It returns the path together with
// where it was found ("explicit", "cwd-up", "xdg" or "home"); an empty path
// means no config file exists.
//
// An explicit path must exist. Otherwise the lookup order is
// .minigrep.* from startDir upwards, then $XDG_CONFIG_HOME/minigrep/config.*
// (defaulting to ~/.config), then ~/.minigrep.*.
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		path, err := checkExplicit(explicit)
		if err != nil {
			return "", "", err
		}
		return path, "explicit", nil
	}

	dir, err := filepath.Abs(orDefault(startDir, "."))
	if err != nil {
		return "", "", err
	}
	for {
		if path := firstExisting(dir, "."+appName); path != "" {
			return path, "cwd-up", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := orDefault(home, userHome())
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" && homeDir != "" {
		xdgRoot = filepath.Join(homeDir, ".config")
	}
	if xdgRoot != "" {
		if path := firstExisting(filepath.Join(xdgRoot, appName), "config"); path != "" {
			return path, "xdg", nil
		}
	}
	if homeDir != "" {
		if path := firstExisting(homeDir, "."+appName); path != "" {
			return path, "home", nil
		}
	}
	return "", "", nil
}

func checkExplicit(path string) (string, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		path = abs
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("config %q points to a directory", path)
	}
	return path, nil
}

// firstExisting returns dir/stem+ext for the first extension that names a
// regular file.
func firstExisting(dir, stem string) string {
	for _, ext := range extensions {
		candidate := filepath.Join(dir, stem+ext)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

func userHome() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
