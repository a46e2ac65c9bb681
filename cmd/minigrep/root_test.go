package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/minigrep/internal/engine"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

type harness struct {
	dir    string
	vars   map[string]string
	stdin  *strings.Reader
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	home := t.TempDir()
	return &harness{
		dir: dir,
		vars: map[string]string{
			"HOME":            home,
			"XDG_CONFIG_HOME": filepath.Join(home, ".config"),
		},
		stdin:  strings.NewReader(""),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

func (h *harness) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (h *harness) run(args ...string) int {
	environ := make([]string, 0, len(h.vars))
	for k, v := range h.vars {
		environ = append(environ, k+"="+v)
	}
	e := env{
		stdin:   h.stdin,
		stdout:  h.stdout,
		stderr:  h.stderr,
		getenv:  func(key string) string { return h.vars[key] },
		environ: environ,
		getwd:   func() (string, error) { return h.dir, nil },
	}
	return run(context.Background(), args, e)
}

func TestSearchSingleFile(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	code := h.run("duct", path)

	assert.Equal(t, exitMatched, code)
	assert.Equal(t, "safe, fast, productive.\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestSearchCaseModes(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]string
		args []string
		want string
	}{
		{name: "既定は大文字小文字を区別", args: []string{"rUsT"}, want: ""},
		{name: "フラグで無視", args: []string{"-i", "rUsT"}, want: "Rust:\nTrust me.\n"},
		{name: "IGNORE_CASE環境変数", vars: map[string]string{"IGNORE_CASE": "1"}, args: []string{"rUsT"}, want: "Rust:\nTrust me.\n"},
		{name: "フラグで環境変数を打ち消す", vars: map[string]string{"IGNORE_CASE": "1"}, args: []string{"--ignore-case=false", "rUsT"}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			for k, v := range tc.vars {
				h.vars[k] = v
			}
			path := h.write(t, "poem.txt", poem)

			code := h.run(append(tc.args, path)...)

			assert.Equal(t, tc.want, h.stdout.String())
			if tc.want == "" {
				assert.Equal(t, exitNoMatch, code)
			} else {
				assert.Equal(t, exitMatched, code)
			}
		})
	}
}

func TestSearchNoMatch(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	assert.Equal(t, exitNoMatch, h.run("monomorphization", path))
	assert.Empty(t, h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestSearchMultipleFilesPrefixesNames(t *testing.T) {
	h := newHarness(t)
	a := h.write(t, "a.txt", poem)
	b := h.write(t, "b.txt", "rusty nail\nTrusty steed\n")

	code := h.run("-n", "rust", a, b)

	require.Equal(t, exitMatched, code)
	want := a + ":4:Trust me.\n" + b + ":1:rusty nail\n" + b + ":2:Trusty steed\n"
	assert.Equal(t, want, h.stdout.String())
}

func TestSearchFilenameFlags(t *testing.T) {
	h := newHarness(t)
	a := h.write(t, "a.txt", poem)
	b := h.write(t, "b.txt", "Pick up\n")

	require.Equal(t, exitMatched, h.run("--no-filename", "Pick", a, b))
	assert.Equal(t, "Pick three.\nPick up\n", h.stdout.String())

	h.stdout.Reset()
	require.Equal(t, exitMatched, h.run("-H", "Pick", a))
	assert.Equal(t, a+":Pick three.\n", h.stdout.String())
}

func TestSearchStdin(t *testing.T) {
	h := newHarness(t)
	h.stdin = strings.NewReader("alpha\r\nbeta\r\nalphabet\r\n")

	code := h.run("-n", "alpha")

	require.Equal(t, exitMatched, code)
	assert.Equal(t, "1:alpha\n3:alphabet\n", h.stdout.String())
}

func TestSearchDashReadsStdin(t *testing.T) {
	h := newHarness(t)
	h.stdin = strings.NewReader("from stdin\n")
	path := h.write(t, "f.txt", "from file\n")

	require.Equal(t, exitMatched, h.run("from", path, "-"))
	assert.Equal(t, path+":from file\n"+engine.StdinName+":from stdin\n", h.stdout.String())
}

func TestSearchEmptyQueryMatchesEveryLine(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "abc.txt", "a\nb\nc")

	require.Equal(t, exitMatched, h.run("", path))
	assert.Equal(t, "a\nb\nc\n", h.stdout.String())
}

func TestSearchQueryNamedLikeSubcommand(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "notes.txt", "bump version\nother\n")

	require.Equal(t, exitMatched, h.run("--", "version", path))
	assert.Equal(t, "bump version\n", h.stdout.String())
}

func TestSearchMissingFileStillPrintsMatches(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)
	missing := filepath.Join(h.dir, "missing.txt")

	code := h.run("Pick", missing, path)

	assert.Equal(t, exitTrouble, code)
	assert.Equal(t, path+":Pick three.\n", h.stdout.String())
	assert.Contains(t, h.stderr.String(), "minigrep: "+missing+":")
}

func TestSearchJSONOutput(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("-o", "json", "-i", "rust", path))

	var res engine.Result
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &res))
	require.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, "Rust:", res.Items[0].Text)
	assert.Equal(t, 1, res.Items[0].Line)
	require.Len(t, res.Items[1].Ranges, 1)
	assert.Equal(t, 1, res.Items[1].Ranges[0].Start)
	assert.Equal(t, 5, res.Items[1].Ranges[0].End)
}

func TestSearchJSONOutputNoMatch(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitNoMatch, h.run("-o", "json", "zzz", path))
	assert.Contains(t, h.stdout.String(), `"items": []`)
}

func TestSearchTabularOutputs(t *testing.T) {
	cases := map[string]string{
		"tsv":      "LINE\tTEXT\n2\tsafe, fast, productive.\n",
		"csv":      "LINE,TEXT\r\n2,\"safe, fast, productive.\"\r\n",
		"markdown": "| LINE | TEXT |\n| --- | --- |\n| 2 | safe, fast, productive. |\n",
	}
	for format, want := range cases {
		t.Run(format, func(t *testing.T) {
			h := newHarness(t)
			path := h.write(t, "poem.txt", poem)

			require.Equal(t, exitMatched, h.run("-n", "-o", format, "fast", path))
			assert.Equal(t, want, h.stdout.String())
		})
	}
}

func TestSearchColorAlways(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("--color", "always", "fast", path))
	out := h.stdout.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "fast")
	assert.True(t, strings.HasPrefix(out, "safe, "), "text before the match stays unstyled")
}

func TestSearchColorAutoIsOffForBuffers(t *testing.T) {
	h := newHarness(t)
	h.vars["FORCE_COLOR"] = "1"
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("fast", path))
	assert.NotContains(t, h.stdout.String(), "\x1b[")
}

func TestSearchTruncate(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("--truncate", "8", "fast", path))
	assert.Equal(t, "safe, f…\n", h.stdout.String())
}

func TestConfigFileIsApplied(t *testing.T) {
	h := newHarness(t)
	h.write(t, ".minigrep.yaml", "ignore_case: true\nui:\n  line_number: true\n")
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("RUST", path))
	assert.Equal(t, "1:Rust:\n4:Trust me.\n", h.stdout.String())
}

func TestConfigPrecedence(t *testing.T) {
	h := newHarness(t)
	cfg := h.write(t, "custom.toml", "output = \"tsv\"\nline_number = true\n")
	h.vars["MINIGREP_CONFIG"] = cfg
	h.vars["MINIGREP_OUTPUT"] = "plain"
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("--line-number=false", "Pick", path))
	assert.Equal(t, "Pick three.\n", h.stdout.String(), "env beats file and flags beat env")
}

func TestConfigFlagOverridesEnvPath(t *testing.T) {
	h := newHarness(t)
	h.vars["MINIGREP_CONFIG"] = filepath.Join(h.dir, "does-not-exist.yaml")
	cfg := h.write(t, "real.json", `{"ui": {"line_number": true}}`)
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("--config", cfg, "Pick", path))
	assert.Equal(t, "3:Pick three.\n", h.stdout.String())
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name    string
		vars    map[string]string
		args    []string
		wantErr string
	}{
		{name: "引数なし", args: []string{}, wantErr: "requires at least 1 arg"},
		{name: "不正な出力形式", args: []string{"-o", "xml", "q"}, wantErr: "invalid --output"},
		{name: "不正なjobs", args: []string{"-j", "1000", "q"}, wantErr: "jobs must be between 1 and 64"},
		{name: "不正な色", args: []string{"--color", "rainbow", "q"}, wantErr: "unknown color mode"},
		{name: "未知のフラグ", args: []string{"--regex", "q"}, wantErr: "unknown flag"},
		{name: "不正な環境変数", vars: map[string]string{"MINIGREP_JOBS": "lots"}, args: []string{"q"}, wantErr: "environment:"},
		{name: "設定ファイルが無い", vars: map[string]string{"MINIGREP_CONFIG": "/nonexistent/minigrep.yaml"}, args: []string{"q"}, wantErr: "config:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			for k, v := range tc.vars {
				h.vars[k] = v
			}

			code := h.run(tc.args...)

			assert.Equal(t, exitTrouble, code)
			assert.Contains(t, h.stderr.String(), tc.wantErr)
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	h := newHarness(t)
	path := h.write(t, "poem.txt", poem)

	require.Equal(t, exitMatched, h.run("-v", "Pick", path))
	assert.Equal(t, "Pick three.\n", h.stdout.String())
	assert.Contains(t, h.stderr.String(), "scan_complete")
}

func TestHelp(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, exitMatched, h.run("--help"))
	assert.Contains(t, h.stdout.String(), "minigrep [flags] QUERY [FILE...]")
	assert.Contains(t, h.stdout.String(), "--ignore-case")
}
