package termcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want Scheme
	}{
		{name: "nil env", env: nil, want: SchemeDark},
		{name: "empty env", env: map[string]string{}, want: SchemeDark},
		{name: "bg black", env: map[string]string{"COLORFGBG": "7;0"}, want: SchemeDark},
		{name: "bg white", env: map[string]string{"COLORFGBG": "15;7"}, want: SchemeLight},
		{name: "three fields", env: map[string]string{"COLORFGBG": "0;default;15"}, want: SchemeLight},
		{name: "bright black is dark", env: map[string]string{"COLORFGBG": "15;8"}, want: SchemeDark},
		{name: "trailing default", env: map[string]string{"COLORFGBG": "0;15;default"}, want: SchemeLight},
		{name: "garbage falls through to TERM", env: map[string]string{"COLORFGBG": "x;y", "TERM": "xterm-light"}, want: SchemeLight},
		{name: "TERM light", env: map[string]string{"TERM": "xterm-light"}, want: SchemeLight},
		{name: "TERM plain", env: map[string]string{"TERM": "xterm"}, want: SchemeDark},
		{name: "override light", env: map[string]string{"MINIGREP_SCHEME": "Light", "COLORFGBG": "7;0"}, want: SchemeLight},
		{name: "override dark", env: map[string]string{"MINIGREP_SCHEME": "dark", "TERM": "xterm-light"}, want: SchemeDark},
		{name: "unknown override ignored", env: map[string]string{"MINIGREP_SCHEME": "sepia", "COLORFGBG": "0;15"}, want: SchemeLight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectScheme(tc.env))
		})
	}
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "dark", SchemeDark.String())
	assert.Equal(t, "light", SchemeLight.String())
	assert.Equal(t, "unknown", SchemeUnknown.String())
}
