package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		name     string
		fg, bg   RGB
		minRatio float64
	}{
		{"blackOnWhite", RGB{0, 0, 0}, RGB{255, 255, 255}, 4.5},
		{"whiteOnBlack", RGB{255, 255, 255}, RGB{0, 0, 0}, 4.5},
		{"darkRedOnWhite", RGB{185, 28, 28}, RGB{255, 255, 255}, 4.5},
		{"amberOnBlack", RGB{245, 158, 11}, RGB{17, 24, 39}, 4.5},
	}
	for _, tc := range cases {
		assert.GreaterOrEqual(t, ContrastRatio(tc.fg, tc.bg), tc.minRatio, tc.name)
	}
	assert.InDelta(t, 21.0, ContrastRatio(black, white), 0.01)
	assert.InDelta(t, 1.0, ContrastRatio(white, white), 0.0001)
}

func TestAutoTextColor(t *testing.T) {
	assert.Equal(t, black, AutoTextColor(RGB{255, 247, 237}))
	assert.Equal(t, white, AutoTextColor(RGB{15, 23, 42}))
	assert.Equal(t, white, AutoTextColor(RGB{120, 113, 108}))
}

func TestEnsureContrast(t *testing.T) {
	bg := RGB{255, 255, 255}
	ensured := EnsureContrast(RGB{255, 0, 0}, bg, 4.5)
	assert.GreaterOrEqual(t, ContrastRatio(ensured, bg), 4.5)

	fg := RGB{185, 28, 28}
	assert.Equal(t, fg, EnsureContrast(fg, bg, 0), "a readable colour is kept as-is")
}

func TestParseHex(t *testing.T) {
	for raw, want := range map[string]RGB{
		"#dc2626": {220, 38, 38},
		"DC2626":  {220, 38, 38},
		"#fff":    {255, 255, 255},
		" #000 ":  {0, 0, 0},
	} {
		got, err := ParseHex(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "#12", "#gggggg", "#1234567"} {
		_, err := ParseHex(raw)
		assert.Error(t, err, raw)
	}
	assert.Equal(t, "#dc2626", RGB{220, 38, 38}.Hex())
}
