package termcolor

import "github.com/phyten/minigrep/internal/colorutil"

var (
	darkMatchRGB  = colorutil.RGB{R: 248, G: 113, B: 113}
	lightMatchRGB = colorutil.RGB{R: 220, G: 38, B: 38}
	lightBG       = colorutil.RGB{R: 249, G: 250, B: 251}
	darkBG        = colorutil.RGB{R: 17, G: 24, B: 39}
)

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// FileStyle colours the file name prefix of a match, like grep's fn=35.
func FileStyle() Style {
	color := 5
	return Style{FGBasic: &color}
}

// LineNumberStyle colours the line number prefix, like grep's ln=32.
func LineNumberStyle() Style {
	color := 2
	return Style{FGBasic: &color}
}

func SeparatorStyle() Style {
	color := 6
	return Style{FGBasic: &color}
}

// MatchStyle highlights the matched substring with the default red. Truecolor
// output keeps it readable against the detected background.
func MatchStyle(scheme Scheme, profile Profile) Style {
	fg := darkMatchRGB
	if scheme == SchemeLight {
		fg = lightMatchRGB
	}
	return MatchStyleWith(fg, scheme, profile)
}

// MatchStyleWith highlights matches in a caller-chosen colour. The basic
// 8-colour profile cannot express it and falls back to red.
func MatchStyleWith(fg colorutil.RGB, scheme Scheme, profile Profile) Style {
	bg := darkBG
	if scheme == SchemeLight {
		bg = lightBG
	}
	switch profile {
	case ProfileTrueColor:
		c := colorutil.EnsureContrast(fg, bg, 4.5)
		rgb := [3]uint8{c.R, c.G, c.B}
		return Style{Bold: true, FGTrue: &rgb}
	case ProfileANSI256:
		idx := rgbToANSI256(fg.R, fg.G, fg.B)
		return Style{Bold: true, FG256: &idx}
	default:
		color := 1
		return Style{Bold: true, FGBasic: &color}
	}
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
