package render

import "image/color"

// Theme represents a color scheme for sketch rendering
type Theme int

const (
	// ThemeLight is the classic palette on a white canvas
	ThemeLight Theme = iota
	// ThemeDark is a dark background theme
	ThemeDark
)

// Colors defines the color scheme for rendering sketch elements
type Colors struct {
	// Background and grid
	Background color.NRGBA
	GridDot    color.NRGBA

	// Input/output terminals
	Terminal color.NRGBA

	// Logic gates
	GateBody    color.NRGBA
	GateOutline color.NRGBA
	GateLabel   color.NRGBA
	Stub        color.NRGBA

	// Drag feedback
	Selection color.NRGBA
}

// GetColors returns the color scheme for the given theme
func GetColors(theme Theme) *Colors {
	switch theme {
	case ThemeDark:
		return getDarkTheme()
	default:
		return getLightTheme()
	}
}

func getLightTheme() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, // White
		GridDot:    color.NRGBA{R: 50, G: 50, B: 50, A: 255},    // #323232

		Terminal: color.NRGBA{R: 50, G: 50, B: 50, A: 255}, // #323232

		GateBody:    color.NRGBA{R: 201, G: 78, B: 78, A: 255}, // #C94E4E
		GateOutline: color.NRGBA{R: 120, G: 30, B: 30, A: 255},
		GateLabel:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Stub:        color.NRGBA{R: 50, G: 50, B: 50, A: 255},

		Selection: color.NRGBA{R: 0, G: 120, B: 215, A: 255},
	}
}

func getDarkTheme() *Colors {
	return &Colors{
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		GridDot:    color.NRGBA{R: 90, G: 90, B: 90, A: 255},

		Terminal: color.NRGBA{R: 220, G: 220, B: 220, A: 255},

		GateBody:    color.NRGBA{R: 255, G: 100, B: 100, A: 255},
		GateOutline: color.NRGBA{R: 255, G: 170, B: 170, A: 255},
		GateLabel:   color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		Stub:        color.NRGBA{R: 220, G: 220, B: 220, A: 255},

		Selection: color.NRGBA{R: 100, G: 200, B: 255, A: 255},
	}
}

// String returns the theme name as a string
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "Unknown"
	}
}

// Themes lists the selectable themes.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}
