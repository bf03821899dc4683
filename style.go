package memedit

import (
	"slices"
	"strings"
)

// Style defines the visual appearance of the editor.
type Style struct {
	Background   uint32 // Grid and status bar fill
	Primary      uint32 // Input boxes and the options panel
	Text         uint32 // Byte values, labels, separators
	InactiveText uint32 // Address column and ASCII column
	Selection    uint32 // Selected byte highlight
	SelectedText uint32 // Selected byte value

	BorderColor uint32
	BorderSize  float32

	// Shadow is drawn under the options panel; a zero alpha disables it.
	ShadowColor  uint32
	ShadowOffset Vec2

	// Sizing of the built-in font, used when no FontProvider is set.
	FontScale  float32
	CharWidth  float32
	CharHeight float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Background:   RGBA(20, 20, 20, 255),
		Primary:      RGBA(40, 40, 45, 255),
		Text:         ColorWhite,
		InactiveText: ColorGray,
		Selection:    RGBA(50, 100, 150, 255),
		SelectedText: ColorWhite,

		BorderColor: RGBA(80, 80, 80, 255),
		BorderSize:  1,

		ShadowColor:  RGBA(0, 0, 0, 160),
		ShadowOffset: Vec2{X: 3, Y: 3},

		FontScale:  1,
		CharWidth:  AtlasCellW,
		CharHeight: AtlasCellH,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	return Style{
		Background:   RGBA(0, 0, 0, 230),
		Primary:      RGBA(0, 60, 90, 255),
		Text:         ColorWhite,
		InactiveText: RGBA(255, 200, 0, 255), // GTA yellow
		Selection:    RGBA(0, 150, 200, 255),
		SelectedText: ColorBlack,

		BorderColor: RGBA(0, 100, 150, 255),
		BorderSize:  1,

		ShadowColor:  RGBA(0, 0, 0, 200),
		ShadowOffset: Vec2{X: 4, Y: 4},

		FontScale:  1,
		CharWidth:  AtlasCellW,
		CharHeight: AtlasCellH,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.Background = RGBA(25, 25, 25, 255)
	s.Primary = RGBA(35, 35, 40, 255)
	s.InactiveText = RGBA(130, 130, 140, 255)
	s.Selection = RGBA(65, 105, 225, 255) // Royal blue
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		Background:   RGBA(245, 245, 245, 255),
		Primary:      RGBA(225, 225, 230, 255),
		Text:         RGBA(20, 20, 20, 255),
		InactiveText: RGBA(120, 120, 120, 255),
		Selection:    RGBA(0, 120, 215, 255),
		SelectedText: ColorWhite,

		BorderColor: RGBA(170, 170, 170, 255),
		BorderSize:  1,

		ShadowColor:  RGBA(0, 0, 0, 60),
		ShadowOffset: Vec2{X: 2, Y: 2},

		FontScale:  1,
		CharWidth:  AtlasCellW,
		CharHeight: AtlasCellH,
	}
}

var styles = map[string]func() Style{
	"default": DefaultStyle,
	"gta":     GTAStyle,
	"dark":    DarkStyle,
	"light":   LightStyle,
}

// StyleByName returns the named preset ("default", "gta", "dark",
// "light"). The lookup is case-insensitive.
func StyleByName(name string) (Style, bool) {
	fn, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, false
	}
	return fn(), true
}

// StyleNames lists the preset names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
