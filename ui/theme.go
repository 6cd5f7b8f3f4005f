// Package ui provides the viewer's panels: controls, HUD and layer toggles.
// Panels only read simulation state and record user requests.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme is the palette and metrics shared by every panel.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Title       rl.Color
	Section     rl.Color
	Label       rl.Color
	Value       rl.Color
	Paused      rl.Color

	Padding    int32
	LineHeight int32
	LabelWidth int32
	FontSize   int32
	TitleSize  int32
}

// DefaultTheme is dark and translucent so the grid stays visible underneath.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 16, G: 20, B: 18, A: 230},
		PanelBorder: rl.Color{R: 70, G: 90, B: 75, A: 255},
		Title:       rl.RayWhite,
		Section:     rl.Color{R: 170, G: 220, B: 120, A: 255},
		Label:       rl.LightGray,
		Value:       rl.Color{R: 225, G: 225, B: 210, A: 255},
		Paused:      rl.Color{R: 255, G: 170, B: 60, A: 255},
		Padding:     10,
		LineHeight:  16,
		LabelWidth:  60,
		FontSize:    12,
		TitleSize:   16,
	}
}
