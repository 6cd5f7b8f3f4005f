package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawTitle draws a panel title and returns the next Y position.
func (r *Renderer) DrawTitle(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.TitleSize, r.Theme.Title)
	return y + r.Theme.TitleSize + 4
}

// DrawSectionHeader draws a section header and returns the next Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.FontSize, r.Theme.Section)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line, eliding values
// wider than the panel.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string, totalWidth int32) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.Label)
	maxW := totalWidth - r.Theme.LabelWidth
	for len(value) > 1 && rl.MeasureText(value, r.Theme.FontSize) > maxW {
		value = value[:len(value)-2] + "~"
	}
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.Value)
	return y + r.Theme.LineHeight
}
