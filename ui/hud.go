package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/grid"
	"github.com/pthm-cable/spectaculife/renderer"
	"github.com/pthm-cable/spectaculife/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Tick           int64
	StepsPerUpdate int
	FPS            int32
	Paused         bool
	Stats          telemetry.WindowStats
	ScreenHeight   int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the bottom-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	s := data.Stats

	width := int32(300)
	height := int32(180)
	x := int32(10)
	y := data.ScreenHeight - height - 35
	r.DrawPanel(x, y, width, height)

	x += r.Theme.Padding
	y += r.Theme.Padding
	inner := width - r.Theme.Padding*2

	title := r.DrawTitle(x, y, data.Title)
	if data.Paused {
		rl.DrawText("PAUSED", x+inner-rl.MeasureText("PAUSED", r.Theme.TitleSize), y, r.Theme.TitleSize, r.Theme.Paused)
	}
	y = title

	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d  (%dx, %d fps)", data.Tick, data.StepsPerUpdate, data.FPS), inner)
	y = r.DrawLabelValue(x, y, "Alive", fmt.Sprintf("%d  clades %d", s.Alive, s.ActiveClades), inner)
	y = r.DrawLabelValue(x, y, "Energy", fmt.Sprintf("p50 %.1f  total %.0f", s.EnergyP50, s.TotalLifeEnergy), inner)
	y = r.DrawLabelValue(x, y, "Soil", fmt.Sprintf("org %.0f  energy %.0f", s.TotalSoilOrganics, s.TotalSoilEnergy), inner)
	y = r.DrawLabelValue(x, y, "Air", fmt.Sprintf("pollution %.0f", s.TotalPollution), inner)
	y = r.DrawSectionHeader(x, y+4, "Roles")

	// Role legend with window-end counts
	counts := [components.NumRoles]int{s.Pipes, s.Leaves, s.Roots, s.Reactors, s.Filters, s.Stems}
	col := inner / 3
	for i := components.Role(0); i < components.NumRoles; i++ {
		cx := x + int32(i%3)*col
		cy := y + int32(i/3)*r.Theme.LineHeight
		c, _ := renderer.LifeColor(components.NewLife(i, 10, grid.Center, 1))
		rl.DrawRectangle(cx, cy+2, 10, 10, c)
		rl.DrawText(fmt.Sprintf("%s %d", i, counts[i]), cx+14, cy, r.Theme.FontSize, r.Theme.Label)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
