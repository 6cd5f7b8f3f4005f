package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actions are the requests a user made through the controls panel since
// they were last taken. The panel only records them.
type Actions struct {
	TogglePause    bool
	Restart        bool
	StepsPerUpdate int // 0 = unchanged
}

// ControlsPanel renders the raygui controls: pause, restart, speed and
// layer toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
	pending  Actions
	drawnH   int32 // height at the last Draw
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point is over the panel, so clicks
// there are not treated as world input.
func (c *ControlsPanel) Contains(px, py float32) bool {
	if !c.visible {
		return false
	}
	return px >= float32(c.x) && px <= float32(c.x+c.width) &&
		py >= float32(c.y) && py <= float32(c.y+c.drawnH)
}

// TakeActions returns and clears the recorded requests.
func (c *ControlsPanel) TakeActions() Actions {
	a := c.pending
	c.pending = Actions{}
	return a
}

// Draw renders the panel. paused and steps reflect the current game state.
func (c *ControlsPanel) Draw(paused bool, steps int, layers *LayerRegistry) {
	if !c.visible {
		return
	}

	r := c.renderer
	padding := r.Theme.Padding
	all := layers.All()
	c.drawnH = padding*2 + r.Theme.TitleSize + 4 + 36 + 44 + r.Theme.LineHeight + int32(len(all))*24
	r.DrawPanel(c.x, c.y, c.width, c.drawnH)

	x := float32(c.x + padding)
	y := float32(c.y + padding)
	inner := float32(c.width - padding*2)

	y = float32(r.DrawTitle(int32(x), int32(y), "Controls"))

	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	half := (inner - 8) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 28}, pauseLabel) {
		c.pending.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: x + half + 8, Y: y, Width: half, Height: 28}, "Restart") {
		c.pending.Restart = true
	}
	y += 36

	rl.DrawText(fmt.Sprintf("Ticks per update: %d", steps), int32(x), int32(y), r.Theme.FontSize, r.Theme.Label)
	y += 16
	newSteps := gui.SliderBar(rl.Rectangle{X: x + 16, Y: y, Width: inner - 40, Height: 16}, "1", "20", float32(steps), 1, 20)
	if int(newSteps+0.5) != steps {
		c.pending.StepsPerUpdate = int(newSteps + 0.5)
	}
	y += 28

	y = float32(r.DrawSectionHeader(int32(x), int32(y), "Layers"))
	for _, desc := range all {
		label := fmt.Sprintf("%s [%s]", desc.Name, desc.KeyLabel)
		checked := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, label, layers.IsEnabled(desc.ID))
		if checked != layers.IsEnabled(desc.ID) {
			layers.SetEnabled(desc.ID, checked)
		}
		y += 24
	}
}
