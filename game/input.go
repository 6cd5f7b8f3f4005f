package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxStepsPerUpdate bounds the speed control.
const maxStepsPerUpdate = 20

// handleInput processes keyboard, mouse and panel input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.RequestRestart()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	g.layers.HandleKeyQueue(rl.GetKeyPressed)

	// Requests recorded by the controls panel during the last Draw
	actions := g.controls.TakeActions()
	if actions.TogglePause {
		g.TogglePause()
	}
	if actions.Restart {
		g.RequestRestart()
	}
	if actions.StepsPerUpdate > 0 {
		g.stepsPerUpdate = actions.StepsPerUpdate
	}

	g.handleCameraInput()
	g.updateHover()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.cellPanel.Resize(int32(w), int32(h))
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	panSpeed := float32(8.0) // screen pixels per frame

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Drag with either mouse button, unless the press started on the panel
	mouse := rl.GetMousePosition()
	if (rl.IsMouseButtonDown(rl.MouseButtonLeft) || rl.IsMouseButtonDown(rl.MouseButtonRight)) &&
		!g.controls.Contains(mouse.X, mouse.Y) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1.0 + wheel*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// updateHover tracks the grid cell under the cursor.
func (g *Game) updateHover() {
	mouse := rl.GetMousePosition()
	g.hovering = rl.IsCursorOnScreen() && !g.controls.Contains(mouse.X, mouse.Y)
	if g.hovering {
		g.hoverX, g.hoverY = g.camera.ScreenToCell(mouse.X, mouse.Y)
	}
}
