package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/camera"
	"github.com/pthm-cable/spectaculife/inspector"
	"github.com/pthm-cable/spectaculife/renderer"
	"github.com/pthm-cable/spectaculife/ui"
)

const controlsLegend = "[Space] pause  [R] restart  [,/.] speed  [1-4] layers  [Tab] panel  [Arrows/drag] pan  [Wheel] zoom  [Home] reset view"

var (
	colorBackground = rl.Color{R: 8, G: 8, B: 10, A: 255}
	colorHover      = rl.Color{R: 255, G: 255, B: 255, A: 200}
	colorRouting    = rl.Color{R: 255, G: 230, B: 120, A: 220}
)

// initViewer creates the camera, renderer and panels.
func (g *Game) initViewer() {
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())

	g.camera = camera.New(g.screenWidth, g.screenHeight, g.world.Width(), g.world.Height(), g.cfg.Derived.CellSize32)
	g.gridRenderer = renderer.NewGridRenderer(g.world.Width(), g.world.Height())
	g.layers = ui.NewLayerRegistry()
	g.controls = ui.NewControlsPanel(10, 10, 220)
	g.hud = ui.NewHUD()
	g.cellPanel = inspector.NewPanel(int32(g.screenWidth), int32(g.screenHeight))
}

// Draw renders the grid and the UI.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	g.gridRenderer.Draw(g.world, g.camera, g.layers.RenderLayers())
	if g.layers.IsEnabled(ui.LayerRouting) {
		renderer.DrawRouting(g.world, g.camera, colorRouting)
	}

	if g.hovering {
		renderer.DrawCellOutline(g.camera, g.hoverX, g.hoverY, colorHover)
		g.cellPanel.Draw(g.hoverX, g.hoverY, g.CellAt(g.hoverX, g.hoverY))
	}

	g.controls.Draw(g.Paused(), g.stepsPerUpdate, g.layers)
	g.hud.Draw(ui.HUDData{
		Title:          "Spectaculife",
		Tick:           g.tick,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.Paused(),
		Stats:          g.lastStats,
		ScreenHeight:   int32(g.screenHeight),
	})
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	rl.EndDrawing()
}
