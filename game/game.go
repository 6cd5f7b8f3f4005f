// Package game owns the world grid and drives the simulation: seeding,
// the per-tick update over a shuffled visitation order, telemetry and the
// raylib viewer.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/spectaculife/camera"
	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/config"
	"github.com/pthm-cable/spectaculife/grid"
	"github.com/pthm-cable/spectaculife/inspector"
	"github.com/pthm-cable/spectaculife/renderer"
	"github.com/pthm-cable/spectaculife/systems"
	"github.com/pthm-cable/spectaculife/telemetry"
	"github.com/pthm-cable/spectaculife/ui"
)

// World is the simulation grid.
type World = grid.Grid[components.WorldCell]

// Options configures a new Game.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int // 0 = use config

	// Config overrides the global config. Required when several games run
	// concurrently with different parameters.
	Config *config.Config

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg   *config.Config
	seed  int64
	rng   *rand.Rand
	world *World
	order []int

	rules *systems.Rules
	env   *systems.Env

	// Lineages and telemetry
	clades        *systems.CladeRegistry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	lastStats     telemetry.WindowStats
	statsCallback func(telemetry.WindowStats)

	// State
	tick             int64
	paused           bool
	restartRequested bool
	stepsPerUpdate   int
	tickAccum        float32
	headless         bool
	logStats         bool

	// Viewer (nil when headless)
	camera       *camera.Camera
	gridRenderer *renderer.GridRenderer
	layers       *ui.LayerRegistry
	controls     *ui.ControlsPanel
	hud          *ui.HUD
	cellPanel    *inspector.Panel
	hoverX       int
	hoverY       int
	hovering     bool
	screenWidth  float32
	screenHeight float32
}

// NewGameWithOptions creates a seeded game. Graphical games must be created
// after the raylib window is open.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	steps := opts.StepsPerUpdate
	if steps <= 0 {
		steps = cfg.Simulation.StepsPerUpdate
	}
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		seed:           opts.Seed,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		world:          grid.New[components.WorldCell](cfg.World.Width, cfg.World.Height),
		order:          make([]int, cfg.World.Width*cfg.World.Height),
		rules:          systems.RulesFromConfig(cfg),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		statsCallback:  opts.StatsCallback,
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
	}

	g.perfCollector.SetCellsPerTick(len(g.order))

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if !g.headless {
		g.initViewer()
	}

	g.Initialize()
	return g
}

// Tick returns the number of completed ticks since the last (re)start.
func (g *Game) Tick() int64 {
	return g.tick
}

// Grid exposes the world for read-only consumers such as the renderer.
func (g *Game) Grid() *World {
	return g.world
}

// CellAt returns a copy of the cell at (x, y), wrapping toroidally.
func (g *Game) CellAt(x, y int) components.WorldCell {
	return g.world.At(x, y)
}

// Stats returns the most recently flushed stats window.
func (g *Game) Stats() telemetry.WindowStats {
	return g.lastStats
}

// Clades exposes the lineage registry.
func (g *Game) Clades() *systems.CladeRegistry {
	return g.clades
}

// Paused reports whether ticking is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused suspends or resumes ticking.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// TogglePause flips the pause flag and returns the new state.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// RequestRestart reseeds the world before the next tick.
func (g *Game) RequestRestart() {
	g.restartRequested = true
}

// Unload releases output files and GPU resources.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if g.gridRenderer != nil {
		g.gridRenderer.Unload()
	}
}
