package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/grid"
	"github.com/pthm-cable/spectaculife/systems"
	"github.com/pthm-cable/spectaculife/telemetry"
)

// Update handles input and advances the simulation on the tick interval.
// Graphical mode only.
func (g *Game) Update() {
	g.handleInput()

	if g.restartRequested {
		g.restart()
	}
	if g.paused {
		return
	}

	interval := float32(g.cfg.Simulation.TickInterval)
	if interval > 0 {
		g.tickAccum += rl.GetFrameTime()
		if g.tickAccum < interval {
			return
		}
		// Drop backlog rather than spiral after a stall
		g.tickAccum -= interval
		if g.tickAccum > interval {
			g.tickAccum = 0
		}
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// UpdateHeadless runs StepsPerUpdate ticks without touching raylib.
func (g *Game) UpdateHeadless() {
	if g.restartRequested {
		g.restart()
	}
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// Step runs a single tick: every cell is visited once, in shuffled order
// when configured, and each visit runs the area pipeline centered on it.
func (g *Game) Step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseShuffle)
	if g.cfg.Simulation.ShuffleOrder {
		g.rng.Shuffle(len(g.order), func(i, j int) {
			g.order[i], g.order[j] = g.order[j], g.order[i]
		})
	}

	g.perfCollector.StartPhase(telemetry.PhaseUpdate)
	g.env.Tick = g.tick
	for _, idx := range g.order {
		x, y := g.world.Coord(idx)
		systems.UpdateArea(grid.NewArea(g.world, x, y), g.env)
	}
	g.tick++

	g.flushTelemetry()

	g.perfCollector.EndTick()
}
