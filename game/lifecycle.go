package game

import (
	"log/slog"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
	"github.com/pthm-cable/spectaculife/systems"
	"github.com/pthm-cable/spectaculife/telemetry"
)

// Initialize resets the world and seeds it: every cell is cleared, the soil
// receives a noise field and a Stem with a random genome is placed on every
// seed_spacing-th cell of both axes. Each seeded Stem founds its own clade.
func (g *Game) Initialize() {
	g.tick = 0
	g.tickAccum = 0
	g.restartRequested = false

	g.world.Fill(components.WorldCell{})
	for i := range g.order {
		g.order[i] = i
	}

	g.clades = systems.NewCladeRegistry()
	g.collector.Reset(0)

	hooks := &lifecycleHooks{collector: g.collector, clades: g.clades}
	g.env = &systems.Env{
		Rules:  g.rules,
		Rand:   g.rng,
		Events: hooks,
		Clades: hooks,
	}

	g.seedSoil()
	seeded := g.seedStems()
	g.lastStats = g.collector.Flush(0, g.census(), g.clades.ActiveCount())

	slog.Info("world seeded",
		"seed", g.seed,
		"width", g.world.Width(),
		"height", g.world.Height(),
		"stems", seeded,
	)
}

// seedSoil lays an opensimplex field over the soil layer.
func (g *Game) seedSoil() {
	sn := g.cfg.World.SoilNoise
	if sn.Organics <= 0 && sn.Energy <= 0 {
		return
	}

	seed := sn.Seed
	if seed == 0 {
		seed = g.seed
	}
	noise := opensimplex.NewNormalized(seed)

	for y := 0; y < g.world.Height(); y++ {
		for x := 0; x < g.world.Width(); x++ {
			v := noise.Eval2(float64(x)*sn.Scale, float64(y)*sn.Scale)
			soil := &g.world.Get(x, y).Soil
			soil.Organics = components.FloatToOrganics(float32(v * sn.Organics))
			soil.Energy = float32(v * sn.Energy)
		}
	}
}

// seedStems places the founding population and returns its size.
func (g *Game) seedStems() int {
	wc := g.cfg.World
	n := 0
	for y := 0; y < g.world.Height(); y += wc.SeedSpacing {
		for x := 0; x < g.world.Width(); x += wc.SeedSpacing {
			life := components.NewStem(genome.Random(g.rng), float32(wc.SeedEnergy), grid.Center, uint16(wc.SeedLifespan))
			life.Clade = g.clades.Found(0, g.tick)
			g.world.Get(x, y).Life = life
			g.clades.CellBorn(life.Role, life.Clade)
			n++
		}
	}
	return n
}

// restart handles a pending restart request.
func (g *Game) restart() {
	slog.Info("restarting simulation", "tick", g.tick)
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseSeed)
	g.Initialize()
	g.perfCollector.EndTick()
}
