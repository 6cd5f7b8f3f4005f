package game

import (
	"bufio"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/config"
	"github.com/pthm-cable/spectaculife/telemetry"
)

func testConfig(w, h int) *config.Config {
	cfg := config.Default()
	cfg.World.Width = w
	cfg.World.Height = h
	cfg.World.SeedSpacing = 2
	cfg.Telemetry.StatsWindow = 5
	cfg.Simulation.StepsPerUpdate = 1
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, seed int64) *Game {
	t.Helper()
	g := NewGameWithOptions(Options{Seed: seed, Headless: true, Config: cfg})
	t.Cleanup(g.Unload)
	return g
}

func TestInitializeSeedsStems(t *testing.T) {
	cfg := testConfig(8, 6)
	g := newTestGame(t, cfg, 1)

	stems := 0
	clades := make(map[uint32]bool)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			life := g.CellAt(x, y).Life
			onLattice := x%2 == 0 && y%2 == 0
			if life.Alive != onLattice {
				t.Fatalf("cell (%d,%d) alive = %v, want %v", x, y, life.Alive, onLattice)
			}
			if !onLattice {
				continue
			}
			stems++
			if life.Role != components.RoleStem {
				t.Errorf("cell (%d,%d) role = %v, want stem", x, y, life.Role)
			}
			if life.Genome == nil {
				t.Errorf("cell (%d,%d) has no genome", x, y)
			}
			if life.Energy != float32(cfg.World.SeedEnergy) {
				t.Errorf("cell (%d,%d) energy = %v, want %d", x, y, life.Energy, cfg.World.SeedEnergy)
			}
			if int(life.StepsToDeath) != cfg.World.SeedLifespan {
				t.Errorf("cell (%d,%d) lifespan = %d, want %d", x, y, life.StepsToDeath, cfg.World.SeedLifespan)
			}
			if clades[life.Clade] {
				t.Errorf("clade %d assigned twice", life.Clade)
			}
			clades[life.Clade] = true
		}
	}

	if stems != 12 {
		t.Fatalf("seeded %d stems, want 12", stems)
	}
	if got := g.Clades().ActiveCount(); got != stems {
		t.Errorf("active clades = %d, want %d", got, stems)
	}

	stats := g.Stats()
	if stats.Alive != stems || stats.Stems != stems {
		t.Errorf("initial stats alive=%d stems=%d, want %d", stats.Alive, stats.Stems, stems)
	}
	if stats.Births != 0 {
		t.Errorf("seeded stems counted as %d births", stats.Births)
	}
}

func TestSoilNoise(t *testing.T) {
	tests := []struct {
		name     string
		organics float64
		wantSoil bool
	}{
		{"disabled", 0, false},
		{"enabled", 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(16, 16)
			cfg.World.SoilNoise.Organics = tt.organics
			cfg.World.SoilNoise.Energy = 0
			g := newTestGame(t, cfg, 7)

			total := 0
			for _, c := range g.Grid().Cells() {
				if float64(c.Soil.Organics) > tt.organics {
					t.Fatalf("organics %d above amplitude %v", c.Soil.Organics, tt.organics)
				}
				total += int(c.Soil.Organics)
			}
			if (total > 0) != tt.wantSoil {
				t.Errorf("total organics = %d, want soil seeded = %v", total, tt.wantSoil)
			}
		})
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := newTestGame(t, testConfig(8, 8), 1)

	g.SetPaused(true)
	if !g.Paused() {
		t.Fatal("Paused = false after SetPaused(true)")
	}
	for i := 0; i < 3; i++ {
		g.UpdateHeadless()
	}
	if g.Tick() != 0 {
		t.Fatalf("tick = %d while paused, want 0", g.Tick())
	}

	if g.TogglePause() {
		t.Fatal("TogglePause should resume")
	}
	g.UpdateHeadless()
	if g.Tick() != 1 {
		t.Errorf("tick = %d after resume, want 1", g.Tick())
	}
}

func TestRestartReseeds(t *testing.T) {
	g := newTestGame(t, testConfig(8, 8), 3)
	for i := 0; i < 7; i++ {
		g.Step()
	}
	if g.Tick() != 7 {
		t.Fatalf("tick = %d, want 7", g.Tick())
	}

	// Restart is honored even while paused
	g.SetPaused(true)
	g.RequestRestart()
	g.UpdateHeadless()

	if g.Tick() != 0 {
		t.Errorf("tick = %d after restart, want 0", g.Tick())
	}
	if got := g.Clades().ActiveCount(); got != 16 {
		t.Errorf("active clades = %d after restart, want 16", got)
	}
	if life := g.CellAt(0, 0).Life; !life.Alive || life.Role != components.RoleStem {
		t.Errorf("origin after restart = %+v, want a fresh stem", life)
	}
}

func TestStepIsDeterministicPerSeed(t *testing.T) {
	run := func(seed int64) []components.WorldCell {
		g := newTestGame(t, testConfig(12, 12), seed)
		for i := 0; i < 40; i++ {
			g.Step()
		}
		cells := make([]components.WorldCell, len(g.Grid().Cells()))
		copy(cells, g.Grid().Cells())
		return cells
	}

	a := run(42)
	b := run(42)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different worlds")
	}

	c := run(43)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical worlds")
	}
}

func TestShuffleVisitsEveryCell(t *testing.T) {
	cfg := testConfig(6, 5)
	cfg.Simulation.ShuffleOrder = true
	g := newTestGame(t, cfg, 9)

	g.Step()

	sorted := append([]int(nil), g.order...)
	sort.Ints(sorted)
	for i, idx := range sorted {
		if idx != i {
			t.Fatalf("visitation order is not a permutation: %v", g.order)
		}
	}
}

func TestFixedOrderWithoutShuffle(t *testing.T) {
	cfg := testConfig(6, 5)
	cfg.Simulation.ShuffleOrder = false
	g := newTestGame(t, cfg, 9)

	g.Step()
	for i, idx := range g.order {
		if idx != i {
			t.Fatalf("order[%d] = %d, want identity", i, idx)
		}
	}
}

func TestStatsCallbackPerWindow(t *testing.T) {
	var windows []telemetry.WindowStats
	g := NewGameWithOptions(Options{
		Seed:          5,
		Headless:      true,
		Config:        testConfig(8, 8),
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})
	defer g.Unload()

	for i := 0; i < 12; i++ {
		g.Step()
	}

	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	for i, want := range []int64{5, 10} {
		if windows[i].WindowEndTick != want {
			t.Errorf("window %d ends at %d, want %d", i, windows[i].WindowEndTick, want)
		}
	}
	if g.Stats().WindowEndTick != 10 {
		t.Errorf("Stats() window end = %d, want last flushed 10", g.Stats().WindowEndTick)
	}
}

func TestOutputFiles(t *testing.T) {
	dir := t.TempDir()
	g := NewGameWithOptions(Options{
		Seed:      11,
		Headless:  true,
		Config:    testConfig(8, 8),
		OutputDir: dir,
	})
	for i := 0; i < 10; i++ {
		g.Step()
	}
	g.Unload()

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}

	// header plus one row per window
	for _, name := range []string{"telemetry.csv", "perf.csv"} {
		if got := countLines(t, filepath.Join(dir, name)); got != 3 {
			t.Errorf("%s has %d lines, want 3", name, got)
		}
	}
	if got := countLines(t, filepath.Join(dir, "clades.csv")); got < 2 {
		t.Errorf("clades.csv has %d lines, want header and rows", got)
	}
}

func TestCellAtWraps(t *testing.T) {
	g := newTestGame(t, testConfig(8, 8), 1)

	want := g.CellAt(0, 0)
	for _, p := range [][2]int{{8, 0}, {0, 8}, {-8, -8}, {16, 24}} {
		got := g.CellAt(p[0], p[1])
		if got.Life.Clade != want.Life.Clade || got.Life.Alive != want.Life.Alive {
			t.Errorf("CellAt(%d,%d) = %+v, want origin", p[0], p[1], got.Life)
		}
	}
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	return n
}
