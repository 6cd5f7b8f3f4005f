package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/spectaculife/components"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population at window end
	Alive    int `csv:"alive"`
	Pipes    int `csv:"pipes"`
	Leaves   int `csv:"leaves"`
	Roots    int `csv:"roots"`
	Reactors int `csv:"reactors"`
	Filters  int `csv:"filters"`
	Stems    int `csv:"stems"`

	// Events during window
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
	StemBirths int `csv:"stem_births"`

	DeathsLifespan   int `csv:"deaths_lifespan"`
	DeathsOverflow   int `csv:"deaths_overflow"`
	DeathsStarvation int `csv:"deaths_starvation"`
	DeathsOrphaned   int `csv:"deaths_orphaned"`
	DeathsKilled     int `csv:"deaths_killed"`

	// Energy distribution of living cells (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Layer totals
	TotalLifeEnergy   float64 `csv:"total_life_energy"`
	TotalSoilEnergy   float64 `csv:"total_soil_energy"`
	TotalSoilOrganics float64 `csv:"total_soil_organics"`
	TotalPollution    float64 `csv:"total_pollution"`

	// Clade tracking
	ActiveClades  int `csv:"active_clades"`
	CladesFounded int `csv:"clades_founded"`
}

// Census is a read-only survey of the grid.
type Census struct {
	Population   [components.NumRoles]int
	LifeEnergies []float64

	TotalLifeEnergy   float64
	TotalSoilEnergy   float64
	TotalSoilOrganics float64
	TotalPollution    float64
}

// Alive returns the number of living cells.
func (c Census) Alive() int {
	n := 0
	for _, p := range c.Population {
		n += p
	}
	return n
}

// TakeCensus surveys every cell.
func TakeCensus(cells []components.WorldCell) Census {
	var c Census
	soilEnergy := make([]float64, len(cells))
	organics := make([]float64, len(cells))
	pollution := make([]float64, len(cells))

	for i := range cells {
		cell := &cells[i]
		soilEnergy[i] = float64(cell.Soil.Energy)
		organics[i] = float64(cell.Soil.Organics)
		pollution[i] = float64(cell.Air.Pollution)

		if cell.Life.Alive {
			c.Population[cell.Life.Role]++
			c.LifeEnergies = append(c.LifeEnergies, float64(cell.Life.Energy))
		}
	}

	c.TotalSoilEnergy = floats.Sum(soilEnergy)
	c.TotalSoilOrganics = floats.Sum(organics)
	c.TotalPollution = floats.Sum(pollution)
	c.TotalLifeEnergy = floats.Sum(c.LifeEnergies)
	return c
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	// Sort for percentiles
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("alive", s.Alive),
		slog.Int("pipes", s.Pipes),
		slog.Int("leaves", s.Leaves),
		slog.Int("roots", s.Roots),
		slog.Int("reactors", s.Reactors),
		slog.Int("filters", s.Filters),
		slog.Int("stems", s.Stems),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("stem_births", s.StemBirths),
		slog.Int("deaths_lifespan", s.DeathsLifespan),
		slog.Int("deaths_overflow", s.DeathsOverflow),
		slog.Int("deaths_starvation", s.DeathsStarvation),
		slog.Int("deaths_orphaned", s.DeathsOrphaned),
		slog.Int("deaths_killed", s.DeathsKilled),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("total_life_energy", s.TotalLifeEnergy),
		slog.Float64("total_soil_energy", s.TotalSoilEnergy),
		slog.Float64("total_soil_organics", s.TotalSoilOrganics),
		slog.Float64("total_pollution", s.TotalPollution),
		slog.Int("active_clades", s.ActiveClades),
		slog.Int("clades_founded", s.CladesFounded),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"alive", s.Alive,
		"pipes", s.Pipes,
		"leaves", s.Leaves,
		"roots", s.Roots,
		"reactors", s.Reactors,
		"filters", s.Filters,
		"stems", s.Stems,
		"births", s.Births,
		"deaths", s.Deaths,
		"deaths_starvation", s.DeathsStarvation,
		"deaths_orphaned", s.DeathsOrphaned,
		"energy_mean", s.EnergyMean,
		"energy_p50", s.EnergyP50,
		"total_soil_energy", s.TotalSoilEnergy,
		"total_pollution", s.TotalPollution,
		"active_clades", s.ActiveClades,
	)
}
