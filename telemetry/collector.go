// Package telemetry provides ecosystem health tracking over tick windows,
// CSV output and performance timing.
package telemetry

import "github.com/pthm-cable/spectaculife/components"

// Collector accumulates life-cycle events within tick windows and produces WindowStats.
// It satisfies the update pipeline's observer interface.
type Collector struct {
	windowTicks int64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	births        [components.NumRoles]int
	deaths        [components.NumRoles]int
	causes        [components.NumDeathCauses]int
	cladesFounded int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// RecordBirth records a birth event.
func (c *Collector) RecordBirth(role components.Role) {
	c.births[role]++
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath(role components.Role, cause components.DeathCause) {
	c.deaths[role]++
	c.causes[cause]++
}

// RecordCladeFounded records a new lineage.
func (c *Collector) RecordCladeFounded() {
	c.cladesFounded++
}

// CellBorn implements the observer hook for births.
func (c *Collector) CellBorn(role components.Role, _ uint32) {
	c.RecordBirth(role)
}

// CellDied implements the observer hook for deaths.
func (c *Collector) CellDied(role components.Role, cause components.DeathCause, _ uint32) {
	c.RecordDeath(role, cause)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the window counters and a census of the
// grid taken at window end, then resets counters for the next window.
func (c *Collector) Flush(currentTick int64, census Census, activeClades int) WindowStats {
	mean, p10, p50, p90 := ComputeEnergyStats(census.LifeEnergies)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Alive:    census.Alive(),
		Pipes:    census.Population[components.RolePipe],
		Leaves:   census.Population[components.RoleLeaf],
		Roots:    census.Population[components.RoleRoot],
		Reactors: census.Population[components.RoleReactor],
		Filters:  census.Population[components.RoleFilter],
		Stems:    census.Population[components.RoleStem],

		StemBirths: c.births[components.RoleStem],

		DeathsLifespan:   c.causes[components.DeathLifespan],
		DeathsOverflow:   c.causes[components.DeathOverflow],
		DeathsStarvation: c.causes[components.DeathStarvation],
		DeathsOrphaned:   c.causes[components.DeathOrphaned],
		DeathsKilled:     c.causes[components.DeathKilled],

		EnergyMean: mean,
		EnergyP10:  p10,
		EnergyP50:  p50,
		EnergyP90:  p90,

		TotalLifeEnergy:   census.TotalLifeEnergy,
		TotalSoilEnergy:   census.TotalSoilEnergy,
		TotalSoilOrganics: census.TotalSoilOrganics,
		TotalPollution:    census.TotalPollution,

		ActiveClades:  activeClades,
		CladesFounded: c.cladesFounded,
	}
	for role := range c.births {
		stats.Births += c.births[role]
		stats.Deaths += c.deaths[role]
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = [components.NumRoles]int{}
	c.deaths = [components.NumRoles]int{}
	c.causes = [components.NumDeathCauses]int{}
	c.cladesFounded = 0

	return stats
}

// Reset clears counters and restarts the window at tick.
func (c *Collector) Reset(tick int64) {
	*c = Collector{windowTicks: c.windowTicks, windowStartTick: tick}
}
