package game

import (
	"log/slog"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/systems"
	"github.com/pthm-cable/spectaculife/telemetry"
)

// cladeRecordLimit caps the rows written to clades.csv per window.
const cladeRecordLimit = 20

// lifecycleHooks fans life-cycle events out to the window collector and
// the clade registry.
type lifecycleHooks struct {
	collector *telemetry.Collector
	clades    *systems.CladeRegistry
}

func (h *lifecycleHooks) CellBorn(role components.Role, clade uint32) {
	h.collector.CellBorn(role, clade)
	h.clades.CellBorn(role, clade)
}

func (h *lifecycleHooks) CellDied(role components.Role, cause components.DeathCause, clade uint32) {
	h.collector.CellDied(role, cause, clade)
	h.clades.CellDied(role, cause, clade)
}

func (h *lifecycleHooks) Found(parent uint32, tick int64) uint32 {
	h.collector.RecordCladeFounded()
	return h.clades.Found(parent, tick)
}

// census surveys the grid.
func (g *Game) census() telemetry.Census {
	return telemetry.TakeCensus(g.world.Cells())
}

// flushTelemetry closes the stats window when it is due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	g.perfCollector.StartPhase(telemetry.PhaseClades)
	records := g.cladeRecords()
	removed := g.clades.Flush()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	stats := g.collector.Flush(g.tick, g.census(), g.clades.ActiveCount())
	perfStats := g.perfCollector.Stats()
	g.lastStats = stats

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
		slog.Debug("clades flushed", "extinct", removed, "active", stats.ActiveClades)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		if err := g.outputManager.WriteClades(records); err != nil {
			slog.Error("failed to write clades", "error", err)
		}
	}
}

// cladeRecords snapshots the largest lineages before extinct ones are dropped.
func (g *Game) cladeRecords() []telemetry.CladeRecord {
	if g.outputManager == nil {
		return nil
	}
	largest := g.clades.Largest(cladeRecordLimit)
	records := make([]telemetry.CladeRecord, 0, len(largest))
	for _, c := range largest {
		records = append(records, telemetry.CladeRecord{
			WindowEnd:   g.tick,
			Clade:       c.ID,
			Parent:      c.ParentID,
			FounderTick: c.FounderTick,
			Alive:       c.Alive,
			Births:      c.Births,
			Deaths:      c.Deaths,
		})
	}
	return records
}
