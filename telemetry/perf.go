package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase identifies a timed section of a simulation step.
type Phase uint8

const (
	PhaseSeed Phase = iota
	PhaseShuffle
	PhaseUpdate
	PhaseClades
	PhaseTelemetry
	NumPhases
)

var phaseNames = [NumPhases]string{"seed", "shuffle", "update", "clades", "telemetry"}

func (p Phase) String() string {
	if p < NumPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// tickSample is the timing of one tick.
type tickSample struct {
	total  time.Duration
	phases [NumPhases]time.Duration
}

// PerfCollector times ticks and their phases over a ring of recent ticks.
// Phases are stored in a fixed array so timing allocates nothing per tick.
type PerfCollector struct {
	samples     []tickSample
	writeIndex  int
	sampleCount int

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	cellsPerTick int

	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector keeps the last windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{samples: make([]tickSample, windowSize)}
}

// SetCellsPerTick records how many cells one tick visits, for throughput.
func (p *PerfCollector) SetCellsPerTick(n int) {
	p.cellsPerTick = n
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.inPhase = false
	p.current.total = now.Sub(p.tickStart)

	p.samples[p.writeIndex] = p.current
	p.writeIndex = (p.writeIndex + 1) % len(p.samples)
	if p.sampleCount < len(p.samples) {
		p.sampleCount++
	}
}

// RecordFrame records the interval since the previous frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats summarizes the retained ticks.
type PerfStats struct {
	AvgTickDuration time.Duration
	P50TickDuration time.Duration
	P99TickDuration time.Duration
	MaxTickDuration time.Duration

	// Share of average tick time per phase, in percent
	PhasePct [NumPhases]float64

	TicksPerSecond       float64
	CellUpdatesPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats computes the summary over the retained ticks.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{FrameDuration: p.frameDuration}
	if p.frameDuration > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.sampleCount == 0 {
		return s
	}

	totals := make([]float64, p.sampleCount)
	var phaseSum [NumPhases]time.Duration
	for i := 0; i < p.sampleCount; i++ {
		sample := p.samples[i]
		totals[i] = float64(sample.total)
		for ph, d := range sample.phases {
			phaseSum[ph] += d
		}
	}
	sort.Float64s(totals)

	avg := stat.Mean(totals, nil)
	s.AvgTickDuration = time.Duration(avg)
	s.P50TickDuration = time.Duration(stat.Quantile(0.5, stat.Empirical, totals, nil))
	s.P99TickDuration = time.Duration(stat.Quantile(0.99, stat.Empirical, totals, nil))
	s.MaxTickDuration = time.Duration(totals[len(totals)-1])

	if avg > 0 {
		n := float64(p.sampleCount)
		for ph, sum := range phaseSum {
			s.PhasePct[ph] = float64(sum) / n / avg * 100
		}
		s.TicksPerSecond = float64(time.Second) / avg
		s.CellUpdatesPerSecond = s.TicksPerSecond * float64(p.cellsPerTick)
	}
	return s
}

// LogStats logs the summary at debug level.
func (s PerfStats) LogStats() {
	slog.Debug("perf", "stats", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("p99_tick_us", s.P99TickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
		slog.Int("cells_per_sec", int(s.CellUpdatesPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, slog.Float64(Phase(ph).String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the flat row written to perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	P50TickUS    int64   `csv:"p50_tick_us"`
	P99TickUS    int64   `csv:"p99_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	CellsPerSec  float64 `csv:"cells_per_sec"`
	FPS          float64 `csv:"fps"`
	SeedPct      float64 `csv:"seed_pct"`
	ShufflePct   float64 `csv:"shuffle_pct"`
	UpdatePct    float64 `csv:"update_pct"`
	CladesPct    float64 `csv:"clades_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		P50TickUS:    s.P50TickDuration.Microseconds(),
		P99TickUS:    s.P99TickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		CellsPerSec:  s.CellUpdatesPerSecond,
		FPS:          s.FPS,
		SeedPct:      s.PhasePct[PhaseSeed],
		ShufflePct:   s.PhasePct[PhaseShuffle],
		UpdatePct:    s.PhasePct[PhaseUpdate],
		CladesPct:    s.PhasePct[PhaseClades],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
