package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/config"
	"github.com/pthm-cable/spectaculife/game"
	"github.com/pthm-cable/spectaculife/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int64                   // ticks before extinction (or maxTicks if survived)
	windowStats   []telemetry.WindowStats // collected via StatsCallback each window
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; every game gets its own config copy.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(x, s)
			quality := computeQuality(result.windowStats, fe.baseConfig.World.Width*fe.baseConfig.World.Height)
			results[idx] = seedResult{
				fitness: computeFitness(result.survivalTicks, quality),
				quality: quality,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until the population is
// extinct or maxTicks is reached.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{survivalTicks: fe.maxTicks}
	extinct := false

	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
			if stats.Alive == 0 && !extinct {
				extinct = true
				result.survivalTicks = stats.WindowEndTick
			}
		},
	})
	defer g.Unload()

	for g.Tick() < fe.maxTicks && !extinct {
		g.UpdateHeadless()
	}
	return result
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
// Survival dominates; quality separates configs that survive equally long.
func computeFitness(survivalTicks int64, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

// survivalTicks inverts computeFitness for progress output.
func survivalTicks(fitness, quality float64) float64 {
	return -fitness / (1.0 + 0.2*quality)
}

// Quality component weights.
const (
	qualityWeightOccupancy = 0.35
	qualityWeightDiversity = 0.25
	qualityWeightBalance   = 0.20
	qualityWeightStability = 0.20

	qualityWarmupWindows = 3    // skip first N windows (warmup)
	targetOccupancy      = 0.30 // living share of the grid
	targetClades         = 20
)

// computeQuality scores the ecosystem in [0, 1] from window stats: living
// coverage near the target, several clades alive, every role represented,
// and a steady population.
func computeQuality(windows []telemetry.WindowStats, numCells int) float64 {
	if len(windows) <= qualityWarmupWindows || numCells == 0 {
		return 0
	}

	valid := windows[qualityWarmupWindows:]
	alive := make([]float64, 0, len(valid))
	var occupancySum, diversitySum, balanceSum float64

	for _, w := range valid {
		if w.Alive == 0 {
			continue
		}
		alive = append(alive, float64(w.Alive))

		occ := float64(w.Alive) / float64(numCells)
		occupancySum += math.Exp(-math.Pow((occ-targetOccupancy)/0.15, 2))

		diversitySum += 1.0 - math.Exp(-float64(w.ActiveClades)/targetClades)

		counts := [components.NumRoles]int{w.Pipes, w.Leaves, w.Roots, w.Reactors, w.Filters, w.Stems}
		balanceSum += roleEntropy(counts[:], w.Alive)
	}

	if len(alive) == 0 {
		return 0
	}
	n := float64(len(alive))

	stabilityScore := 0.0
	if len(alive) >= 2 {
		mean, std := stat.MeanStdDev(alive, nil)
		if mean > 0 {
			cv := std / mean
			stabilityScore = math.Exp(-cv * cv)
		}
	}

	quality := qualityWeightOccupancy*occupancySum/n +
		qualityWeightDiversity*diversitySum/n +
		qualityWeightBalance*balanceSum/n +
		qualityWeightStability*stabilityScore

	return clamp01(quality)
}

// roleEntropy returns the normalized Shannon entropy of the role mix.
func roleEntropy(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	p := make([]float64, 0, len(counts))
	for _, c := range counts {
		if c > 0 {
			p = append(p, float64(c)/float64(total))
		}
	}
	return stat.Entropy(p) / math.Log(float64(len(counts)))
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
