// Package main tunes rule constants with CMA-ES so that the grid stays
// populated and diverse for as long as possible.
//
// Every evaluation runs one headless game per seed with the candidate
// constants applied to a copy of the base config. Results go to
// optimize_log.csv and best_config.yaml in the output directory.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/spectaculife/config"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int64("max-ticks", 20000, "Maximum simulation duration in ticks (cap)")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	width := flag.Int("width", 96, "Grid width for evaluation runs (0 = use config)")
	height := flag.Int("height", 96, "Grid height for evaluation runs (0 = use config)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Per-game seeding logs would drown the progress output
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	config.MustInit(*configPath)
	baseCfg := config.Cfg().Clone()
	if *width > 0 && *height > 0 {
		baseCfg.World.Width = *width
		baseCfg.World.Height = *height
	}

	params := NewParamVector()
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, *maxTicks, evalSeeds, baseCfg)

	logFile, err := os.Create(filepath.Join(*outputDir, "optimize_log.csv"))
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	tracker := newProgress(params, csv.NewWriter(logFile), *maxEvals)
	defer tracker.log.Flush()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			// Clamped values are the ones the simulation actually runs with
			values := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(values)
			tracker.record(values, fitness, evaluator.LastQuality())
			return fitness
		},
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(params.Dim())/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // seeds already run in parallel inside Evaluate
	}

	fmt.Printf("Starting CMA-ES: %d parameters, population=%d, max_evals=%d\n", params.Dim(), popSize, *maxEvals)
	fmt.Printf("Grid %dx%d, %d seeds per evaluation, up to %d ticks per run\n",
		baseCfg.World.Width, baseCfg.World.Height, *seeds, *maxTicks)

	initX := params.Normalize(params.ExtractFromConfig(baseCfg))
	if _, err := optimize.Minimize(problem, initX, settings, method); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	if tracker.bestValues == nil {
		log.Fatal("no evaluations completed")
	}
	tracker.summary()

	bestCfg := baseCfg.Clone()
	params.ApplyToConfig(bestCfg, tracker.bestValues)
	outPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(outPath); err != nil {
		log.Printf("failed to write best config: %v", err)
		return
	}
	fmt.Printf("\nBest config saved to: %s\n", outPath)
}

// progress logs every evaluation and remembers the best one.
type progress struct {
	params   *ParamVector
	log      *csv.Writer
	maxEvals int
	start    time.Time

	evals       int
	bestFitness float64
	bestValues  []float64
}

func newProgress(params *ParamVector, w *csv.Writer, maxEvals int) *progress {
	header := []string{"eval", "fitness", "quality"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	w.Write(header)

	return &progress{params: params, log: w, maxEvals: maxEvals, start: time.Now()}
}

func (p *progress) record(values []float64, fitness, quality float64) {
	p.evals++
	if p.bestValues == nil || fitness < p.bestFitness {
		p.bestFitness = fitness
		p.bestValues = values
	}

	row := []string{strconv.Itoa(p.evals), strconv.FormatFloat(fitness, 'f', 3, 64), strconv.FormatFloat(quality, 'f', 4, 64)}
	for _, v := range values {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	p.log.Write(row)
	p.log.Flush()

	elapsed := time.Since(p.start)
	eta := time.Duration(p.maxEvals-p.evals) * (elapsed / time.Duration(p.evals))
	fmt.Printf("Eval %d/%d: survived=%.0f ticks quality=%.2f (best=%.0f) | elapsed %s, ETA %s\n",
		p.evals, p.maxEvals, survivalTicks(fitness, quality), quality, p.bestFitness,
		formatDuration(elapsed), formatDuration(eta))
}

func (p *progress) summary() {
	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", p.evals, formatDuration(time.Since(p.start)))
	fmt.Printf("Best fitness: %.0f\n\nBest parameters:\n", p.bestFitness)
	for i, spec := range p.params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, p.bestValues[i])
	}
}

// formatDuration formats a duration as 1h02m03s, or 2m03s below an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
