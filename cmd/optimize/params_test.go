package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/spectaculife/config"
	"github.com/pthm-cable/spectaculife/telemetry"
)

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	for i, spec := range pv.Specs {
		if math.Abs(got[i]-spec.Default) > 1e-9 {
			t.Errorf("%s: config default %v, spec default %v", spec.Path, got[i], spec.Default)
		}
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s: default %v outside [%v, %v]", spec.Path, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestApplyClampsToBounds(t *testing.T) {
	pv := NewParamVector()
	values := make([]float64, pv.Dim())
	for i := range values {
		values[i] = 1e6
	}

	cfg := config.Default()
	pv.ApplyToConfig(cfg, values)
	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Max {
			t.Errorf("%s = %v, want clamped to %v", spec.Path, got[i], spec.Max)
		}
	}
}

func TestComputeQuality(t *testing.T) {
	window := func(alive, clades int) telemetry.WindowStats {
		per := alive / 6
		return telemetry.WindowStats{
			Alive: per * 6, ActiveClades: clades,
			Pipes: per, Leaves: per, Roots: per, Reactors: per, Filters: per, Stems: per,
		}
	}

	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		check   func(float64) bool
	}{
		{"too few windows", []telemetry.WindowStats{window(60, 5)}, func(q float64) bool { return q == 0 }},
		{"extinct after warmup", []telemetry.WindowStats{window(60, 5), window(60, 5), window(60, 5), {}, {}}, func(q float64) bool { return q == 0 }},
		{"healthy", []telemetry.WindowStats{window(60, 5), window(60, 5), window(60, 5), window(60, 20), window(60, 20), window(60, 20)}, func(q float64) bool { return q > 0.7 && q <= 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if q := computeQuality(tt.windows, 200); !tt.check(q) {
				t.Errorf("quality = %v", q)
			}
		})
	}
}

func TestFitnessPrefersSurvival(t *testing.T) {
	if computeFitness(1000, 0) >= computeFitness(500, 1) {
		t.Error("longer survival should beat higher quality")
	}
	if computeFitness(1000, 1) >= computeFitness(1000, 0) {
		t.Error("quality should break survival ties")
	}
	if got := survivalTicks(computeFitness(1234, 0.5), 0.5); math.Abs(got-1234) > 1e-9 {
		t.Errorf("survivalTicks = %v, want 1234", got)
	}
}
