// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Simulation SimulationConfig `yaml:"simulation"`
	Soil       SoilConfig       `yaml:"soil"`
	Roles      RolesConfig      `yaml:"roles"`
	Leaf       LeafConfig       `yaml:"leaf"`
	Root       RootConfig       `yaml:"root"`
	Reactor    ReactorConfig    `yaml:"reactor"`
	Filter     FilterConfig     `yaml:"filter"`
	Transfer   TransferConfig   `yaml:"transfer"`
	Birth      BirthConfig      `yaml:"birth"`
	Kill       KillConfig       `yaml:"kill"`
	Clades     CladeConfig      `yaml:"clades"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TargetFPS int     `yaml:"target_fps"`
	CellSize  float64 `yaml:"cell_size"` // pixels per grid cell at zoom 1
}

// WorldConfig holds grid dimensions and the seeding routine.
type WorldConfig struct {
	Width        int             `yaml:"width"`
	Height       int             `yaml:"height"`
	SeedSpacing  int             `yaml:"seed_spacing"`  // a Stem every N cells on both axes
	SeedEnergy   float64         `yaml:"seed_energy"`   // starting energy of seeded Stems
	SeedLifespan int             `yaml:"seed_lifespan"` // starting steps_to_death of seeded Stems
	SoilNoise    SoilNoiseConfig `yaml:"soil_noise"`
}

// SoilNoiseConfig shapes the initial soil field. Zero amplitudes leave bare soil.
type SoilNoiseConfig struct {
	Scale    float64 `yaml:"scale"`    // noise frequency in cells
	Organics float64 `yaml:"organics"` // peak initial organics
	Energy   float64 `yaml:"energy"`   // peak initial soil energy
	Seed     int64   `yaml:"seed"`     // 0 = derive from the simulation seed
}

// SimulationConfig holds tick scheduling parameters.
type SimulationConfig struct {
	ShuffleOrder   bool    `yaml:"shuffle_order"`    // reshuffle visitation order every tick
	StepsPerUpdate int     `yaml:"steps_per_update"` // ticks per Update call
	TickInterval   float64 `yaml:"tick_interval"`    // seconds between ticks in graphical mode
}

// SoilConfig holds lethal thresholds of the soil beneath a living cell.
type SoilConfig struct {
	MaxOrganicsLife int     `yaml:"max_organics_life"`
	MaxEnergyLife   float64 `yaml:"max_energy_life"`
}

// RoleConfig holds the per-role behavior table entries.
type RoleConfig struct {
	Consumption float64 `yaml:"consumption"` // upkeep per tick
	Organics    int     `yaml:"organics"`    // organics returned to soil on death
}

// RolesConfig holds the behavior table for every role.
type RolesConfig struct {
	Pipe    RoleConfig `yaml:"pipe"`
	Leaf    RoleConfig `yaml:"leaf"`
	Root    RoleConfig `yaml:"root"`
	Reactor RoleConfig `yaml:"reactor"`
	Filter  RoleConfig `yaml:"filter"`
	Stem    RoleConfig `yaml:"stem"`
}

// LeafConfig holds photosynthesis parameters.
// Yield per tick = yield / max(pollution / pollution_scale, 1).
type LeafConfig struct {
	Yield          float64 `yaml:"yield"`
	PollutionScale float64 `yaml:"pollution_scale"`
	SoilShare      float64 `yaml:"soil_share"` // fraction of yield also deposited into soil energy
}

// RootConfig holds organics-draining parameters.
type RootConfig struct {
	SmallStock    int     `yaml:"small_stock"`    // stocks at or below this are drained one unit at a time
	DrainFraction float64 `yaml:"drain_fraction"` // fraction drained from larger stocks
	EnergyYield   float64 `yaml:"energy_yield"`
	SoilShare     float64 `yaml:"soil_share"`
}

// ReactorConfig holds soil-energy-draining parameters.
type ReactorConfig struct {
	DrainFraction float64 `yaml:"drain_fraction"`
	EnergyYield   float64 `yaml:"energy_yield"`
	OrganicsYield float64 `yaml:"organics_yield"`
}

// FilterConfig holds pollution-draining parameters.
type FilterConfig struct {
	SmallStock    int     `yaml:"small_stock"`
	DrainFraction float64 `yaml:"drain_fraction"`
	EnergyYield   float64 `yaml:"energy_yield"`
	OrganicsYield float64 `yaml:"organics_yield"`
}

// TransferConfig holds routing parameters.
type TransferConfig struct {
	Margin float64 `yaml:"margin"` // energy kept back, as a multiple of consumption
}

// BirthConfig holds reproduction parameters.
type BirthConfig struct {
	ChildEnergyFraction float64          `yaml:"child_energy_fraction"` // newborn energy = fraction × direction capacity
	OccupiedAging       float64          `yaml:"occupied_aging"`        // fraction of lifespan taken from an occupied target
	Capacities          CapacitiesConfig `yaml:"capacities"`
}

// CapacitiesConfig holds the energy reserved per direction action kind.
type CapacitiesConfig struct {
	MakeLeaf     float64 `yaml:"make_leaf"`
	MakeRoot     float64 `yaml:"make_root"`
	MakeReactor  float64 `yaml:"make_reactor"`
	MakeFilter   float64 `yaml:"make_filter"`
	MultiplySelf float64 `yaml:"multiply_self"`
	CreateSeed   float64 `yaml:"create_seed"`
	KillCell     float64 `yaml:"kill_cell"`
}

// KillConfig holds how a dead cell returns resources to soil and air.
type KillConfig struct {
	SoilEnergyShare  float64 `yaml:"soil_energy_share"`
	PollutionDivisor int     `yaml:"pollution_divisor"`
}

// CladeConfig holds lineage tracking parameters.
type CladeConfig struct {
	SplitChance float64 `yaml:"split_chance"` // chance a CreateSeed founds a new clade
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	NumCells   int     // World.Width * World.Height
	CellSize32 float32 // Screen.CellSize as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", c.World.Width, c.World.Height))
	}
	if c.World.SeedSpacing <= 0 {
		errs = append(errs, fmt.Errorf("world.seed_spacing %d must be positive", c.World.SeedSpacing))
	}
	if c.World.SeedLifespan <= 0 || c.World.SeedLifespan > 65535 {
		errs = append(errs, fmt.Errorf("world.seed_lifespan %d out of range", c.World.SeedLifespan))
	}
	if c.Transfer.Margin < 0 {
		errs = append(errs, fmt.Errorf("transfer.margin %v must not be negative", c.Transfer.Margin))
	}
	if c.Kill.PollutionDivisor <= 0 {
		errs = append(errs, fmt.Errorf("kill.pollution_divisor %d must be positive", c.Kill.PollutionDivisor))
	}
	if c.Leaf.PollutionScale <= 0 {
		errs = append(errs, fmt.Errorf("leaf.pollution_scale %v must be positive", c.Leaf.PollutionScale))
	}
	if c.Telemetry.StatsWindow <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window %d must be positive", c.Telemetry.StatsWindow))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.NumCells = c.World.Width * c.World.Height
	c.Derived.CellSize32 = float32(c.Screen.CellSize)

	if c.Simulation.StepsPerUpdate < 1 {
		c.Simulation.StepsPerUpdate = 1
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
