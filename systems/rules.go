package systems

import (
	"math/rand"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/config"
	"github.com/pthm-cable/spectaculife/genome"
)

// Rules holds the formula constants of the world update, converted once
// from config into the types the hot path works in.
type Rules struct {
	MaxOrganicsLife uint8
	MaxEnergyLife   float32

	Consumption   [components.NumRoles]float32
	DeathOrganics [components.NumRoles]uint8

	Leaf    LeafRules
	Root    RootRules
	Reactor ReactorRules
	Filter  FilterRules

	TransferMargin float32

	ChildEnergyFraction float32
	OccupiedAging       float32
	Capacities          genome.CapacityTable

	KillSoilEnergyShare  float32
	KillPollutionDivisor uint8

	CladeSplitChance float64
}

type LeafRules struct {
	Yield          float32
	PollutionScale float32
	SoilShare      float32
}

type RootRules struct {
	SmallStock    uint8
	DrainFraction float32
	EnergyYield   float32
	SoilShare     float32
}

type ReactorRules struct {
	DrainFraction float32
	EnergyYield   float32
	OrganicsYield float32
}

type FilterRules struct {
	SmallStock    uint8
	DrainFraction float32
	EnergyYield   float32
	OrganicsYield float32
}

// RulesFromConfig converts a loaded config into Rules.
func RulesFromConfig(cfg *config.Config) *Rules {
	r := &Rules{
		MaxOrganicsLife: clampByte(cfg.Soil.MaxOrganicsLife),
		MaxEnergyLife:   float32(cfg.Soil.MaxEnergyLife),

		Leaf: LeafRules{
			Yield:          float32(cfg.Leaf.Yield),
			PollutionScale: float32(cfg.Leaf.PollutionScale),
			SoilShare:      float32(cfg.Leaf.SoilShare),
		},
		Root: RootRules{
			SmallStock:    clampByte(cfg.Root.SmallStock),
			DrainFraction: float32(cfg.Root.DrainFraction),
			EnergyYield:   float32(cfg.Root.EnergyYield),
			SoilShare:     float32(cfg.Root.SoilShare),
		},
		Reactor: ReactorRules{
			DrainFraction: float32(cfg.Reactor.DrainFraction),
			EnergyYield:   float32(cfg.Reactor.EnergyYield),
			OrganicsYield: float32(cfg.Reactor.OrganicsYield),
		},
		Filter: FilterRules{
			SmallStock:    clampByte(cfg.Filter.SmallStock),
			DrainFraction: float32(cfg.Filter.DrainFraction),
			EnergyYield:   float32(cfg.Filter.EnergyYield),
			OrganicsYield: float32(cfg.Filter.OrganicsYield),
		},

		TransferMargin: float32(cfg.Transfer.Margin),

		ChildEnergyFraction: float32(cfg.Birth.ChildEnergyFraction),
		OccupiedAging:       float32(cfg.Birth.OccupiedAging),

		KillSoilEnergyShare:  float32(cfg.Kill.SoilEnergyShare),
		KillPollutionDivisor: clampByte(cfg.Kill.PollutionDivisor),

		CladeSplitChance: cfg.Clades.SplitChance,
	}

	roles := [components.NumRoles]config.RoleConfig{
		components.RolePipe:    cfg.Roles.Pipe,
		components.RoleLeaf:    cfg.Roles.Leaf,
		components.RoleRoot:    cfg.Roles.Root,
		components.RoleReactor: cfg.Roles.Reactor,
		components.RoleFilter:  cfg.Roles.Filter,
		components.RoleStem:    cfg.Roles.Stem,
	}
	for role, rc := range roles {
		r.Consumption[role] = float32(rc.Consumption)
		r.DeathOrganics[role] = clampByte(rc.Organics)
	}

	caps := cfg.Birth.Capacities
	r.Capacities[genome.Nothing] = 0
	r.Capacities[genome.MakeLeaf] = float32(caps.MakeLeaf)
	r.Capacities[genome.MakeRoot] = float32(caps.MakeRoot)
	r.Capacities[genome.MakeReactor] = float32(caps.MakeReactor)
	r.Capacities[genome.MakeFilter] = float32(caps.MakeFilter)
	r.Capacities[genome.MultiplySelf] = float32(caps.MultiplySelf)
	r.Capacities[genome.CreateSeed] = float32(caps.CreateSeed)
	r.Capacities[genome.KillCell] = float32(caps.KillCell)

	return r
}

// DefaultRules returns Rules built from the embedded default config.
func DefaultRules() *Rules {
	return RulesFromConfig(config.Default())
}

// ConsumptionOf returns the per-tick upkeep of a role.
func (r *Rules) ConsumptionOf(role components.Role) float32 {
	return r.Consumption[role]
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Observer receives life-cycle events as the update pipeline produces them.
type Observer interface {
	CellBorn(role components.Role, clade uint32)
	CellDied(role components.Role, cause components.DeathCause, clade uint32)
}

// CladeFounder hands out a fresh clade id descending from parent.
type CladeFounder interface {
	Found(parent uint32, tick int64) uint32
}

// Env is everything the per-cell update reads besides the grid itself.
// Events and Clades may be nil.
type Env struct {
	Rules  *Rules
	Rand   *rand.Rand
	Tick   int64
	Events Observer
	Clades CladeFounder
}

func (e *Env) born(l *components.LifeCell) {
	if e.Events != nil {
		e.Events.CellBorn(l.Role, l.Clade)
	}
}

func (e *Env) died(l *components.LifeCell, cause components.DeathCause) {
	if e.Events != nil {
		e.Events.CellDied(l.Role, cause, l.Clade)
	}
}
