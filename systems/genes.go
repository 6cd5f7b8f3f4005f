package systems

import (
	"fmt"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
)

// ExecuteGenome runs the active gene of the center Stem.
//
// The primary action fires whenever its condition holds. The secondary
// pair then selects one of three actions; if neither holds, the branch
// pair selects one of three gene jumps. Only when both pairs come out
// false/false does the gene reach its directional birth and kill actions.
func ExecuteGenome(area Area, env *Env) {
	life := &area.Center().Life
	if !life.IsFertile() {
		return
	}
	g := life.Genome
	if g == nil {
		panic("systems: stem cell without genome")
	}
	gene := g.ActiveGene()

	if EvaluateCondition(gene.MainCondition, gene.MainParam, area, env) {
		executeAction(area, env, gene.MainAction)
		if !life.IsFertile() {
			return
		}
	}

	secondary := genome.Dispatch(
		EvaluateCondition(gene.SecondaryCondition1, gene.SecondaryParam1, area, env),
		EvaluateCondition(gene.SecondaryCondition2, gene.SecondaryParam2, area, env),
	)
	switch secondary {
	case 1:
		executeAction(area, env, gene.SecondaryAction1)
		return
	case 2:
		executeAction(area, env, gene.SecondaryAction2)
		return
	case 3:
		executeAction(area, env, gene.SecondaryAction3)
		return
	}

	branch := genome.Dispatch(
		EvaluateCondition(gene.Condition1, gene.Param1, area, env),
		EvaluateCondition(gene.Condition2, gene.Param2, area, env),
	)
	switch branch {
	case 1:
		g.SetActive(gene.AltGene1)
		return
	case 2:
		g.SetActive(gene.AltGene2)
		return
	case 3:
		g.SetActive(gene.AltGene3)
		return
	}

	runDirections(area, env, gene)
}

// runDirections reserves the gene's full capacity, then applies each
// cardinal action. A Stem that gives birth at least once becomes a Pipe.
func runDirections(area Area, env *Env, gene *genome.Gene) {
	r := env.Rules
	life := &area.Center().Life

	cost := gene.EnergyCapacity(&r.Capacities)
	if life.Energy <= cost {
		return
	}
	life.Energy -= cost

	born := false
	for _, d := range grid.Cardinals {
		act := gene.Direction(d)
		target := &area.Dir(d).Life
		if target == life {
			continue
		}
		if target.Alive && act.IsBirth() {
			// Organ births press on the occupant; stem births just skip it.
			if act.Kind != genome.MultiplySelf && act.Kind != genome.CreateSeed {
				ageOccupant(target, r.OccupiedAging)
			}
			continue
		}

		switch act.Kind {
		case genome.Nothing:

		case genome.KillCell:
			if target.Alive {
				life.Energy += max(target.Energy, 0)
				target.Energy = 0
				target.StepsToDeath = 0
			}

		case genome.MakeLeaf, genome.MakeRoot, genome.MakeReactor, genome.MakeFilter:
			child := components.NewLife(roleFor(act.Kind), r.ChildEnergyFraction*r.Capacities.Of(act), d.Opposite(), uint16(act.Lifespan))
			child.EnergyTo = components.FromDirection(d.Opposite())
			child.Clade = life.Clade
			*target = child
			env.born(target)
			born = true

		case genome.MultiplySelf, genome.CreateSeed:
			dna := life.Genome.Clone()
			dna.Mutate(env.Rand)
			if act.Kind == genome.MultiplySelf {
				dna.SetActive(act.NextGene)
			} else {
				dna.SetActive(dna.Seed)
			}

			child := components.NewStem(dna, r.ChildEnergyFraction*r.Capacities.Of(act), d.Opposite(), uint16(act.Lifespan))
			child.Clade = life.Clade
			if act.Kind == genome.CreateSeed && env.Clades != nil && env.Rand.Float64() < r.CladeSplitChance {
				child.Clade = env.Clades.Found(life.Clade, env.Tick)
			}
			*target = child
			life.EnergyTo.Set(d, true)
			env.born(target)
			born = true

		default:
			panic(fmt.Sprintf("systems: unknown direction action %d", act.Kind))
		}
	}

	if born {
		life.Role = components.RolePipe
		life.Genome = nil
		life.StepsToDeath = uint16(gene.SelfLifespan)
	}
}

// ageOccupant shortens a living neighbor's remaining lifespan.
func ageOccupant(l *components.LifeCell, pressure float32) {
	cut := max(uint16(float32(l.StepsToDeath)*pressure), 1)
	if cut >= l.StepsToDeath {
		l.StepsToDeath = 0
		return
	}
	l.StepsToDeath -= cut
}

func roleFor(k genome.DirectionActionKind) components.Role {
	switch k {
	case genome.MakeLeaf:
		return components.RoleLeaf
	case genome.MakeRoot:
		return components.RoleRoot
	case genome.MakeReactor:
		return components.RoleReactor
	case genome.MakeFilter:
		return components.RoleFilter
	}
	panic("systems: no role for " + k.String())
}

// executeAction applies a non-directional action for the center cell.
func executeAction(area Area, env *Env, a genome.Action) {
	switch a.Kind {
	case genome.ActionNothing:
	case genome.ActionPullOrganics, genome.ActionPushOrganics:
		if !a.Dir.IsCardinal() {
			panic("systems: organics move toward " + a.Dir.String())
		}
		if a.Kind == genome.ActionPullOrganics {
			moveOrganics(&area.Dir(a.Dir).Soil, &area.Center().Soil, a.Amount)
		} else {
			moveOrganics(&area.Center().Soil, &area.Dir(a.Dir).Soil, a.Amount)
		}
	case genome.ActionJump:
		area.Center().Life.Genome.SetActive(a.Gene)
	case genome.ActionKillDiagonal:
		if !a.Dir.IsDiagonal() {
			panic("systems: diagonal kill toward " + a.Dir.String())
		}
		target := area.Neighbor(a.Dir)
		if target.Center().Life.Alive {
			Kill(target, env, components.DeathKilled)
		}
	default:
		panic(fmt.Sprintf("systems: unknown action %d", a.Kind))
	}
}

// moveOrganics moves up to amount organics, bounded by what from holds
// and what to can still take.
func moveOrganics(from, to *components.SoilCell, amount uint8) {
	n := min(amount, from.Organics, 255-to.Organics)
	from.Organics -= n
	to.Organics += n
}
