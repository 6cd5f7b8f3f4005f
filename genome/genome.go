// Package genome defines the gene table that drives Stem cell behavior:
// a fixed program of 32 instructions with jump targets, copied by value
// into every offspring and varied only by point mutation at birth.
package genome

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/spectaculife/grid"
)

// Size is the number of genes in every genome.
const Size = 32

// Mutation rate bounds, in percent per Mutate call.
const (
	MinMutationRate = 5
	MaxMutationRate = 100
)

// Genome is a Stem cell's program.
type Genome struct {
	Genes        [Size]Gene
	Active       uint8
	Seed         uint8
	MutationRate uint8
}

// Random builds a genome with every field drawn uniformly from its domain.
func Random(rng *rand.Rand) *Genome {
	g := &Genome{
		Active:       uint8(rng.Intn(Size)),
		Seed:         uint8(rng.Intn(Size)),
		MutationRate: randomMutationRate(rng),
	}
	for i := range g.Genes {
		g.Genes[i] = RandomGene(rng)
	}
	return g
}

// Clone returns an independent copy. Offspring never share genome storage.
func (g *Genome) Clone() *Genome {
	c := *g
	return &c
}

// ActiveGene returns the gene the program counter points at.
// An out-of-range pointer is a programming error and panics.
func (g *Genome) ActiveGene() *Gene {
	if int(g.Active) >= Size {
		panic(fmt.Sprintf("genome: active gene %d out of range", g.Active))
	}
	return &g.Genes[g.Active]
}

// SetActive moves the program counter. Panics on an out-of-range index.
func (g *Genome) SetActive(i uint8) {
	if int(i) >= Size {
		panic(fmt.Sprintf("genome: gene index %d out of range", i))
	}
	g.Active = i
}

// Mutate applies at most one random change, gated by MutationRate percent.
// Returns true if the genome changed shape (a re-roll may repeat a value).
func (g *Genome) Mutate(rng *rand.Rand) bool {
	if rng.Intn(100) >= int(g.MutationRate) {
		return false
	}

	switch rng.Intn(8) {
	case 0:
		g.MutationRate = randomMutationRate(rng)
	case 1:
		g.Active = uint8(rng.Intn(Size))
	case 2:
		g.Seed = uint8(rng.Intn(Size))
	default:
		mutateGene(&g.Genes[rng.Intn(Size)], rng)
	}
	return true
}

// geneFields is the number of independently re-rollable gene fields,
// plus one for wholesale replacement.
const geneFields = 23

func mutateGene(gene *Gene, rng *rand.Rand) {
	switch rng.Intn(geneFields) {
	case 0:
		gene.Up = RandomDirectionAction(rng)
	case 1:
		gene.Down = RandomDirectionAction(rng)
	case 2:
		gene.Left = RandomDirectionAction(rng)
	case 3:
		gene.Right = RandomDirectionAction(rng)
	case 4:
		gene.MainCondition = RandomCondition(rng)
	case 5:
		gene.MainParam = uint8(rng.Intn(256))
	case 6:
		gene.MainAction = RandomAction(rng)
	case 7:
		gene.SecondaryCondition1 = RandomCondition(rng)
	case 8:
		gene.SecondaryCondition2 = RandomCondition(rng)
	case 9:
		gene.SecondaryParam1 = uint8(rng.Intn(256))
	case 10:
		gene.SecondaryParam2 = uint8(rng.Intn(256))
	case 11:
		gene.SecondaryAction1 = RandomAction(rng)
	case 12:
		gene.SecondaryAction2 = RandomAction(rng)
	case 13:
		gene.SecondaryAction3 = RandomAction(rng)
	case 14:
		gene.Condition1 = RandomCondition(rng)
	case 15:
		gene.Condition2 = RandomCondition(rng)
	case 16:
		gene.Param1 = uint8(rng.Intn(256))
	case 17:
		gene.Param2 = uint8(rng.Intn(256))
	case 18:
		gene.AltGene1 = uint8(rng.Intn(Size))
	case 19:
		gene.AltGene2 = uint8(rng.Intn(Size))
	case 20:
		gene.AltGene3 = uint8(rng.Intn(Size))
	case 21:
		gene.SelfLifespan = randomLifespan(rng)
	default:
		*gene = RandomGene(rng)
	}
}

// RandomGene draws a complete gene.
func RandomGene(rng *rand.Rand) Gene {
	return Gene{
		Up:    RandomDirectionAction(rng),
		Down:  RandomDirectionAction(rng),
		Left:  RandomDirectionAction(rng),
		Right: RandomDirectionAction(rng),

		MainCondition: RandomCondition(rng),
		MainParam:     uint8(rng.Intn(256)),
		MainAction:    RandomAction(rng),

		SecondaryCondition1: RandomCondition(rng),
		SecondaryCondition2: RandomCondition(rng),
		SecondaryParam1:     uint8(rng.Intn(256)),
		SecondaryParam2:     uint8(rng.Intn(256)),
		SecondaryAction1:    RandomAction(rng),
		SecondaryAction2:    RandomAction(rng),
		SecondaryAction3:    RandomAction(rng),

		Condition1: RandomCondition(rng),
		Condition2: RandomCondition(rng),
		Param1:     uint8(rng.Intn(256)),
		Param2:     uint8(rng.Intn(256)),
		AltGene1:   uint8(rng.Intn(Size)),
		AltGene2:   uint8(rng.Intn(Size)),
		AltGene3:   uint8(rng.Intn(Size)),

		SelfLifespan: randomLifespan(rng),
	}
}

// RandomDirectionAction draws a directional action. Birth kinds share most
// of the mass; KillCell and Nothing split the remainder.
func RandomDirectionAction(rng *rand.Rand) DirectionAction {
	switch n := rng.Intn(101); {
	case n <= 14:
		return DirectionAction{Kind: MultiplySelf, Lifespan: randomLifespan(rng), NextGene: uint8(rng.Intn(Size))}
	case n <= 28:
		return DirectionAction{Kind: MakeLeaf, Lifespan: randomLifespan(rng)}
	case n <= 40:
		return DirectionAction{Kind: MakeRoot, Lifespan: randomLifespan(rng)}
	case n <= 50:
		return DirectionAction{Kind: MakeReactor, Lifespan: randomLifespan(rng)}
	case n <= 60:
		return DirectionAction{Kind: MakeFilter, Lifespan: randomLifespan(rng)}
	case n <= 66:
		return DirectionAction{Kind: CreateSeed, Lifespan: randomLifespan(rng)}
	case n <= 76:
		return DirectionAction{Kind: KillCell}
	default:
		return DirectionAction{Kind: Nothing}
	}
}

// RandomAction draws a non-directional action.
func RandomAction(rng *rand.Rand) Action {
	switch rng.Intn(5) {
	case 0:
		return Action{Kind: ActionPullOrganics, Dir: grid.Cardinals[rng.Intn(4)], Amount: uint8(1 + rng.Intn(16))}
	case 1:
		return Action{Kind: ActionPushOrganics, Dir: grid.Cardinals[rng.Intn(4)], Amount: uint8(1 + rng.Intn(16))}
	case 2:
		return Action{Kind: ActionJump, Gene: uint8(rng.Intn(Size))}
	case 3:
		return Action{Kind: ActionKillDiagonal, Dir: grid.Diagonals[rng.Intn(4)]}
	default:
		return Action{Kind: ActionNothing}
	}
}

// RandomCondition draws a condition opcode.
func RandomCondition(rng *rand.Rand) Condition {
	return Condition(rng.Intn(int(NumConditions)))
}

func randomLifespan(rng *rand.Rand) uint8 {
	return uint8(1 + rng.Intn(254))
}

func randomMutationRate(rng *rand.Rand) uint8 {
	return uint8(MinMutationRate + rng.Intn(MaxMutationRate-MinMutationRate+1))
}
