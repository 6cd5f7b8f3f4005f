package systems

import (
	"math/rand"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
)

type deathRecord struct {
	role  components.Role
	cause components.DeathCause
	clade uint32
}

// recorder captures life-cycle events for assertions.
type recorder struct {
	births []components.Role
	deaths []deathRecord
}

func (r *recorder) CellBorn(role components.Role, _ uint32) {
	r.births = append(r.births, role)
}

func (r *recorder) CellDied(role components.Role, cause components.DeathCause, clade uint32) {
	r.deaths = append(r.deaths, deathRecord{role, cause, clade})
}

func newTestWorld(w, h int) *grid.Grid[components.WorldCell] {
	return grid.New[components.WorldCell](w, h)
}

func newTestEnv(seed int64) (*Env, *recorder) {
	rec := &recorder{}
	return &Env{
		Rules:  DefaultRules(),
		Rand:   rand.New(rand.NewSource(seed)),
		Tick:   1,
		Events: rec,
	}, rec
}

// quietGene never fires a conditional action, so execution always falls
// through to the directional actions.
func quietGene() genome.Gene {
	return genome.Gene{
		MainCondition:       genome.Never,
		SecondaryCondition1: genome.Never,
		SecondaryCondition2: genome.Never,
		Condition1:          genome.Never,
		Condition2:          genome.Never,
	}
}

// stemWith builds a living Stem whose active gene is gene and which never mutates.
func stemWith(gene genome.Gene, energy float32) components.LifeCell {
	g := &genome.Genome{MutationRate: 0}
	for i := range g.Genes {
		g.Genes[i] = quietGene()
	}
	g.Genes[0] = gene
	return components.NewStem(g, energy, grid.Center, 100)
}

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
