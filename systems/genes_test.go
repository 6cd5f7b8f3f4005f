package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
)

func TestStemMakesLeafAndBecomesPipe(t *testing.T) {
	env, rec := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Up = genome.DirectionAction{Kind: genome.MakeLeaf, Lifespan: 50}
	gene.SelfLifespan = 30
	g.Get(2, 2).Life = stemWith(gene, 10)

	UpdateArea(grid.NewArea(g, 2, 2), env)

	child := g.Get(2, 1).Life
	if !child.Alive || child.Role != components.RoleLeaf {
		t.Fatalf("up neighbor = %+v, want a living leaf", child)
	}
	if child.ParentDir != grid.Down {
		t.Errorf("child parent = %s, want down", child.ParentDir)
	}
	if child.StepsToDeath != 50 {
		t.Errorf("child steps = %d, want 50", child.StepsToDeath)
	}
	if !child.EnergyTo.Down || child.EnergyTo.Count() != 1 {
		t.Errorf("child flags = %s, want -D--", child.EnergyTo)
	}
	if !almostEqual(float64(child.Energy), 0.8, 1e-6) {
		t.Errorf("child energy = %f, want 0.8", child.Energy)
	}

	parent := g.Get(2, 2).Life
	if parent.Role != components.RolePipe {
		t.Errorf("parent role = %s, want pipe", parent.Role)
	}
	if parent.Genome != nil {
		t.Error("pipe should drop its genome")
	}
	if parent.StepsToDeath != 30 {
		t.Errorf("parent steps = %d, want self lifespan 30", parent.StepsToDeath)
	}
	if len(rec.births) != 1 || rec.births[0] != components.RoleLeaf {
		t.Errorf("births = %v, want one leaf", rec.births)
	}
}

func TestMultiplySelfEnergyAccounting(t *testing.T) {
	env, _ := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Up = genome.DirectionAction{Kind: genome.MultiplySelf, Lifespan: 20, NextGene: 3}
	gene.Down = genome.DirectionAction{Kind: genome.KillCell} // empty target, still reserved
	gene.SelfLifespan = 40
	g.Get(2, 2).Life = stemWith(gene, 10)

	UpdateLife(grid.NewArea(g, 2, 2), env)

	caps := env.Rules.Capacities
	cost := caps[genome.MultiplySelf] + caps[genome.KillCell]

	parent := g.Get(2, 2).Life
	if want := 10 - 0.1 - cost; !almostEqual(float64(parent.Energy), float64(want), 1e-5) {
		t.Errorf("parent energy = %f, want %f", parent.Energy, want)
	}
	if !parent.EnergyTo.Up {
		t.Error("parent should route toward its stem child")
	}

	child := g.Get(2, 1).Life
	if child.Role != components.RoleStem || child.Genome == nil {
		t.Fatalf("child = %+v, want a stem with a genome", child)
	}
	if want := 0.8 * caps[genome.MultiplySelf]; !almostEqual(float64(child.Energy), float64(want), 1e-6) {
		t.Errorf("child energy = %f, want %f", child.Energy, want)
	}
	if child.Genome.Active != 3 {
		t.Errorf("child active gene = %d, want 3", child.Genome.Active)
	}
	if child.StepsToDeath != 20 || child.ParentDir != grid.Down {
		t.Errorf("child steps/parent = %d/%s, want 20/down", child.StepsToDeath, child.ParentDir)
	}
	if child.EnergyTo.Count() != 0 {
		t.Errorf("stem child flags = %s, want none", child.EnergyTo)
	}
}

func TestCreateSeedResetsToSeedGene(t *testing.T) {
	env, _ := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Left = genome.DirectionAction{Kind: genome.CreateSeed, Lifespan: 9}
	stem := stemWith(gene, 10)
	stem.Genome.Seed = 7
	g.Get(2, 2).Life = stem

	UpdateLife(grid.NewArea(g, 2, 2), env)

	child := g.Get(1, 2).Life
	if child.Role != components.RoleStem {
		t.Fatalf("left neighbor role = %s, want stem", child.Role)
	}
	if child.Genome.Active != 7 {
		t.Errorf("child active gene = %d, want seed 7", child.Genome.Active)
	}
	if child.Genome == stem.Genome {
		t.Error("child shares the parent's genome")
	}
}

func TestCreateSeedFoundsClade(t *testing.T) {
	env, _ := newTestEnv(1)
	env.Rules.CladeSplitChance = 1
	clades := NewCladeRegistry()
	env.Clades = clades
	env.Events = clades

	root := clades.Found(0, 0)
	g := newTestWorld(5, 5)
	gene := quietGene()
	gene.Right = genome.DirectionAction{Kind: genome.CreateSeed, Lifespan: 9}
	stem := stemWith(gene, 10)
	stem.Clade = root
	g.Get(2, 2).Life = stem
	clades.CellBorn(components.RoleStem, root)

	UpdateLife(grid.NewArea(g, 2, 2), env)

	child := g.Get(3, 2).Life
	if child.Clade == root || child.Clade == 0 {
		t.Fatalf("child clade = %d, want a new clade", child.Clade)
	}
	if clades.ActiveCount() != 2 {
		t.Errorf("active clades = %d, want 2", clades.ActiveCount())
	}
	if s, ok := clades.Stats(child.Clade); !ok || s.Alive != 1 {
		t.Errorf("new clade stats = %+v, %v", s, ok)
	}
}

func TestInsufficientEnergySkipsDirections(t *testing.T) {
	env, rec := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Up = genome.DirectionAction{Kind: genome.MakeReactor, Lifespan: 5}
	g.Get(2, 2).Life = stemWith(gene, 1.4) // 1.3 after upkeep, below the 1.4 reserve

	UpdateLife(grid.NewArea(g, 2, 2), env)

	if g.Get(2, 1).Life.Alive {
		t.Error("birth happened without enough energy")
	}
	parent := g.Get(2, 2).Life
	if parent.Role != components.RoleStem {
		t.Errorf("parent role = %s, want stem", parent.Role)
	}
	if !almostEqual(float64(parent.Energy), 1.3, 1e-6) {
		t.Errorf("parent energy = %f, want 1.3", parent.Energy)
	}
	if len(rec.births) != 0 {
		t.Errorf("births = %v", rec.births)
	}
}

func TestOccupiedTargetIsAged(t *testing.T) {
	env, _ := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Up = genome.DirectionAction{Kind: genome.MakeLeaf, Lifespan: 5}
	g.Get(2, 2).Life = stemWith(gene, 10)
	occupant := components.NewLife(components.RolePipe, 1, grid.Center, 100)
	occupant.EnergyTo.Set(grid.Up, true)
	g.Get(2, 1).Life = occupant

	UpdateLife(grid.NewArea(g, 2, 2), env)

	got := g.Get(2, 1).Life
	if got.Role != components.RolePipe {
		t.Fatalf("occupant replaced by %s", got.Role)
	}
	if got.StepsToDeath != 90 {
		t.Errorf("occupant steps = %d, want 90", got.StepsToDeath)
	}
	if g.Get(2, 2).Life.Role != components.RoleStem {
		t.Error("failed birth should not turn the stem into a pipe")
	}
}

func TestStemBirthSkipsOccupiedTarget(t *testing.T) {
	for _, kind := range []genome.DirectionActionKind{genome.MultiplySelf, genome.CreateSeed} {
		t.Run(kind.String(), func(t *testing.T) {
			env, rec := newTestEnv(1)
			g := newTestWorld(5, 5)

			gene := quietGene()
			gene.Up = genome.DirectionAction{Kind: kind, Lifespan: 5}
			g.Get(2, 2).Life = stemWith(gene, 10)
			occupant := components.NewLife(components.RolePipe, 1, grid.Center, 100)
			occupant.EnergyTo.Set(grid.Up, true)
			g.Get(2, 1).Life = occupant

			UpdateLife(grid.NewArea(g, 2, 2), env)

			got := g.Get(2, 1).Life
			if got.Role != components.RolePipe || got.StepsToDeath != 100 {
				t.Errorf("occupant = %s with %d steps, want untouched pipe with 100", got.Role, got.StepsToDeath)
			}
			if len(rec.births) != 0 {
				t.Errorf("births = %v, want none", rec.births)
			}
			if g.Get(2, 2).Life.Role != components.RoleStem {
				t.Error("failed birth should not turn the stem into a pipe")
			}
		})
	}
}

func TestKillCellAbsorbsOccupant(t *testing.T) {
	env, _ := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Right = genome.DirectionAction{Kind: genome.KillCell}
	g.Get(2, 2).Life = stemWith(gene, 10)
	victim := components.NewLife(components.RoleLeaf, 6, grid.Center, 100)
	victim.EnergyTo.Set(grid.Right, true)
	g.Get(3, 2).Life = victim

	UpdateLife(grid.NewArea(g, 2, 2), env)

	if e := g.Get(2, 2).Life.Energy; !almostEqual(float64(e), 10-0.1-2+6, 1e-5) {
		t.Errorf("killer energy = %f, want 13.9", e)
	}
	v := g.Get(3, 2).Life
	if v.Energy != 0 || v.StepsToDeath != 0 {
		t.Errorf("victim energy/steps = %f/%d, want 0/0", v.Energy, v.StepsToDeath)
	}

	// The victim dies on its own turn.
	UpdateLife(grid.NewArea(g, 3, 2), env)
	if g.Get(3, 2).Life.Alive {
		t.Error("victim survived its next update")
	}
}

func TestSecondaryDispatchPreemptsDirections(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 genome.Condition
		pulled int // which neighbor the fired action pulls from, -1 for none
	}{
		{"true/true", genome.Always, genome.Always, 0},
		{"true/false", genome.Always, genome.Never, 1},
		{"false/true", genome.Never, genome.Always, 2},
		{"false/false", genome.Never, genome.Never, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := newTestEnv(1)
			g := newTestWorld(5, 5)

			gene := quietGene()
			gene.SecondaryCondition1 = tt.c1
			gene.SecondaryCondition2 = tt.c2
			gene.SecondaryAction1 = genome.Action{Kind: genome.ActionPullOrganics, Dir: grid.Up, Amount: 3}
			gene.SecondaryAction2 = genome.Action{Kind: genome.ActionPullOrganics, Dir: grid.Down, Amount: 3}
			gene.SecondaryAction3 = genome.Action{Kind: genome.ActionPullOrganics, Dir: grid.Left, Amount: 3}
			gene.Right = genome.DirectionAction{Kind: genome.MakeLeaf, Lifespan: 5}
			g.Get(2, 2).Life = stemWith(gene, 10)

			area := grid.NewArea(g, 2, 2)
			for _, d := range []grid.Direction{grid.Up, grid.Down, grid.Left} {
				area.Dir(d).Soil.Organics = 10
			}

			ExecuteGenome(area, env)

			for i, d := range []grid.Direction{grid.Up, grid.Down, grid.Left} {
				want := uint8(10)
				if i == tt.pulled {
					want = 7
				}
				if got := area.Dir(d).Soil.Organics; got != want {
					t.Errorf("%s organics = %d, want %d", d, got, want)
				}
			}

			born := area.Right().Life.Alive
			if born != (tt.pulled == -1) {
				t.Errorf("directional birth = %v, want %v", born, tt.pulled == -1)
			}
		})
	}
}

func TestBranchDispatchJumps(t *testing.T) {
	env, _ := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Condition1 = genome.Never
	gene.Condition2 = genome.Always
	gene.AltGene1, gene.AltGene2, gene.AltGene3 = 4, 5, 6
	gene.Up = genome.DirectionAction{Kind: genome.MakeLeaf, Lifespan: 5}
	g.Get(2, 2).Life = stemWith(gene, 10)

	area := grid.NewArea(g, 2, 2)
	ExecuteGenome(area, env)

	if got := area.Center().Life.Genome.Active; got != 6 {
		t.Errorf("active gene = %d, want 6", got)
	}
	if area.Up().Life.Alive {
		t.Error("branch jump should skip directional actions")
	}
}

func TestConditionalStepsIgnoreBirthReserve(t *testing.T) {
	env, rec := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.Condition1 = genome.Always
	gene.AltGene1, gene.AltGene2, gene.AltGene3 = 7, 7, 7
	gene.Up = genome.DirectionAction{Kind: genome.MakeReactor, Lifespan: 5}
	g.Get(2, 2).Life = stemWith(gene, 1)

	area := grid.NewArea(g, 2, 2)
	ExecuteGenome(area, env)

	if got := area.Center().Life.Genome.Active; got != 7 {
		t.Errorf("active gene = %d, want 7", got)
	}
	if e := area.Center().Life.Energy; e != 1 {
		t.Errorf("energy = %f, want 1 with nothing reserved", e)
	}
	if len(rec.births) != 0 {
		t.Errorf("births = %v, want none", rec.births)
	}
}

func TestPrimaryActionKillsDiagonal(t *testing.T) {
	env, rec := newTestEnv(1)
	g := newTestWorld(5, 5)

	gene := quietGene()
	gene.MainCondition = genome.Always
	gene.MainAction = genome.Action{Kind: genome.ActionKillDiagonal, Dir: grid.DownRight}
	g.Get(2, 2).Life = stemWith(gene, 10)
	g.Get(3, 3).Life = components.NewLife(components.RoleRoot, 4, grid.Center, 100)

	ExecuteGenome(grid.NewArea(g, 2, 2), env)

	if g.Get(3, 3).Life.Alive {
		t.Fatal("diagonal neighbor survived")
	}
	if len(rec.deaths) != 1 || rec.deaths[0].cause != components.DeathKilled {
		t.Errorf("deaths = %+v, want one killed", rec.deaths)
	}
	if g.Get(3, 3).Soil.Organics != 2 {
		t.Errorf("organics under victim = %d, want 2", g.Get(3, 3).Soil.Organics)
	}
}

func TestOrganicsMoveRejectsDiagonal(t *testing.T) {
	env, _ := newTestEnv(1)
	g := newTestWorld(5, 5)
	g.Get(2, 2).Life = stemWith(quietGene(), 10)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a diagonal organics move")
		}
	}()
	executeAction(grid.NewArea(g, 2, 2), env, genome.Action{Kind: genome.ActionPushOrganics, Dir: grid.UpLeft, Amount: 1})
}

func TestMoveOrganicsBounds(t *testing.T) {
	from := components.SoilCell{Organics: 2}
	to := components.SoilCell{Organics: 254}

	moveOrganics(&from, &to, 10)

	if from.Organics != 1 || to.Organics != 255 {
		t.Errorf("from/to = %d/%d, want 1/255", from.Organics, to.Organics)
	}
}

func TestEvaluateConditionDoesNotWrite(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	env, _ := newTestEnv(2)
	g := newTestWorld(6, 6)

	for i := range g.Cells() {
		c := &g.Cells()[i]
		c.Soil.Organics = uint8(rng.Intn(256))
		c.Soil.Energy = rng.Float32() * 50
		c.Air.Pollution = uint8(rng.Intn(256))
		if rng.Intn(2) == 0 {
			c.Life = components.NewLife(components.Role(rng.Intn(int(components.NumRoles))), rng.Float32()*20, grid.Center, 10)
		}
	}
	snapshot := append([]components.WorldCell(nil), g.Cells()...)

	for c := genome.Condition(0); c < genome.NumConditions; c++ {
		for _, param := range []uint8{0, 1, 7, 128, 255} {
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					EvaluateCondition(c, param, grid.NewArea(g, x, y), env)
				}
			}
		}
	}

	for i := range snapshot {
		if g.Cells()[i] != snapshot[i] {
			t.Fatalf("cell %d changed during condition evaluation", i)
		}
	}
}

func TestEvaluateCondition(t *testing.T) {
	env, _ := newTestEnv(1)
	env.Tick = 12
	g := newTestWorld(3, 3)
	area := grid.NewArea(g, 1, 1)

	area.Center().Life = components.NewLife(components.RolePipe, 5, grid.Center, 10)
	area.Center().Soil = components.SoilCell{Organics: 195, Energy: 3}
	area.Center().Air.Pollution = 40
	area.Up().Life = components.NewLife(components.RolePipe, 1, grid.Center, 10)
	area.Left().Soil.Organics = 9
	area.Right().Air.Pollution = 2
	area.Down().Soil.Energy = 1.5

	tests := []struct {
		c     genome.Condition
		param uint8
		want  bool
	}{
		{genome.Always, 0, true},
		{genome.Never, 0, false},
		{genome.RandomBelow, 0, false},
		{genome.EnergyAbove, 4, true},
		{genome.EnergyBelow, 4, false},
		{genome.UpAlive, 0, true},
		{genome.DownAlive, 0, false},
		{genome.AnyNeighborAlive, 0, true},
		{genome.AllNeighborsAlive, 0, false},
		{genome.OrganicsNearLethal, 5, true},
		{genome.OrganicsNearLethal, 4, false},
		{genome.OrganicsAbove, 194, true},
		{genome.OrganicsBelow, 194, false},
		{genome.SoilEnergyAbove, 2, true},
		{genome.SoilEnergyBelow, 2, false},
		{genome.PollutionAbove, 40, false},
		{genome.PollutionBelow, 41, true},
		{genome.LeftOrganicsAbove, 8, true},
		{genome.UpOrganicsAbove, 0, false},
		{genome.RightPollutionAbove, 1, true},
		{genome.DownSoilEnergyAbove, 1, true},
		{genome.LeftSoilEnergyAbove, 0, false},
		{genome.TickDivisible, 4, true},
		{genome.TickDivisible, 5, false},
		{genome.TickDivisible, 0, true},
	}

	for _, tt := range tests {
		if got := EvaluateCondition(tt.c, tt.param, area, env); got != tt.want {
			t.Errorf("%s(%d) = %v, want %v", tt.c, tt.param, got, tt.want)
		}
	}
}
