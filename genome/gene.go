package genome

import "github.com/pthm-cable/spectaculife/grid"

// DirectionActionKind selects what a gene does toward one cardinal neighbor.
type DirectionActionKind uint8

const (
	Nothing DirectionActionKind = iota
	MakeLeaf
	MakeRoot
	MakeReactor
	MakeFilter
	MultiplySelf
	CreateSeed
	KillCell

	numDirectionActionKinds
)

var directionActionNames = [numDirectionActionKinds]string{
	"nothing", "make_leaf", "make_root", "make_reactor", "make_filter",
	"multiply_self", "create_seed", "kill_cell",
}

func (k DirectionActionKind) String() string {
	if k < numDirectionActionKinds {
		return directionActionNames[k]
	}
	return "invalid"
}

// DirectionAction is a birth or kill instruction for one neighbor.
// Lifespan applies to every birth kind; NextGene only to MultiplySelf.
type DirectionAction struct {
	Kind     DirectionActionKind
	Lifespan uint8
	NextGene uint8
}

// IsBirth reports whether the action spawns a cell into an empty neighbor.
func (a DirectionAction) IsBirth() bool {
	switch a.Kind {
	case MakeLeaf, MakeRoot, MakeReactor, MakeFilter, MultiplySelf, CreateSeed:
		return true
	}
	return false
}

// CapacityTable holds the energy reserved per direction action kind.
type CapacityTable [numDirectionActionKinds]float32

// Of returns the capacity of a single action.
func (t *CapacityTable) Of(a DirectionAction) float32 {
	return t[a.Kind]
}

// ActionKind selects a non-directional gene action.
type ActionKind uint8

const (
	ActionNothing ActionKind = iota
	ActionPullOrganics
	ActionPushOrganics
	ActionJump
	ActionKillDiagonal

	numActionKinds
)

var actionNames = [numActionKinds]string{"nothing", "pull_organics", "push_organics", "jump", "kill_diagonal"}

func (k ActionKind) String() string {
	if k < numActionKinds {
		return actionNames[k]
	}
	return "invalid"
}

// Action is a non-directional instruction.
//   - Pull/PushOrganics move up to Amount soil organics between the center
//     and the cardinal neighbor Dir.
//   - Jump sets the active gene to Gene.
//   - KillDiagonal kills the diagonal neighbor Dir.
type Action struct {
	Kind   ActionKind
	Dir    grid.Direction
	Amount uint8
	Gene   uint8
}

// Gene is one instruction of the genome program.
type Gene struct {
	Up, Down, Left, Right DirectionAction

	MainCondition Condition
	MainParam     uint8
	MainAction    Action

	SecondaryCondition1 Condition
	SecondaryCondition2 Condition
	SecondaryParam1     uint8
	SecondaryParam2     uint8
	SecondaryAction1    Action
	SecondaryAction2    Action
	SecondaryAction3    Action

	Condition1 Condition
	Condition2 Condition
	Param1     uint8
	Param2     uint8
	AltGene1   uint8
	AltGene2   uint8
	AltGene3   uint8

	// SelfLifespan resets the parent's countdown after a successful birth.
	SelfLifespan uint8
}

// Direction returns the directional action for a cardinal direction.
func (g *Gene) Direction(d grid.Direction) DirectionAction {
	switch d {
	case grid.Up:
		return g.Up
	case grid.Down:
		return g.Down
	case grid.Left:
		return g.Left
	case grid.Right:
		return g.Right
	}
	panic("genome: direction action requested for non-cardinal " + d.String())
}

// EnergyCapacity sums the reservation cost of the four directional actions.
func (g *Gene) EnergyCapacity(t *CapacityTable) float32 {
	return t.Of(g.Up) + t.Of(g.Down) + t.Of(g.Left) + t.Of(g.Right)
}

// Dispatch maps a pair of condition results onto one of three outcomes.
// It returns 0 for the false/false case, which falls through.
func Dispatch(a, b bool) int {
	switch {
	case a && b:
		return 1
	case a && !b:
		return 2
	case !a && b:
		return 3
	}
	return 0
}
