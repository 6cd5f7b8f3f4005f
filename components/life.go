package components

import (
	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
)

// Role is the behavioral type of a living cell. Role-specific numbers
// (upkeep, organics on death, generation formulas) live in rule tables
// indexed by Role, not on the cell.
type Role uint8

const (
	RolePipe Role = iota
	RoleLeaf
	RoleRoot
	RoleReactor
	RoleFilter
	RoleStem

	NumRoles
)

var roleNames = [NumRoles]string{"pipe", "leaf", "root", "reactor", "filter", "stem"}

func (r Role) String() string {
	if r < NumRoles {
		return roleNames[r]
	}
	return "invalid"
}

// IsEnergyGenerator reports whether the role produces energy from its surroundings.
func (r Role) IsEnergyGenerator() bool {
	switch r {
	case RoleLeaf, RoleRoot, RoleReactor, RoleFilter:
		return true
	}
	return false
}

// IsFertile reports whether the role runs a genome.
func (r Role) IsFertile() bool { return r == RoleStem }

// CanTransfer reports whether the role forwards surplus energy along its routing flags.
func (r Role) CanTransfer() bool { return r.IsEnergyGenerator() || r == RolePipe }

// IsPipeRecipient reports whether the role accepts forwarded energy.
func (r Role) IsPipeRecipient() bool { return r == RolePipe || r == RoleStem }

// LifeCell is either dead (the zero value) or a living organism.
// Genome is set only for Stem cells and is owned exclusively by this cell.
type LifeCell struct {
	Alive        bool             `inspect:"bool"`
	Role         Role             `inspect:"label"`
	Energy       float32          `inspect:"label,fmt:%.2f"`
	EnergyTo     EnergyDirections `inspect:"label"`
	ParentDir    grid.Direction   `inspect:"label"` // grid.Center means no parent
	StepsToDeath uint16           `inspect:"label"`
	Clade        uint32           `inspect:"label"`
	Genome       *genome.Genome   `inspect:"skip"`
}

// NewLife builds a living cell with no routing.
func NewLife(role Role, energy float32, parent grid.Direction, lifespan uint16) LifeCell {
	return LifeCell{
		Alive:        true,
		Role:         role,
		Energy:       energy,
		ParentDir:    parent,
		StepsToDeath: lifespan,
	}
}

// NewStem builds a living Stem cell carrying g.
func NewStem(g *genome.Genome, energy float32, parent grid.Direction, lifespan uint16) LifeCell {
	l := NewLife(RoleStem, energy, parent, lifespan)
	l.Genome = g
	return l
}

// IsAlive reports whether the slot holds an organism.
func (l *LifeCell) IsAlive() bool { return l.Alive }

// HasParent reports whether the cell still references the cell that bore it.
func (l *LifeCell) HasParent() bool { return l.ParentDir != grid.Center }

// IsFertile reports whether the cell is a living Stem.
func (l *LifeCell) IsFertile() bool { return l.Alive && l.Role.IsFertile() }

// IsPipe reports whether the cell is a living Pipe.
func (l *LifeCell) IsPipe() bool { return l.Alive && l.Role == RolePipe }

// CanTransfer reports whether the cell is alive and forwards energy.
func (l *LifeCell) CanTransfer() bool { return l.Alive && l.Role.CanTransfer() }

// IsPipeRecipient reports whether the cell is alive and accepts forwarded energy.
func (l *LifeCell) IsPipeRecipient() bool { return l.Alive && l.Role.IsPipeRecipient() }

// IsEnergyGenerator reports whether the cell is alive and generates energy.
func (l *LifeCell) IsEnergyGenerator() bool { return l.Alive && l.Role.IsEnergyGenerator() }

// EnergyDirections are the four routing flags of a cell: which cardinal
// neighbors it forwards surplus energy to.
type EnergyDirections struct {
	Up, Down, Left, Right bool
}

// FromDirection returns flags with only d set.
func FromDirection(d grid.Direction) EnergyDirections {
	var e EnergyDirections
	e.Set(d, true)
	return e
}

// Get returns the flag for a cardinal direction; other directions are false.
func (e EnergyDirections) Get(d grid.Direction) bool {
	switch d {
	case grid.Up:
		return e.Up
	case grid.Down:
		return e.Down
	case grid.Left:
		return e.Left
	case grid.Right:
		return e.Right
	}
	return false
}

// Set updates the flag for a cardinal direction. Other directions are ignored.
func (e *EnergyDirections) Set(d grid.Direction, v bool) {
	switch d {
	case grid.Up:
		e.Up = v
	case grid.Down:
		e.Down = v
	case grid.Left:
		e.Left = v
	case grid.Right:
		e.Right = v
	}
}

// Count returns the number of active flags.
func (e EnergyDirections) Count() int {
	n := 0
	for _, d := range grid.Cardinals {
		if e.Get(d) {
			n++
		}
	}
	return n
}

func (e EnergyDirections) String() string {
	b := []byte("----")
	for i, d := range grid.Cardinals {
		if e.Get(d) {
			b[i] = "UDLR"[i]
		}
	}
	return string(b)
}
