package components

import (
	"testing"

	"github.com/pthm-cable/spectaculife/grid"
)

func TestEnergyDirections(t *testing.T) {
	var e EnergyDirections
	if e.Count() != 0 {
		t.Fatalf("zero value count = %d", e.Count())
	}

	e.Set(grid.Up, true)
	e.Set(grid.Right, true)
	e.Set(grid.UpLeft, true) // ignored

	if e.Count() != 2 {
		t.Errorf("count = %d, want 2", e.Count())
	}
	if !e.Get(grid.Up) || !e.Get(grid.Right) || e.Get(grid.Down) || e.Get(grid.Left) {
		t.Errorf("unexpected flags %s", e)
	}
	if e.String() != "U--R" {
		t.Errorf("String() = %q, want U--R", e.String())
	}

	for _, d := range grid.Cardinals {
		f := FromDirection(d)
		if f.Count() != 1 || !f.Get(d) {
			t.Errorf("FromDirection(%s) = %s", d, f)
		}
	}
}

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role                                 Role
		generator, fertile, transfer, accept bool
	}{
		{RolePipe, false, false, true, true},
		{RoleLeaf, true, false, true, false},
		{RoleRoot, true, false, true, false},
		{RoleReactor, true, false, true, false},
		{RoleFilter, true, false, true, false},
		{RoleStem, false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := tt.role.IsEnergyGenerator(); got != tt.generator {
				t.Errorf("IsEnergyGenerator = %v", got)
			}
			if got := tt.role.IsFertile(); got != tt.fertile {
				t.Errorf("IsFertile = %v", got)
			}
			if got := tt.role.CanTransfer(); got != tt.transfer {
				t.Errorf("CanTransfer = %v", got)
			}
			if got := tt.role.IsPipeRecipient(); got != tt.accept {
				t.Errorf("IsPipeRecipient = %v", got)
			}
		})
	}
}

func TestDeadCellPredicates(t *testing.T) {
	var dead LifeCell
	if dead.IsAlive() || dead.IsPipeRecipient() || dead.CanTransfer() || dead.IsFertile() {
		t.Error("zero LifeCell should be dead with no capabilities")
	}
	if dead.HasParent() {
		t.Error("zero LifeCell should have no parent")
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	if SaturatingAdd(250, 10) != 255 {
		t.Error("SaturatingAdd should clamp at 255")
	}
	if SaturatingAdd(3, 4) != 7 {
		t.Error("SaturatingAdd(3,4) != 7")
	}
	if SaturatingSub(3, 10) != 0 {
		t.Error("SaturatingSub should clamp at 0")
	}
	if FloatToOrganics(-1) != 0 || FloatToOrganics(300) != 255 || FloatToOrganics(4.9) != 4 {
		t.Error("FloatToOrganics conversion wrong")
	}

	var s SoilCell
	s.Organics = 254
	s.AddOrganics(5)
	if s.Organics != 255 {
		t.Errorf("AddOrganics saturated to %d", s.Organics)
	}
}
