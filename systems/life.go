package systems

import (
	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/grid"
)

// UpdateArea runs the full per-cell pipeline on one stencil: soil
// diffusion, air diffusion, then the life update of the center cell.
func UpdateArea(area Area, env *Env) {
	DiffuseSoil(area)
	DiffuseAir(area)
	UpdateLife(area, env)
}

// UpdateLife advances the center organism by one tick.
// Dead slots are left alone.
func UpdateLife(area Area, env *Env) {
	cell := area.Center()
	life := &cell.Life
	if !life.Alive {
		return
	}
	r := env.Rules

	// Lifespan
	if life.StepsToDeath == 0 {
		Kill(area, env, components.DeathLifespan)
		return
	}
	life.StepsToDeath--

	// Overflow: roots live off organics and reactors off soil energy, so
	// each is exempt from its own resource's limit.
	if (cell.Soil.Organics > r.MaxOrganicsLife && life.Role != components.RoleRoot) ||
		(cell.Soil.Energy > r.MaxEnergyLife && life.Role != components.RoleReactor) {
		Kill(area, env, components.DeathOverflow)
		return
	}

	// Upkeep
	life.Energy -= r.ConsumptionOf(life.Role)
	if life.Energy < 0 {
		Kill(area, env, components.DeathStarvation)
		return
	}

	// A non-fertile cell with nowhere to send energy either routes back
	// to its parent or dies.
	if life.EnergyTo.Count() == 0 && !life.Role.IsFertile() {
		if !rerouteToParent(area, life) {
			Kill(area, env, components.DeathOrphaned)
			return
		}
	}

	generateEnergy(area, life, r)

	if life.EnergyTo.Count() > 0 {
		transferEnergy(area, life, r)
	}

	if life.Role.IsFertile() {
		ExecuteGenome(area, env)
	}
}

// rerouteToParent turns a flagless Pipe toward its parent and clears the
// parent's flag pointing back, so the pair never feed each other.
func rerouteToParent(area Area, life *components.LifeCell) bool {
	if !life.IsPipe() || !life.HasParent() {
		return false
	}

	dir := life.ParentDir
	life.ParentDir = grid.Center

	parent := &area.Dir(dir).Life
	if !parent.Alive {
		return false
	}
	life.EnergyTo.Set(dir, true)
	parent.EnergyTo.Set(dir.Opposite(), false)
	return true
}

// Kill removes the center organism, returning its matter to soil and air,
// and detaches every cardinal neighbor's routing from it.
func Kill(area Area, env *Env, cause components.DeathCause) {
	cell := area.Center()
	life := &cell.Life
	if !life.Alive {
		return
	}
	r := env.Rules

	organics := r.DeathOrganics[life.Role]
	cell.Soil.AddOrganics(organics)
	cell.Soil.Energy += max(life.Energy, 0) * r.KillSoilEnergyShare
	if organics > 0 {
		cell.Air.AddPollution(max(organics/r.KillPollutionDivisor, 1))
	}

	env.died(life, cause)
	*life = components.LifeCell{}

	for _, d := range grid.Cardinals {
		n := &area.Dir(d).Life
		if !n.Alive {
			continue
		}
		back := d.Opposite()
		n.EnergyTo.Set(back, false)
		if n.ParentDir == back {
			n.ParentDir = grid.Center
		}
	}
}
