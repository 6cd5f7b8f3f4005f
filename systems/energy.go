package systems

import (
	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/grid"
)

// generateEnergy applies the role's generation formula. Pipes and stems
// generate nothing.
func generateEnergy(area Area, life *components.LifeCell, r *Rules) {
	if !life.IsEnergyGenerator() {
		return
	}
	center := area.Center()

	switch life.Role {
	case components.RoleLeaf:
		yield := r.Leaf.Yield / max(float32(center.Air.Pollution)/r.Leaf.PollutionScale, 1)
		life.Energy += yield
		center.Soil.Energy += yield * r.Leaf.SoilShare

	case components.RoleRoot:
		var total float32
		area.Each(func(_ grid.Direction, c *components.WorldCell) {
			drained := drainStock(&c.Soil.Organics, r.Root.SmallStock, r.Root.DrainFraction)
			total += float32(drained)
			// Only fractional drains of larger stocks release pollution.
			if drained > 0 && c.Soil.Organics+drained > r.Root.SmallStock {
				c.Air.AddPollution(drained)
			}
		})
		life.Energy += total * r.Root.EnergyYield
		center.Soil.Energy += total * r.Root.SoilShare

	case components.RoleReactor:
		var total float32
		area.Each(func(_ grid.Direction, c *components.WorldCell) {
			e := c.Soil.Energy * r.Reactor.DrainFraction
			c.Soil.Energy -= e
			total += e
		})
		life.Energy += total * r.Reactor.EnergyYield
		center.Soil.AddOrganics(components.FloatToOrganics(total * r.Reactor.OrganicsYield))

	case components.RoleFilter:
		var total float32
		area.Each(func(_ grid.Direction, c *components.WorldCell) {
			total += float32(drainStock(&c.Air.Pollution, r.Filter.SmallStock, r.Filter.DrainFraction))
		})
		life.Energy += total * r.Filter.EnergyYield
		center.Soil.AddOrganics(components.FloatToOrganics(total * r.Filter.OrganicsYield))
	}
}

// drainStock takes one unit from a small stock, or a truncated fraction
// from a larger one, and returns the amount taken.
func drainStock(stock *uint8, small uint8, fraction float32) uint8 {
	v := *stock
	if v == 0 {
		return 0
	}
	var n uint8
	if v <= small {
		n = 1
	} else {
		n = components.FloatToOrganics(float32(v) * fraction)
	}
	*stock = components.SaturatingSub(v, n)
	return n
}

// transferEnergy splits the surplus over the active routing flags. Flags
// toward cells that cannot accept energy are cleared, and only what was
// actually delivered leaves the sender.
func transferEnergy(area Area, life *components.LifeCell, r *Rules) {
	if !life.Role.CanTransfer() {
		return
	}

	var surplus float32
	if life.StepsToDeath == 0 {
		// Last living tick: send everything.
		surplus = life.Energy
	} else {
		surplus = max(life.Energy-r.TransferMargin*r.ConsumptionOf(life.Role), 0)
	}
	if surplus <= 0 {
		return
	}

	share := surplus / float32(life.EnergyTo.Count())
	var delivered float32
	for _, d := range grid.Cardinals {
		if !life.EnergyTo.Get(d) {
			continue
		}
		target := &area.Dir(d).Life
		if !target.IsPipeRecipient() || target == life {
			life.EnergyTo.Set(d, false)
			continue
		}
		target.Energy += share
		delivered += share
	}
	life.Energy -= delivered
}
