package systems

import (
	"fmt"

	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
)

// EvaluateCondition tests c against the stencil and the center organism.
// It never writes to the grid; the only state it may advance is env.Rand.
func EvaluateCondition(c genome.Condition, param uint8, area Area, env *Env) bool {
	center := area.Center()
	life := &center.Life
	p := float32(param)

	switch c {
	case genome.Always:
		return true
	case genome.Never:
		return false
	case genome.RandomBelow:
		return env.Rand.Intn(256) < int(param)
	case genome.EnergyAbove:
		return life.Energy > p
	case genome.EnergyBelow:
		return life.Energy < p

	case genome.UpAlive, genome.DownAlive, genome.LeftAlive, genome.RightAlive:
		return area.Dir(cardinalOf(c, genome.UpAlive)).Life.Alive
	case genome.AnyNeighborAlive:
		for _, d := range grid.Cardinals {
			if area.Dir(d).Life.Alive {
				return true
			}
		}
		return false
	case genome.AllNeighborsAlive:
		for _, d := range grid.Cardinals {
			if !area.Dir(d).Life.Alive {
				return false
			}
		}
		return true

	case genome.OrganicsNearLethal:
		return int(center.Soil.Organics)+int(param) >= int(env.Rules.MaxOrganicsLife)
	case genome.SoilEnergyNearLethal:
		return center.Soil.Energy+p >= env.Rules.MaxEnergyLife

	case genome.OrganicsAbove:
		return center.Soil.Organics > param
	case genome.OrganicsBelow:
		return center.Soil.Organics < param
	case genome.SoilEnergyAbove:
		return center.Soil.Energy > p
	case genome.SoilEnergyBelow:
		return center.Soil.Energy < p
	case genome.PollutionAbove:
		return center.Air.Pollution > param
	case genome.PollutionBelow:
		return center.Air.Pollution < param

	case genome.UpOrganicsAbove, genome.DownOrganicsAbove, genome.LeftOrganicsAbove, genome.RightOrganicsAbove:
		return area.Dir(cardinalOf(c, genome.UpOrganicsAbove)).Soil.Organics > param
	case genome.UpPollutionAbove, genome.DownPollutionAbove, genome.LeftPollutionAbove, genome.RightPollutionAbove:
		return area.Dir(cardinalOf(c, genome.UpPollutionAbove)).Air.Pollution > param
	case genome.UpSoilEnergyAbove, genome.DownSoilEnergyAbove, genome.LeftSoilEnergyAbove, genome.RightSoilEnergyAbove:
		return area.Dir(cardinalOf(c, genome.UpSoilEnergyAbove)).Soil.Energy > p

	case genome.TickDivisible:
		return env.Tick%int64(max(param, 1)) == 0
	}

	panic(fmt.Sprintf("systems: unknown condition %d", c))
}

// cardinalOf maps a member of an Up/Down/Left/Right condition group onto
// its direction. Groups are declared in grid.Cardinals order.
func cardinalOf(c, first genome.Condition) grid.Direction {
	return grid.Cardinals[c-first]
}
