package genome

// Condition is a boolean test over the stencil, the cell itself, a random
// draw or the tick count, parameterized by an 8-bit threshold. Evaluation
// lives with the world update code; this package only defines the opcodes.
type Condition uint8

const (
	Always Condition = iota
	Never
	RandomBelow
	EnergyAbove
	EnergyBelow

	UpAlive
	DownAlive
	LeftAlive
	RightAlive
	AnyNeighborAlive
	AllNeighborsAlive

	// OrganicsNearLethal holds when center organics are within param of the
	// lethal maximum; SoilEnergyNearLethal likewise for soil energy.
	OrganicsNearLethal
	SoilEnergyNearLethal

	OrganicsAbove
	OrganicsBelow
	SoilEnergyAbove
	SoilEnergyBelow
	PollutionAbove
	PollutionBelow

	UpOrganicsAbove
	DownOrganicsAbove
	LeftOrganicsAbove
	RightOrganicsAbove

	UpPollutionAbove
	DownPollutionAbove
	LeftPollutionAbove
	RightPollutionAbove

	UpSoilEnergyAbove
	DownSoilEnergyAbove
	LeftSoilEnergyAbove
	RightSoilEnergyAbove

	TickDivisible

	NumConditions
)

var conditionNames = [NumConditions]string{
	"always", "never", "random_below", "energy_above", "energy_below",
	"up_alive", "down_alive", "left_alive", "right_alive", "any_neighbor_alive", "all_neighbors_alive",
	"organics_near_lethal", "soil_energy_near_lethal",
	"organics_above", "organics_below", "soil_energy_above", "soil_energy_below",
	"pollution_above", "pollution_below",
	"up_organics_above", "down_organics_above", "left_organics_above", "right_organics_above",
	"up_pollution_above", "down_pollution_above", "left_pollution_above", "right_pollution_above",
	"up_soil_energy_above", "down_soil_energy_above", "left_soil_energy_above", "right_soil_energy_above",
	"tick_divisible",
}

func (c Condition) String() string {
	if c < NumConditions {
		return conditionNames[c]
	}
	return "invalid"
}
