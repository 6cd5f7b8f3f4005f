package components

// DeathCause records why a living cell was removed.
type DeathCause uint8

const (
	DeathLifespan   DeathCause = iota // steps_to_death ran out
	DeathOverflow                     // soil organics or energy beneath it went lethal
	DeathStarvation                   // energy dropped below zero after upkeep
	DeathOrphaned                     // no routing flags and nowhere to reroute
	DeathKilled                       // killed by a neighbor's diagonal strike

	NumDeathCauses
)

var deathCauseNames = [NumDeathCauses]string{"lifespan", "overflow", "starvation", "orphaned", "killed"}

func (c DeathCause) String() string {
	if c < NumDeathCauses {
		return deathCauseNames[c]
	}
	return "invalid"
}
