package sim

import "github.com/vovakirdan/tui-bakery/internal/core"

// ZoneRole tags what an interactive zone does when the player is inside.
type ZoneRole int

const (
	RolePickup ZoneRole = iota
	RoleOrderCounter
	RoleCraftingStation
	RoleDisposalBin
)

func (r ZoneRole) String() string {
	switch r {
	case RolePickup:
		return "pickup"
	case RoleOrderCounter:
		return "counter"
	case RoleCraftingStation:
		return "table"
	case RoleDisposalBin:
		return "bin"
	default:
		return "unknown"
	}
}

// Zone is a non-blocking trigger area. Its trigger size may differ from the
// size of whatever is drawn or collided with at the same spot.
type Zone struct {
	ID      EntityID
	Role    ZoneRole
	Pos     core.Vec2
	Trigger core.Vec2
}

// Box returns the trigger box.
func (z Zone) Box() core.Box {
	return core.NewBox(z.Pos, z.Trigger)
}

// Overlaps reports whether the actor's collision box overlaps the zone.
// There is no memory of previous frames: an actor standing in a zone
// overlaps it every frame.
func Overlaps(z Zone, a *Actor) bool {
	return z.Box().Overlaps(a.Box())
}

// Pickup is a free-standing ingredient waiting to be collected.
type Pickup struct {
	Zone
	Item ItemType
}
