package sim

import (
	"time"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

// ActorSpec places an actor at session start.
type ActorSpec struct {
	Pos    core.Vec3
	Size   core.Vec2
	Visual Visual
}

// ObstacleSpec places a static blocking box.
type ObstacleSpec struct {
	Pos    core.Vec3
	Size   core.Vec2
	Visual Visual
}

// StationSpec places a counter, table or bin. A zero Solid size makes the
// station walk-through; otherwise it also blocks like an obstacle.
type StationSpec struct {
	Pos     core.Vec3
	Trigger core.Vec2
	Solid   core.Vec2
	Visual  Visual
}

// ItemSpec is the canonical spawn of one ingredient type.
type ItemSpec struct {
	Type    ItemType
	Spawn   core.Vec3
	Trigger core.Vec2
	Visual  Visual
}

// CarrySpec describes how carried things are drawn relative to their carrier.
type CarrySpec struct {
	Spacing    float64   // horizontal distance between carried ingredients
	Height     float64   // vertical offset of carried ingredients
	Scale      float64   // scale of carried ingredients
	CakeOffset core.Vec3 // offset of the carried cake
	WantOffset core.Vec3 // offset of the cake a customer asks for
}

// Layout is everything a session is built from.
type Layout struct {
	Physics  Physics
	Capacity int
	Duration time.Duration // <= 0 for an untimed session

	Player    *ActorSpec
	Customer  *ActorSpec
	Obstacles []ObstacleSpec
	Counter   *StationSpec
	Table     *StationSpec
	Bin       *StationSpec

	Items   []ItemSpec
	Cakes   map[CakeType]Visual
	Recipes []Recipe
	Carry   CarrySpec
}

// carryOffsets precomputes, for every occupancy count, where each carried
// ingredient sits so the row stays centered over the carrier.
func carryOffsets(capacity int, c CarrySpec) [][]core.Vec3 {
	table := make([][]core.Vec3, capacity+1)
	for n := 1; n <= capacity; n++ {
		row := make([]core.Vec3, n)
		mid := float64(n-1) / 2
		for i := range row {
			row[i] = core.V3((float64(i)-mid)*c.Spacing, c.Height, 10)
		}
		table[n] = row
	}
	return table
}
