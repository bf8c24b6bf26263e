package sim

import "github.com/vovakirdan/tui-bakery/internal/core"

// EntityID identifies an entity owned by the World.
type EntityID uint64

// NoEntity is never handed out by a World.
const NoEntity EntityID = 0

// Kind is the semantic role of a spawned entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
	KindObstacle
	KindStation
	KindPickup
	KindCake
	KindWant
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindObstacle:
		return "obstacle"
	case KindStation:
		return "station"
	case KindPickup:
		return "pickup"
	case KindCake:
		return "cake"
	case KindWant:
		return "want"
	default:
		return "unknown"
	}
}

// Visual is the display hint attached to a spawned entity.
type Visual struct {
	Name  string
	Size  core.Vec2
	Color core.Color
}

// World is the scene the simulation publishes its entities to.
//
// Spawn positions are world positions. Once an entity is reparented,
// SetLocalTransform positions it relative to its parent.
type World interface {
	Spawn(kind Kind, pos core.Vec3, v Visual, tags ...string) EntityID
	Despawn(id EntityID)
	DespawnRecursive(id EntityID)
	Reparent(child, parent EntityID)
	SetLocalTransform(id EntityID, pos core.Vec3, scale float64)
}
