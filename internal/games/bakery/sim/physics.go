package sim

import (
	"time"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

// Actor is a kinematic entity: the player or a customer.
type Actor struct {
	ID   EntityID
	Pos  core.Vec3
	Vel  core.Vec2
	Acc  core.Vec2
	Size core.Vec2 // full collision box; the half-extent is Size/2

	JumpLock  bool
	Inventory *Inventory // player only
	Demand    *Demand    // customers only
}

// Box returns the actor's collision box.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.Pos.Truncate(), a.Size)
}

// Physics holds the tuning constants of the integrator and the controller.
type Physics struct {
	Gravity     float64 // added to Acc.Y every tick (negative is down)
	JumpImpulse float64 // added to Acc.Y once per jump
	MoveSpeed   float64 // horizontal walk speed, units per second
}

// Integrate advances every actor by one fixed tick: gravity is added to
// acceleration, acceleration is folded into velocity and cleared, and
// velocity moves the position. Speed is not clamped.
func Integrate(actors []*Actor, gravity float64, tick time.Duration) {
	dt := tick.Seconds()
	for _, a := range actors {
		a.Acc.Y += gravity

		a.Vel.X += a.Acc.X * dt
		a.Vel.Y += a.Acc.Y * dt
		a.Acc = core.Vec2{}

		a.Pos.X += a.Vel.X * dt
		a.Pos.Y += a.Vel.Y * dt
	}
}

// MoveHorizontal walks the actor directly, bypassing velocity. Left wins
// when both directions are held.
func MoveHorizontal(a *Actor, in Input, speed float64, tick time.Duration) {
	step := speed * tick.Seconds()
	switch {
	case in.Left:
		a.Pos.X -= step
	case in.Right:
		a.Pos.X += step
	}
}
