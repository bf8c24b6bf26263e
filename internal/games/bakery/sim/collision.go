package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

// Side is the face of B that A hit, seen from A: Left means A is on the
// left of B, Top means A came down on top of B.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideInside
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide tests two boxes given by center and full size. It reports false
// when they do not overlap, otherwise the side with the shallower
// penetration. An axis on which A does not straddle exactly one edge of B
// counts as infinitely deep; when both axes are like that the result is
// SideInside.
func Collide(aPos, aSize, bPos, bSize core.Vec2) (Side, bool) {
	a := core.NewBox(aPos, aSize)
	b := core.NewBox(bPos, bSize)
	if !a.Overlaps(b) {
		return 0, false
	}
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	xSide, xDepth := SideInside, math.Inf(1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = SideLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = SideRight, bMax.X-aMin.X
	}

	ySide, yDepth := SideInside, math.Inf(1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = SideBottom, aMax.Y-bMin.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = SideTop, bMax.Y-aMin.Y
	}

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
}

// Obstacle is a static blocking box.
type Obstacle struct {
	ID   EntityID
	Pos  core.Vec2
	Size core.Vec2
}

// GroundEvent reports that an actor landed on top of an obstacle this frame.
type GroundEvent struct {
	Actor EntityID
}

// ResolveCollisions pushes every actor out of every obstacle it overlaps.
// Overlaps are handled one at a time in obstacle order, so a later
// correction may undo an earlier one within the same frame.
func ResolveCollisions(actors []*Actor, obstacles []Obstacle) ([]GroundEvent, error) {
	var ground []GroundEvent
	for _, a := range actors {
		for _, o := range obstacles {
			side, hit := Collide(a.Pos.Truncate(), a.Size, o.Pos, o.Size)
			if !hit {
				continue
			}

			oh := o.Size.Half()
			ah := a.Size.Half()
			switch side {
			case SideLeft:
				a.Acc.X, a.Vel.X = 0, 0
				a.Pos.X = o.Pos.X - oh.X - ah.X
			case SideRight:
				a.Acc.X, a.Vel.X = 0, 0
				a.Pos.X = o.Pos.X + oh.X + ah.X
			case SideTop:
				a.Acc.Y, a.Vel.Y = 0, 0
				a.Pos.Y = o.Pos.Y + oh.Y + ah.Y
				ground = append(ground, GroundEvent{Actor: a.ID})
			case SideBottom:
				a.Acc.Y, a.Vel.Y = 0, 0
				a.Pos.Y = o.Pos.Y - oh.Y - ah.Y
			default:
				return ground, fmt.Errorf("actor %d at (%.2f, %.2f) in obstacle %d: %w",
					a.ID, a.Pos.X, a.Pos.Y, o.ID, ErrContainment)
			}
		}
	}
	return ground, nil
}
