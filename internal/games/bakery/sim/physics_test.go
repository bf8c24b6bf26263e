package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

func TestIntegrateGravityMonotonic(t *testing.T) {
	a := &Actor{ID: 1, Pos: core.V3(0, 100, 0), Size: core.V2(32, 32)}

	prevVel := a.Vel.Y
	prevY := a.Pos.Y
	for i := 0; i < 120; i++ {
		Integrate([]*Actor{a}, -900, testTick)
		require.Less(t, a.Vel.Y, prevVel, "tick %d: vertical velocity must keep falling", i)
		require.Less(t, a.Pos.Y, prevY, "tick %d: actor must keep falling", i)
		prevVel, prevY = a.Vel.Y, a.Pos.Y
	}
	assert.Equal(t, core.Vec2{}, a.Acc, "acceleration is cleared after integration")
}

func TestIntegrateImpulseIsOneShot(t *testing.T) {
	a := &Actor{ID: 1}
	a.Acc.Y = 6000

	Integrate([]*Actor{a}, 0, testTick)
	assert.InDelta(t, 100, a.Vel.Y, 1e-3)

	Integrate([]*Actor{a}, 0, testTick)
	assert.InDelta(t, 100, a.Vel.Y, 1e-3, "impulse must not be applied twice")
}

func TestIntegrateNoSpeedClamp(t *testing.T) {
	a := &Actor{ID: 1}
	for i := 0; i < 600; i++ {
		Integrate([]*Actor{a}, -900, testTick)
	}
	assert.InDelta(t, -9000, a.Vel.Y, 1e-2)
}

func TestMoveHorizontal(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"idle", Input{}, 0},
		{"left", Input{Left: true}, -1},
		{"right", Input{Right: true}, 1},
		{"left wins", Input{Left: true, Right: true}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Actor{}
			MoveHorizontal(a, tc.in, 60, testTick)
			assert.InDelta(t, tc.want, a.Pos.X, 1e-6)
			assert.Equal(t, core.Vec2{}, a.Vel, "walking bypasses velocity")
		})
	}
}

func TestCollideSides(t *testing.T) {
	floor := core.V2(0, 0)
	floorSize := core.V2(200, 20)
	box := core.V2(20, 20)

	tests := []struct {
		name string
		pos  core.Vec2
		side Side
		hit  bool
	}{
		{"apart", core.V2(0, 50), 0, false},
		{"touching is not overlap", core.V2(0, 20), 0, false},
		{"landed on top", core.V2(0, 19), SideTop, true},
		{"head under", core.V2(0, -19), SideBottom, true},
		{"left edge", core.V2(-108, 0), SideLeft, true},
		{"right edge", core.V2(108, 0), SideRight, true},
		{"corner prefers shallower axis", core.V2(-108, 19), SideTop, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, hit := Collide(tc.pos, box, floor, floorSize)
			require.Equal(t, tc.hit, hit)
			if hit {
				assert.Equal(t, tc.side, side, "got %s", side)
			}
		})
	}
}

func TestCollideInside(t *testing.T) {
	side, hit := Collide(core.V2(0, 0), core.V2(10, 10), core.V2(0, 0), core.V2(100, 100))
	require.True(t, hit)
	assert.Equal(t, SideInside, side)
}

func TestResolveCollisionsSnaps(t *testing.T) {
	wall := Obstacle{ID: 9, Pos: core.V2(0, 0), Size: core.V2(40, 40)}

	tests := []struct {
		name   string
		pos    core.Vec3
		want   core.Vec3
		ground bool
	}{
		{"left", core.V3(-35, 0, 0), core.V3(-36, 0, 0), false},
		{"right", core.V3(35, 0, 0), core.V3(36, 0, 0), false},
		{"top", core.V3(0, 35, 0), core.V3(0, 36, 0), true},
		{"bottom", core.V3(0, -35, 0), core.V3(0, -36, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Actor{ID: 1, Pos: tc.pos, Size: core.V2(32, 32), Vel: core.V2(5, 5), Acc: core.V2(7, 7)}
			ground, err := ResolveCollisions([]*Actor{a}, []Obstacle{wall})
			require.NoError(t, err)

			assert.Equal(t, tc.want, a.Pos)
			if tc.ground {
				assert.Equal(t, []GroundEvent{{Actor: 1}}, ground)
			} else {
				assert.Empty(t, ground)
			}
			if tc.name == "left" || tc.name == "right" {
				assert.Zero(t, a.Vel.X)
				assert.Zero(t, a.Acc.X)
				assert.Equal(t, 5.0, a.Vel.Y, "other axis untouched")
			} else {
				assert.Zero(t, a.Vel.Y)
				assert.Zero(t, a.Acc.Y)
				assert.Equal(t, 5.0, a.Vel.X, "other axis untouched")
			}
		})
	}
}

func TestResolveCollisionsContainmentIsFatal(t *testing.T) {
	a := &Actor{ID: 1, Size: core.V2(10, 10)}
	block := Obstacle{ID: 2, Size: core.V2(100, 100)}

	_, err := ResolveCollisions([]*Actor{a}, []Obstacle{block})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContainment))
}

func TestRestingContactIsStable(t *testing.T) {
	s, _ := newTestSim(t, testLayout(), &seqRand{seq: []int{0}})

	for i := 0; i < 30; i++ {
		r, err := s.Step(Input{}, testClock)
		require.NoError(t, err)
		require.Contains(t, r.Ground, GroundEvent{Actor: s.player.ID}, "frame %d", i)
		require.Equal(t, float64(restY), s.player.Pos.Y, "frame %d: resting actor drifted", i)
		require.Zero(t, s.player.Vel.Y)
	}
}

func TestNoDoubleJump(t *testing.T) {
	s, _ := newTestSim(t, testLayout(), &seqRand{seq: []int{0}})
	jump := Input{Jump: true}

	r, err := s.Step(jump, testClock)
	require.NoError(t, err)
	require.True(t, r.Jumped, "grounded jump must fire")
	require.True(t, s.player.JumpLock)

	r, err = s.Step(jump, testClock)
	require.NoError(t, err)
	assert.False(t, r.Jumped, "second press while airborne must be ignored")
	assert.Greater(t, s.player.Pos.Y, float64(restY), "player left the ground")

	landed := false
	for i := 0; i < 300 && !landed; i++ {
		r, err = s.Step(jump, testClock)
		require.NoError(t, err)
		if len(r.Ground) > 0 && r.Ground[0].Actor == s.player.ID {
			landed = true
			assert.True(t, r.Jumped, "landing frame processes ground before input")
		} else {
			require.False(t, r.Jumped, "frame %d: jumped while airborne", i)
		}
	}
	require.True(t, landed, "player never landed")
}

func TestWalkIntoCounterStops(t *testing.T) {
	s, _ := newTestSim(t, testLayout(), &seqRand{seq: []int{0}})
	placePlayer(s, atCounter+5)

	for i := 0; i < 60; i++ {
		_, err := s.Step(Input{Left: true}, testClock)
		require.NoError(t, err)
	}
	assert.Equal(t, float64(atCounter), s.player.Pos.X, "counter blocks walking")
}

func TestCustomerFallsOntoFloor(t *testing.T) {
	l := testLayout()
	l.Customer.Pos = core.V3(-500, -200, 1)
	s, _ := newTestSim(t, l, &seqRand{seq: []int{0}})

	for i := 0; i < 120; i++ {
		_, err := s.Step(Input{}, testClock)
		require.NoError(t, err)
	}
	assert.Equal(t, float64(restY), s.customer.Pos.Y)
	assert.False(t, s.customer.JumpLock)
}
