package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTimerFiresOnce(t *testing.T) {
	s := NewSession(time.Second)
	require.Equal(t, PhasePreSession, s.Phase())
	assert.False(t, s.Advance(2*time.Second), "timer does not run before the session starts")

	s.Start()
	fired := 0
	for i := 0; i < 200; i++ {
		if s.Advance(10 * time.Millisecond) {
			fired++
			assert.Equal(t, 99, i, "fires on the call that reaches the duration")
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, PhasePostSession, s.Phase())
	assert.Zero(t, s.Remaining())
}

func TestSessionAdvanceUsesRealTime(t *testing.T) {
	s := NewSession(time.Second)
	s.Start()

	assert.False(t, s.Advance(400*time.Millisecond))
	assert.Equal(t, 600*time.Millisecond, s.Remaining())
	assert.False(t, s.Advance(-time.Second), "negative time is ignored")
	assert.True(t, s.Advance(700*time.Millisecond), "a long frame overshoots and still fires")
}

func TestSessionUntimed(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		s := NewSession(d)
		s.Start()
		assert.False(t, s.Timed())
		for i := 0; i < 10; i++ {
			require.False(t, s.Advance(time.Hour))
		}
		assert.True(t, s.Active())
		assert.Zero(t, s.Remaining())

		s.End()
		assert.Equal(t, PhasePostSession, s.Phase())
	}
}

func TestSessionRestartResets(t *testing.T) {
	s := NewSession(time.Second)
	s.Start()
	s.AddPoint()
	s.AddPoint()
	require.True(t, s.Advance(time.Second))

	s.Start()
	assert.Equal(t, PhaseInSession, s.Phase())
	assert.Zero(t, s.Score())
	assert.Equal(t, time.Second, s.Remaining())
	assert.True(t, s.Advance(time.Second), "timer fires again after a restart")
}

func TestSessionEndDoesNotFire(t *testing.T) {
	s := NewSession(time.Second)
	s.Start()
	s.End()
	assert.False(t, s.Advance(time.Second))
	assert.False(t, s.Active())
}
