package sim

import "time"

// Phase is the coarse state of a session.
type Phase int

const (
	PhasePreSession Phase = iota
	PhaseInSession
	PhasePostSession
)

func (p Phase) String() string {
	switch p {
	case PhasePreSession:
		return "pre-session"
	case PhaseInSession:
		return "in-session"
	case PhasePostSession:
		return "post-session"
	default:
		return "unknown"
	}
}

// Session tracks score, the countdown and the phase.
//
// A non-positive duration makes the session untimed: it only ends through
// End.
type Session struct {
	duration time.Duration
	elapsed  time.Duration
	score    int
	fired    bool
	phase    Phase
}

// NewSession creates a session in the pre-session phase.
func NewSession(duration time.Duration) *Session {
	return &Session{duration: duration}
}

// Start resets score and timer and enters the in-session phase.
func (s *Session) Start() {
	s.elapsed = 0
	s.score = 0
	s.fired = false
	s.phase = PhaseInSession
}

// End moves the session to the post-session phase without firing the timer.
func (s *Session) End() {
	s.phase = PhasePostSession
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Active reports whether systems should run.
func (s *Session) Active() bool {
	return s.phase == PhaseInSession
}

// Score returns the number of successful deliveries.
func (s *Session) Score() int {
	return s.score
}

// AddPoint increments the score.
func (s *Session) AddPoint() {
	s.score++
}

// Timed reports whether the session has a countdown.
func (s *Session) Timed() bool {
	return s.duration > 0
}

// Remaining returns the time left on the countdown, never negative.
func (s *Session) Remaining() time.Duration {
	if !s.Timed() || s.elapsed >= s.duration {
		return 0
	}
	return s.duration - s.elapsed
}

// Advance adds real elapsed time to the countdown. It returns true exactly
// once, on the call that makes the accumulated time reach the duration, and
// moves the session to the post-session phase at that point.
func (s *Session) Advance(elapsed time.Duration) bool {
	if !s.Active() || !s.Timed() || s.fired {
		return false
	}
	if elapsed > 0 {
		s.elapsed += elapsed
	}
	if s.elapsed < s.duration {
		return false
	}
	s.fired = true
	s.phase = PhasePostSession
	return true
}
