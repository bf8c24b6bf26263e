// Package tui provides the Bubble Tea integration for the bakery.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxElapsed caps the wall-clock time credited to a single frame, so a
// stalled terminal does not eat the session timer in one go.
const maxElapsed = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed returns the time between two ticks, clamped to
// [0, maxElapsed]. A zero previous tick yields fallback.
func frameElapsed(prev, now time.Time, fallback time.Duration) time.Duration {
	if prev.IsZero() {
		return fallback
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	if d > maxElapsed {
		return maxElapsed
	}
	return d
}
