package bakery

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bakery/internal/config"
	"github.com/vovakirdan/tui-bakery/internal/core"
)

func TestRenderHUD(t *testing.T) {
	useConfig(t, config.DefaultBakeryConfig())
	g := New()
	g.Reset(testRuntime)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := screen.Row(0)
	for _, want := range []string{"Served: 0", "Time: 2:00", "Order:"} {
		if !strings.Contains(top, want) {
			t.Errorf("row 0 %q lacks %q", top, want)
		}
	}
	if bag := screen.Row(1); !strings.Contains(bag, "Bag: ["+EmptySlot+"]") {
		t.Errorf("row 1 = %q", bag)
	}
}

func TestRenderDrawsWorld(t *testing.T) {
	useConfig(t, config.DefaultBakeryConfig())
	g := New()
	g.Reset(testRuntime)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, ActorChar) {
		t.Error("no actor drawn")
	}
	if !strings.ContainsRune(screen.Row(23), FloorChar) {
		t.Errorf("floor missing from the last row: %q", screen.Row(23))
	}

	// Player stands in the middle column
	found := false
	for y := 0; y < screen.Height(); y++ {
		if cell := screen.GetCell(40, y); cell.Rune == ActorChar && cell.Color == core.ColorGreen {
			found = true
		}
	}
	if !found {
		t.Error("player not centered")
	}
}

func TestRenderGameOver(t *testing.T) {
	cfg := config.DefaultBakeryConfig()
	cfg.Session.DurationSecs = 1
	useConfig(t, cfg)
	g := New()
	g.Reset(testRuntime)
	g.Step(core.NewInputFrame(), clock(2*time.Second))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TIME'S UP") {
		t.Error("game over box missing")
	}
}

func TestRenderPaused(t *testing.T) {
	useConfig(t, config.DefaultBakeryConfig())
	g := New()
	g.Reset(testRuntime)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, clock(0))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box missing")
	}
}

func TestCameraCells(t *testing.T) {
	screen := core.NewScreen(80, 24)
	view := config.ViewConfig{UnitsPerCol: 12, UnitsPerRow: 24, FloorY: -320}
	cam := newCamera(view, screen, 0)

	// A 32x32 actor resting on the floor
	r := cam.cells(core.V2(0, -304), core.V2(32, 32))
	if r.Bottom() != 22 {
		t.Errorf("actor bottom row = %d, want 22 (just above the floor)", r.Bottom())
	}
	if r.X != 38 || r.W != 3 {
		t.Errorf("actor columns = %d+%d", r.X, r.W)
	}

	// Tiny things still take a cell
	r = cam.cells(core.V2(0, 0), core.V2(1, 1))
	if r.W != 1 || r.H != 1 {
		t.Errorf("tiny box = %+v", r)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{500 * time.Millisecond, "0:01"},
		{time.Minute, "1:00"},
		{119*time.Second + time.Millisecond, "2:00"},
		{75 * time.Second, "1:15"},
	}
	for _, tc := range tests {
		if got := formatClock(tc.d); got != tc.want {
			t.Errorf("formatClock(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName("strawberry"); got != "Strawberry" {
		t.Errorf("displayName = %q", got)
	}
}
