package bakery

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/tui-bakery/internal/config"
	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/games/bakery/sim"
)

// Visual characters for rendering
const (
	ActorChar    = '█'
	FloorChar    = '▓'
	StationChar  = '▒'
	PickupChar   = '░'
	CakeChar     = '●'
	EmptySlot    = "·"
	hudRows      = 2
	floorMargin  = 2 // rows kept below the floor line
	defaultScale = 12
)

var titleCaser = cases.Title(language.English)

// displayName turns an item or cake name into a HUD label.
func displayName(name string) string {
	return titleCaser.String(name)
}

// camera maps world coordinates to screen cells. World y grows upwards,
// screen rows grow downwards.
type camera struct {
	centerX float64
	floorY  float64
	unitsX  float64
	unitsY  float64
	midCol  int
	baseRow int
}

func newCamera(view config.ViewConfig, dst *core.Screen, focusX float64) camera {
	c := camera{
		centerX: focusX,
		floorY:  view.FloorY,
		unitsX:  view.UnitsPerCol,
		unitsY:  view.UnitsPerRow,
		midCol:  dst.Width() / 2,
		baseRow: dst.Height() - floorMargin,
	}
	if c.unitsX <= 0 {
		c.unitsX = defaultScale
	}
	if c.unitsY <= 0 {
		c.unitsY = 2 * c.unitsX
	}
	return c
}

func (c camera) col(x float64) int {
	return c.midCol + int(math.Floor((x-c.centerX)/c.unitsX))
}

func (c camera) row(y float64) int {
	return c.baseRow + int(math.Floor((c.floorY-y)/c.unitsY))
}

// cells returns the screen rectangle covered by a world box. Every visible
// box covers at least one cell.
func (c camera) cells(center, size core.Vec2) core.Rect {
	b := core.NewBox(center, size)
	x0, x1 := c.col(b.Min().X), c.col(b.Max().X)
	y0, y1 := c.row(b.Max().Y), c.row(b.Min().Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.sim != nil {
		g.drawWorld(dst)
		g.drawHUD(dst)
	}

	if g.toastLeft > 0 && g.toast != "" {
		dst.DrawTextCentered(hudRows, g.toast)
	}

	switch {
	case g.aborted != nil:
		g.drawCenteredMessage(dst, "SESSION ABORTED", truncate(g.aborted.Error(), dst.Width()-6))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.over():
		g.drawCenteredMessage(dst, "TIME'S UP", fmt.Sprintf("Cakes served: %d  |  Press R to restart", g.State().Score))
	}
}

// drawWorld draws every scene entity back to front, keeping the player in
// the middle of the screen.
func (g *Game) drawWorld(dst *core.Screen) {
	cam := newCamera(g.cfg.View, dst, g.sim.Player().Pos.X)

	for _, d := range g.scene.Drawables() {
		r := cam.cells(d.Pos.Truncate(), d.Size())
		if r.Bottom() <= hudRows {
			continue
		}
		switch d.Kind {
		case sim.KindObstacle:
			dst.DrawRect(r, FloorChar, d.Visual.Color)
		case sim.KindStation:
			dst.DrawRect(r, StationChar, d.Visual.Color)
			drawLabel(dst, r, d.Visual.Name, d.Visual.Color)
		case sim.KindPickup:
			dst.DrawRect(r, PickupChar, d.Visual.Color)
			drawLabel(dst, r, displayName(d.Visual.Name), d.Visual.Color)
		case sim.KindCake, sim.KindWant:
			dst.DrawRect(r, CakeChar, d.Visual.Color)
		default:
			dst.DrawRect(r, ActorChar, d.Visual.Color)
		}
	}
}

// drawLabel writes name centered in r, or only its initial when r is too
// narrow.
func drawLabel(dst *core.Screen, r core.Rect, name string, c core.Color) {
	if name == "" {
		return
	}
	runes := []rune(name)
	if len(runes) > r.W {
		runes = runes[:1]
	}
	x := r.X + (r.W-len(runes))/2
	y := r.Y + r.H/2
	dst.DrawTextColor(x, y, strings.ToUpper(string(runes[:1]))+string(runes[1:]), c)
}

// drawHUD draws score, timer and the wanted cake on the first row and the
// inventory on the second.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()

	timer := "--:--"
	if g.sim.Timed() {
		timer = formatClock(st.Remaining)
	}
	left := fmt.Sprintf(" Served: %d   Time: %s ", st.Score, timer)
	dst.DrawText(1, 0, left)

	order := fmt.Sprintf(" Order: %s cake ", displayName(g.sim.Demand().String()))
	dst.DrawTextColor(dst.Width()-len([]rune(order))-1, 0, order, g.cakeColor(g.sim.Demand()))

	inv := g.sim.Inventory()
	var sb strings.Builder
	sb.WriteString(" Bag:")
	for _, t := range inv.Slots() {
		if t == sim.ItemNone {
			sb.WriteString(" [" + EmptySlot + "]")
			continue
		}
		sb.WriteString(" [" + displayName(t.String()) + "]")
	}
	if c := inv.Cake(); c != sim.CakeNone {
		sb.WriteString("   Carrying: " + displayName(c.String()) + " cake")
	}
	dst.DrawText(1, 1, sb.String())
}

func (g *Game) cakeColor(c sim.CakeType) core.Color {
	for _, cc := range g.cfg.Cakes {
		if t, err := sim.ParseCake(cc.Name); err == nil && t == c {
			return core.ParseColor(cc.Color)
		}
	}
	return core.ColorDefault
}

// formatClock renders a countdown as m:ss, rounding up so the clock reads
// 0:00 only once time is up.
func formatClock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
