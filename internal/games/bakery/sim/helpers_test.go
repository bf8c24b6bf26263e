package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

const testTick = time.Second / 60

var testClock = core.FixedClock(testTick)

// fakeWorld records entities the way a scene would, without drawing.
type fakeWorld struct {
	next EntityID
	ents map[EntityID]*fakeEntity
}

type fakeEntity struct {
	kind   Kind
	pos    core.Vec3
	scale  float64
	parent EntityID
	visual Visual
	tags   []string
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{ents: make(map[EntityID]*fakeEntity)}
}

func (w *fakeWorld) Spawn(kind Kind, pos core.Vec3, v Visual, tags ...string) EntityID {
	w.next++
	w.ents[w.next] = &fakeEntity{kind: kind, pos: pos, scale: 1, visual: v, tags: tags}
	return w.next
}

func (w *fakeWorld) Despawn(id EntityID) {
	delete(w.ents, id)
}

func (w *fakeWorld) DespawnRecursive(id EntityID) {
	for cid, e := range w.ents {
		if e.parent == id {
			w.DespawnRecursive(cid)
		}
	}
	delete(w.ents, id)
}

func (w *fakeWorld) Reparent(child, parent EntityID) {
	if e, ok := w.ents[child]; ok {
		e.parent = parent
	}
}

func (w *fakeWorld) SetLocalTransform(id EntityID, pos core.Vec3, scale float64) {
	if e, ok := w.ents[id]; ok {
		e.pos = pos
		e.scale = scale
	}
}

func (w *fakeWorld) count(kind Kind) int {
	n := 0
	for _, e := range w.ents {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (w *fakeWorld) children(parent EntityID, kind Kind) []EntityID {
	var out []EntityID
	for id, e := range w.ents {
		if e.parent == parent && e.kind == kind {
			out = append(out, id)
		}
	}
	return out
}

// seqRand replays a fixed sequence of picks.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

const restY = -304 // floor top (-320) plus half the player's height

// testLayout is a small kitchen: a floor, a counter with a customer on
// the left, a bin, five ingredients 100 units apart and a table on the
// right.
func testLayout() Layout {
	item := func(t ItemType, x float64) ItemSpec {
		return ItemSpec{Type: t, Spawn: core.V3(x, -300, 0), Trigger: core.V2(40, 40),
			Visual: Visual{Name: t.String(), Size: core.V2(32, 32)}}
	}
	return Layout{
		Physics:  Physics{Gravity: -900, JumpImpulse: 320 * 60, MoveSpeed: 160},
		Capacity: 4,
		Duration: 60 * time.Second,
		Player:   &ActorSpec{Pos: core.V3(-50, restY, 1), Size: core.V2(32, 32)},
		Customer: &ActorSpec{Pos: core.V3(-500, restY, 1), Size: core.V2(32, 32)},
		Obstacles: []ObstacleSpec{
			{Pos: core.V3(0, -350, 0), Size: core.V2(2000, 60)},
		},
		Counter: &StationSpec{Pos: core.V3(-400, -300, 0), Trigger: core.V2(30, 36), Solid: core.V2(24, 35)},
		Table:   &StationSpec{Pos: core.V3(450, -300, 0), Trigger: core.V2(50, 40), Solid: core.V2(44, 35)},
		Bin:     &StationSpec{Pos: core.V3(-250, -300, 0), Trigger: core.V2(40, 40)},
		Items: []ItemSpec{
			item(ItemEggs, 0),
			item(ItemFlour, 100),
			item(ItemChocolate, 200),
			item(ItemMilk, 300),
			item(ItemStrawberry, -150),
		},
		Recipes: []Recipe{
			{Ingredients: NewItemSet(ItemEggs, ItemFlour, ItemChocolate, ItemMilk), Result: CakeChocolate},
			{Ingredients: NewItemSet(ItemEggs, ItemFlour, ItemStrawberry, ItemMilk), Result: CakeFraisier},
		},
		Carry: CarrySpec{Spacing: 10, Height: 10, Scale: 0.5,
			CakeOffset: core.V3(0, 40, 10), WantOffset: core.V3(0, 30, 10)},
	}
}

// Spots where the player overlaps exactly one zone.
const (
	atTable   = 450 - 22 - 16 // flush against the table's left side
	atCounter = -400 + 12 + 16
	atBin     = -250
)

func newTestSim(t *testing.T, l Layout, rng RandSource) (*Sim, *fakeWorld) {
	t.Helper()
	w := newFakeWorld()
	s, err := New(l, w, Options{Rand: rng})
	require.NoError(t, err)
	s.Start()
	return s, w
}

// placePlayer teleports the player onto the floor at x.
func placePlayer(s *Sim, x float64) {
	s.player.Pos = core.V3(x, restY, s.player.Pos.Z)
	s.player.Vel = core.Vec2{}
	s.player.Acc = core.Vec2{}
}

// stepAt places the player at x and runs one idle frame.
func stepAt(t *testing.T, s *Sim, x float64) Report {
	t.Helper()
	placePlayer(s, x)
	r, err := s.Step(Input{}, testClock)
	require.NoError(t, err)
	return r
}

func eventKinds(r Report) []EventKind {
	kinds := make([]EventKind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}
