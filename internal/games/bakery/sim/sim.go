package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bakery/internal/core"
)

// Input is the per-frame input snapshot. Left and Right are levels, Jump
// and Discard are edges.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Discard bool
}

// EventKind classifies what happened during a frame.
type EventKind int

const (
	EventPickedUp EventKind = iota
	EventCrafted
	EventDelivered
	EventDisposed
	EventExpired
)

func (k EventKind) String() string {
	switch k {
	case EventPickedUp:
		return "picked_up"
	case EventCrafted:
		return "crafted"
	case EventDelivered:
		return "delivered"
	case EventDisposed:
		return "disposed"
	case EventExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Event is one gameplay outcome of a frame.
type Event struct {
	Kind  EventKind
	Item  ItemType // EventPickedUp
	Cake  CakeType // EventCrafted, EventDelivered
	Score int      // EventDelivered, EventExpired
}

// Report is what a single Step did.
type Report struct {
	Ground []GroundEvent
	Jumped bool
	Events []Event
}

// Options configures a Sim beyond its layout.
type Options struct {
	Logger *log.Logger
	Rand   RandSource
}

// carried tracks the display entities of what the player carries. It
// mirrors the inventory but the inventory never looks at it.
type carried struct {
	items []EntityID // per slot
	cake  EntityID
}

// Sim owns all state of one session.
type Sim struct {
	layout  Layout
	world   World
	log     *log.Logger
	rng     RandSource
	recipes *RecipeTable
	session *Session
	jump    JumpController
	offsets [][]core.Vec3
	items   map[ItemType]ItemSpec

	player    *Actor
	customer  *Actor
	actors    []*Actor
	obstacles []Obstacle
	counter   Zone
	table     Zone
	bin       Zone
	pickups   []Pickup
	carry     carried
	spawned   []EntityID // top-level entities owned by the session
}

// New validates the layout and prepares a session in the pre-session
// phase. Nothing is spawned until Start.
func New(layout Layout, world World, opts Options) (*Sim, error) {
	if world == nil {
		return nil, fmt.Errorf("sim: no world: %w", ErrMissingSingleton)
	}
	required := []struct {
		name    string
		missing bool
	}{
		{"player", layout.Player == nil},
		{"customer", layout.Customer == nil},
		{"counter", layout.Counter == nil},
		{"table", layout.Table == nil},
		{"bin", layout.Bin == nil},
	}
	for _, r := range required {
		if r.missing {
			return nil, fmt.Errorf("sim: layout has no %s: %w", r.name, ErrMissingSingleton)
		}
	}
	if layout.Capacity < 1 {
		return nil, fmt.Errorf("sim: inventory capacity %d must be positive", layout.Capacity)
	}

	recipes, err := NewRecipeTable(layout.Recipes...)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	items := make(map[ItemType]ItemSpec, len(layout.Items))
	for _, it := range layout.Items {
		if it.Type == ItemNone || it.Type >= itemEnd {
			return nil, fmt.Errorf("sim: item spawn with invalid type %d: %w", it.Type, ErrUnknownName)
		}
		if _, dup := items[it.Type]; dup {
			return nil, fmt.Errorf("sim: item %s spawned twice", it.Type)
		}
		items[it.Type] = it
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &Sim{
		layout:  layout,
		world:   world,
		log:     logger,
		rng:     rng,
		recipes: recipes,
		session: NewSession(layout.Duration),
		jump:    JumpController{Impulse: layout.Physics.JumpImpulse},
		offsets: carryOffsets(layout.Capacity, layout.Carry),
		items:   items,
	}, nil
}

// Start spawns the scene and enters the in-session phase. Calling it again
// tears the previous session down first.
func (s *Sim) Start() {
	s.teardown()
	l := s.layout

	s.player = s.spawnActor(KindPlayer, *l.Player, "player")
	s.player.Inventory = NewInventory(l.Capacity)
	s.carry = carried{items: make([]EntityID, l.Capacity)}

	s.customer = s.spawnActor(KindNPC, *l.Customer, "customer")
	s.actors = []*Actor{s.player, s.customer}

	s.obstacles = s.obstacles[:0]
	for _, o := range l.Obstacles {
		id := s.world.Spawn(KindObstacle, o.Pos, o.Visual, "obstacle")
		s.spawned = append(s.spawned, id)
		s.obstacles = append(s.obstacles, Obstacle{ID: id, Pos: o.Pos.Truncate(), Size: o.Size})
	}
	s.counter = s.spawnStation(RoleOrderCounter, *l.Counter)
	s.table = s.spawnStation(RoleCraftingStation, *l.Table)
	s.bin = s.spawnStation(RoleDisposalBin, *l.Bin)

	s.pickups = s.pickups[:0]
	for _, it := range l.Items {
		s.respawnItem(it.Type)
	}

	s.session.Start()
	s.customer.Demand = &Demand{Want: RollDemand(s.rng)}
	s.customer.Demand.Display = s.spawnWant(s.customer.Demand.Want)

	s.log.Debug("session started", "demand", s.customer.Demand.Want, "recipes", s.recipes.Len())
}

// teardown despawns everything the previous Start created.
func (s *Sim) teardown() {
	for _, id := range s.spawned {
		s.world.DespawnRecursive(id)
	}
	for _, p := range s.pickups {
		s.world.DespawnRecursive(p.ID)
	}
	s.spawned = s.spawned[:0]
	s.pickups = s.pickups[:0]
}

func (s *Sim) spawnActor(kind Kind, spec ActorSpec, tag string) *Actor {
	v := spec.Visual
	if v.Size == (core.Vec2{}) {
		v.Size = spec.Size
	}
	id := s.world.Spawn(kind, spec.Pos, v, tag)
	s.spawned = append(s.spawned, id)
	return &Actor{ID: id, Pos: spec.Pos, Size: spec.Size}
}

func (s *Sim) spawnStation(role ZoneRole, spec StationSpec) Zone {
	id := s.world.Spawn(KindStation, spec.Pos, spec.Visual, "station", role.String())
	s.spawned = append(s.spawned, id)
	if spec.Solid != (core.Vec2{}) {
		s.obstacles = append(s.obstacles, Obstacle{ID: id, Pos: spec.Pos.Truncate(), Size: spec.Solid})
	}
	return Zone{ID: id, Role: role, Pos: spec.Pos.Truncate(), Trigger: spec.Trigger}
}

// respawnItem puts a free pickup of type t back at its canonical spawn.
func (s *Sim) respawnItem(t ItemType) {
	spec, ok := s.items[t]
	if !ok {
		s.log.Warn("no spawn for item, dropping it", "item", t)
		return
	}
	id := s.world.Spawn(KindPickup, spec.Spawn, spec.Visual, "item", t.String())
	s.pickups = append(s.pickups, Pickup{
		Zone: Zone{ID: id, Role: RolePickup, Pos: spec.Spawn.Truncate(), Trigger: spec.Trigger},
		Item: t,
	})
}

func (s *Sim) cakeVisual(c CakeType) Visual {
	if v, ok := s.layout.Cakes[c]; ok {
		return v
	}
	return Visual{Name: c.String(), Size: core.V2(32, 32), Color: core.ColorSalmon}
}

// attach spawns a cake entity parented to parent at the given local offset.
func (s *Sim) attach(kind Kind, c CakeType, parent EntityID, offset core.Vec3, scale float64) EntityID {
	id := s.world.Spawn(kind, offset, s.cakeVisual(c), "cake", c.String())
	s.world.Reparent(id, parent)
	s.world.SetLocalTransform(id, offset, scale)
	return id
}

func (s *Sim) spawnWant(c CakeType) EntityID {
	return s.attach(KindWant, c, s.customer.ID, s.layout.Carry.WantOffset, 0.75)
}

// Step runs one frame. The physics chain runs in a fixed order: walk,
// integrate, collide, jump. The interaction systems follow, then the
// timer. Nothing happens outside the in-session phase.
//
// An error means the session hit an invariant violation; it has been
// ended and must not be stepped again.
func (s *Sim) Step(in Input, clk core.FrameClock) (Report, error) {
	var r Report
	if !s.session.Active() {
		return r, nil
	}

	MoveHorizontal(s.player, in, s.layout.Physics.MoveSpeed, clk.Tick)
	Integrate(s.actors, s.layout.Physics.Gravity, clk.Tick)

	ground, err := ResolveCollisions(s.actors, s.obstacles)
	if err != nil {
		s.session.End()
		s.log.Error("collision invariant broken, ending session", "err", err)
		return r, fmt.Errorf("sim: %w", err)
	}
	r.Ground = ground
	r.Jumped = s.jump.Update(s.actors, ground, s.player, in.Jump)

	for _, a := range s.actors {
		s.world.SetLocalTransform(a.ID, a.Pos, 1)
	}

	s.pickupSystem(&r)
	s.craftSystem(&r)
	s.deliverSystem(&r)
	s.disposeSystem(in, &r)

	if s.session.Advance(clk.Elapsed) {
		r.Events = append(r.Events, Event{Kind: EventExpired, Score: s.session.Score()})
		s.log.Info("time is up", "score", s.session.Score())
	}
	return r, nil
}

// pickupSystem moves overlapped pickups into the inventory. A carried type
// is skipped; a full inventory stops the scan for this frame.
func (s *Sim) pickupSystem(r *Report) {
	inv := s.player.Inventory
	remaining := s.pickups[:0]
	full := false
	for _, p := range s.pickups {
		if full || !Overlaps(p.Zone, s.player) {
			remaining = append(remaining, p)
			continue
		}
		slot, outcome := inv.Add(p.Item)
		switch outcome {
		case AddDuplicate:
			remaining = append(remaining, p)
			continue
		case AddFull:
			full = true
			remaining = append(remaining, p)
			continue
		}

		s.world.Reparent(p.ID, s.player.ID)
		s.carry.items[slot] = p.ID
		s.layoutCarried()
		r.Events = append(r.Events, Event{Kind: EventPickedUp, Item: p.Item})
		s.log.Debug("picked up", "item", p.Item, "slot", slot)
	}
	s.pickups = remaining
}

// layoutCarried re-centers the carried ingredients for the current count.
func (s *Sim) layoutCarried() {
	var ids []EntityID
	for _, id := range s.carry.items {
		if id != NoEntity {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}
	row := s.offsets[len(ids)]
	for i, id := range ids {
		s.world.SetLocalTransform(id, row[i], s.layout.Carry.Scale)
	}
}

// dropCarried despawns the carried ingredient entities, clears the slots
// and returns every cleared ingredient to its spawn.
func (s *Sim) dropCarried() {
	for i, id := range s.carry.items {
		if id != NoEntity {
			s.world.Despawn(id)
			s.carry.items[i] = NoEntity
		}
	}
	for _, t := range s.player.Inventory.Clear() {
		s.respawnItem(t)
	}
}

func (s *Sim) dropCake() {
	if s.carry.cake != NoEntity {
		s.world.DespawnRecursive(s.carry.cake)
		s.carry.cake = NoEntity
	}
	s.player.Inventory.TakeCake()
}

// craftSystem bakes a cake while the player stands at the table with a
// matching inventory. It retries every frame the player stays there.
func (s *Sim) craftSystem(r *Report) {
	if !Overlaps(s.table, s.player) {
		return
	}
	cake, ok := s.recipes.Match(s.player.Inventory.Slots())
	if !ok {
		return
	}

	s.dropCarried()
	s.dropCake()
	s.carry.cake = s.attach(KindCake, cake, s.player.ID, s.layout.Carry.CakeOffset, 1)
	s.player.Inventory.SetCake(cake)

	r.Events = append(r.Events, Event{Kind: EventCrafted, Cake: cake})
	s.log.Debug("baked", "cake", cake)
}

// deliverSystem hands the carried cake to the customer if it is the one
// they want. A wrong cake is kept.
func (s *Sim) deliverSystem(r *Report) {
	if !Overlaps(s.counter, s.player) {
		return
	}
	d := s.customer.Demand
	cake := s.player.Inventory.Cake()
	if cake == CakeNone || d == nil || cake != d.Want {
		return
	}

	s.session.AddPoint()
	s.world.DespawnRecursive(d.Display)
	s.dropCake()

	d.Want = RollDemand(s.rng)
	d.Display = s.spawnWant(d.Want)

	r.Events = append(r.Events, Event{Kind: EventDelivered, Cake: cake, Score: s.session.Score()})
	s.log.Debug("delivered", "cake", cake, "score", s.session.Score(), "next", d.Want)
}

// disposeSystem empties the inventory when discard is pressed at the bin.
// Ingredients go back to their spawns, a cake is lost.
func (s *Sim) disposeSystem(in Input, r *Report) {
	if !in.Discard || !Overlaps(s.bin, s.player) {
		return
	}
	inv := s.player.Inventory
	if inv.Count() == 0 && inv.Cake() == CakeNone {
		return
	}
	s.dropCarried()
	s.dropCake()
	r.Events = append(r.Events, Event{Kind: EventDisposed})
	s.log.Debug("binned inventory")
}

// End stops the session early.
func (s *Sim) End() {
	s.session.End()
}

// Phase returns the session phase.
func (s *Sim) Phase() Phase {
	return s.session.Phase()
}

// Score returns the session score.
func (s *Sim) Score() int {
	return s.session.Score()
}

// Remaining returns the time left, 0 when untimed.
func (s *Sim) Remaining() time.Duration {
	return s.session.Remaining()
}

// Timed reports whether the session has a countdown.
func (s *Sim) Timed() bool {
	return s.session.Timed()
}

// Player returns a copy of the player's kinematic state.
func (s *Sim) Player() Actor {
	if s.player == nil {
		return Actor{}
	}
	return *s.player
}

// Inventory returns the player's inventory.
func (s *Sim) Inventory() *Inventory {
	if s.player == nil {
		return nil
	}
	return s.player.Inventory
}

// Demand returns the cake the customer wants.
func (s *Sim) Demand() CakeType {
	if s.customer == nil || s.customer.Demand == nil {
		return CakeNone
	}
	return s.customer.Demand.Want
}

// Pickups returns the free-standing ingredients.
func (s *Sim) Pickups() []Pickup {
	return append([]Pickup(nil), s.pickups...)
}

// Recipes returns the session's recipe table.
func (s *Sim) Recipes() *RecipeTable {
	return s.recipes
}
