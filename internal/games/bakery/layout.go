package bakery

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bakery/internal/config"
	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/games/bakery/sim"
)

// Draw depth of each layer; larger is nearer.
const (
	depthBackground = 0
	depthActor      = 1
)

func size(s config.Size) core.Vec2 { return core.V2(s.W, s.H) }

func at(p config.Point, z float64) core.Vec3 { return core.V3(p.X, p.Y, z) }

// LayoutFromConfig turns a validated config into a simulation layout. The
// configured jump speed becomes an impulse for the given tick.
func LayoutFromConfig(cfg config.BakeryConfig, tick time.Duration) (sim.Layout, error) {
	if err := config.Validate(cfg); err != nil {
		return sim.Layout{}, err
	}
	if tick <= 0 {
		return sim.Layout{}, fmt.Errorf("bakery: tick %v must be positive", tick)
	}

	recipes, err := config.ParseRecipes(cfg.Recipes)
	if err != nil {
		return sim.Layout{}, err
	}

	l := sim.Layout{
		Physics: sim.Physics{
			Gravity:     cfg.Physics.Gravity,
			JumpImpulse: cfg.Physics.JumpSpeed / tick.Seconds(),
			MoveSpeed:   cfg.Physics.MoveSpeed,
		},
		Capacity: cfg.Inventory.Capacity,
		Duration: cfg.SessionDuration(),
		Player:   actorSpec("player", cfg.Player),
		Customer: actorSpec("customer", cfg.Customer),
		Counter:  stationSpec("counter", cfg.Counter),
		Table:    stationSpec("table", cfg.Table),
		Bin:      stationSpec("bin", cfg.Bin),
		Cakes:    make(map[sim.CakeType]sim.Visual, len(cfg.Cakes)),
		Recipes:  recipes,
		Carry: sim.CarrySpec{
			Spacing:    cfg.Carry.Spacing,
			Height:     cfg.Carry.Height,
			Scale:      cfg.Carry.Scale,
			CakeOffset: at(cfg.Carry.CakeOffset, 10),
			WantOffset: at(cfg.Carry.WantOffset, 10),
		},
	}

	for _, o := range cfg.Obstacles {
		l.Obstacles = append(l.Obstacles, sim.ObstacleSpec{
			Pos:    at(o.Pos, depthBackground),
			Size:   size(o.Size),
			Visual: sim.Visual{Name: o.Name, Size: size(o.Size), Color: core.ParseColor(o.Color)},
		})
	}

	for _, it := range cfg.Items {
		t, err := sim.ParseItem(it.Name)
		if err != nil {
			return sim.Layout{}, err
		}
		l.Items = append(l.Items, sim.ItemSpec{
			Type:    t,
			Spawn:   at(it.Spawn, depthBackground),
			Trigger: size(it.Trigger),
			Visual:  sim.Visual{Name: t.String(), Size: size(it.Size), Color: core.ParseColor(it.Color)},
		})
	}

	for _, c := range cfg.Cakes {
		t, err := sim.ParseCake(c.Name)
		if err != nil {
			return sim.Layout{}, err
		}
		l.Cakes[t] = sim.Visual{Name: t.String(), Size: core.V2(32, 32), Color: core.ParseColor(c.Color)}
	}

	return l, nil
}

func actorSpec(name string, a config.ActorConfig) *sim.ActorSpec {
	return &sim.ActorSpec{
		Pos:    at(a.Pos, depthActor),
		Size:   size(a.Size),
		Visual: sim.Visual{Name: name, Size: size(a.Size), Color: core.ParseColor(a.Color)},
	}
}

func stationSpec(name string, s config.StationConfig) *sim.StationSpec {
	drawn := s.Solid
	if drawn.W == 0 || drawn.H == 0 {
		drawn = s.Trigger
	}
	return &sim.StationSpec{
		Pos:     at(s.Pos, depthBackground),
		Trigger: size(s.Trigger),
		Solid:   size(s.Solid),
		Visual:  sim.Visual{Name: name, Size: size(drawn), Color: core.ParseColor(s.Color)},
	}
}
