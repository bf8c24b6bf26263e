// Package bakery implements Cake Rush: run around a kitchen, collect
// ingredients, bake cakes at the table and serve the customer the cake they
// ask for before the clock runs out.
//
// The frame-by-frame rules live in the sim subpackage; this package loads the
// configuration, owns the scene, maps platform input and draws the result.
package bakery

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bakery/internal/config"
	"github.com/vovakirdan/tui-bakery/internal/core"
	"github.com/vovakirdan/tui-bakery/internal/games/bakery/scene"
	"github.com/vovakirdan/tui-bakery/internal/games/bakery/sim"
	"github.com/vovakirdan/tui-bakery/internal/registry"
)

// toastTicks is how long an event message stays on screen.
const toastTicks = 90

// Game implements the bakery game logic.
type Game struct {
	id      string
	title   string
	untimed bool

	cfg       config.BakeryConfig
	runtime   core.RuntimeConfig
	scene     *scene.Store
	sim       *sim.Sim
	sessionID string
	paused    bool
	aborted   error
	toast     string
	toastLeft int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetLogger routes game and simulation logs. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the timed game.
func New() *Game {
	return &Game{id: "bakery", title: "Cake Rush"}
}

// NewSandbox creates a variant without a countdown.
func NewSandbox() *Game {
	return &Game{id: "bakery_sandbox", title: "Cake Rush (sandbox)", untimed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = nil
	g.paused = false
	g.aborted = nil
	g.toast, g.toastLeft = "", 0
	g.sessionID = uuid.NewString()

	cfg, err := config.LoadBakery(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultBakeryConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBakeryPreset(&cfg, difficultyPreset)
	}
	if g.untimed {
		cfg.Session.DurationSecs = 0
	}
	g.cfg = cfg

	layout, err := LayoutFromConfig(cfg, runtime.TickDuration())
	if err != nil {
		g.abort(err)
		return
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.scene = scene.New()
	g.sim, err = sim.New(layout, g.scene, sim.Options{
		Logger: logger.With("session", g.sessionID),
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		g.abort(err)
		return
	}
	g.sim.Start()

	logger.Info("session started", "game", g.id, "session", g.sessionID,
		"seed", seed, "duration", layout.Duration, "capacity", layout.Capacity)
}

// abort ends the session after an internal error.
func (g *Game) abort(err error) {
	g.aborted = err
	if g.sim != nil {
		g.sim.End()
	}
	logger.Error("session aborted", "game", g.id, "session", g.sessionID, "err", err)
}

// Input converts a platform input frame to the simulation's input.
func Input(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:    in.IsHeld(core.ActionLeft),
		Right:   in.IsHeld(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Discard: in.Has(core.ActionDiscard),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, clk core.FrameClock) core.StepResult {
	if g.over() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.toastLeft > 0 {
		g.toastLeft--
	}

	report, err := g.sim.Step(Input(in), clk)
	if err != nil {
		g.abort(err)
		return core.StepResult{State: g.State()}
	}

	for _, ev := range report.Events {
		g.showEvent(ev)
		if ev.Kind == sim.EventExpired {
			logger.Info("session over", "game", g.id, "session", g.sessionID, "score", ev.Score)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) showEvent(ev sim.Event) {
	var msg string
	switch ev.Kind {
	case sim.EventPickedUp:
		msg = "Picked up " + displayName(ev.Item.String())
	case sim.EventCrafted:
		msg = "Baked a " + displayName(ev.Cake.String()) + " cake"
	case sim.EventDelivered:
		msg = "Delivered! +1"
	case sim.EventDisposed:
		msg = "Binned it all"
	default:
		return
	}
	g.toast, g.toastLeft = msg, toastTicks
}

func (g *Game) over() bool {
	return g.aborted != nil || g.sim == nil || g.sim.Phase() == sim.PhasePostSession
}

// Err returns the error that aborted the session, if any.
func (g *Game) Err() error {
	return g.aborted
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		SessionID: g.sessionID,
		GameOver:  g.over(),
		Aborted:   g.aborted != nil,
		Paused:    g.paused,
	}
	if g.sim != nil {
		st.Score = g.sim.Score()
		st.Remaining = g.sim.Remaining()
	}
	return st
}

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register("bakery", func() registry.Game {
		return New()
	})
	registry.Register("bakery_sandbox", func() registry.Game {
		return NewSandbox()
	})
}
