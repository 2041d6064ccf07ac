// Package frogger implements the Frogger game driver for the arcade platform.
// The player hops across a road of cars and a river of drifting logs to
// reach goal cells at the top of the field.
//
// The simulation itself lives in internal/frogger; this package feeds it
// input and scheduler pulses, records every event, and draws the result.
package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	sim "github.com/vovakirdan/tui-frogger/internal/frogger"
	"github.com/vovakirdan/tui-frogger/internal/journal"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/schedule"
)

// GameID is the registry and score-table identifier.
const GameID = "frogger"

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements the Frogger game.
type Game struct {
	cfg       config.FroggerConfig
	runtime   core.RuntimeConfig
	scheduler *schedule.Scheduler
	journal   *journal.Journal
	scene     *Scene
	state     sim.State
	paused    bool
}

// New creates a game with the built-in configuration.
func New() *Game {
	return NewWithConfig(config.DefaultFroggerConfig())
}

// NewWithConfig creates a game with the given lane and timing configuration.
func NewWithConfig(cfg config.FroggerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset starts a fresh process: initial state, empty scene, new journal.
// The high score is kept only by the Restart action, not by Reset.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.scheduler = schedule.New(g.cfg)
	g.journal = journal.New()
	g.scene = NewScene()
	g.state = sim.Initial()
	g.scene.Apply(g.state)
	g.paused = false
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	folded := 0

	if in.Has(core.ActionRestart) {
		g.apply(sim.Restart{})
		g.paused = false
		folded++
	}

	if g.state.IsGameOver {
		return core.StepResult{State: g.State(), Events: folded}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: folded}
	}

	// One hop per frame; the first direction pressed wins.
	for _, a := range in.Ordered() {
		if a.IsDirection() {
			dx, dy := a.Vector()
			g.apply(sim.Jump(dx, dy, g.cfg.Player.Hop))
			folded++
			break
		}
	}

	for _, e := range g.scheduler.Advance(g.runtime.FrameMillis()) {
		if g.state.IsGameOver {
			break
		}
		g.apply(e)
		folded++
	}

	return core.StepResult{State: g.State(), Events: folded}
}

// apply records e and folds it into the state.
func (g *Game) apply(e sim.Event) {
	if err := g.journal.Record(e); err != nil {
		return
	}
	g.state = sim.Reduce(g.state, e)
	g.scene.Apply(g.state)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.state.Score,
		HighScore:    g.state.HighScore,
		GoalsReached: g.state.GoalsReached,
		GameOver:     g.state.IsGameOver,
		Paused:       g.paused,
	}
}

// Snapshot returns the flat summary of the simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.state.Snapshot()
}

// Journal returns the event journal of the current run.
func (g *Game) Journal() *journal.Journal {
	return g.journal
}

// RunID returns the journal run identifier.
func (g *Game) RunID() string {
	return g.journal.RunID
}

// Scene returns the retained scene.
func (g *Game) Scene() *Scene {
	return g.scene
}
