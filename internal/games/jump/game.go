// Package jump implements an endless "jump to the next platform" game.
// The player holds to charge a jump, releases to launch along a parabolic
// arc, and scores a point for every platform landed on. Missing a platform
// drops the player out of view and ends the run.
package jump

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// SoundPlayer plays sound effects without blocking the simulation.
type SoundPlayer interface {
	Play(s core.Sound)
}

type nopSound struct{}

func (nopSound) Play(core.Sound) {}

// Option configures a Game.
type Option func(*Game)

// WithSound routes sound effects to p.
func WithSound(p SoundPlayer) Option {
	return func(g *Game) {
		if p != nil {
			g.sound = p
		}
	}
}

// WithLogger sets the logger used for state changes and gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// Game implements core.Game for the jump game.
type Game struct {
	cfg     config.JumpConfig
	runtime core.RuntimeConfig
	sound   SoundPlayer
	log     *log.Logger
	world   *World
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.JumpConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		sound: nopSound{},
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jump"
}

// Reset rebuilds the world from the runtime seed and enters the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = newWorld(g.cfg, runtime, g.sound, g.log)
	g.world.machine.Start(g.world, StateMainMenu)
	g.log.Debug("reset", "seed", runtime.Seed, "tick", g.world.dt)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	if w == nil {
		return core.StepResult{}
	}

	switch w.machine.Current() {
	case StateMainMenu, StateGameOver:
		advanceTimers(w)
		navigateMenu(w, in)
	case StatePlaying:
		if in.Has(core.ActionPause) {
			w.paused = !w.paused
		}
		if !w.paused {
			g.stepPlaying(in)
		}
	}

	if from, to, ok := w.machine.Apply(w); ok {
		g.log.Info("state", "from", from, "to", to, "score", w.score.Score())
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	w := g.world
	w.ticks++

	advanceTimers(w)
	prepareJump(w, in)
	generateNextPlatform(w)
	moveCamera(w)
	animateJump(w)
	animateFall(w)
	animateAccumulation(w)
	spawnScoreUps(w)
	ageScoreUps(w)
	ageEffects(w)
	syncPlayer(w)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.score.Score(),
		GameOver: g.world.machine.Current() == StateGameOver,
		Paused:   g.world.paused,
		Quit:     g.world.quit,
	}
}

// Current returns the active top-level state.
func (g *Game) Current() State {
	if g.world == nil {
		return StateMainMenu
	}
	return g.world.machine.Current()
}

// Phase returns the jump phase of the player.
func (g *Game) Phase() Phase {
	if g.world == nil {
		return PhaseIdle
	}
	return g.world.ctrl.Phase()
}

// Charging reports whether a jump is being charged. Platforms without key
// release events use it to turn a second press into a release.
func (g *Game) Charging() bool {
	return g.Phase() == PhaseCharging
}
