package jump

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// Player is the jumping character.
type Player struct {
	Pos        core.Vec2
	LastLanded int     // Index of the platform last stood on
	Squash     float64 // 0 = rest, grows while charging
	Entity     EntityID
}

// Timers are the gating timers of a session.
type Timers struct {
	PrepareJump        core.Timer // Blocks charging right after a landing
	Charge             core.Timer // Measures the hold, auto-releases when finished
	AccumulationEffect core.Timer // Paces particle bursts while charging
}

// World owns every resource of a running game. Systems and hooks read and
// mutate it; nothing outside the package touches it directly.
type World struct {
	cfg        config.JumpConfig
	dt         time.Duration
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	scene      *Scene
	platforms  *Generator
	player     Player
	ctrl       Controller
	camera     Camera
	score      ScorePipeline
	timers     Timers
	menu       Menu
	machine    *Machine
	sound      SoundPlayer
	log        *log.Logger
	ticks      int // Playing ticks this session
	paused     bool
	quit       bool
}

func newWorld(cfg config.JumpConfig, runtime core.RuntimeConfig, sound SoundPlayer, logger *log.Logger) *World {
	rng := rand.New(rand.NewSource(runtime.Seed))
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	scene := NewScene()

	w := &World{
		cfg:        cfg,
		dt:         runtime.TickDelta(),
		rng:        rng,
		difficulty: difficulty,
		scene:      scene,
		platforms:  NewGenerator(cfg, rng, difficulty, scene),
		ctrl:       NewController(cfg.Physics),
		camera:     NewCamera(cfg.Camera),
		score:      NewScorePipeline(cfg.Score),
		machine:    NewMachine(),
		sound:      sound,
		log:        logger,
	}
	registerHooks(w.machine)
	return w
}

func (w *World) play(s core.Sound) {
	w.sound.Play(s)
}

// standingOn returns the platform the player last landed on.
func (w *World) standingOn() (Platform, bool) {
	return w.platforms.ByIndex(w.player.LastLanded)
}
