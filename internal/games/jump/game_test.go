package jump

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// loseRun releases a zero-power jump from the first platform, which always
// falls short of the next one, and waits for the game over screen.
func loseRun(t *testing.T, g *Game) {
	t.Helper()
	waitReady(g)
	g.Step(core.Frame(core.ActionJump, core.ActionJumpRelease))
	require.Equal(t, PhaseAirborne, g.Phase())
	stepUntil(g, 300, func() bool { return g.Current() == StateGameOver })
	require.Equal(t, StateGameOver, g.Current())
}

func TestFirstTickGeneratesTarget(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	assert.Len(t, g.world.platforms.Platforms(), 1)

	g.Step(core.NewInputFrame())
	target, ok := g.world.platforms.Target()
	require.True(t, ok)
	assert.Equal(t, 1, target.Index)

	g.Step(core.NewInputFrame())
	assert.Len(t, g.world.platforms.Platforms(), 2, "no new target until the player lands")
}

func TestPrepareTimerBlocksCharging(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	g.Step(core.Frame(core.ActionJump))
	assert.Equal(t, PhaseIdle, g.Phase())

	waitReady(g)
	g.Step(core.Frame(core.ActionJump))
	assert.Equal(t, PhaseCharging, g.Phase())
}

func TestMaxChargeJumpLandsAndScores(t *testing.T) {
	sound := &recordingSound{}
	g := New(config.DefaultJumpConfig(), WithSound(sound))
	g.Reset(testRuntime())
	startPlaying(t, g)

	g.Step(core.NewInputFrame())
	replaceTarget(g, Platform{Index: 1, X: 5, Width: 2})
	waitReady(g)

	g.Step(core.Frame(core.ActionJump))
	require.Equal(t, PhaseCharging, g.Phase())

	// Holding past the maximum releases on its own
	stepUntil(g, 120, func() bool { return g.Phase() == PhaseAirborne })
	require.Equal(t, PhaseAirborne, g.Phase())
	assert.Equal(t, 1.0, g.world.ctrl.Jump().Power)

	stepUntil(g, 200, func() bool { return g.Phase() == PhaseIdle })
	require.Equal(t, PhaseIdle, g.Phase())

	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, 1, g.world.player.LastLanded)
	assert.InDelta(t, 6.0, g.world.player.Pos.X, 1e-6)
	assert.Equal(t, PlatformTop, g.world.player.Pos.Y)
	require.Equal(t, 1, g.world.scene.Count(KindScoreUp))
	g.world.scene.Each(KindScoreUp, func(e Entity) {
		assert.InDelta(t, 6.0, e.Pos.X, 1e-6, "popup starts at the landing point")
		assert.Equal(t, 1, e.Value)
	})

	assert.Equal(t, 1, sound.count(core.SoundJump))
	assert.Equal(t, 1, sound.count(core.SoundLand))
	assert.GreaterOrEqual(t, sound.count(core.SoundCharge), 3)

	// The next target appears on the following tick
	g.Step(core.NewInputFrame())
	target, ok := g.world.platforms.Target()
	require.True(t, ok)
	assert.Equal(t, 2, target.Index)

	// Landing re-arms the prepare delay
	g.Step(core.Frame(core.ActionJump))
	assert.Equal(t, PhaseIdle, g.Phase())
}

func TestZeroPowerJumpFallsAndEndsRun(t *testing.T) {
	sound := &recordingSound{}
	g := New(config.DefaultJumpConfig(), WithSound(sound))
	g.Reset(testRuntime())
	startPlaying(t, g)

	// Target well beyond full-power reach
	g.Step(core.NewInputFrame())
	phys := config.DefaultJumpConfig().Physics
	replaceTarget(g, Platform{Index: 1, X: 1 + phys.MaxReach() + 5, Width: 2})
	waitReady(g)

	g.Step(core.Frame(core.ActionJump, core.ActionJumpRelease))
	require.Equal(t, PhaseAirborne, g.Phase())
	assert.Zero(t, g.world.ctrl.Jump().Power)

	stepUntil(g, 120, func() bool { return g.Phase() == PhaseFalling })
	require.Equal(t, PhaseFalling, g.Phase())
	assert.InDelta(t, 2.25, g.world.ctrl.Fall().Start.X, 1e-9)

	stepUntil(g, 300, func() bool { return g.Current() == StateGameOver })
	require.Equal(t, StateGameOver, g.Current())

	state := g.State()
	assert.True(t, state.GameOver)
	assert.Zero(t, state.Score)
	assert.Equal(t, 1, sound.count(core.SoundGameOver))
	assert.Zero(t, sound.count(core.SoundLand))

	assert.Positive(t, g.world.scene.Count(KindPlatform), "platforms stay visible behind the menu")
	assert.Zero(t, g.world.scene.Count(KindPlayer))
	assert.Equal(t, 1, g.world.scene.Count(KindGameOverMenu))
}

func TestNaturalTargetIsOutOfZeroPowerReach(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	loseRun(t, g)
	assert.Zero(t, g.State().Score)
}

func TestGameOverMenuReturnsToMainMenu(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	loseRun(t, g)

	b, ok := g.world.menu.Selected()
	require.True(t, ok)
	assert.Equal(t, ButtonMainMenu, b)

	g.Step(core.Frame(core.ActionConfirm))
	assert.Equal(t, StateMainMenu, g.Current())
	assert.Zero(t, g.world.scene.Count(KindPlatform))
	assert.Zero(t, g.world.scene.Count(KindScoreboard))
	assert.Zero(t, g.world.scene.Count(KindGameOverMenu))
	assert.Equal(t, 1, g.world.scene.Count(KindMainMenu))
}

func TestRestartToPlayingSelectsPlayAgain(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	cfg.Flow.RestartTo = "playing"
	g := New(cfg)
	g.Reset(testRuntime())
	startPlaying(t, g)
	loseRun(t, g)

	g.Step(core.Frame(core.ActionConfirm))
	assert.Equal(t, StatePlaying, g.Current())
}

func TestRestartThroughMainMenuRepeatedly(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	for i := 0; i < 3; i++ {
		loseRun(t, g)
		g.Step(core.Frame(core.ActionConfirm)) // Main menu
		require.Equal(t, StateMainMenu, g.Current(), "round %d", i)
		startPlaying(t, g)

		scene := g.world.scene
		assert.Zero(t, g.State().Score)
		assert.Equal(t, PhaseIdle, g.Phase())
		assert.Equal(t, 1, scene.Count(KindPlatform))
		assert.Equal(t, 1, scene.Count(KindPlayer))
		assert.Equal(t, 1, scene.Count(KindScoreboard))
		assert.Zero(t, scene.Count(KindScoreUp))
		assert.Zero(t, scene.Count(KindParticle))
		assert.Zero(t, scene.Count(KindMainMenu))
		assert.Zero(t, scene.Count(KindGameOverMenu))

		first, ok := g.world.platforms.ByIndex(0)
		require.True(t, ok)
		assert.Equal(t, 0.0, first.X)
	}
}

func TestPlayAgainRestartsDirectly(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	loseRun(t, g)

	g.Step(core.Frame(core.ActionRestart))
	require.Equal(t, StatePlaying, g.Current())
	assert.Zero(t, g.State().Score)
	assert.Equal(t, 1, g.world.scene.Count(KindPlayer))
	assert.Zero(t, g.world.scene.Count(KindGameOverMenu))
}

func TestEnterPlayingIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	w := g.world

	type snapshot struct {
		counts    map[Kind]int
		platforms []Platform
		player    core.Vec2
		camera    core.Vec2
		score     int
	}
	take := func() snapshot {
		s := snapshot{counts: map[Kind]int{}, player: w.player.Pos, camera: w.camera.Pos, score: w.score.Score()}
		for k := KindPlayer; k <= KindScoreboard; k++ {
			s.counts[k] = w.scene.Count(k)
		}
		for _, p := range w.platforms.Platforms() {
			p.Entity = 0
			s.platforms = append(s.platforms, p)
		}
		return s
	}

	once := take()
	w.machine.run(w, w.machine.enter[StatePlaying])
	assert.Equal(t, once, take())
}

func TestJumpAndFallNeverOverlap(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)

	prevCam := g.world.camera.Pos.X
	wasPlaying := true
	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		switch i % 45 {
		case 0:
			in.Set(core.ActionJump)
		case 25:
			in.Set(core.ActionJumpRelease)
		case 40:
			in.Set(core.ActionRestart)
		}
		g.Step(in)

		w := g.world
		require.False(t, w.ctrl.Jump().InProgress && w.ctrl.Fall().InProgress, "tick %d", i)

		target, ok := w.platforms.Target()
		if g.Current() == StatePlaying && ok {
			require.GreaterOrEqual(t, target.Index, w.player.LastLanded)
		}

		playing := g.Current() == StatePlaying
		if playing && wasPlaying {
			require.GreaterOrEqual(t, w.camera.Pos.X, prevCam, "camera moved back at tick %d", i)
		}
		prevCam = w.camera.Pos.X
		wasPlaying = playing
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 50 {
		case 0:
			inputs[i].Set(core.ActionConfirm)
		case 15:
			inputs[i].Set(core.ActionJump)
		case 15 + (i/50)%30:
			inputs[i].Set(core.ActionJumpRelease)
		}
	}

	run := func() (core.GameState, []Platform, core.Vec2) {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.State(), append([]Platform(nil), g.world.platforms.Platforms()...), g.world.player.Pos
	}

	s1, p1, pos1 := run()
	s2, p2, pos2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, pos1, pos2)
}

func TestPauseHaltsSimulation(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	waitReady(g)

	g.Step(core.Frame(core.ActionPause))
	require.True(t, g.State().Paused)
	ticks := g.world.ticks

	g.Step(core.Frame(core.ActionJump))
	assert.Equal(t, PhaseIdle, g.Phase())
	assert.Equal(t, ticks, g.world.ticks)

	g.Step(core.Frame(core.ActionPause))
	assert.False(t, g.State().Paused)
	g.Step(core.Frame(core.ActionJump))
	assert.Equal(t, PhaseCharging, g.Phase())
}

func TestMainMenuQuit(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.Frame(core.ActionDown))
	b, _ := g.world.menu.Selected()
	require.Equal(t, ButtonQuit, b)

	g.Step(core.Frame(core.ActionConfirm))
	assert.True(t, g.State().Quit)
	assert.Equal(t, StateMainMenu, g.Current())
}

func TestChargingSquashesPlayerAndPlatform(t *testing.T) {
	g := newTestGame(t)
	startPlaying(t, g)
	waitReady(g)

	g.Step(core.Frame(core.ActionJump))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	w := g.world
	assert.InDelta(t, 0.25, w.player.Squash, 0.02)

	standing, ok := w.standingOn()
	require.True(t, ok)
	w.scene.Each(KindPlatform, func(e Entity) {
		if e.ID == standing.Entity {
			assert.Less(t, e.Scale, 1.0)
		}
	})
	assert.Positive(t, w.scene.Count(KindParticle))

	g.Step(core.Frame(core.ActionJumpRelease))
	assert.Zero(t, w.player.Squash)
	w.scene.Each(KindPlayer, func(e Entity) {
		assert.Equal(t, 1.0, e.Scale)
	})
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Play")
	assert.Contains(t, screen.String(), "Quit")

	startPlaying(t, g)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.True(t, strings.ContainsRune(screen.Row(24-groundOffset), PlatformTopChar))
	assert.True(t, strings.ContainsRune(screen.String(), PlayerHeadChar))
	assert.NotContains(t, screen.String(), "Quit")
}

// chargeTicksFor picks how many ticks to hold the jump key so the arc from
// the player's position comes down closest to the middle of target. It
// reports false when no whole number of ticks lands on target.
func chargeTicksFor(g *Game, target Platform) (int, bool) {
	phys := g.world.cfg.Physics
	x0 := g.world.player.Pos.X
	mid := target.Center()

	best, bestErr := -1, math.Inf(1)
	for k := 0; time.Duration(k)*g.world.dt < phys.MaxCharge; k++ {
		frac := float64(time.Duration(k)*g.world.dt) / float64(phys.MaxCharge)
		x := x0 + phys.Reach(core.Lerp(phys.MinLaunchSpeed, phys.MaxLaunchSpeed, Power(frac)))
		if !target.Contains(x) {
			continue
		}
		if err := math.Abs(x - mid); err < bestErr {
			best, bestErr = k, err
		}
	}
	return best, best >= 0
}

func TestChainedLandingsScoreOncePerPlatform(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	for seed := int64(1); seed <= 5; seed++ {
		g := New(cfg)
		rt := testRuntime()
		rt.Seed = seed
		g.Reset(rt)
		startPlaying(t, g)

		for n := 1; n <= 25; n++ {
			waitReady(g)
			target, ok := g.world.platforms.Target()
			require.True(t, ok, "seed %d landing %d", seed, n)
			require.Equal(t, n, target.Index)

			ticks, ok := chargeTicksFor(g, target)
			require.True(t, ok, "seed %d: platform %d at x=%.2f is out of reach", seed, n, target.X)

			if ticks == 0 {
				g.Step(core.Frame(core.ActionJump, core.ActionJumpRelease))
			} else {
				g.Step(core.Frame(core.ActionJump))
				for i := 1; i < ticks; i++ {
					g.Step(core.NewInputFrame())
				}
				g.Step(core.Frame(core.ActionJumpRelease))
			}
			require.Equal(t, PhaseAirborne, g.Phase(), "seed %d landing %d", seed, n)

			stepUntil(g, 300, func() bool { return g.Phase() != PhaseAirborne })
			require.Equal(t, PhaseIdle, g.Phase(), "seed %d landing %d", seed, n)
			assert.Equal(t, n*cfg.Score.Increment, g.State().Score, "seed %d landing %d", seed, n)
			assert.Equal(t, n, g.world.player.LastLanded)
			assert.Equal(t, StatePlaying, g.Current())
		}
	}
}
