package jump

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

const testSeed = 42

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: testSeed}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultJumpConfig())
	g.Reset(testRuntime())
	require.Equal(t, StateMainMenu, g.Current())
	return g
}

// startPlaying clicks Play on the main menu.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.Frame(core.ActionConfirm))
	require.Equal(t, StatePlaying, g.Current())
}

// waitReady steps until the post-landing delay has passed.
func waitReady(g *Game) {
	for !g.world.timers.PrepareJump.Finished() {
		g.Step(core.NewInputFrame())
	}
}

// replaceTarget swaps the generated target platform for p.
func replaceTarget(g *Game, p Platform) {
	gen := g.world.platforms
	last := gen.arena[len(gen.arena)-1]
	g.world.scene.Despawn(last.Entity)
	gen.arena = gen.arena[:len(gen.arena)-1]
	gen.place(p)
}

// stepUntil steps with empty input until cond holds or limit ticks pass.
func stepUntil(g *Game, limit int, cond func() bool) int {
	for i := 0; i < limit; i++ {
		if cond() {
			return i
		}
		g.Step(core.NewInputFrame())
	}
	return limit
}

type recordingSound struct {
	played []core.Sound
}

func (r *recordingSound) Play(s core.Sound) {
	r.played = append(r.played, s)
}

func (r *recordingSound) count(s core.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}
