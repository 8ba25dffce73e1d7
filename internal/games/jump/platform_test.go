package jump

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jump/internal/config"
)

func newTestGenerator(seed int64) (*Generator, *Scene) {
	cfg := config.DefaultJumpConfig()
	scene := NewScene()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewGenerator(cfg, rand.New(rand.NewSource(seed)), diff, scene), scene
}

func TestPlatformContainsIsInclusive(t *testing.T) {
	p := Platform{X: 2, Width: 3}

	tests := []struct {
		x    float64
		want bool
	}{
		{1.999, false},
		{2, true},
		{3.5, true},
		{5, true},
		{5.001, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Contains(tt.x), "x=%v", tt.x)
	}
	assert.Equal(t, 3.5, p.Center())
}

func TestGeneratorSetupFirst(t *testing.T) {
	gen, scene := newTestGenerator(1)

	first := gen.SetupFirst()
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 0.0, first.X)
	assert.Equal(t, config.DefaultJumpConfig().Platforms.FirstWidth, first.Width)
	assert.Equal(t, 1, scene.Count(KindPlatform))

	// Setting up again replaces rather than adds
	gen.SetupFirst()
	assert.Len(t, gen.Platforms(), 1)
	assert.Equal(t, 1, scene.Count(KindPlatform))

	gen.Clear()
	gen.Clear()
	assert.Empty(t, gen.Platforms())
	assert.Zero(t, scene.Count(KindPlatform))

	_, ok := gen.Target()
	assert.False(t, ok)
}

func TestGeneratorReachability(t *testing.T) {
	phys := config.DefaultJumpConfig().Physics
	minReach, maxReach := phys.MinReach(), phys.MaxReach()
	const eps = 1e-9

	for seed := int64(1); seed <= 20; seed++ {
		gen, _ := newTestGenerator(seed)
		prev := gen.SetupFirst()

		for score := 0; score < 120; score++ {
			next := gen.Next(prev, score)
			require.Equal(t, prev.Index+1, next.Index)
			assert.Greater(t, next.Left(), prev.Right(), "platforms must not overlap")

			for _, x := range []float64{prev.Left(), prev.Center(), prev.Right()} {
				lo, hi := x+minReach, x+maxReach
				assert.True(t, lo <= next.Right()+eps && hi >= next.Left()-eps,
					"seed %d score %d: [%v,%v] misses [%v,%v]", seed, score, lo, hi, next.Left(), next.Right())
			}
			prev = next
		}
	}
}

func TestGeneratorPrunesBehindWindow(t *testing.T) {
	gen, scene := newTestGenerator(7)
	window := config.DefaultJumpConfig().Platforms.Window

	prev := gen.SetupFirst()
	for i := 0; i < 30; i++ {
		prev = gen.Next(prev, i)
	}

	platforms := gen.Platforms()
	assert.LessOrEqual(t, len(platforms), window+2)
	assert.Equal(t, len(platforms), scene.Count(KindPlatform))
	for i := 1; i < len(platforms); i++ {
		assert.Equal(t, platforms[i-1].Index+1, platforms[i].Index, "arena stays ordered")
	}

	target, ok := gen.Target()
	require.True(t, ok)
	assert.Equal(t, prev, target)
}

func TestGeneratorDeterministic(t *testing.T) {
	run := func() []Platform {
		gen, _ := newTestGenerator(99)
		prev := gen.SetupFirst()
		var out []Platform
		for i := 0; i < 10; i++ {
			prev = gen.Next(prev, i)
			out = append(out, prev)
		}
		return out
	}
	assert.Equal(t, run(), run())
}
