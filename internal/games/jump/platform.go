package jump

import (
	"math/rand"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// PlatformTop is the height of every platform's landing surface.
const PlatformTop = 0.0

// Platform is a landing surface. Index grows by one per platform in a session.
type Platform struct {
	Index  int
	X      float64 // Left edge
	Width  float64
	Entity EntityID
}

// Left returns the x-coordinate of the left edge.
func (p Platform) Left() float64 { return p.X }

// Right returns the x-coordinate of the right edge.
func (p Platform) Right() float64 { return p.X + p.Width }

// Center returns the x-coordinate of the middle of the platform.
func (p Platform) Center() float64 { return p.X + p.Width/2 }

// Contains reports whether x lies on the platform, edges included.
func (p Platform) Contains(x float64) bool {
	return x >= p.Left() && x <= p.Right()
}

// Generator owns the ordered platforms of a session and places new ones.
//
// Every generated platform is landable from anywhere on its predecessor:
// the gap never exceeds full-power reach minus the predecessor's width, and
// the width is never smaller than zero-power reach minus the gap.
type Generator struct {
	cfg        config.JumpConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	scene      *Scene
	arena      []Platform
	ticks      int
}

// NewGenerator creates a generator that spawns platform visuals into scene.
func NewGenerator(cfg config.JumpConfig, rng *rand.Rand, diff *config.DifficultyManager, scene *Scene) *Generator {
	return &Generator{
		cfg:        cfg,
		rng:        rng,
		difficulty: diff,
		scene:      scene,
		arena:      make([]Platform, 0, cfg.Platforms.Window+2),
	}
}

// SetTicks records the session tick count used by time-based difficulty.
func (g *Generator) SetTicks(ticks int) {
	g.ticks = ticks
}

// Clear removes every platform and its visual. Clearing an empty generator is a no-op.
func (g *Generator) Clear() {
	g.arena = g.arena[:0]
	g.scene.DespawnKind(KindPlatform)
}

// SetupFirst clears the arena and places the session's first platform at the origin.
func (g *Generator) SetupFirst() Platform {
	g.Clear()
	return g.place(Platform{Index: 0, X: 0, Width: g.cfg.Platforms.FirstWidth})
}

// Next places the platform following prev. The horizontal gap and width are
// drawn from ranges that tighten as score grows: gaps drift toward their
// maximum and widths toward their minimum. Platforms more than the configured
// window behind prev are pruned.
func (g *Generator) Next(prev Platform, score int) Platform {
	phys := g.cfg.Physics
	pl := g.cfg.Platforms
	minReach, maxReach := phys.MinReach(), phys.MaxReach()

	gapHi := min(pl.MaxGap, maxReach-prev.Width)
	gapLo := g.difficulty.Interpolate(pl.MinGap, pl.MaxGap, score, g.ticks)
	if gapHi < 0 {
		gapHi = 0
	}
	if gapLo > gapHi {
		gapLo = gapHi
	}
	gap := gapLo + g.rng.Float64()*(gapHi-gapLo)

	widthHi := g.difficulty.Interpolate(pl.MaxWidth, pl.MinWidth, score, g.ticks)
	width := pl.MinWidth + g.rng.Float64()*(widthHi-pl.MinWidth)
	if width < minReach-gap {
		width = minReach - gap
	}

	next := g.place(Platform{
		Index: prev.Index + 1,
		X:     prev.Right() + gap,
		Width: width,
	})
	g.prune(prev.Index)
	return next
}

// place appends p to the arena and spawns its visual.
func (g *Generator) place(p Platform) Platform {
	p.Entity = g.scene.Spawn(Entity{
		Kind:  KindPlatform,
		Pos:   core.V(p.X, PlatformTop),
		Width: p.Width,
	})
	g.arena = append(g.arena, p)
	return p
}

// prune drops platforms whose index trails current by more than the window.
func (g *Generator) prune(current int) {
	cutoff := current - g.cfg.Platforms.Window
	kept := g.arena[:0]
	for _, p := range g.arena {
		if p.Index < cutoff {
			g.scene.Despawn(p.Entity)
			continue
		}
		kept = append(kept, p)
	}
	g.arena = kept
}

// Target returns the newest platform, which is the one the player must land on next
// once it is ahead of the player's last landing.
func (g *Generator) Target() (Platform, bool) {
	if len(g.arena) == 0 {
		return Platform{}, false
	}
	return g.arena[len(g.arena)-1], true
}

// ByIndex returns the live platform with the given order index.
func (g *Generator) ByIndex(index int) (Platform, bool) {
	for _, p := range g.arena {
		if p.Index == index {
			return p, true
		}
	}
	return Platform{}, false
}

// Platforms returns the live platforms in order.
func (g *Generator) Platforms() []Platform {
	return g.arena
}
