package config

import "github.com/vovakirdan/tui-jump/internal/core"

// DifficultyManager ramps platform generation from its easy bound toward its
// hard bound as a run goes on.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager creates a manager for cfg. The initial level is
// clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:  cfg,
		base: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far the run is toward max_at, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	var at int
	switch d.cfg.Progression.Type {
	case "score":
		at = score
	case "time":
		at = ticks
	default:
		return 0
	}
	return core.ClampF(float64(at)/float64(max(d.cfg.Progression.MaxAt, 1)), 0, 1)
}

// Interpolate returns easy at level 0 and hard at level 1. The level starts
// at initial_level and rises linearly to 1 at max_at, so it never moves back
// toward easy as score or ticks grow.
func (d *DifficultyManager) Interpolate(easy, hard float64, score, ticks int) float64 {
	level := core.Lerp(d.base, 1, d.progress(score, ticks))
	return core.Lerp(easy, hard, level)
}
