// Package config provides YAML-based game configuration loading and
// difficulty management for the jump game.
package config

import (
	"math"
	"time"
)

// JumpConfig contains all configuration for the jump game.
type JumpConfig struct {
	Physics    JumpPhysics      `yaml:"physics"`
	Platforms  JumpPlatforms    `yaml:"platforms"`
	Timers     JumpTimers       `yaml:"timers"`
	Score      JumpScore        `yaml:"score"`
	Camera     JumpCamera       `yaml:"camera"`
	Flow       JumpFlow         `yaml:"flow"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumpPhysics defines the closed-form jump arc.
// Units are world units and seconds.
type JumpPhysics struct {
	Gravity         float64       `yaml:"gravity"`
	HorizontalSpeed float64       `yaml:"horizontal_speed"`
	MinLaunchSpeed  float64       `yaml:"min_launch_speed"` // Vertical speed at zero charge
	MaxLaunchSpeed  float64       `yaml:"max_launch_speed"` // Vertical speed at full charge
	MaxCharge       time.Duration `yaml:"max_charge"`       // Hold time that yields full power
	FallThreshold   float64       `yaml:"fall_threshold"`   // Depth below the camera that ends a fall
}

// JumpPlatforms defines the procedural platform ranges.
type JumpPlatforms struct {
	FirstWidth float64 `yaml:"first_width"`
	MinWidth   float64 `yaml:"min_width"`
	MaxWidth   float64 `yaml:"max_width"`
	MinGap     float64 `yaml:"min_gap"`
	MaxGap     float64 `yaml:"max_gap"`
	Window     int     `yaml:"window"` // Platforms kept behind the player
}

// JumpTimers defines the gating timers.
type JumpTimers struct {
	PrepareJump        time.Duration `yaml:"prepare_jump"`
	AccumulationEffect time.Duration `yaml:"accumulation_effect"`
	ParticleLifetime   time.Duration `yaml:"particle_lifetime"`
}

// JumpScore defines scoring and the floating "+N" feedback.
type JumpScore struct {
	Increment     int           `yaml:"increment"`
	PopupLifetime time.Duration `yaml:"popup_lifetime"`
	PopupRise     float64       `yaml:"popup_rise"` // Units per second
}

// JumpCamera defines the follow policy.
type JumpCamera struct {
	Lead         float64 `yaml:"lead"`           // Units kept visible behind the player
	EaseRate     float64 `yaml:"ease_rate"`      // Exponential approach rate per second
	CellsPerUnit int     `yaml:"cells_per_unit"` // Screen columns per world unit
}

// JumpFlow defines menu policy.
type JumpFlow struct {
	RestartTo string `yaml:"restart_to"` // "menu" or "playing"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Reach returns the horizontal distance covered by a jump launched with
// vertical speed v0 that lands back at launch height.
func (p JumpPhysics) Reach(v0 float64) float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return 2 * p.HorizontalSpeed * v0 / p.Gravity
}

// MinReach is the distance of a zero-charge jump.
func (p JumpPhysics) MinReach() float64 {
	return p.Reach(p.MinLaunchSpeed)
}

// MaxReach is the distance of a full-charge jump.
func (p JumpPhysics) MaxReach() float64 {
	return p.Reach(p.MaxLaunchSpeed)
}

// Apex is the peak height of a full-charge jump.
func (p JumpPhysics) Apex() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return math.Pow(p.MaxLaunchSpeed, 2) / (2 * p.Gravity)
}
