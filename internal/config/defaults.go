package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the built-in configuration. It mirrors
// defaults/jump.yaml and is used when the embedded file cannot be parsed.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		Physics: JumpPhysics{
			Gravity:         32,
			HorizontalSpeed: 4,
			MinLaunchSpeed:  5,
			MaxLaunchSpeed:  20,
			MaxCharge:       time.Second,
			FallThreshold:   8,
		},
		Platforms: JumpPlatforms{
			FirstWidth: 2,
			MinWidth:   1,
			MaxWidth:   2.5,
			MinGap:     0.5,
			MaxGap:     2.5,
			Window:     4,
		},
		Timers: JumpTimers{
			PrepareJump:        200 * time.Millisecond,
			AccumulationEffect: 200 * time.Millisecond,
			ParticleLifetime:   400 * time.Millisecond,
		},
		Score: JumpScore{
			Increment:     1,
			PopupLifetime: 800 * time.Millisecond,
			PopupRise:     1.5,
		},
		Camera: JumpCamera{
			Lead:         2,
			EaseRate:     4,
			CellsPerUnit: 6,
		},
		Flow: JumpFlow{
			RestartTo: "menu",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultJumpYAML
}
