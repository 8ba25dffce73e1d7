package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Validation errors. Returned wrapped with the offending field.
var (
	ErrInvalid     = errors.New("invalid config")
	ErrUnreachable = errors.New("platforms would be unreachable")
)

// LoadJump loads the jump game configuration.
// Search order: customPath -> ~/.jump/configs/jump.yaml -> ./configs/jump.yaml -> embedded default.
// Files found on the search path that fail to parse or validate are skipped;
// an explicit customPath must load cleanly.
func LoadJump(customPath string) (JumpConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseJump(data)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/jump.yaml"}
	if userCfgPath := userConfigPath("jump.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseJump(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseJump(defaultJumpYAML)
	if err != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseJump decodes YAML on top of the built-in defaults and validates the result.
// Fields missing from data keep their default values.
func ParseJump(data []byte) (JumpConfig, error) {
	cfg := DefaultJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumpConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return JumpConfig{}, err
	}
	return cfg, nil
}

// Validate checks ranges and the reachability constraint: the widest platform
// plus the smallest gap must fit inside a full-power jump, so the generator can
// always place a landable platform.
func Validate(cfg JumpConfig) error {
	p := cfg.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalid)
	case p.HorizontalSpeed <= 0:
		return fmt.Errorf("%w: physics.horizontal_speed must be positive", ErrInvalid)
	case p.MinLaunchSpeed <= 0 || p.MaxLaunchSpeed < p.MinLaunchSpeed:
		return fmt.Errorf("%w: physics launch speeds must satisfy 0 < min <= max", ErrInvalid)
	case p.MaxCharge <= 0:
		return fmt.Errorf("%w: physics.max_charge must be positive", ErrInvalid)
	case p.FallThreshold <= 0:
		return fmt.Errorf("%w: physics.fall_threshold must be positive", ErrInvalid)
	}

	pl := cfg.Platforms
	switch {
	case pl.FirstWidth <= 0 || pl.MinWidth <= 0:
		return fmt.Errorf("%w: platform widths must be positive", ErrInvalid)
	case pl.MaxWidth < pl.MinWidth:
		return fmt.Errorf("%w: platforms.max_width is below min_width", ErrInvalid)
	case pl.MinGap < 0 || pl.MaxGap < pl.MinGap:
		return fmt.Errorf("%w: platform gaps must satisfy 0 <= min <= max", ErrInvalid)
	case pl.Window < 1:
		return fmt.Errorf("%w: platforms.window must be at least 1", ErrInvalid)
	}

	widest := max(pl.FirstWidth, pl.MaxWidth, p.MinReach())
	if widest+pl.MinGap > p.MaxReach() {
		return fmt.Errorf("%w: width %.2f + gap %.2f exceeds full-power reach %.2f",
			ErrUnreachable, widest, pl.MinGap, p.MaxReach())
	}

	switch {
	case cfg.Score.Increment < 1:
		return fmt.Errorf("%w: score.increment must be at least 1", ErrInvalid)
	case cfg.Score.PopupLifetime <= 0:
		return fmt.Errorf("%w: score.popup_lifetime must be positive", ErrInvalid)
	case cfg.Camera.EaseRate <= 0:
		return fmt.Errorf("%w: camera.ease_rate must be positive", ErrInvalid)
	case cfg.Camera.CellsPerUnit < 1:
		return fmt.Errorf("%w: camera.cells_per_unit must be at least 1", ErrInvalid)
	case cfg.Flow.RestartTo != "menu" && cfg.Flow.RestartTo != "playing":
		return fmt.Errorf("%w: flow.restart_to must be \"menu\" or \"playing\"", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jump", "configs", filename)
}

// ApplyJumpPreset modifies the config based on a difficulty preset.
func ApplyJumpPreset(cfg *JumpConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
