package core

// Sound identifies a sound effect the game asks the platform to play.
type Sound int

const (
	SoundJump     Sound = iota // Launch from a platform
	SoundLand                  // Successful landing
	SoundCharge                // Accumulation burst while charging
	SoundGameOver              // Missed platform, run ended
	SoundCount
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundCharge:
		return "charge"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
