package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Effect durations
const (
	jumpDuration     = 120 * time.Millisecond
	landDuration     = 90 * time.Millisecond
	chargeDuration   = 30 * time.Millisecond
	gameOverNote     = 140 * time.Millisecond
	defaultAttack    = 5 * time.Millisecond
	defaultRelease   = 40 * time.Millisecond
	chargeRelease    = 20 * time.Millisecond
	gameOverReleases = 80 * time.Millisecond
)

// note builds one enveloped sweep.
func note(freq, freqEnd float64, d time.Duration, wave WaveType, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, freqEnd, d, wave, rate), d, defaultAttack, release, rate)
}

// tone builds one enveloped fixed-pitch note.
func tone(freq float64, d time.Duration, wave WaveType, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, defaultAttack, release, rate)
}

// createJump is a short rising chirp.
func createJump(rate beep.SampleRate) beep.Streamer {
	return newVolume(note(320, 760, jumpDuration, WaveSquare, defaultRelease, rate), 0.35)
}

// createLand is a low falling thud.
func createLand(rate beep.SampleRate) beep.Streamer {
	return newVolume(note(180, 90, landDuration, WaveTriangle, defaultRelease, rate), 0.8)
}

// createCharge is a faint tick played on every accumulation burst.
func createCharge(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(1200, chargeDuration, WaveSine, chargeRelease, rate), 0.25)
}

// createGameOver is three descending notes.
func createGameOver(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, gameOverNote, WaveSquare, gameOverReleases, rate),
		tone(392.00, gameOverNote, WaveSquare, gameOverReleases, rate),
		note(261.63, 196.00, 2*gameOverNote, WaveSquare, 2*gameOverReleases, rate),
	), 0.3)
}

// Effect returns a fresh streamer for s, or nil for unknown sounds.
func Effect(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundJump:
		return createJump(rate)
	case core.SoundLand:
		return createLand(rate)
	case core.SoundCharge:
		return createCharge(rate)
	case core.SoundGameOver:
		return createGameOver(rate)
	default:
		return nil
	}
}
