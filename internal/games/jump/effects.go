package jump

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-jump/internal/core"
)

const (
	burstSize   = 6
	burstRadius = 1.5
)

// spawnBurst places a ring of particles around center that converge on it
// over lifetime.
func spawnBurst(scene *Scene, rng *rand.Rand, center core.Vec2, lifetime time.Duration) {
	if lifetime <= 0 {
		return
	}
	secs := lifetime.Seconds()
	offset := rng.Float64() * 2 * math.Pi
	for i := 0; i < burstSize; i++ {
		// Upper half only; particles below the surface would be hidden.
		angle := offset + float64(i)*math.Pi/burstSize
		from := center.Add(core.V(math.Cos(angle), math.Abs(math.Sin(angle))).Scale(burstRadius))
		scene.Spawn(Entity{
			Kind:     KindParticle,
			Pos:      from,
			Vel:      center.Sub(from).Scale(1 / secs),
			Value:    i % 2,
			Lifetime: lifetime,
		})
	}
}

// ageParticles advances and fades particles, despawning expired ones.
func ageParticles(scene *Scene, dt time.Duration) {
	scene.Retain(KindParticle, func(e *Entity) bool {
		e.Age += dt
		if e.Age >= e.Lifetime {
			return false
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt.Seconds()))
		e.Alpha = 1 - float64(e.Age)/float64(e.Lifetime)
		return true
	})
}
