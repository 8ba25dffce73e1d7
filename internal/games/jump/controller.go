package jump

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// Phase is the sub-state of a single jump attempt.
type Phase int

const (
	PhaseIdle     Phase = iota // Standing on a platform
	PhaseCharging              // Holding input, building power
	PhaseAirborne              // Following the launch arc
	PhaseFalling               // Missed the target, dropping
	PhaseTerminal              // Fell past the threshold
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCharging:
		return "Charging"
	case PhaseAirborne:
		return "Airborne"
	case PhaseFalling:
		return "Falling"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Outcome is what resolving an airborne tick produced.
type Outcome int

const (
	OutcomeFlying Outcome = iota
	OutcomeLanded
	OutcomeMissed
)

// JumpState is one launch. Position is a closed-form function of Elapsed.
type JumpState struct {
	Elapsed    time.Duration
	Launch     core.Vec2
	Dir        float64 // +1 right, -1 left
	Speed      float64 // Horizontal speed
	V0         float64 // Vertical launch speed
	Power      float64 // 0..1
	InProgress bool
}

// At returns the arc position t seconds after launch.
func (j JumpState) At(t, gravity float64) core.Vec2 {
	return core.V(
		j.Launch.X+j.Dir*j.Speed*t,
		j.Launch.Y+j.V0*t-0.5*gravity*t*t,
	)
}

// FallState is the drop after a missed landing.
type FallState struct {
	Elapsed    time.Duration
	Start      core.Vec2
	VX, VY     float64 // Velocity at the failure point
	InProgress bool
}

// At returns the fall position t seconds after the failure point.
func (f FallState) At(t, gravity float64) core.Vec2 {
	return core.V(
		f.Start.X+f.VX*t,
		f.Start.Y+f.VY*t-0.5*gravity*t*t,
	)
}

// Controller runs the Idle → Charging → Airborne → Idle | Falling → Terminal cycle.
// JumpState and FallState are never in progress at the same time.
type Controller struct {
	phys  config.JumpPhysics
	phase Phase
	jump  JumpState
	fall  FallState
}

// NewController creates an idle controller.
func NewController(phys config.JumpPhysics) Controller {
	return Controller{phys: phys}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Jump returns the current jump state.
func (c *Controller) Jump() JumpState {
	return c.jump
}

// Fall returns the current fall state.
func (c *Controller) Fall() FallState {
	return c.fall
}

// BeginCharge moves Idle to Charging. Any other phase ignores the request.
func (c *Controller) BeginCharge() bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.phase = PhaseCharging
	return true
}

// Power maps a charge fraction to launch power. The mapping is linear and
// clamped, so holding past the maximum never adds power.
func Power(chargeFraction float64) float64 {
	return core.ClampF(chargeFraction, 0, 1)
}

// LaunchSpeed returns the vertical launch speed for a power in [0, 1].
func (c *Controller) LaunchSpeed(power float64) float64 {
	return core.Lerp(c.phys.MinLaunchSpeed, c.phys.MaxLaunchSpeed, Power(power))
}

// Launch moves Charging to Airborne from the given position.
func (c *Controller) Launch(from core.Vec2, power, dir float64) bool {
	if c.phase != PhaseCharging {
		return false
	}
	power = Power(power)
	c.jump = JumpState{
		Launch:     from,
		Dir:        dir,
		Speed:      c.phys.HorizontalSpeed,
		V0:         c.LaunchSpeed(power),
		Power:      power,
		InProgress: true,
	}
	c.fall = FallState{}
	c.phase = PhaseAirborne
	return true
}

// Advance moves the active jump or fall clock forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	switch {
	case c.jump.InProgress:
		c.jump.Elapsed += dt
	case c.fall.InProgress:
		c.fall.Elapsed += dt
	}
}

// ResolveAirborne evaluates the arc at the current elapsed time. Once the arc
// comes back down through the platform surface, the exact crossing point is
// tested against target. A hit ends the jump; a miss hands the remaining time
// over to the fall. hasTarget false counts as a miss.
func (c *Controller) ResolveAirborne(target Platform, hasTarget bool) (core.Vec2, Outcome) {
	if c.phase != PhaseAirborne {
		return core.Vec2{}, OutcomeFlying
	}

	g := c.phys.Gravity
	j := c.jump
	t := j.Elapsed.Seconds()
	pos := j.At(t, g)

	descending := t > j.V0/g
	if !descending || pos.Y > PlatformTop {
		return pos, OutcomeFlying
	}

	// Descending root of launch.y + v0*t - g*t²/2 = top
	cross := (j.V0 + math.Sqrt(j.V0*j.V0+2*g*(j.Launch.Y-PlatformTop))) / g
	hit := j.At(cross, g)
	hit.Y = PlatformTop

	if hasTarget && target.Contains(hit.X) {
		c.jump = JumpState{}
		c.phase = PhaseIdle
		return hit, OutcomeLanded
	}

	c.jump = JumpState{}
	c.fall = FallState{
		Elapsed:    j.Elapsed - time.Duration(cross*float64(time.Second)),
		Start:      hit,
		VX:         j.Dir * j.Speed,
		VY:         j.V0 - g*cross,
		InProgress: true,
	}
	c.phase = PhaseFalling
	return c.fall.At(c.fall.Elapsed.Seconds(), g), OutcomeMissed
}

// ResolveFall evaluates the fall at the current elapsed time and reports
// whether the player dropped below floor, which makes the failure final.
func (c *Controller) ResolveFall(floor float64) (core.Vec2, bool) {
	if c.phase != PhaseFalling {
		return core.Vec2{}, false
	}
	pos := c.fall.At(c.fall.Elapsed.Seconds(), c.phys.Gravity)
	if pos.Y < floor {
		c.fall.InProgress = false
		c.phase = PhaseTerminal
		return pos, true
	}
	return pos, false
}

// Cancel unconditionally returns to Idle, dropping any charge, jump or fall.
func (c *Controller) Cancel() {
	c.phase = PhaseIdle
	c.jump = JumpState{}
	c.fall = FallState{}
}
