package jump

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// Camera follows the player horizontally with exponential easing.
// Its target only ever moves forward.
type Camera struct {
	Pos    core.Vec2
	target float64
	lead   float64
	rate   float64
}

// NewCamera creates a camera at the origin.
func NewCamera(cfg config.JumpCamera) Camera {
	return Camera{lead: cfg.Lead, rate: cfg.EaseRate}
}

// Reset snaps the camera so that focusX sits lead units from the left of the view.
func (c *Camera) Reset(focusX float64) {
	c.target = focusX - c.lead
	c.Pos = core.V(c.target, 0)
}

// Target returns the x position the camera is easing toward.
func (c *Camera) Target() float64 {
	return c.target
}

// Follow raises the target to keep playerX in view and moves toward it by a
// time-scaled fraction of the remaining distance.
func (c *Camera) Follow(playerX float64, dt time.Duration) {
	c.target = math.Max(c.target, playerX-c.lead)
	k := 1 - math.Exp(-c.rate*dt.Seconds())
	c.Pos.X += (c.target - c.Pos.X) * k
}
