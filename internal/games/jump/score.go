package jump

import (
	"time"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// ScoreUp is a pending "+N" popup.
type ScoreUp struct {
	Pos   core.Vec2
	Value int
}

// ScorePipeline owns the score and the queue of popups waiting to be shown.
type ScorePipeline struct {
	cfg   config.JumpScore
	score int
	queue []ScoreUp
}

// NewScorePipeline creates a pipeline with a zero score.
func NewScorePipeline(cfg config.JumpScore) ScorePipeline {
	return ScorePipeline{cfg: cfg}
}

// Reset zeroes the score and drops pending popups.
func (s *ScorePipeline) Reset() {
	s.score = 0
	s.queue = s.queue[:0]
}

// Score returns the current score.
func (s *ScorePipeline) Score() int {
	return s.score
}

// Pending returns the popups not yet spawned.
func (s *ScorePipeline) Pending() []ScoreUp {
	return s.queue
}

// Landed credits a successful landing at pos.
func (s *ScorePipeline) Landed(pos core.Vec2) int {
	s.score += s.cfg.Increment
	s.queue = append(s.queue, ScoreUp{Pos: pos, Value: s.cfg.Increment})
	return s.cfg.Increment
}

// SpawnPending drains the queue into score-up entities in push order.
func (s *ScorePipeline) SpawnPending(scene *Scene) int {
	n := len(s.queue)
	for _, up := range s.queue {
		scene.Spawn(Entity{
			Kind:     KindScoreUp,
			Pos:      up.Pos,
			Value:    up.Value,
			Lifetime: s.cfg.PopupLifetime,
		})
	}
	s.queue = s.queue[:0]
	return n
}

// Age moves every score-up upward, fades it, and despawns it once its lifetime is spent.
func (s *ScorePipeline) Age(scene *Scene, dt time.Duration) {
	rise := s.cfg.PopupRise * dt.Seconds()
	scene.Retain(KindScoreUp, func(e *Entity) bool {
		e.Age += dt
		if e.Age >= e.Lifetime {
			return false
		}
		e.Pos.Y += rise
		e.Alpha = 1 - float64(e.Age)/float64(e.Lifetime)
		return true
	})
}
