package jump

import (
	"github.com/vovakirdan/tui-jump/internal/core"
)

// advanceTimers moves every running clock forward by one tick. The charge
// clocks only run while charging.
func advanceTimers(w *World) {
	w.timers.PrepareJump.Tick(w.dt)
	if w.ctrl.Phase() == PhaseCharging {
		w.timers.Charge.Tick(w.dt)
		w.timers.AccumulationEffect.Tick(w.dt)
	}
	w.ctrl.Advance(w.dt)
}

// navigateMenu handles the button list of MainMenu and GameOver.
func navigateMenu(w *World, in core.InputFrame) {
	if in.Has(core.ActionUp) {
		w.menu.Up()
	}
	if in.Has(core.ActionDown) {
		w.menu.Down()
	}
	if w.machine.Current() == StateGameOver && in.Has(core.ActionRestart) {
		click(w, ButtonPlayAgain)
		return
	}
	if in.Has(core.ActionConfirm) || (w.machine.Current() == StateMainMenu && in.Has(core.ActionJump)) {
		if b, ok := w.menu.Selected(); ok {
			click(w, b)
		}
	}
}

func click(w *World, b Button) {
	w.log.Debug("button", "state", w.machine.Current(), "button", b)
	switch b {
	case ButtonPlay, ButtonPlayAgain:
		w.machine.Request(StatePlaying)
	case ButtonMainMenu:
		w.machine.Request(StateMainMenu)
	case ButtonQuit:
		w.quit = true
	}
}

// prepareJump turns jump input into charging and launching.
func prepareJump(w *World, in core.InputFrame) {
	if w.ctrl.Phase() == PhaseIdle && in.Has(core.ActionJump) && w.timers.PrepareJump.Finished() {
		if w.ctrl.BeginCharge() {
			w.timers.Charge.Reset()
			w.timers.AccumulationEffect.Reset()
		}
	}

	if w.ctrl.Phase() != PhaseCharging {
		return
	}
	if !in.Has(core.ActionJumpRelease) && !w.timers.Charge.Finished() {
		return
	}

	power := Power(w.timers.Charge.Fraction())
	if w.ctrl.Launch(w.player.Pos, power, 1) {
		w.play(core.SoundJump)
		w.log.Debug("launch", "power", power, "v0", w.ctrl.Jump().V0, "from", w.player.LastLanded)
	}
}

// generateNextPlatform places a new target once the player has landed on the current one.
func generateNextPlatform(w *World) {
	target, ok := w.platforms.Target()
	if !ok || target.Index > w.player.LastLanded {
		return
	}
	w.platforms.SetTicks(w.ticks)
	next := w.platforms.Next(target, w.score.Score())
	w.log.Debug("platform", "index", next.Index, "x", next.X, "width", next.Width)
}

func moveCamera(w *World) {
	w.camera.Follow(w.player.Pos.X, w.dt)
}

// animateJump moves the player along the arc and resolves the landing.
func animateJump(w *World) {
	if w.ctrl.Phase() != PhaseAirborne {
		return
	}
	target, ok := w.platforms.Target()
	ok = ok && target.Index > w.player.LastLanded

	pos, outcome := w.ctrl.ResolveAirborne(target, ok)
	w.player.Pos = pos

	switch outcome {
	case OutcomeLanded:
		w.player.LastLanded = target.Index
		w.score.Landed(pos)
		w.timers.PrepareJump.Reset()
		w.play(core.SoundLand)
		w.log.Debug("landed", "platform", target.Index, "x", pos.X, "score", w.score.Score())
	case OutcomeMissed:
		w.log.Debug("missed", "platform", target.Index, "x", pos.X)
	}
}

// animateFall drops the player after a miss and ends the run below the threshold.
func animateFall(w *World) {
	if w.ctrl.Phase() != PhaseFalling {
		return
	}
	pos, terminal := w.ctrl.ResolveFall(w.camera.Pos.Y - w.cfg.Physics.FallThreshold)
	w.player.Pos = pos
	if terminal {
		w.play(core.SoundGameOver)
		w.machine.Request(StateGameOver)
		w.log.Info("game over", "score", w.score.Score(), "platform", w.player.LastLanded)
	}
}

// animateAccumulation squashes the player and the platform under it while
// charging and emits particle bursts on the accumulation beat.
func animateAccumulation(w *World) {
	standing, hasStanding := w.standingOn()

	if w.ctrl.Phase() != PhaseCharging {
		w.player.Squash = 0
		if hasStanding {
			w.scene.Update(standing.Entity, func(e *Entity) { e.Scale = 1 })
		}
		return
	}

	frac := w.timers.Charge.Fraction()
	w.player.Squash = 0.5 * frac
	if hasStanding {
		w.scene.Update(standing.Entity, func(e *Entity) { e.Scale = 1 - 0.3*frac })
	}

	for i := 0; i < w.timers.AccumulationEffect.TimesFinished(); i++ {
		spawnBurst(w.scene, w.rng, w.player.Pos, w.cfg.Timers.ParticleLifetime)
		w.play(core.SoundCharge)
	}
}

func spawnScoreUps(w *World) {
	w.score.SpawnPending(w.scene)
}

func ageScoreUps(w *World) {
	w.score.Age(w.scene, w.dt)
}

func ageEffects(w *World) {
	ageParticles(w.scene, w.dt)
}

// syncPlayer copies the simulated player into its visual.
func syncPlayer(w *World) {
	w.scene.Update(w.player.Entity, func(e *Entity) {
		e.Pos = w.player.Pos
		e.Scale = 1 - w.player.Squash
	})
}
