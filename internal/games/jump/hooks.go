package jump

import (
	"github.com/vovakirdan/tui-jump/internal/core"
)

// registerHooks wires the enter and exit hooks of every state. Each hook
// clears what it is about to create, so running an enter list twice leaves
// the same world as running it once.
func registerHooks(m *Machine) {
	m.OnEnter(StateMainMenu,
		setupMainMenu,
		clearPlayer,
		clearPlatforms,
		clearEffects,
		despawnScoreboard,
	)
	m.OnExit(StateMainMenu, despawnMainMenu)

	m.OnEnter(StatePlaying,
		clearPlayer,
		clearPlatforms,
		clearEffects,
		despawnScoreboard,
		setupFirstPlatform,
		setupPlayer,
		setupScoreboard,
		resetScore,
		resetTimers,
		resetCamera,
		resetController,
	)
	m.OnExit(StatePlaying, cancelJump, clearPlayer, despawnParticles)

	m.OnEnter(StateGameOver, setupGameOverMenu)
	m.OnExit(StateGameOver, despawnGameOverMenu)
}

func setupMainMenu(w *World) {
	w.scene.DespawnKind(KindMainMenu)
	w.scene.Spawn(Entity{Kind: KindMainMenu})
	w.menu = NewMenu(0, ButtonPlay, ButtonQuit)
}

func despawnMainMenu(w *World) {
	w.scene.DespawnKind(KindMainMenu)
}

func clearPlayer(w *World) {
	w.scene.DespawnKind(KindPlayer)
	w.player = Player{}
}

func clearPlatforms(w *World) {
	w.platforms.Clear()
}

func clearEffects(w *World) {
	w.scene.DespawnKind(KindScoreUp)
	w.scene.DespawnKind(KindParticle)
}

func despawnParticles(w *World) {
	w.scene.DespawnKind(KindParticle)
}

func despawnScoreboard(w *World) {
	w.scene.DespawnKind(KindScoreboard)
}

func setupFirstPlatform(w *World) {
	w.platforms.SetupFirst()
}

func setupPlayer(w *World) {
	w.scene.DespawnKind(KindPlayer)
	first, _ := w.platforms.ByIndex(0)
	pos := core.V(first.Center(), PlatformTop)
	w.player = Player{
		Pos:    pos,
		Entity: w.scene.Spawn(Entity{Kind: KindPlayer, Pos: pos}),
	}
}

func setupScoreboard(w *World) {
	w.scene.DespawnKind(KindScoreboard)
	w.scene.Spawn(Entity{Kind: KindScoreboard})
}

func resetScore(w *World) {
	w.score.Reset()
	w.ticks = 0
	w.platforms.SetTicks(0)
}

func resetTimers(w *World) {
	w.timers = Timers{
		PrepareJump:        core.NewTimer(w.cfg.Timers.PrepareJump, core.TimerOnce),
		Charge:             core.NewTimer(w.cfg.Physics.MaxCharge, core.TimerOnce),
		AccumulationEffect: core.NewTimer(w.cfg.Timers.AccumulationEffect, core.TimerRepeating),
	}
}

func resetCamera(w *World) {
	first, _ := w.platforms.ByIndex(0)
	w.camera = NewCamera(w.cfg.Camera)
	w.camera.Reset(first.Center())
}

func resetController(w *World) {
	w.ctrl.Cancel()
	w.paused = false
}

func cancelJump(w *World) {
	w.ctrl.Cancel()
	w.player.Squash = 0
	w.paused = false
}

func setupGameOverMenu(w *World) {
	w.scene.DespawnKind(KindGameOverMenu)
	w.scene.Spawn(Entity{Kind: KindGameOverMenu, Value: w.score.Score()})
	cursor := 1
	if w.cfg.Flow.RestartTo == "playing" {
		cursor = 0
	}
	w.menu = NewMenu(cursor, ButtonPlayAgain, ButtonMainMenu)
}

func despawnGameOverMenu(w *World) {
	w.scene.DespawnKind(KindGameOverMenu)
}
