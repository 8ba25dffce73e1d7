package jump

import (
	"fmt"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Visual characters for rendering
const (
	PlatformTopChar      = '▀'
	PlatformSquashedChar = '▄'
	PlatformBodyChar     = '█'
	PlayerHeadChar       = '●'
	PlayerBodyChar       = '█'
	PlayerSquashedChar   = '▄'
	ParticleChar         = '·'
	ParticleAltChar      = '*'
)

// groundOffset is the number of rows between the platform tops and the bottom of the screen.
const groundOffset = 4

// view maps world coordinates onto the screen.
type view struct {
	camX    float64
	cpu     int
	groundY int
}

func (v view) col(x float64) int {
	return core.Round((x - v.camX) * float64(v.cpu))
}

func (v view) row(y float64) int {
	return v.groundY - core.Round(y)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	if w == nil {
		return
	}

	cpu := w.cfg.Camera.CellsPerUnit
	if cpu < 1 {
		cpu = 1
	}
	v := view{camX: w.camera.Pos.X, cpu: cpu, groundY: dst.Height() - groundOffset}

	w.scene.Each(KindPlatform, func(e Entity) { drawPlatform(dst, v, e) })
	w.scene.Each(KindParticle, func(e Entity) { drawParticle(dst, v, e) })
	w.scene.Each(KindPlayer, func(e Entity) { drawPlayer(dst, v, e) })
	w.scene.Each(KindScoreUp, func(e Entity) { drawScoreUp(dst, v, e) })

	if w.scene.Count(KindScoreboard) > 0 {
		g.drawScoreboard(dst)
	}
	if w.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if w.scene.Count(KindMainMenu) > 0 {
		g.drawMenu(dst, "J U M P", "Hold space to charge, release to jump")
	}
	w.scene.Each(KindGameOverMenu, func(e Entity) {
		g.drawMenu(dst, "GAME OVER", fmt.Sprintf("Score: %d", e.Value))
	})
}

func drawPlatform(dst *core.Screen, v view, e Entity) {
	x0 := v.col(e.Pos.X)
	x1 := v.col(e.Pos.X + e.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	top := PlatformTopChar
	if e.Scale < 0.85 {
		top = PlatformSquashedChar
	}
	dst.DrawHLine(x0, v.groundY, x1-x0, top, core.ColorGreen)
	for y := v.groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(x0, y, x1-x0, PlatformBodyChar, core.ColorGray)
	}
}

func drawPlayer(dst *core.Screen, v view, e Entity) {
	x := v.col(e.Pos.X)
	y := v.row(e.Pos.Y)
	if e.Scale < 0.75 {
		dst.SetColored(x, y-1, PlayerSquashedChar, core.ColorBrightCyan)
		dst.SetColored(x, y-2, PlayerHeadChar, core.ColorBrightYellow)
		return
	}
	dst.SetColored(x, y-1, PlayerBodyChar, core.ColorBrightCyan)
	dst.SetColored(x, y-2, PlayerHeadChar, core.ColorBrightYellow)
}

func drawParticle(dst *core.Screen, v view, e Entity) {
	if e.Alpha < 0.2 {
		return
	}
	r := ParticleChar
	if e.Value%2 == 1 {
		r = ParticleAltChar
	}
	dst.SetColored(v.col(e.Pos.X), v.row(e.Pos.Y)-1, r, core.ColorOrange)
}

func drawScoreUp(dst *core.Screen, v view, e Entity) {
	c := core.ColorBrightYellow
	if e.Alpha < 0.5 {
		c = core.ColorYellow
	}
	dst.DrawTextColored(v.col(e.Pos.X), v.row(e.Pos.Y)-3, fmt.Sprintf("+%d", e.Value), c)
}

// drawScoreboard renders the HUD line.
func (g *Game) drawScoreboard(dst *core.Screen) {
	w := g.world
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", w.score.Score()), core.ColorBrightWhite)

	if w.difficulty.IsEnabled() {
		percent := w.difficulty.Interpolate(0, 100, w.score.Score(), w.ticks)
		levelText := fmt.Sprintf(" Lvl: %.0f%% ", percent)
		dst.DrawTextColored(dst.Width()-len(levelText)-2, 0, levelText, core.ColorGray)
	}
}

// drawMenu draws a title box with the current button list.
func (g *Game) drawMenu(dst *core.Screen, title, subtitle string) {
	menu := g.world.menu
	lines := make([]string, len(menu.Buttons))
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	for i, b := range menu.Buttons {
		marker := "  "
		if i == menu.Cursor {
			marker = "> "
		}
		lines[i] = marker + b.String()
		boxW = core.Max(boxW, len(lines[i])+4)
	}

	boxH := 5 + len(lines) + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+2, subtitle, core.ColorGray)

	for i, line := range lines {
		c := core.ColorWhite
		if i == menu.Cursor {
			c = core.ColorBrightGreen
		}
		dst.DrawTextColored(boxX+2, boxY+4+i, line, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
