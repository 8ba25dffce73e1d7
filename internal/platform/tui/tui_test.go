package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	charging bool
	frames   []core.InputFrame
	state    core.GameState
	resets   int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Charging() bool           { return g.charging }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawTextColored(0, 0, "hi", core.ColorOrange) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses its frame, so keep a copy
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperJumpToggles(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	assert.Equal(t, core.ActionJump, km.MapKey(keyMsg(" "), false))
	assert.Equal(t, core.ActionJumpRelease, km.MapKey(keyMsg(" "), true))
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"r", core.ActionRestart},
		{"x", core.ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.MapKey(keyMsg(tt.key), false), "key %q", tt.key)
	}
}

func TestModelStepsWithBufferedInput(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, nil)
	require.Equal(t, 1, g.resets)

	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)

	require.Len(t, g.frames, 1)
	assert.True(t, g.frames[0].Has(core.ActionJump))
	assert.NotNil(t, cmd)

	// Input does not leak into the following tick
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	require.Len(t, g.frames, 2)
	assert.False(t, g.frames[1].Has(core.ActionJump))
}

type fakeMuter struct {
	muted bool
	calls int
}

func (f *fakeMuter) SetMuted(muted bool) { f.muted = muted; f.calls++ }
func (f *fakeMuter) Muted() bool         { return f.muted }

func TestMuteKeyTogglesSound(t *testing.T) {
	g := &fakeGame{}
	sound := &fakeMuter{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, nil, WithMuter(sound))

	next, _ := m.Update(keyMsg("m"))
	assert.True(t, sound.muted)
	next, _ = next.Update(keyMsg("m"))
	assert.False(t, sound.muted)
	assert.Equal(t, 2, sound.calls)

	// The mute key is handled by the model and never reaches the game
	next.Update(TickMsg{})
	require.Len(t, g.frames, 1)
	assert.Empty(t, g.frames[0].Actions)
}

func TestMuteKeyWithoutSoundIsHarmless(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, nil)

	assert.NotPanics(t, func() { m.Update(keyMsg("m")) })
}

func TestModelQuitsWhenGameAsks(t *testing.T) {
	g := &fakeGame{state: core.GameState{Quit: true}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, nil)

	next, _ := m.Update(TickMsg{})
	assert.Empty(t, next.(Model).View())
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 12, TickRate: 60, Seed: 1}, nil)

	view := m.View()
	assert.Contains(t, view, "hi")
	assert.Contains(t, view, "quit")
	assert.Equal(t, 12, strings.Count(view, "\n")+1)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorGreen)
	s.DrawTextColored(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(s)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "xyz")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
}
