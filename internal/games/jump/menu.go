package jump

// Button is a selectable menu entry.
type Button int

const (
	ButtonPlay Button = iota
	ButtonQuit
	ButtonPlayAgain
	ButtonMainMenu
)

// String returns the button label.
func (b Button) String() string {
	switch b {
	case ButtonPlay:
		return "Play"
	case ButtonQuit:
		return "Quit"
	case ButtonPlayAgain:
		return "Play again"
	case ButtonMainMenu:
		return "Main menu"
	default:
		return "?"
	}
}

// Menu is a vertical list of buttons with a wrapping cursor.
type Menu struct {
	Buttons []Button
	Cursor  int
}

// NewMenu creates a menu with the cursor on the given button index.
func NewMenu(cursor int, buttons ...Button) Menu {
	m := Menu{Buttons: buttons}
	if cursor >= 0 && cursor < len(buttons) {
		m.Cursor = cursor
	}
	return m
}

// Up moves the cursor to the previous button.
func (m *Menu) Up() {
	if len(m.Buttons) == 0 {
		return
	}
	m.Cursor = (m.Cursor - 1 + len(m.Buttons)) % len(m.Buttons)
}

// Down moves the cursor to the next button.
func (m *Menu) Down() {
	if len(m.Buttons) == 0 {
		return
	}
	m.Cursor = (m.Cursor + 1) % len(m.Buttons)
}

// Selected returns the highlighted button.
func (m Menu) Selected() (Button, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Buttons) {
		return 0, false
	}
	return m.Buttons[m.Cursor], true
}
