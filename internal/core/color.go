package core

// Color is the foreground color of a screen cell. The platform layer decides
// how each one looks in the terminal.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)
