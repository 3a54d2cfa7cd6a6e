package core

// Color identifies a palette entry for a screen cell. The platform layer
// maps colors to terminal styles; game logic only tags cells.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange

	// ColorRunner marks cells belonging to the player character. The
	// platform substitutes the player's configured hex color for it.
	ColorRunner
)
