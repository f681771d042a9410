package core

// Color is a foreground color tag for a screen cell. The platform maps
// tags to actual terminal colors; the engine only assigns tags.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorRose
	ColorAmber
	ColorRed
	ColorGreen
	ColorOrange
	ColorGray
	ColorWhite
)
