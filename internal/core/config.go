package core

// Display geometry of the console panel.
const (
	ScreenW = 128
	ScreenH = 64
)
