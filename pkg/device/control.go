package device

import "image"

// Control is what the rotation loop needs from a panel. Startup must return
// an explicit error when the bus cannot be opened so callers can fail fast
// without peeking at driver globals.
type Control interface {
	Startup() error
	Shutdown() error
	SetContrast(level uint8) error
	Invert(blackOnWhite bool) error
	Draw(img image.Image) error
}
