package virtual

import (
	"image"
	"sync"

	"go.uber.org/zap"

	"oledstatus/pkg/device"
)

func Mock(logger *zap.Logger) device.Control {
	return &Mocker{l: logger}
}

// Mocker stands in for a panel when no hardware is attached, logging every
// call instead of touching a bus.
type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.Info("shutdown")
	return nil
}

func (m *Mocker) SetContrast(level uint8) error {
	m.l.With(zap.Uint8("level", level)).Info("set-contrast")
	return nil
}

func (m *Mocker) Invert(blackOnWhite bool) error {
	m.l.With(zap.Bool("black-on-white", blackOnWhite)).Info("invert")
	return nil
}

func (m *Mocker) Draw(img image.Image) error {
	m.l.With(
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Info("draw")
	return nil
}

// Recorder keeps every drawn frame for assertions.
type Recorder struct {
	sync.Mutex
	Frames []image.Image
}

func (r *Recorder) Startup() error { return nil }
func (r *Recorder) Shutdown() error { return nil }

func (r *Recorder) SetContrast(level uint8) error { return nil }

func (r *Recorder) Invert(blackOnWhite bool) error { return nil }

func (r *Recorder) Draw(img image.Image) error {
	r.Lock()
	defer r.Unlock()
	r.Frames = append(r.Frames, img)
	return nil
}

func (r *Recorder) Count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.Frames)
}
