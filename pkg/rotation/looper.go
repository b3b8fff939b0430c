package rotation

import (
	"time"

	"go.uber.org/zap"

	"oledstatus/pkg/screens"
)

type RenderFunc func(id screens.ID) error

func NewLooper(list []screens.ID, render RenderFunc, params *Params, logger *zap.Logger) *Looper {
	return &Looper{
		list:   list,
		render: render,
		params: params,
		logger: logger,
	}
}

// Looper owns the rotation list and the cursor into it. The cursor only
// moves inside Run, on the loop goroutine.
type Looper struct {
	list   []screens.ID
	idx    int
	render RenderFunc
	params *Params
	logger *zap.Logger
}

func (l *Looper) List() []screens.ID {
	out := make([]screens.ID, len(l.list))
	copy(out, l.list)
	return out
}

// Splash shows the hostname screen once before rotation starts and holds it
// for SplashWait. Hostname still takes its regular rotation slot afterwards;
// the double appearance is long-standing behavior, kept on purpose.
func (l *Looper) Splash() error {
	if err := l.render(screens.Hostname); err != nil {
		return err
	}

	time.Sleep(l.params.SplashWait)
	return nil
}

// Skip unpauses the loop and advances to the next screen immediately.
func (l *Looper) Skip() {
	l.params.Wakeup()
}

// Run renders the rotation until stop closes. With an empty list it returns
// right away without touching the panel.
func (l *Looper) Run(stop <-chan struct{}) {
	if len(l.list) == 0 {
		l.logger.Info("no screens enabled, nothing to rotate")
		return
	}

	timer := time.NewTimer(time.Nanosecond)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-l.params.WakeupChan():
			timer.Reset(time.Millisecond)
		case d := <-l.params.ResetChan():
			timer.Reset(d)
		case <-timer.C:
			if l.params.Paused() {
				continue
			}

			id := l.list[l.idx]
			if err := l.render(id); err != nil {
				l.logger.With(zap.Stringer("screen", id), zap.Error(err)).Info("render failed")
				timer.Reset(l.params.ErrorWait)
				continue
			}

			l.idx = (l.idx + 1) % len(l.list)
			timer.Reset(l.params.Interval)
		}
	}
}
