package rotation

import (
	"sync"
	"time"
)

func NewParams() *Params {
	return &Params{
		Interval:   3 * time.Second,
		ErrorWait:  3 * time.Second,
		SplashWait: 3 * time.Second,
		wakeup:     make(chan struct{}, 1),
		reset:      make(chan time.Duration, 1),
	}
}

// Params is the runtime state of the rotation loop, shared with the bot.
type Params struct {
	l sync.RWMutex

	Interval   time.Duration
	ErrorWait  time.Duration
	SplashWait time.Duration

	wakeup chan struct{}
	reset  chan time.Duration
	paused bool
}

func (p *Params) Paused() bool {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.paused
}

func (p *Params) Pause() {
	p.l.Lock()
	defer p.l.Unlock()
	p.paused = true
}

// Wakeup unpauses and pokes the loop into drawing the next screen now.
func (p *Params) Wakeup() {
	p.l.Lock()
	p.paused = false
	p.l.Unlock()

	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}

func (p *Params) Reset(dur time.Duration) {
	select {
	case p.reset <- dur:
	default:
	}
}

func (p *Params) WakeupChan() <-chan struct{} {
	return p.wakeup
}

func (p *Params) ResetChan() <-chan time.Duration {
	return p.reset
}
