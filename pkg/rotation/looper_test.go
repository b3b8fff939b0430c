package rotation

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"oledstatus/pkg/screens"
)

type recorder struct {
	sync.Mutex
	ids []screens.ID
	err error
}

func (r *recorder) render(id screens.ID) error {
	r.Lock()
	defer r.Unlock()
	if r.err != nil {
		err := r.err
		r.err = nil
		return err
	}
	r.ids = append(r.ids, id)
	return nil
}

func (r *recorder) rendered() []screens.ID {
	r.Lock()
	defer r.Unlock()
	out := make([]screens.ID, len(r.ids))
	copy(out, r.ids)
	return out
}

func fastParams() *Params {
	p := NewParams()
	p.Interval = time.Millisecond
	p.ErrorWait = time.Millisecond
	p.SplashWait = 0
	return p
}

func waitRendered(t *testing.T, r *recorder, n int) []screens.ID {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if ids := r.rendered(); len(ids) >= n {
			return ids
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d renders, got %d", n, len(r.rendered()))
	return nil
}

func TestRunEmptyListReturnsWithoutRendering(t *testing.T) {
	r := &recorder{}
	l := NewLooper(nil, r.render, fastParams(), zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(make(chan struct{}))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return for an empty rotation")
	}

	assert.Empty(t, r.rendered())
}

func TestRunCyclesInOrder(t *testing.T) {
	r := &recorder{}
	list := []screens.ID{screens.Temperature, screens.SDMemory}
	l := NewLooper(list, r.render, fastParams(), zap.NewNop())

	stop := make(chan struct{})
	go l.Run(stop)

	ids := waitRendered(t, r, 6)
	close(stop)

	for i, id := range ids[:6] {
		assert.Equal(t, list[i%2], id)
	}
}

func TestRunFullCycleHitsEveryScreenOnce(t *testing.T) {
	r := &recorder{}
	list := []screens.ID{screens.Temperature, screens.CPUMemory, screens.SDMemory, screens.Hostname}
	l := NewLooper(list, r.render, fastParams(), zap.NewNop())

	stop := make(chan struct{})
	go l.Run(stop)

	ids := waitRendered(t, r, 8)
	close(stop)

	assert.Equal(t, list, ids[:4])
	assert.Equal(t, list, ids[4:8])
}

func TestRunRetriesFailedScreenWithoutAdvancing(t *testing.T) {
	r := &recorder{err: errors.New("panel busy")}
	list := []screens.ID{screens.Temperature, screens.SDMemory}
	l := NewLooper(list, r.render, fastParams(), zap.NewNop())

	stop := make(chan struct{})
	go l.Run(stop)

	ids := waitRendered(t, r, 2)
	close(stop)

	// first successful render is still the screen that failed
	assert.Equal(t, screens.Temperature, ids[0])
	assert.Equal(t, screens.SDMemory, ids[1])
}

func TestRunStaysIdleWhilePaused(t *testing.T) {
	r := &recorder{}
	p := fastParams()
	p.Pause()
	l := NewLooper([]screens.ID{screens.Temperature}, r.render, p, zap.NewNop())

	stop := make(chan struct{})
	defer close(stop)
	go l.Run(stop)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, r.rendered())

	p.Wakeup()
	waitRendered(t, r, 1)
}

func TestSplashRendersHostnameOnce(t *testing.T) {
	r := &recorder{}
	l := NewLooper([]screens.ID{screens.Hostname}, r.render, fastParams(), zap.NewNop())

	assert.NoError(t, l.Splash())
	assert.Equal(t, []screens.ID{screens.Hostname}, r.rendered())
}

func TestSkipAdvancesImmediately(t *testing.T) {
	r := &recorder{}
	p := fastParams()
	p.Interval = time.Hour
	list := []screens.ID{screens.Temperature, screens.SDMemory}
	l := NewLooper(list, r.render, p, zap.NewNop())

	stop := make(chan struct{})
	defer close(stop)
	go l.Run(stop)

	waitRendered(t, r, 1)
	l.Skip()
	ids := waitRendered(t, r, 2)
	assert.Equal(t, screens.SDMemory, ids[1])
}
