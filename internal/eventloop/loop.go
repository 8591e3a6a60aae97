// Package eventloop runs callbacks one at a time, in the order they were posted.
// Handlers posted to a Loop never run concurrently with each other.
package eventloop

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type Loop struct {
	mu      sync.Mutex
	pending []func()
	wakeup  chan struct{}
	timers  sync.WaitGroup
}

func New() *Loop {
	return &Loop{
		wakeup: make(chan struct{}, 1),
	}
}

// Post enqueues fn. Safe to call from any goroutine, including from a running handler.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

// After posts fn once d has passed.
func (l *Loop) After(d time.Duration, fn func()) {
	l.timers.Add(1)
	time.AfterFunc(d, func() {
		defer l.timers.Done()
		l.Post(fn)
	})
}

// Pending returns the number of queued, not yet handled events.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Drain runs queued events on the calling goroutine until the queue is empty,
// including events posted by the handlers themselves. It returns how many ran.
func (l *Loop) Drain() int {
	ran := 0
	for {
		fn, ok := l.pop()
		if !ok {
			return ran
		}
		l.handle(fn)
		ran++
	}
}

// Run handles events until ctx is done. Pending events are dropped then.
func (l *Loop) Run(ctx context.Context) {
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			log.Debugf("event loop stopped, %d events dropped", l.Pending())
			return
		case <-l.wakeup:
		}
	}
}

// WaitTimers blocks until every After callback has been posted.
func (l *Loop) WaitTimers() {
	l.timers.Wait()
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pending) == 0 {
		return nil, false
	}
	fn := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]
	return fn, true
}

func (l *Loop) handle(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("event handler panic: %v", r)
		}
	}()
	fn()
}
