package services

import (
	"log/slog"
	"sync"
)

// Dispatcher is the delivery context: every consumer callback runs through it.
type Dispatcher interface {
	Dispatch(fn func())
}

// InlineDispatcher runs fn on the calling goroutine.
type InlineDispatcher struct{}

func (InlineDispatcher) Dispatch(fn func()) {
	fn()
}

// SerialDispatcher runs queued functions one at a time, in submission order,
// on a single goroutine. Dispatch never blocks.
type SerialDispatcher struct {
	mu     sync.Mutex
	queue  []func()
	closed bool

	wake      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

func NewSerialDispatcher(logger *slog.Logger) *SerialDispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	d := &SerialDispatcher{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
		logger:  logger,
	}
	go d.loop()
	return d
}

// Dispatch enqueues fn. After Close, fn runs on the caller's goroutine so a
// late session still reaches a terminal state.
func (d *SerialDispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.run(fn)
		return
	}
	d.queue = append(d.queue, fn)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Close runs everything already queued, then stops the loop.
func (d *SerialDispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		select {
		case d.wake <- struct{}{}:
		default:
		}
		<-d.stopped
	})
}

func (d *SerialDispatcher) loop() {
	defer close(d.stopped)

	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			closed := d.closed
			d.mu.Unlock()
			if closed {
				return
			}
			<-d.wake
			continue
		}

		fn := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.run(fn)
	}
}

func (d *SerialDispatcher) run(fn func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			d.logger.Error("delivery callback panicked", "panic", recovered)
		}
	}()
	fn()
}
