package services

import (
	"sync"
	"sync/atomic"

	"github.com/joshuarp/remote-image-loader/internal/domain"
)

// SessionState is the position of a LoadSession in its pipeline.
type SessionState int32

const (
	StateCreated SessionState = iota
	StateCacheCheck
	StateCacheHit
	StateCacheMiss
	StateFetching
	StateDecoding
	StateDelivering
	StateDone
)

func (s SessionState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateCacheCheck:
		return "cache_check"
	case StateCacheHit:
		return "cache_hit"
	case StateCacheMiss:
		return "cache_miss"
	case StateFetching:
		return "fetching"
	case StateDecoding:
		return "decoding"
	case StateDelivering:
		return "delivering"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// LoadSession is one load attempt for a consumer. The registry owns it; callers
// only observe it. Cancellation is a flag checked between steps, never a
// preemption of work already running.
type LoadSession struct {
	id      string
	request domain.ResourceRequest
	target  domain.PixelSize

	state     atomic.Int32
	cancelled atomic.Bool

	done     chan struct{}
	doneOnce sync.Once
}

func newLoadSession(id string, request domain.ResourceRequest, target domain.PixelSize) *LoadSession {
	return &LoadSession{
		id:      id,
		request: request,
		target:  target,
		done:    make(chan struct{}),
	}
}

func (s *LoadSession) ID() string {
	return s.id
}

func (s *LoadSession) Request() domain.ResourceRequest {
	return s.request
}

// Target is the pixel box computed when the request was submitted.
func (s *LoadSession) Target() domain.PixelSize {
	return s.target
}

func (s *LoadSession) State() SessionState {
	return SessionState(s.state.Load())
}

func (s *LoadSession) Cancelled() bool {
	return s.cancelled.Load()
}

// Done is closed once the session is terminal, after its callback returned or
// after its result was dropped. It never carries the result.
func (s *LoadSession) Done() <-chan struct{} {
	return s.done
}

func (s *LoadSession) cancel() {
	s.cancelled.Store(true)
}

func (s *LoadSession) transition(state SessionState) {
	s.state.Store(int32(state))
}

func (s *LoadSession) finish() {
	s.doneOnce.Do(func() {
		s.transition(StateDone)
		close(s.done)
	})
}
