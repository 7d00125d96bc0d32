package graphql

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

// eventBuffer is the per-subscription event channel capacity.
const eventBuffer = 16

// Event is one phase observed on a subscription. Data is set for
// domain.PhaseNext and Err for domain.PhaseError.
type Event struct {
	Phase domain.Phase
	Data  json.RawMessage
	Err   error
}

// Subscription is an open event stream. Events yields, in order, one start
// event, zero or more next events, and exactly one error or complete event,
// after which the channel is closed. When the server skips its
// acknowledgement, the start event is produced ahead of whatever arrives
// first.
//
// Unsubscribe (or cancelling the context passed to Subscribe) ends the
// stream early: the channel closes without a terminal event.
type Subscription struct {
	id     string
	events chan Event

	// done is closed once the stream has ended either way. It never waits
	// on mu, so a blocked emit can always be released.
	done     chan struct{}
	doneOnce sync.Once

	mu      sync.Mutex
	started bool
	closed  bool

	stopOnce sync.Once
	stop     func()
}

// newSubscription returns an open subscription. stop is called once when the
// consumer unsubscribes before the stream ended.
func newSubscription(id string, stop func()) *Subscription {
	return &Subscription{
		id:     id,
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
		stop:   stop,
	}
}

// ID returns the identifier the transport registered the subscription under.
func (s *Subscription) ID() string {
	return s.id
}

// Events returns the event channel.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Unsubscribe ends the stream and releases its transport resources.
// Safe to call more than once, concurrently with delivery, and after the
// stream ended on its own.
func (s *Subscription) Unsubscribe() {
	s.finish()

	s.mu.Lock()
	endedHere := !s.closed
	if endedHere {
		s.closed = true
		close(s.events)
	}
	s.mu.Unlock()

	if endedHere && s.stop != nil {
		s.stopOnce.Do(s.stop)
	}
}

func (s *Subscription) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// bindContext unsubscribes when ctx is done before the stream ends.
func (s *Subscription) bindContext(ctx context.Context) {
	if ctx.Done() == nil {
		return
	}
	go func() {
		select {
		case <-ctx.Done():
			s.Unsubscribe()
		case <-s.done:
		}
	}()
}

// emit delivers ev in phase order. Any other phase arriving before start gets
// a start event first; repeated start events and anything after a terminal
// event are dropped. Terminal events close the channel.
//
// emit blocks while the buffer is full and returns false once the
// subscription has ended.
func (s *Subscription) emit(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	if !s.started {
		s.started = true
		if ev.Phase != domain.PhaseStart && !s.send(Event{Phase: domain.PhaseStart}) {
			return false
		}
	} else if ev.Phase == domain.PhaseStart {
		return true
	}

	if !s.send(ev) {
		return false
	}

	if ev.Phase.Terminal() {
		s.closed = true
		close(s.events)
		s.finish()
	}
	return true
}

// send must be called with mu held.
func (s *Subscription) send(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}
