package app

import (
	"sync"

	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// SubscriptionSet owns the streams opened by one SubscribeTodos call.
type SubscriptionSet struct {
	mu      sync.Mutex
	streams []ports.TodoStream
	wg      sync.WaitGroup
	once    sync.Once
}

// add registers stream and starts its forwarder.
func (s *SubscriptionSet) add(stream ports.TodoStream, forward func()) {
	s.mu.Lock()
	s.streams = append(s.streams, stream)
	s.mu.Unlock()

	s.wg.Go(forward)
}

// Len returns how many channels opened.
func (s *SubscriptionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.streams)
}

// Close releases every stream. It does not wait for in-flight notices;
// use Wait for that.
func (s *SubscriptionSet) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		streams := s.streams
		s.mu.Unlock()

		for _, st := range streams {
			st.Close()
		}
	})
	return nil
}

// Wait blocks until every channel has ended and its last notice was
// delivered.
func (s *SubscriptionSet) Wait() {
	s.wg.Wait()
}
