package stories

import (
	"sync"

	"go.uber.org/zap"

	"hackerstories/internal/domain"
	"hackerstories/internal/eventbus"
)

// Dispatcher accepts stories actions
type Dispatcher interface {
	Dispatch(action Action)
}

// Store owns the stories state. Actions are applied one at a time, in the
// order Dispatch was called, by a single goroutine; every resulting state is
// published on the bus as a StoriesChangedEvent.
type Store struct {
	bus    eventbus.EventBus
	logger *zap.Logger

	// sendMu guards closed and the send side of actions; stateMu guards
	// current. They are separate so a Dispatch blocked on a full queue never
	// holds up the loop that drains it.
	sendMu  sync.RWMutex
	actions chan Action
	closed  bool

	stateMu sync.RWMutex
	current domain.StoriesState

	done chan struct{}
}

// NewStore creates a store in the initial state and starts its loop
func NewStore(bus eventbus.EventBus, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		bus:     bus,
		logger:  logger.Named("stories"),
		actions: make(chan Action, 256),
		current: domain.InitialStoriesState(),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Dispatch queues an action. Actions dispatched after Close are dropped.
func (s *Store) Dispatch(action Action) {
	s.sendMu.RLock()
	defer s.sendMu.RUnlock()
	if s.closed {
		s.logger.Warn("store closed, dropping action", zap.Any("action", action))
		return
	}
	s.actions <- action
}

// State returns a snapshot of the current state
func (s *Store) State() domain.StoriesState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.current.Clone()
}

// Close applies any queued actions and stops the loop
func (s *Store) Close() {
	s.sendMu.Lock()
	if s.closed {
		s.sendMu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.actions)
	s.sendMu.Unlock()
	<-s.done
}

func (s *Store) run() {
	defer close(s.done)

	for action := range s.actions {
		s.stateMu.RLock()
		prev := s.current
		s.stateMu.RUnlock()

		// Reduce panics on unknown actions; that is deliberately not recovered
		next := Reduce(prev, action)

		s.stateMu.Lock()
		s.current = next
		s.stateMu.Unlock()

		s.logger.Debug("applied action",
			zap.String("kind", string(action.Kind())),
			zap.Int("items", len(next.Items)),
			zap.Bool("loading", next.IsLoading),
			zap.Bool("error", next.IsError))

		if s.bus != nil {
			s.bus.Publish(eventbus.StoriesChangedEvent{State: next.Clone(), Action: action})
		}
	}
}
