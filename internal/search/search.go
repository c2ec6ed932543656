package search

import (
	"context"

	"go.uber.org/zap"

	"hackerstories/internal/eventbus"
	"hackerstories/internal/persist"
)

// Submitter starts a fetch cycle for a query
type Submitter interface {
	Submit(ctx context.Context, query string) bool
}

// Service connects query edits and submissions to the remembered query and
// the fetch orchestrator
type Service interface {
	Query() string
	ChangeQuery(ctx context.Context, query string)
	Submit(ctx context.Context, query string) bool
	Close()
}

// service is the concrete implementation
type service struct {
	ctx         context.Context
	query       *persist.Value
	fetcher     Submitter
	logger      *zap.Logger
	unsubscribe []func()
}

// NewService creates the search service. When bus is non-nil it subscribes
// to QueryChanged and QuerySubmitted; ctx scopes the work those events start.
func NewService(ctx context.Context, bus eventbus.EventBus, query *persist.Value, fetcher Submitter, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{
		ctx:     ctx,
		query:   query,
		fetcher: fetcher,
		logger:  logger.Named("search"),
	}

	if bus == nil {
		return s
	}

	s.unsubscribe = append(s.unsubscribe,
		bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.QueryChangedEvent); ok {
				s.ChangeQuery(s.ctx, event.Query)
			}
		}),
		bus.Subscribe(eventbus.EventQuerySubmitted, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.QuerySubmittedEvent); ok {
				s.Submit(s.ctx, event.Query)
			}
		}),
	)

	return s
}

// Query returns the remembered query
func (s *service) Query() string {
	return s.query.Get()
}

// ChangeQuery remembers an edited query
func (s *service) ChangeQuery(ctx context.Context, query string) {
	s.query.Set(ctx, query)
}

// Submit hands the query to the orchestrator and reports whether a fetch started
func (s *service) Submit(ctx context.Context, query string) bool {
	started := s.fetcher.Submit(ctx, query)
	s.logger.Debug("query submitted", zap.String("query", query), zap.Bool("started", started))
	return started
}

// Close stops listening to the bus
func (s *service) Close() {
	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}
	s.unsubscribe = nil
}
