// Package fetch turns submitted queries into fetch cycles against the search
// API, feeding their lifecycle into the stories store.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hackerstories/internal/domain"
	"hackerstories/internal/hn"
	"hackerstories/internal/stories"
)

// Searcher performs one request for a target
type Searcher interface {
	Search(ctx context.Context, target string) ([]domain.Item, error)
}

// Options configures an Orchestrator
type Options struct {
	// Endpoint is the base address the escaped query is appended to
	Endpoint string
	// RequestTimeout bounds each request; zero means no timeout
	RequestTimeout time.Duration
	// DiscardStale drops results of a cycle once a newer cycle has started
	DiscardStale bool
}

// cycle is one FetchStarted -> FetchSucceeded|FetchFailed sequence
type cycle struct {
	id     string
	target string
	query  string
}

// Orchestrator issues exactly one request per target change. Requests are
// never cancelled when superseded; each deposits one terminal action unless
// DiscardStale drops it.
type Orchestrator struct {
	searcher   Searcher
	dispatcher stories.Dispatcher
	opts       Options
	logger     *zap.Logger

	mu     sync.Mutex
	target string
	latest string // id of the most recently started cycle
	wg     sync.WaitGroup
}

// New creates an orchestrator
func New(searcher Searcher, dispatcher stories.Dispatcher, opts Options, logger *zap.Logger) *Orchestrator {
	if opts.Endpoint == "" {
		opts.Endpoint = hn.DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		searcher:   searcher,
		dispatcher: dispatcher,
		opts:       opts,
		logger:     logger.Named("fetch"),
	}
}

// Target returns the active request target
func (o *Orchestrator) Target() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.target
}

// Submit makes query the active one. A cycle starts only when the derived
// target differs from the active target and the query is not empty. ctx
// scopes the request itself.
func (o *Orchestrator) Submit(ctx context.Context, query string) bool {
	target := hn.Target(o.opts.Endpoint, query)

	o.mu.Lock()
	if target == o.target {
		o.mu.Unlock()
		o.logger.Debug("target unchanged, not fetching", zap.String("target", target))
		return false
	}
	o.target = target
	if query == "" {
		o.mu.Unlock()
		o.logger.Debug("empty query, not fetching")
		return false
	}
	c := cycle{id: uuid.NewString(), target: target, query: query}
	o.latest = c.id
	o.mu.Unlock()

	o.logger.Info("fetch started",
		zap.String("cycle", c.id),
		zap.String("query", query),
		zap.String("target", target))

	o.dispatcher.Dispatch(stories.FetchStarted{})

	o.wg.Add(1)
	go o.run(ctx, c)
	return true
}

// Wait blocks until every started cycle has finished
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// isLatest reports whether no cycle has started after c. An empty query moves
// the target without starting a cycle, so it does not make c stale.
func (o *Orchestrator) isLatest(c cycle) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latest == c.id
}

func (o *Orchestrator) run(ctx context.Context, c cycle) {
	defer o.wg.Done()

	if o.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.RequestTimeout)
		defer cancel()
	}

	started := time.Now()
	items, err := o.searcher.Search(ctx, c.target)
	log := o.logger.With(
		zap.String("cycle", c.id),
		zap.String("query", c.query),
		zap.Duration("elapsed", time.Since(started)))

	if o.opts.DiscardStale && !o.isLatest(c) {
		log.Info("discarding stale result", zap.Bool("failed", err != nil))
		return
	}

	if err != nil {
		log.Warn("fetch failed", zap.Error(err))
		o.dispatcher.Dispatch(stories.FetchFailed{Err: err})
		return
	}

	log.Info("fetch succeeded", zap.Int("items", len(items)))
	o.dispatcher.Dispatch(stories.FetchSucceeded{Items: items})
}
