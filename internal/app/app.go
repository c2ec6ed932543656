// Package app assembles the stories core: event bus, remembered query,
// stories store, search client and fetch orchestrator.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"hackerstories/internal/config"
	"hackerstories/internal/domain"
	"hackerstories/internal/eventbus"
	"hackerstories/internal/fetch"
	"hackerstories/internal/hn"
	"hackerstories/internal/persist"
	"hackerstories/internal/search"
	"hackerstories/internal/storage"
	"hackerstories/internal/stories"
)

// ErrFetchFailed is returned by Search when the fetch cycle ends in FetchFailed
var ErrFetchFailed = errors.New("fetch failed")

// Options overrides the collaborators New would otherwise build from config
type Options struct {
	// KV replaces the SQLite store at cfg.Storage.Path
	KV storage.KV
	// HTTPClient is used for the search API instead of a plain http.Client
	HTTPClient *http.Client
}

// App owns the wired components. Close releases them in dependency order.
type App struct {
	Config        *config.Config
	Bus           eventbus.EventBus
	Query         *persist.Value
	Stories       *stories.Store
	Fetcher       *fetch.Orchestrator
	SearchService search.Service

	kv         storage.KV
	storageErr error // why the durable store was replaced by memory
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

// New wires the application. A storage path that cannot be opened degrades
// to an in-memory store so the query is remembered for this session only.
func New(cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout, err := cfg.RequestTimeoutDuration()
	if err != nil {
		return nil, err
	}

	kv := opts.KV
	var storageErr error
	if kv == nil {
		sqliteKV, err := storage.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			logger.Warn("storage unavailable, query will not be remembered",
				zap.String("path", cfg.Storage.Path), zap.Error(err))
			kv = storage.NewMemoryKV()
			storageErr = err
		} else {
			kv = sqliteKV
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		Config:     cfg,
		kv:         kv,
		storageErr: storageErr,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	a.Bus = eventbus.New(logger)
	a.Query = persist.Init(ctx, kv, cfg.Storage.QueryKey, cfg.Search.DefaultQuery, logger)
	a.Stories = stories.NewStore(a.Bus, logger)
	a.Fetcher = fetch.New(hn.NewClient(opts.HTTPClient, logger), a.Stories, fetch.Options{
		Endpoint:       cfg.API.Endpoint,
		RequestTimeout: timeout,
		DiscardStale:   cfg.Search.DiscardStale,
	}, logger)
	a.SearchService = search.NewService(ctx, a.Bus, a.Query, a.Fetcher, logger)

	logger.Info("application wired",
		zap.String("endpoint", cfg.API.Endpoint),
		zap.String("query", a.Query.Get()),
		zap.Bool("discard_stale", cfg.Search.DiscardStale))

	return a, nil
}

// Start submits the remembered query, the same way an explicit submission
// would, after reporting a degraded store as an ErrorEvent. Subscribe to the
// bus before calling it to observe the first cycle.
func (a *App) Start() {
	if a.storageErr != nil {
		a.Bus.Publish(eventbus.ErrorEvent{
			Message: "storage unavailable, the query will not be remembered",
			Err:     a.storageErr,
		})
	}
	a.Bus.Publish(eventbus.QuerySubmittedEvent{Query: a.Query.Get()})
}

// Search remembers query, runs one fetch cycle for it and returns the
// resulting state. When the query does not change the target nothing is
// fetched and the current state is returned.
func (a *App) Search(ctx context.Context, query string) (domain.StoriesState, error) {
	type outcome struct {
		state domain.StoriesState
		err   error
	}
	done := make(chan outcome, 1)
	unsubscribe := a.Bus.Subscribe(eventbus.EventStoriesChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.StoriesChangedEvent)
		if !ok {
			return
		}
		var o outcome
		switch action := event.Action.(type) {
		case stories.FetchSucceeded:
			o = outcome{state: event.State}
		case stories.FetchFailed:
			o = outcome{state: event.State, err: action.Err}
		default:
			return
		}
		select {
		case done <- o:
		default:
		}
	})
	defer unsubscribe()

	a.SearchService.ChangeQuery(ctx, query)
	if !a.SearchService.Submit(ctx, query) {
		return a.Stories.State(), nil
	}

	select {
	case o := <-done:
		if o.err != nil {
			return o.state, fmt.Errorf("%w: %w", ErrFetchFailed, o.err)
		}
		return o.state, nil
	case <-ctx.Done():
		return a.Stories.State(), ctx.Err()
	}
}

// Close stops the components. In-flight requests are aborted.
func (a *App) Close() error {
	a.SearchService.Close()
	a.Bus.Close()
	a.cancel()
	a.Fetcher.Wait()
	a.Stories.Close()
	if err := a.kv.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
