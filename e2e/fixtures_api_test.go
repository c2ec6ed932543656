//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Story is one canned hit served by the fake search API
type Story struct {
	ID       string `json:"objectID"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Comments int    `json:"num_comments"`
	Points   int    `json:"points"`
}

// FakeAPI answers search requests with stories keyed by lowercased query
type FakeAPI struct {
	*httptest.Server

	mu      sync.Mutex
	stories map[string][]Story
	failing bool
	queries []string
}

// NewFakeAPI starts a search API that knows the given stories
func NewFakeAPI(stories map[string][]Story) *FakeAPI {
	api := &FakeAPI{stories: make(map[string][]Story)}
	for q, s := range stories {
		api.stories[strings.ToLower(q)] = s
	}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	return api
}

func (a *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	a.mu.Lock()
	a.queries = append(a.queries, query)
	failing := a.failing
	hits := a.stories[strings.ToLower(query)]
	a.mu.Unlock()

	if failing {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	if hits == nil {
		hits = []Story{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"hits": hits})
}

// Endpoint is the value for HACKERSTORIES_API_ENDPOINT
func (a *FakeAPI) Endpoint() string {
	return a.URL + "/api/v1/search?query="
}

// SetFailing makes every following request fail with 503
func (a *FakeAPI) SetFailing(failing bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failing = failing
}

// Queries returns the queries requested so far
func (a *FakeAPI) Queries() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.queries...)
}

// frontPage is served for the default query
var frontPage = map[string][]Story{
	"React": {
		{ID: "r1", URL: "https://react.dev", Title: "React 19 released", Author: "dan", Comments: 310, Points: 900},
		{ID: "r2", URL: "https://example.com/hooks", Title: "A complete guide to hooks", Author: "sophie", Comments: 45, Points: 210},
		{ID: "r3", URL: "https://example.com/signals", Title: "Signals versus state", Author: "ryan", Comments: 88, Points: 150},
	},
	"Go": {
		{ID: "g1", URL: "https://go.dev/blog", Title: "Range over function types", Author: "rsc", Comments: 120, Points: 640},
		{ID: "g2", URL: "https://example.com/gc", Title: "Tuning the Go garbage collector", Author: "mknyszek", Comments: 31, Points: 205},
	},
}
