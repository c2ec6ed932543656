package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchAPI(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "down", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"hits": [
			{"objectID": "1", "url": "https://example.com/%[1]s", "title": "All about %[1]s", "author": "pg", "num_comments": 7, "points": 42}
		]}`, r.URL.Query().Get("query"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// useConfig points the global --config flag at a fresh config in a temp dir
func useConfig(t *testing.T, srv *httptest.Server, defaultQuery string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`version = 1

[api]
endpoint = %q
request_timeout = "5s"

[storage]
path = %q
query_key = "search"

[search]
default_query = %q
discard_stale = true

[log]
path = %q
level = "debug"
`, srv.URL+"/api/v1/search?query=", filepath.Join(dir, "state.db"), defaultQuery, filepath.Join(dir, "test.log"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	configPath = path
	t.Cleanup(func() { configPath = "" })
}

func TestSearchCommandPrintsStories(t *testing.T) {
	useConfig(t, newSearchAPI(t, http.StatusOK), "React")

	var out bytes.Buffer
	searchCmd.SetOut(&out)
	defer searchCmd.SetOut(nil)

	require.NoError(t, runSearch(searchCmd, []string{"rust", "lang"}))
	assert.Contains(t, out.String(), `1 results for "rust lang"`)
	assert.Contains(t, out.String(), "All about rust lang")
	assert.Contains(t, out.String(), "by pg | 7 comments | 42 points")

	out.Reset()
	lastCmd.SetOut(&out)
	defer lastCmd.SetOut(nil)
	require.NoError(t, runLast(lastCmd, nil))
	assert.Equal(t, "rust lang\n", out.String())
}

func TestSearchCommandUsesRememberedQuery(t *testing.T) {
	useConfig(t, newSearchAPI(t, http.StatusOK), "React")

	var out bytes.Buffer
	searchCmd.SetOut(&out)
	defer searchCmd.SetOut(nil)

	require.NoError(t, runSearch(searchCmd, nil))
	assert.Contains(t, out.String(), "All about React")
}

func TestSearchCommandWithoutQuery(t *testing.T) {
	useConfig(t, newSearchAPI(t, http.StatusOK), "")

	err := runSearch(searchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to search for")
}

func TestSearchCommandReportsFailure(t *testing.T) {
	useConfig(t, newSearchAPI(t, http.StatusBadGateway), "React")

	err := runSearch(searchCmd, []string{"go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `search "go"`)
	assert.Contains(t, err.Error(), "fetch failed")
}

func TestBrokenConfigIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\n"), 0o644))
	configPath = path
	defer func() { configPath = "" }()

	err := runLast(lastCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
