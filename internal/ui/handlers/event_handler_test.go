package handlers

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"hackerstories/internal/domain"
	"hackerstories/internal/eventbus"
	"hackerstories/internal/stories"
	"hackerstories/internal/ui/state"
)

var sample = []domain.Item{
	{ID: "1", Title: "Go 1.24 released", Author: "rsc", CommentCount: 10, Score: 300},
	{ID: "2", Title: "Why Rust", Author: "steve", CommentCount: 4, Score: 80},
}

func changed(prev domain.StoriesState, a stories.Action) eventbus.StoriesChangedEvent {
	return eventbus.StoriesChangedEvent{State: stories.Reduce(prev, a), Action: a}
}

func TestFetchLifecycle(t *testing.T) {
	s := state.NewAppState("go")
	spins := 0
	h := NewEventHandler(s, func() tea.Cmd {
		spins++
		return func() tea.Msg { return nil }
	})

	cmd := h.HandleEvent(changed(s.Stories, stories.FetchStarted{}))
	assert.NotNil(t, cmd)
	assert.True(t, s.Stories.IsLoading)

	// A second start while loading does not start another spinner
	cmd = h.HandleEvent(changed(s.Stories, stories.FetchStarted{}))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, spins)

	h.HandleEvent(changed(s.Stories, stories.FetchSucceeded{Items: sample}))
	assert.False(t, s.Stories.IsLoading)
	assert.Len(t, s.Stories.Items, 2)
	assert.Equal(t, "Found 2 stories", s.StatusMessage)
}

func TestFetchFailedSetsStatus(t *testing.T) {
	s := state.NewAppState("go")
	h := NewEventHandler(s, nil)

	h.HandleEvent(changed(s.Stories, stories.FetchStarted{}))
	h.HandleEvent(changed(s.Stories, stories.FetchFailed{Err: errors.New("dial tcp: refused")}))

	assert.True(t, s.Stories.IsError)
	assert.Contains(t, s.StatusMessage, "dial tcp: refused")
}

func TestItemRemovedNamesTheStory(t *testing.T) {
	s := state.NewAppState("go")
	h := NewEventHandler(s, nil)
	h.HandleEvent(changed(s.Stories, stories.FetchSucceeded{Items: sample}))
	s.SelectIndex(1)

	h.HandleEvent(changed(s.Stories, stories.ItemRemoved{ID: "2"}))

	assert.Len(t, s.Stories.Items, 1)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, `Removed "Why Rust"`, s.StatusMessage)
}

func TestErrorEvent(t *testing.T) {
	s := state.NewAppState("")
	h := NewEventHandler(s, nil)

	assert.Nil(t, h.HandleEvent(eventbus.ErrorEvent{Message: "storage unavailable"}))
	assert.Equal(t, "Error: storage unavailable", s.StatusMessage)
}
