package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/internal/eventbus"
	"hackerstories/internal/stories"
	"hackerstories/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state        *state.AppState
	startSpinner func() tea.Cmd
}

// NewEventHandler creates a new event handler. startSpinner is called when a
// fetch begins and may be nil.
func NewEventHandler(appState *state.AppState, startSpinner func() tea.Cmd) *EventHandler {
	return &EventHandler{
		state:        appState,
		startSpinner: startSpinner,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.StoriesChangedEvent:
		wasLoading := h.state.Stories.IsLoading
		previous := h.state.Stories

		h.state.SetStories(e.State)

		switch a := e.Action.(type) {
		case stories.FetchStarted:
			h.state.StatusMessage = ""
			if !wasLoading && h.startSpinner != nil {
				return h.startSpinner()
			}
		case stories.FetchSucceeded:
			h.state.StatusMessage = fmt.Sprintf("Found %d stories", len(a.Items))
		case stories.FetchFailed:
			if a.Err != nil {
				h.state.StatusMessage = fmt.Sprintf("Error: %v", a.Err)
			}
		case stories.ItemRemoved:
			if item, ok := previous.FindItem(a.ID); ok {
				h.state.StatusMessage = fmt.Sprintf("Removed %q", item.Title)
			}
		}

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
