package state

import (
	"hackerstories/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Stories data, the latest snapshot published by the stories store
	Stories domain.StoriesState

	// Query is the text in the search box; SubmittedQuery is what was last searched for
	Query          string
	SubmittedQuery string

	// Selection state
	SelectedIndex int // currently selected story

	// UI state
	ViewportOffset   int // offset for scrolling
	ViewportHeight   int // available height for the story list
	ShowHelp         bool
	HelpScrollOffset int    // scroll offset for help popup
	StatusMessage    string // status bar message
}

// NewAppState creates a new application state
func NewAppState(query string) *AppState {
	return &AppState{
		Stories:        domain.InitialStoriesState(),
		Query:          query,
		SubmittedQuery: query,
		ViewportHeight: 20, // Default
	}
}

// SetStories replaces the stories snapshot and keeps the cursor on a valid row
func (s *AppState) SetStories(stories domain.StoriesState) {
	s.Stories = stories
	s.clampSelection()
}

// SelectedItem returns the story under the cursor
func (s *AppState) SelectedItem() (domain.Item, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Stories.Items) {
		return domain.Item{}, false
	}
	return s.Stories.Items[s.SelectedIndex], true
}

// TotalItems returns the number of visible stories
func (s *AppState) TotalItems() int {
	return len(s.Stories.Items)
}

// MoveSelection moves the cursor by delta rows, clamped to the list
func (s *AppState) MoveSelection(delta int) {
	s.SelectedIndex += delta
	s.clampSelection()
}

// SelectIndex moves the cursor to an absolute row, clamped to the list
func (s *AppState) SelectIndex(index int) {
	s.SelectedIndex = index
	s.clampSelection()
}

// EnsureSelectionVisible adjusts the viewport so the cursor row is shown
func (s *AppState) EnsureSelectionVisible() {
	if s.ViewportHeight <= 0 {
		s.ViewportHeight = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}

	maxOffset := len(s.Stories.Items) - s.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

func (s *AppState) clampSelection() {
	n := len(s.Stories.Items)
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	s.EnsureSelectionVisible()
}
