package input

import (
	"hackerstories/internal/ui/state"
)

// ModelContext implements types.Context over the application state
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// CurrentItemID returns the id of the story under the cursor
func (c *ModelContext) CurrentItemID() string {
	item, ok := c.State.SelectedItem()
	if !ok {
		return ""
	}
	return item.ID
}

// TotalItems returns the number of stories shown
func (c *ModelContext) TotalItems() int {
	return c.State.TotalItems()
}

// HasItems reports whether there is anything to act on
func (c *ModelContext) HasItems() bool {
	return c.State.TotalItems() > 0
}

// CurrentQuery returns the text in the search box
func (c *ModelContext) CurrentQuery() string {
	return c.State.Query
}

// IsLoading reports whether a fetch is in flight
func (c *ModelContext) IsLoading() bool {
	return c.State.Stories.IsLoading
}
