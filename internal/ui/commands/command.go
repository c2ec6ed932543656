package commands

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/internal/eventbus"
	"hackerstories/internal/stories"
	"hackerstories/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Stories stories.Dispatcher
}

// ChangeQueryCommand records an edit of the search text
type ChangeQueryCommand struct {
	ctx   *CommandContext
	query string
}

// NewChangeQueryCommand creates a new change query command
func NewChangeQueryCommand(ctx *CommandContext, query string) *ChangeQueryCommand {
	return &ChangeQueryCommand{
		ctx:   ctx,
		query: query,
	}
}

// Execute updates the query and announces it so it can be remembered
func (c *ChangeQueryCommand) Execute() tea.Cmd {
	if c.ctx.State.Query == c.query {
		return nil
	}
	c.ctx.State.Query = c.query
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.QueryChangedEvent{Query: c.query})
	}
	return nil
}

// SubmitQueryCommand asks for the stories matching a query
type SubmitQueryCommand struct {
	ctx   *CommandContext
	query string
}

// NewSubmitQueryCommand creates a new submit query command
func NewSubmitQueryCommand(ctx *CommandContext, query string) *SubmitQueryCommand {
	return &SubmitQueryCommand{
		ctx:   ctx,
		query: query,
	}
}

// Execute submits the query. Blank queries are refused here so the user gets
// feedback instead of a silent no-op.
func (c *SubmitQueryCommand) Execute() tea.Cmd {
	if strings.TrimSpace(c.query) == "" {
		c.ctx.State.StatusMessage = "Type something to search for"
		return nil
	}
	c.ctx.State.SubmittedQuery = c.query
	c.ctx.State.StatusMessage = ""
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.QuerySubmittedEvent{Query: c.query})
	}
	return nil
}

// RemoveItemCommand drops a story from the list
type RemoveItemCommand struct {
	ctx *CommandContext
	id  string
}

// NewRemoveItemCommand creates a new remove item command
func NewRemoveItemCommand(ctx *CommandContext, id string) *RemoveItemCommand {
	return &RemoveItemCommand{
		ctx: ctx,
		id:  id,
	}
}

// Execute dispatches the removal straight into the stories store
func (c *RemoveItemCommand) Execute() tea.Cmd {
	if c.id == "" || c.ctx.Stories == nil {
		return nil
	}
	c.ctx.Stories.Dispatch(stories.ItemRemoved{ID: c.id})
	return nil
}
