package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/internal/eventbus"
	"hackerstories/internal/stories"
	"hackerstories/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, dispatcher stories.Dispatcher) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Bus:     bus,
			Stories: dispatcher,
		},
	}
}

// ExecuteChangeQuery creates and executes a change query command
func (e *Executor) ExecuteChangeQuery(query string) tea.Cmd {
	cmd := NewChangeQueryCommand(e.ctx, query)
	return cmd.Execute()
}

// ExecuteSubmitQuery creates and executes a submit query command
func (e *Executor) ExecuteSubmitQuery(query string) tea.Cmd {
	cmd := NewSubmitQueryCommand(e.ctx, query)
	return cmd.Execute()
}

// ExecuteRemoveItem creates and executes a remove item command
func (e *Executor) ExecuteRemoveItem(id string) tea.Cmd {
	cmd := NewRemoveItemCommand(e.ctx, id)
	return cmd.Execute()
}
