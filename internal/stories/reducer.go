// Package stories holds the stories state machine: a pure reducer over the
// closed set of fetch and removal actions, and the single container that
// applies those actions in order.
package stories

import (
	"fmt"

	"hackerstories/internal/domain"
)

// Re-export the action set so callers only need this package
type Action = domain.Action
type FetchStarted = domain.FetchStarted
type FetchSucceeded = domain.FetchSucceeded
type FetchFailed = domain.FetchFailed
type ItemRemoved = domain.ItemRemoved

// InvalidActionError reports an action outside the closed transition set.
// It is raised as a panic: reaching it is an integration bug.
type InvalidActionError struct {
	Action Action
}

func (e *InvalidActionError) Error() string {
	if e.Action == nil {
		return "stories: nil action"
	}
	return fmt.Sprintf("stories: unknown action %T (%s)", e.Action, e.Action.Kind())
}

// Reduce returns the state that follows state after action. It performs no
// I/O and never mutates state.Items.
func Reduce(state domain.StoriesState, action Action) domain.StoriesState {
	switch a := action.(type) {
	case domain.FetchStarted:
		state.IsLoading = true
		state.IsError = false
		return state

	case domain.FetchSucceeded:
		items := make([]domain.Item, len(a.Items))
		copy(items, a.Items)
		return domain.StoriesState{Items: items}

	case domain.FetchFailed:
		state.IsLoading = false
		state.IsError = true
		return state

	case domain.ItemRemoved:
		kept := make([]domain.Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != a.ID {
				kept = append(kept, item)
			}
		}
		state.Items = kept
		return state

	default:
		panic(&InvalidActionError{Action: action})
	}
}
