package ui

import (
	"hackerstories/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerDoneMsg is sent when the pager exits
type pagerDoneMsg struct {
	err error
}
