package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged   EventType = "QueryChanged"
	EventQuerySubmitted EventType = "QuerySubmitted"
	EventStoriesChanged EventType = "StoriesChanged"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted on every edit of the search query
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// QuerySubmittedEvent is emitted when the user explicitly submits a query
type QuerySubmittedEvent struct {
	Query string
}

func (e QuerySubmittedEvent) Type() EventType { return EventQuerySubmitted }

// StoriesChangedEvent is emitted after every stories transition
type StoriesChangedEvent struct {
	State  StoriesState
	Action Action // the action that produced State
}

func (e StoriesChangedEvent) Type() EventType { return EventStoriesChanged }

// ErrorEvent is emitted when an error should be surfaced to the user
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
