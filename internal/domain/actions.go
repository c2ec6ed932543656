package domain

// ActionKind names a stories state transition
type ActionKind string

// The closed set of stories transitions
const (
	ActionFetchStarted   ActionKind = "FETCH_STARTED"
	ActionFetchSucceeded ActionKind = "FETCH_SUCCEEDED"
	ActionFetchFailed    ActionKind = "FETCH_FAILED"
	ActionItemRemoved    ActionKind = "ITEM_REMOVED"
)

// Action is an input to the stories reducer
type Action interface {
	Kind() ActionKind
}

// FetchStarted marks the beginning of a fetch cycle
type FetchStarted struct{}

func (FetchStarted) Kind() ActionKind { return ActionFetchStarted }

// FetchSucceeded carries the decoded result of a fetch cycle
type FetchSucceeded struct {
	Items []Item
}

func (FetchSucceeded) Kind() ActionKind { return ActionFetchSucceeded }

// FetchFailed ends a fetch cycle with a transport, status or decode failure
type FetchFailed struct {
	Err error
}

func (FetchFailed) Kind() ActionKind { return ActionFetchFailed }

// ItemRemoved drops a single item from the list by identity
type ItemRemoved struct {
	ID string
}

func (ItemRemoved) Kind() ActionKind { return ActionItemRemoved }
