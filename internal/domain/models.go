package domain

// Item is a single story returned by the search API
type Item struct {
	ID           string // objectID, unique within one result set
	URL          string
	Title        string
	Author       string
	CommentCount int
	Score        int
}

// StoriesState is the aggregate the list view renders from
type StoriesState struct {
	Items     []Item
	IsLoading bool
	IsError   bool
}

// InitialStoriesState returns the empty, idle state
func InitialStoriesState() StoriesState {
	return StoriesState{Items: []Item{}}
}

// Clone returns a copy that shares no backing array with s
func (s StoriesState) Clone() StoriesState {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// FindItem returns the item with the given id
func (s StoriesState) FindItem(id string) (Item, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
