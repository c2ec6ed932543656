package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackerstories/internal/ui/input/types"
)

type fakeContext struct {
	index   int
	ids     []string
	query   string
	loading bool
}

func (c fakeContext) CurrentIndex() int { return c.index }
func (c fakeContext) CurrentItemID() string {
	if c.index < 0 || c.index >= len(c.ids) {
		return ""
	}
	return c.ids[c.index]
}
func (c fakeContext) TotalItems() int      { return len(c.ids) }
func (c fakeContext) HasItems() bool       { return len(c.ids) > 0 }
func (c fakeContext) CurrentQuery() string { return c.query }
func (c fakeContext) IsLoading() bool      { return c.loading }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeNavigation(t *testing.T) {
	h := New()
	ctx := fakeContext{ids: []string{"a", "b"}}

	tests := []struct {
		key  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{runes("k"), types.NavigateAction{Direction: "up"}},
		{tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyPgDown}, types.NavigateAction{Direction: "pagedown"}},
		{tea.KeyMsg{Type: tea.KeyHome}, types.NavigateAction{Direction: "home"}},
		{runes("G"), types.NavigateAction{Direction: "end"}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("v"), types.OpenPagerAction{}},
		{runes("q"), types.QuitAction{Force: false}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			actions, _ := h.HandleKey(tt.key, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestRemoveTargetsCurrentItem(t *testing.T) {
	h := New()
	ctx := fakeContext{index: 1, ids: []string{"a", "b", "c"}}

	for _, key := range []tea.KeyMsg{runes("d"), runes("x"), {Type: tea.KeyDelete}} {
		actions, _ := h.HandleKey(key, ctx)
		require.Len(t, actions, 1)
		assert.Equal(t, types.RemoveItemAction{ID: "b"}, actions[0])
	}

	// Nothing to remove on an empty list
	actions, _ := h.HandleKey(runes("d"), fakeContext{})
	assert.Empty(t, actions)
}

func TestSearchModeEditsAndSubmits(t *testing.T) {
	h := New()
	ctx := fakeContext{query: "Rea"}

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Rea", h.TextInput().Value())
	assert.Equal(t, "Search: ", h.Prompt())

	actions, _ = h.HandleKey(runes("c"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "Reac"}}, actions)

	actions, _ = h.HandleKey(runes("t"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "React"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.SubmitTextAction{Text: "React", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeIgnoresCursorOnlyKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{query: "go"}
	h.HandleKey(runes("/"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Empty(t, actions)
}

func TestEscLeavesSearchMode(t *testing.T) {
	h := New()
	ctx := fakeContext{query: "go"}
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.CancelTextAction{}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	// Keys are normal-mode keys again
	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
}

func TestUnknownKeyInNormalMode(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(runes("z"), fakeContext{})
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
}
