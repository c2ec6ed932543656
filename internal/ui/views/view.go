package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hackerstories/internal/domain"
)

// chromeLines counts every rendered line that is not a story row: main
// padding (2), title, search line, searching-for line, blank, error line,
// column header, scroll indicator, status line and key hints.
const chromeLines = 11

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Query            string
	SubmittedQuery   string
	Stories          domain.StoriesState
	SelectedIndex    int
	ViewportOffset   int
	ViewportHeight   int
	InputMode        string // "" in normal mode
	InputPrompt      string
	TextInput        string // rendered text input
	Spinner          string
	StatusMessage    string
	ShowHelp         bool
	HelpContent      string
	HelpScrollOffset int
	KeyHints         string
}

// ListHeight returns how many story rows fit in a terminal of the given height
func ListHeight(height int) int {
	if h := height - chromeLines; h > 0 {
		return h
	}
	return 1
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	storyRender *StoryRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		storyRender: NewStoryRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		help := clipLines(state.HelpContent, state.Height-4, state.HelpScrollOffset, r.styles.Scroll)
		return r.popupRender.RenderPopup(help, state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	// Title with the result count on the right
	logo := r.styles.Title.Render("Hacker Stories")
	right := ""
	if !state.Stories.IsLoading && !state.Stories.IsError {
		right = r.styles.Dim.Render(fmt.Sprintf("%d stories", len(state.Stories.Items)))
	}
	content.WriteString(r.spread(logo, right, state.Width))
	content.WriteString("\n")

	// Search line
	prompt := state.InputPrompt
	if prompt == "" {
		prompt = "Search: "
	}
	content.WriteString(r.styles.Label.Render(prompt))
	if state.InputMode != "" {
		content.WriteString(state.TextInput)
	} else {
		content.WriteString(r.styles.Query.Render(state.Query))
		content.WriteString(r.styles.Dim.Render("  (/ to edit)"))
	}
	content.WriteString("\n")

	content.WriteString(r.styles.Dim.Render(fmt.Sprintf("Searching for %s", state.SubmittedQuery)))
	content.WriteString("\n\n")

	if state.Stories.IsError {
		content.WriteString(r.styles.StatusError.Render("Something went wrong..."))
		content.WriteString("\n")
	}

	if state.Stories.IsLoading {
		content.WriteString(r.styles.Loading.Render(strings.TrimSpace(state.Spinner + " Loading...")))
		content.WriteString("\n")
	} else {
		content.WriteString(r.renderStoryList(state))
	}

	// Push the status and key hints to the bottom
	footer := r.renderFooter(state)
	used := strings.Count(content.String(), "\n") + strings.Count(footer, "\n") + 1
	if pad := state.Height - 2 - used; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderStoryList renders the header and the visible window of stories
func (r *Renderer) renderStoryList(state ViewState) string {
	items := state.Stories.Items
	if len(items) == 0 {
		return r.styles.Dim.Render("No stories.") + "\n"
	}

	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	cols := ColumnsFor(width - 4 - 2) // main padding and cursor

	var b strings.Builder
	b.WriteString(r.storyRender.RenderHeader(cols))
	b.WriteString("\n")

	height := state.ViewportHeight
	if height <= 0 {
		height = len(items)
	}
	start := state.ViewportOffset
	if start < 0 || start >= len(items) {
		start = 0
	}
	end := start + height
	if end > len(items) {
		end = len(items)
	}

	for i := start; i < end; i++ {
		b.WriteString(r.storyRender.RenderStory(items[i], cols, i == state.SelectedIndex))
		b.WriteString("\n")
	}
	if start > 0 || end < len(items) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(items))))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		style := r.styles.Status
		if strings.HasPrefix(state.StatusMessage, "Error") {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	if state.KeyHints != "" {
		lines = append(lines, state.KeyHints)
	} else {
		lines = append(lines, r.styles.Help.Render("Press ? for help"))
	}
	return strings.Join(lines, "\n")
}

// spread puts left and right on one line, right-aligned when there is room
func (r *Renderer) spread(left, right string, width int) string {
	if right == "" {
		return left
	}
	if width <= 0 {
		width = 80 // Default terminal width
	}
	padding := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}

// clipLines returns a scrolled window of content with scroll indicators
func clipLines(content string, visible, offset int, indicator lipgloss.Style) string {
	lines := strings.Split(content, "\n")
	if visible < 5 {
		visible = 5
	}
	if len(lines) <= visible {
		return content
	}

	maxOffset := len(lines) - visible
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	window := append([]string(nil), lines[offset:offset+visible]...)
	if offset > 0 {
		window[0] = indicator.Render("↑ (more above)")
	}
	if offset+visible < len(lines) {
		window[len(window)-1] = indicator.Render("↓ (more below)")
	}
	return strings.Join(window, "\n")
}
