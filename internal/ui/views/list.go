package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"hackerstories/internal/domain"
)

// Columns holds the cell widths of one story row
type Columns struct {
	Title    int
	Author   int
	Comments int
	Points   int
}

// ColumnsFor splits the row width 40/30/10/10, leaving the rest as gutter
func ColumnsFor(width int) Columns {
	if width < 20 {
		width = 20
	}
	return Columns{
		Title:    width * 40 / 100,
		Author:   width * 30 / 100,
		Comments: width * 10 / 100,
		Points:   width * 10 / 100,
	}
}

// StoryRenderer renders story rows
type StoryRenderer struct {
	styles *Styles
}

// NewStoryRenderer creates a new story renderer
func NewStoryRenderer(styles *Styles) *StoryRenderer {
	return &StoryRenderer{styles: styles}
}

// RenderHeader renders the column titles
func (r *StoryRenderer) RenderHeader(cols Columns) string {
	line := "  " + cell("Title", cols.Title) + " " +
		cell("Author", cols.Author) + " " +
		cellRight("Comments", cols.Comments) + " " +
		cellRight("Points", cols.Points)
	return r.styles.Header.Render(line)
}

// RenderStory renders one story line
func (r *StoryRenderer) RenderStory(item domain.Item, cols Columns, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	title := cell(item.Title, cols.Title)
	if selected {
		title = r.styles.Highlight.Render(title)
	}

	line := cursor + title + " " +
		r.styles.Author.Render(cell(item.Author, cols.Author)) + " " +
		r.styles.Comments.Render(cellRight(strconv.Itoa(item.CommentCount), cols.Comments)) + " " +
		r.styles.Points.Render(cellRight(strconv.Itoa(item.Score), cols.Points))

	if selected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

// RenderPlain renders the whole result set as uncolored text for the pager
func RenderPlain(query string, items []domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hacker Stories: %d results for %q\n\n", len(items), query)
	for i, item := range items {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, item.Title)
		if item.URL != "" {
			fmt.Fprintf(&b, "     %s\n", item.URL)
		}
		fmt.Fprintf(&b, "     by %s | %d comments | %d points\n\n", item.Author, item.CommentCount, item.Score)
	}
	return b.String()
}

// cell truncates or pads s to exactly w columns
func cell(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func cellRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillLeft(runewidth.Truncate(s, w, "…"), w)
}
