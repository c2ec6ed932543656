package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Query       lipgloss.Style
	Dim         lipgloss.Style
	Header      lipgloss.Style
	InfoBox     lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Points      lipgloss.Style
	Comments    lipgloss.Style
	Author      lipgloss.Style
	StatusError lipgloss.Style
	Status      lipgloss.Style
	Loading     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")), // HN orange
		Label:  lipgloss.NewStyle().Bold(true),
		Query:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Underline(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Points:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Comments:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		Author:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")), // light gray
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
