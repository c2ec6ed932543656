package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerFunc shows content in a full-screen pager and returns when it exits
type PagerFunc func(content string) error

// ShowInPager shows content using the ov pager
func ShowInPager(content string) error {
	// Create oviewer root from the content
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// pagerCommand adapts a PagerFunc to tea.ExecCommand so Bubble Tea releases
// the terminal while the pager runs.
type pagerCommand struct {
	content string
	show    PagerFunc
}

func (c *pagerCommand) Run() error {
	return c.show(c.content)
}

// The pager opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// openPager returns a command that runs the pager and reports when it exits
func openPager(show PagerFunc, content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content, show: show}, func(err error) tea.Msg {
		return pagerDoneMsg{err: err}
	})
}
