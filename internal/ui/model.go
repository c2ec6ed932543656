package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hackerstories/internal/domain"
	"hackerstories/internal/eventbus"
	"hackerstories/internal/stories"
	"hackerstories/internal/ui/commands"
	"hackerstories/internal/ui/handlers"
	"hackerstories/internal/ui/input"
	inputtypes "hackerstories/internal/ui/input/types"
	"hackerstories/internal/ui/state"
	"hackerstories/internal/ui/viewmodels"
	"hackerstories/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	state  *state.AppState // centralized state
	logger *zap.Logger

	// UI-specific state not in AppState
	width   int
	height  int
	keys    KeyMap
	spinner spinner.Model
	pager   PagerFunc

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
}

// NewModel creates the UI model. query is the remembered search text and
// initial the stories snapshot at startup; removals go to dispatcher.
func NewModel(bus eventbus.EventBus, dispatcher stories.Dispatcher, query string, initial domain.StoriesState, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState(query)
	appState.SetStories(initial)

	m := &Model{
		bus:          bus,
		state:        appState,
		logger:       logger.Named("ui"),
		keys:         DefaultKeyMap(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		pager:        ShowInPager,
		renderer:     views.NewRenderer(),
		cmdExecutor:  commands.NewExecutor(appState, bus, dispatcher),
		inputHandler: input.New(),
	}
	m.eventHandler = handlers.NewEventHandler(appState, m.startSpinner)
	m.viewModel = viewmodels.NewViewModel(appState, m.keys)

	return m
}

// SetPager replaces the pager used for "view in pager"
func (m *Model) SetPager(pager PagerFunc) {
	if pager != nil {
		m.pager = pager
	}
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts the spinner when a fetch is already running
func (m *Model) Init() tea.Cmd {
	if m.state.Stories.IsLoading {
		return m.startSpinner()
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.state.ViewportHeight = views.ListHeight(msg.Height)
		m.state.EnsureSelectionVisible()

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		// Handle input through the input handler
		actions, cmd := m.inputHandler.HandleKey(msg, &input.ModelContext{State: m.state})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if len(cmds) == 0 {
			return m, nil
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.state.Stories.IsLoading {
			return m, nil // let the spinner stop
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerDoneMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			m.state.StatusMessage = fmt.Sprintf("Error: pager: %v", msg.err)
		}

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetInputMode(mode, m.inputHandler.Prompt(), m.inputHandler.TextInput())
	if m.state.Stories.IsLoading {
		m.viewModel.SetSpinner(m.spinner.View())
	} else {
		m.viewModel.SetSpinner("")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1)
		case "down":
			m.state.MoveSelection(1)
		case "pageup":
			m.state.MoveSelection(-m.state.ViewportHeight)
		case "pagedown":
			m.state.MoveSelection(m.state.ViewportHeight)
		case "home":
			m.state.SelectIndex(0)
		case "end":
			m.state.SelectIndex(m.state.TotalItems() - 1)
		}

	case inputtypes.UpdateTextAction:
		return m.cmdExecutor.ExecuteChangeQuery(a.Text)

	case inputtypes.SubmitTextAction:
		return m.cmdExecutor.ExecuteSubmitQuery(a.Text)

	case inputtypes.RemoveItemAction:
		return m.cmdExecutor.ExecuteRemoveItem(a.ID)

	case inputtypes.OpenPagerAction:
		content := views.RenderPlain(m.state.SubmittedQuery, m.state.Stories.Items)
		return openPager(m.pager, content)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleHelpKey handles keys while the help popup is open
func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "?", "q":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "j", "down":
		m.state.HelpScrollOffset++
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "v":
		m.state.ShowHelp = false
		return openPager(m.pager, m.viewModel.HelpContent())
	}
	return nil
}

func (m *Model) startSpinner() tea.Cmd {
	return m.spinner.Tick
}
