package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"hackerstories/internal/ui/input/types"
	"hackerstories/internal/ui/state"
	"hackerstories/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:            appState,
		help:             help.New(),
		keys:             keys,
		inputTransformer: NewInputTransformer(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width - 4
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string, textInput *textinput.Model) {
	vm.inputTransformer.SetMode(mode, prompt, textInput)
}

// SetSpinner sets the rendered spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// HelpContent renders the full key reference for the help popup and pager
func (vm *ViewModel) HelpContent() string {
	full := vm.help
	full.ShowAll = true
	return "Hacker Stories Help\n\n" + full.View(vm.keys)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Query:            vm.state.Query,
		SubmittedQuery:   vm.state.SubmittedQuery,
		Stories:          vm.state.Stories,
		SelectedIndex:    vm.state.SelectedIndex,
		ViewportOffset:   vm.state.ViewportOffset,
		ViewportHeight:   vm.state.ViewportHeight,
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		Spinner:          vm.spinner,
		InputPrompt:      vm.inputTransformer.GetPrompt(),
		TextInput:        vm.inputTransformer.GetInputText(),
		InputMode:        vm.inputTransformer.GetInputModeString(),
	}
	if vm.keys != nil {
		vs.KeyHints = vm.help.View(vm.keys)
		if vs.ShowHelp {
			vs.HelpContent = vm.HelpContent()
		}
	}
	return vs
}
