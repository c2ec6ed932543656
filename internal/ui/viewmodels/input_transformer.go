package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hackerstories/internal/ui/input/types"
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      types.Mode
	prompt    string
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: types.ModeNormal}
}

// SetMode sets the current input mode, its prompt and the text input it edits
func (it *InputTransformer) SetMode(mode types.Mode, prompt string, textInput *textinput.Model) {
	it.mode = mode
	it.prompt = prompt
	it.textInput = textInput
}

// GetPrompt returns the label shown before the text input
func (it *InputTransformer) GetPrompt() string {
	return it.prompt
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode == types.ModeNormal || it.textInput == nil {
		return ""
	}
	return it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	if it.mode == types.ModeNormal {
		return ""
	}
	return it.mode.String()
}
