package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/ui/input/modes"
	"sitesearch/internal/ui/input/types"
)

// Placeholder is shown in the empty search input
const Placeholder = "Search for anything..."

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
	textInput   *textinput.Model
}

// New creates a handler starting in query mode with the input focused
func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	keys := types.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeQuery,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
		textInput:   &ti,
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(keys)
	h.modes[types.ModeResults] = modes.NewResultsMode(keys)

	return h
}

// HandleKey routes msg to the current mode and returns the resulting actions.
// Mode changes are applied here; all other actions are for the model.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var out []types.Action
	for _, action := range actions {
		if change, ok := action.(types.ChangeModeAction); ok {
			cmd = h.setMode(change.Mode)
			continue
		}
		out = append(out, action)
	}

	// Unconsumed keys in query mode edit the text
	if !consumed && h.currentMode == types.ModeQuery {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			out = append(out, types.UpdateTextAction{Text: after})
		}
	}

	return out, cmd
}

// Update forwards non-key messages (cursor blink) to the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetMode switches mode from outside a key event
func (h *Handler) SetMode(mode types.Mode) tea.Cmd {
	return h.setMode(mode)
}

func (h *Handler) setMode(mode types.Mode) tea.Cmd {
	h.currentMode = mode
	if mode == types.ModeQuery {
		return h.textInput.Focus()
	}
	h.textInput.Blur()
	return nil
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared search input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key bindings
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// SetWidth sizes the text input
func (h *Handler) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	h.textInput.Width = width
}
