package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/ui/input/types"
)

// QueryMode sends typing to the search input
type QueryMode struct {
	keys types.KeyMap
}

func NewQueryMode(keys types.KeyMap) *QueryMode {
	return &QueryMode{keys: keys}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, m.keys.ToResults):
		if !ctx.HasResults() {
			// Nothing to move to; let the text input have the key
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
	}

	return nil, false
}
