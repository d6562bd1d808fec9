package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sitesearch/internal/domain"
	"sitesearch/internal/ui/input/types"
)

// ResultsMode handles navigation and actions over the result list
type ResultsMode struct {
	keys types.KeyMap
}

func NewResultsMode(keys types.KeyMap) *ResultsMode {
	return &ResultsMode{keys: keys}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return []types.Action{types.QuitAction{}}, true
	}

	// While help is open only closing keys do anything
	if ctx.ShowingHelp() {
		switch msg.String() {
		case "?", "esc", "q":
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.ToQuery):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Delta: -1, ToEdge: true}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Delta: 1, ToEdge: true}}, true

	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopyLinkAction{}}, true

	case key.Matches(msg, m.keys.Helpful):
		return []types.Action{types.VoteAction{Vote: domain.VoteHelpful}}, true

	case key.Matches(msg, m.keys.NotHelpful):
		return []types.Action{types.VoteAction{Vote: domain.VoteNotHelpful}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	}

	return nil, true
}
