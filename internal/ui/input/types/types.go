package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeQuery routes keys to the search input
	ModeQuery Mode = iota
	// ModeResults navigates and acts on the result list
	ModeResults
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeResults {
		return "results"
	}
	return "query"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	HasResults() bool
	IsSearching() bool
	ShowingHelp() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
