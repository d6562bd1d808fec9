package types

import "sitesearch/internal/domain"

// SubmitAction submits the current query text
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// UpdateTextAction carries the input text after an edit
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// NavigateAction moves the result cursor
type NavigateAction struct {
	Delta int // negative moves up
	// ToEdge jumps to the first (Delta < 0) or last (Delta > 0) result
	ToEdge bool
}

func (a NavigateAction) Type() string { return "navigate" }

// CopyLinkAction copies the selected result's URL
type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

// VoteAction marks the selected result helpful or not helpful
type VoteAction struct {
	Vote domain.Vote
}

func (a VoteAction) Type() string { return "vote" }

// OpenPagerAction shows the results in the pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// ToggleHelpAction shows or hides the help popup
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// ChangeModeAction switches the input mode
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// QuitAction exits the program
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
