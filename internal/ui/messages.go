package ui

import (
	"sitesearch/internal/domain"
	"sitesearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchDoneMsg carries the outcome of one submitted search
type searchDoneMsg struct {
	token   string
	query   string
	results []domain.SearchResult
	err     error
}

// copyResetMsg fires when the copied window started by a copy of id ends
type copyResetMsg struct {
	id string
}

// clearStatusMsg clears the status line if it still shows message seq
type clearStatusMsg struct {
	seq int
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
