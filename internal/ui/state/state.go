package state

import (
	"github.com/google/uuid"

	"sitesearch/internal/domain"
	"sitesearch/internal/search"
)

// Phase is the visible mode of the search view
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseResults
	PhaseEmpty
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseSearching:
		return "searching"
	case PhaseResults:
		return "results"
	case PhaseEmpty:
		return "empty"
	default:
		return "idle"
	}
}

// Request describes a search accepted by Submit
type Request struct {
	Token string
	Query string
	// Superseded is the token of the in-flight search this one replaced, if any
	Superseded string
}

// AppState holds everything the search view renders.
// It is mutated only from the Bubble Tea update loop.
type AppState struct {
	Site string

	// Search state
	Query          string                 // live text of the input
	SubmittedQuery string                 // query captured by the last accepted submit
	Results        []domain.SearchResult  // replaced, never merged
	Searching      bool                   // true between submit and completion
	CopiedID       string                 // result whose link was just copied
	Feedback       map[string]domain.Vote // result id -> vote, reset per search

	// UI state
	SelectedIndex int
	StatusMessage string
	ShowHelp      bool

	completed   bool // a search finished since the last submit
	searchToken string
	closed      bool
	newToken    func() string
}

// NewAppState creates the state for a freshly mounted view
func NewAppState(site string) *AppState {
	return &AppState{
		Site:     site,
		Feedback: make(map[string]domain.Vote),
		newToken: uuid.NewString,
	}
}

// Phase derives the visible mode from the state
func (s *AppState) Phase() Phase {
	switch {
	case s.Searching:
		return PhaseSearching
	case len(s.Results) > 0:
		return PhaseResults
	case s.completed:
		return PhaseEmpty
	default:
		return PhaseIdle
	}
}

// SetQuery records a text change from the input
func (s *AppState) SetQuery(text string) {
	s.Query = text
}

// Submit starts a search for the current query text.
// Blank queries are ignored. A submit while searching replaces the in-flight search.
func (s *AppState) Submit() (Request, bool) {
	if s.closed || search.IsBlank(s.Query) {
		return Request{}, false
	}

	req := Request{
		Token: s.newToken(),
		Query: s.Query,
	}
	if s.Searching {
		req.Superseded = s.searchToken
	}

	s.searchToken = req.Token
	s.SubmittedQuery = s.Query
	s.Results = nil
	s.Searching = true
	s.completed = false
	s.SelectedIndex = 0
	s.Feedback = make(map[string]domain.Vote)

	return req, true
}

// Complete lands the results of the search identified by token.
// Stale tokens and completions after Close are dropped and return false.
func (s *AppState) Complete(token string, results []domain.SearchResult) bool {
	if s.closed || !s.Searching || token == "" || token != s.searchToken {
		return false
	}

	s.Searching = false
	s.searchToken = ""
	s.completed = true
	s.Results = results
	s.SelectedIndex = 0
	return true
}

// IsCurrent reports whether token belongs to the in-flight search
func (s *AppState) IsCurrent(token string) bool {
	return s.Searching && token != "" && token == s.searchToken
}

// Result returns the result with the given id
func (s *AppState) Result(id string) (domain.SearchResult, bool) {
	for _, r := range s.Results {
		if r.ID == id {
			return r, true
		}
	}
	return domain.SearchResult{}, false
}

// SelectedResult returns the result under the cursor
func (s *AppState) SelectedResult() (domain.SearchResult, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return domain.SearchResult{}, false
	}
	return s.Results[s.SelectedIndex], true
}

// Move shifts the cursor by delta, clamped to the result list
func (s *AppState) Move(delta int) {
	if len(s.Results) == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Results) {
		s.SelectedIndex = len(s.Results) - 1
	}
}

// CopyLink marks the result id as copied and returns its URL.
// Unknown ids return ok=false.
func (s *AppState) CopyLink(id string) (url string, ok bool) {
	if s.closed {
		return "", false
	}
	result, found := s.Result(id)
	if !found {
		return "", false
	}

	s.CopiedID = id
	return result.URL, true
}

// ClearCopied unsets the copied marker when any copy window ends
func (s *AppState) ClearCopied() bool {
	if s.closed || s.CopiedID == "" {
		return false
	}
	s.CopiedID = ""
	return true
}

// Vote records feedback for a result. Voting the same way twice clears the vote.
func (s *AppState) Vote(id string, vote domain.Vote) (domain.Vote, bool) {
	if _, ok := s.Result(id); !ok {
		return domain.VoteNone, false
	}
	if s.Feedback[id] == vote {
		delete(s.Feedback, id)
		return domain.VoteNone, true
	}
	s.Feedback[id] = vote
	return vote, true
}

// Close tears the view down. Every later completion or reset is ignored.
func (s *AppState) Close() {
	s.closed = true
	s.searchToken = ""
}

// Closed reports whether Close was called
func (s *AppState) Closed() bool {
	return s.closed
}
