package domain

import "math"

// SearchResult is one fabricated result row. Values are immutable once built.
type SearchResult struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Snippet   string  `json:"snippet"`
	Relevance float64 `json:"relevance"` // in [0,1]
}

// MatchPercent returns the relevance rounded to a whole percentage
func (r SearchResult) MatchPercent() int {
	return int(math.Round(r.Relevance * 100))
}

// Vote is a helpful / not helpful mark left on a result
type Vote int

const (
	VoteNone Vote = iota
	VoteHelpful
	VoteNotHelpful
)

// String returns a short label for the vote
func (v Vote) String() string {
	switch v {
	case VoteHelpful:
		return "helpful"
	case VoteNotHelpful:
		return "not helpful"
	default:
		return "none"
	}
}
