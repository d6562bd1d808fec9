package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitesearch/internal/domain"
	"sitesearch/internal/search"
)

func TestBuildReport(t *testing.T) {
	results := search.Expand("foo", "example.com")
	feedback := map[string]domain.Vote{"3": domain.VoteHelpful}

	report := BuildReport("example.com", "foo", results, feedback, 1)

	assert.Contains(t, report, `Search results for "foo" on example.com`)
	assert.Contains(t, report, "  1. foo - Main Documentation  [95% match]")
	assert.Contains(t, report, "> 2. Getting Started with foo  [88% match]")
	assert.Contains(t, report, "https://example.com/api/foo")
	assert.Contains(t, report, "feedback: helpful")
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport("example.com", "zzz", nil, nil, 0)
	assert.Contains(t, report, "No results found.")
}

func TestPagerWithoutProgram(t *testing.T) {
	p := NewPager()
	assert.Error(t, p.Show("hello"))
}
