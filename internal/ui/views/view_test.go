package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesearch/internal/domain"
	"sitesearch/internal/search"
	"sitesearch/internal/ui/state"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func resultsState() ViewState {
	return ViewState{
		Width:          120,
		Height:         60,
		Site:           "example.com",
		Phase:          state.PhaseResults,
		SubmittedQuery: "foo",
		Results:        search.Expand("foo", "example.com"),
		Feedback:       map[string]domain.Vote{},
		ShowSidebar:    true,
	}
}

func TestRenderIdle(t *testing.T) {
	r := NewRenderer()
	out := plain(r.Render(ViewState{Width: 80, Height: 30, Site: "example.com", InputFocused: true}))

	assert.Contains(t, out, "sitesearch")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "Type a query and press enter")
	assert.Contains(t, out, "Press ? for help")
	assert.NotContains(t, out, "Searching")
}

func TestRenderSearchingShowsSkeleton(t *testing.T) {
	r := NewRenderer()
	vs := ViewState{Width: 80, Height: 40, Site: "example.com", Phase: state.PhaseSearching, Spinner: "*"}
	out := plain(r.Render(vs))

	assert.Contains(t, out, "* Searching")
	assert.Contains(t, out, "▇")
	assert.NotContains(t, out, "results for")
}

func TestRenderResults(t *testing.T) {
	r := NewRenderer()
	vs := resultsState()
	vs.CopiedID = "2"
	vs.Feedback["1"] = domain.VoteHelpful
	out := plain(r.Render(vs))

	assert.Contains(t, out, `5 results for "foo"`)
	assert.Contains(t, out, "foo - Main Documentation")
	assert.Contains(t, out, "95% match")
	assert.Contains(t, out, "75% match")
	assert.Contains(t, out, "✓ Copied")
	assert.Equal(t, 4, strings.Count(out, "Copy link"))
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer()
	vs := ViewState{Width: 80, Height: 30, Site: "example.com", Phase: state.PhaseEmpty, SubmittedQuery: "zzz"}
	out := plain(r.Render(vs))

	assert.Contains(t, out, "No results found")
	assert.Contains(t, out, `"zzz"`)
}

func TestSidebarOnlyWhenWide(t *testing.T) {
	r := NewRenderer()
	vs := resultsState()

	wide := plain(r.Render(vs))
	assert.Contains(t, wide, "Search Information")
	assert.Contains(t, wide, PagesIndexed)
	assert.Contains(t, wide, "Just now")

	vs.Width = 80
	narrow := plain(r.Render(vs))
	assert.NotContains(t, narrow, "Search Information")

	vs.Width = 120
	vs.ShowSidebar = false
	assert.NotContains(t, plain(r.Render(vs)), "Search Information")
}

func TestRenderBodySelectedSpan(t *testing.T) {
	r := NewRenderer()
	vs := resultsState()

	_, first := r.RenderBody(vs)
	vs.SelectedIndex = 2
	body, third := r.RenderBody(vs)

	assert.Equal(t, 2, first.Top)
	assert.Greater(t, third.Top, first.Bottom)
	lines := strings.Split(plain(body), "\n")
	require.Greater(t, len(lines), third.Top)
	assert.Contains(t, lines[third.Top], "foo API Reference")
}

func TestStatusMessage(t *testing.T) {
	r := NewRenderer()
	vs := resultsState()
	vs.StatusMessage = "Clipboard unavailable"
	vs.StatusIsError = true

	assert.Contains(t, plain(r.Render(vs)), "Clipboard unavailable")
}

func TestHelpOverlay(t *testing.T) {
	r := NewRenderer()
	vs := resultsState()
	vs.ShowHelp = true
	vs.FullHelp = "c copy link"

	out := plain(r.Render(vs))
	assert.Contains(t, out, "Keyboard shortcuts")
	assert.Contains(t, out, "c copy link")
}

func TestBodyDimensions(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, 14, r.BodyHeight(24))
	assert.Equal(t, 3, r.BodyHeight(5))
	assert.Equal(t, 76, r.BodyWidth(80, true))
	assert.Equal(t, 120-4-SidebarWidth-2, r.BodyWidth(120, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
