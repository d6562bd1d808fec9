package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sitesearch/internal/domain"
	"sitesearch/internal/ui/state"
)

// SkeletonCards is how many placeholder cards are drawn while searching
const SkeletonCards = 4

// minSidebarWidth is the terminal width below which the sidebar is hidden
const minSidebarWidth = 100

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Site           string
	Phase          state.Phase
	SubmittedQuery string
	Results        []domain.SearchResult
	SelectedIndex  int
	CopiedID       string
	Feedback       map[string]domain.Vote
	InputView      string
	InputFocused   bool
	Spinner        string
	StatusMessage  string
	StatusIsError  bool
	ShowSidebar    bool
	ShowHelp       bool
	ShortHelp      string
	FullHelp       string

	// Body is the scrolled body content. When empty the body is rendered in place.
	Body string
}

// Span is the line range a card occupies inside the rendered body
type Span struct {
	Top    int
	Bottom int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	resultRend  *ResultRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		resultRend:  NewResultRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// chrome is the number of lines taken by everything except the body:
// container padding (2), title (1), gap (1), input box (3), gap (1), status (1), help (1)
const chrome = 10

// BodyHeight returns how many lines are left for the body at the given terminal height
func (r *Renderer) BodyHeight(height int) int {
	if height <= 0 {
		height = 24
	}
	h := height - chrome
	if h < 3 {
		h = 3
	}
	return h
}

// BodyWidth returns the width available to the body column
func (r *Renderer) BodyWidth(width int, sidebar bool) int {
	if width <= 0 {
		width = 80
	}
	w := width - 4 // container padding
	if sidebar && width >= minSidebarWidth {
		w -= SidebarWidth + 2
	}
	if w < 24 {
		w = 24
	}
	return w
}

// SidebarVisible reports whether the sidebar fits
func (r *Renderer) SidebarVisible(state ViewState) bool {
	return state.ShowSidebar && state.Width >= minSidebarWidth
}

// RenderBody renders the phase-dependent body and the span of the selected card.
// The span is only meaningful in the Results phase.
func (r *Renderer) RenderBody(vs ViewState) (string, Span) {
	width := r.BodyWidth(vs.Width, vs.ShowSidebar)

	switch vs.Phase {
	case state.PhaseSearching:
		cards := make([]string, 0, SkeletonCards)
		for i := 0; i < SkeletonCards; i++ {
			cards = append(cards, r.resultRend.RenderSkeleton(width))
		}
		return strings.Join(cards, "\n"), Span{}

	case state.PhaseEmpty:
		var b strings.Builder
		b.WriteString(r.styles.EmptyTitle.Render("No results found"))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Width(width).Render(fmt.Sprintf(
			"We couldn't find any results for %q. Try using different keywords or simplifying your search.",
			vs.SubmittedQuery,
		)))
		return b.String(), Span{}

	case state.PhaseResults:
		return r.renderResultList(vs, width)

	default:
		return r.styles.Dim.Width(width).Render(fmt.Sprintf(
			"Type a query and press enter to search %s.", vs.Site,
		)), Span{}
	}
}

func (r *Renderer) renderResultList(vs ViewState, width int) (string, Span) {
	var b strings.Builder
	header := fmt.Sprintf("%d results for %q", len(vs.Results), vs.SubmittedQuery)
	if len(vs.Results) == 1 {
		header = fmt.Sprintf("1 result for %q", vs.SubmittedQuery)
	}
	b.WriteString(r.styles.Dim.Render(header))
	b.WriteString("\n\n")

	line := 2
	var span Span
	for i, result := range vs.Results {
		card := r.resultRend.RenderCard(
			result,
			i == vs.SelectedIndex,
			result.ID == vs.CopiedID,
			vs.Feedback[result.ID],
			width,
		)
		h := lipgloss.Height(card)
		if i == vs.SelectedIndex {
			span = Span{Top: line, Bottom: line + h - 1}
		}
		b.WriteString(card)
		if i < len(vs.Results)-1 {
			b.WriteString("\n")
		}
		line += h
	}
	return b.String(), span
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	// Title with site and search indicator
	logo := r.styles.Title.Render("sitesearch") + r.styles.Dim.Render(" · ") + r.styles.Site.Render(vs.Site)
	titleLine := logo
	if vs.Phase == state.PhaseSearching {
		right := r.styles.Dim.Render(vs.Spinner + " Searching")
		termWidth := vs.Width
		if termWidth <= 0 {
			termWidth = 80
		}
		padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
		if padding < 2 {
			padding = 2
		}
		titleLine = logo + strings.Repeat(" ", padding) + right
	}
	content.WriteString(titleLine)
	content.WriteString("\n\n")

	// Search input
	inputWidth := r.BodyWidth(vs.Width, false) - 4
	inputStyle := r.styles.Input
	if vs.InputFocused {
		inputStyle = r.styles.InputFocused
	}
	prefix := "⌕ "
	if vs.Phase == state.PhaseSearching {
		prefix = vs.Spinner + " "
	}
	content.WriteString(inputStyle.Width(inputWidth).Render(prefix + vs.InputView))
	content.WriteString("\n\n")

	// Body, next to the sidebar when it fits
	body := vs.Body
	if body == "" {
		body, _ = r.RenderBody(vs)
	}
	bodyHeight := r.BodyHeight(vs.Height)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	if r.SidebarVisible(vs) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, r.renderSidebar(vs.Site, bodyHeight), body)
	}
	content.WriteString(body)
	content.WriteString("\n")

	// Status line
	status := ""
	if vs.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if vs.StatusIsError {
			style = r.styles.StatusError
		}
		status = style.Render(vs.StatusMessage)
	}
	content.WriteString(status)
	content.WriteString("\n")

	helpText := vs.ShortHelp
	if helpText == "" {
		helpText = "Press ? for help"
	}
	content.WriteString(r.styles.Help.Render(helpText))

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if vs.ShowHelp && vs.FullHelp != "" {
		helpContent := r.styles.Title.Render("Keyboard shortcuts") + "\n\n" + vs.FullHelp
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, vs.Height, vs.Width, r.styles.HelpBox)
	}

	return finalContent
}
