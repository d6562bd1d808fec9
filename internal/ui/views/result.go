package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sitesearch/internal/domain"
)

// ResultRenderer draws result cards and their placeholders
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderCard renders one result. width is the full card width including the border.
func (rr *ResultRenderer) RenderCard(result domain.SearchResult, selected, copied bool, vote domain.Vote, width int) string {
	inner := width - 2 // border + padding
	if inner < 20 {
		inner = 20
	}

	badge := rr.styles.Badge.Render(fmt.Sprintf("%d%% match", result.MatchPercent()))
	titleWidth := inner - lipgloss.Width(badge) - 1
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := rr.styles.ResultTitle.Width(titleWidth).Render(truncate(result.Title, titleWidth))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge)

	url := rr.styles.ResultURL.Render(truncate(result.URL, inner-2) + " ↗")
	snippet := rr.styles.Snippet.Width(inner).Render(result.Snippet)

	helpful := rr.styles.Action.Render("▲ Helpful")
	if vote == domain.VoteHelpful {
		helpful = rr.styles.ActionActive.Render("▲ Helpful")
	}
	notHelpful := rr.styles.Action.Render("▼ Not helpful")
	if vote == domain.VoteNotHelpful {
		notHelpful = rr.styles.ActionActive.Render("▼ Not helpful")
	}
	left := helpful + "  " + notHelpful

	right := rr.styles.Action.Render("⧉ Copy link")
	if copied {
		right = rr.styles.Copied.Render("✓ Copied")
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	footer := left + strings.Repeat(" ", gap) + right

	body := strings.Join([]string{header, url, snippet, footer}, "\n")
	if selected {
		return rr.styles.CardSelected.Render(body)
	}
	return rr.styles.Card.Render(body)
}

// RenderSkeleton renders a pulsing placeholder card shown while searching
func (rr *ResultRenderer) RenderSkeleton(width int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	bar := func(fraction float64) string {
		return rr.styles.Skeleton.Render(strings.Repeat("▇", int(float64(inner)*fraction)))
	}
	body := strings.Join([]string{bar(0.75), bar(0.5), bar(1), bar(5.0 / 6.0)}, "\n")
	return rr.styles.Card.Render(body)
}

// truncate shortens s to max visible cells, adding an ellipsis
func truncate(s string, max int) string {
	if max <= 1 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
