package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SidebarWidth is the outer width of the information panel
const SidebarWidth = 34

// PagesIndexed is the figure shown in the statistics panel
const PagesIndexed = "1,248"

var searchTips = []string{
	"Use quotes for exact phrases",
	"Add + to require a term",
	"Add - to exclude a term",
	"Use OR between terms for either/or",
}

// renderSidebar renders the search information panel
func (r *Renderer) renderSidebar(site string, height int) string {
	s := r.styles
	inner := SidebarWidth - 4

	var b strings.Builder
	b.WriteString(s.SidebarTitle.Render("Search Information"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(
		fmt.Sprintf("Your search engine for %s is ready to use.", s.Site.Render(site)),
	))
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Statistics"))
	b.WriteString("\n")
	pages := s.StatBox.Render(s.StatLabel.Render("Pages Indexed") + "\n" + s.StatValue.Render(PagesIndexed))
	updated := s.StatBox.Render(s.StatLabel.Render("Last Updated") + "\n" + s.StatValue.Render("Just now"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pages, updated))
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Search Tips"))
	for _, tip := range searchTips {
		b.WriteString("\n")
		b.WriteString(s.Dim.Width(inner).Render("• " + tip))
	}

	style := s.Sidebar.Width(SidebarWidth - 2)
	if height > 0 {
		style = style.MaxHeight(height)
	}
	return style.Render(b.String())
}
