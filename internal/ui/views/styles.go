package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Site          lipgloss.Style
	Dim           lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Main          lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarTitle  lipgloss.Style
	Section       lipgloss.Style
	StatBox       lipgloss.Style
	StatLabel     lipgloss.Style
	StatValue     lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	ResultTitle   lipgloss.Style
	ResultURL     lipgloss.Style
	Snippet       lipgloss.Style
	Badge         lipgloss.Style
	Action        lipgloss.Style
	ActionActive  lipgloss.Style
	Copied        lipgloss.Style
	Skeleton      lipgloss.Style
	EmptyTitle    lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	HelpBox       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Site: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true), // indigo
		Dim:  lipgloss.NewStyle().Faint(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginRight(2),
		SidebarTitle: lipgloss.NewStyle().Bold(true),
		Section:      lipgloss.NewStyle().Bold(true).MarginTop(1),
		StatBox:      lipgloss.NewStyle().Background(lipgloss.Color("236")).Padding(0, 1).MarginRight(1),
		StatLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue:    lipgloss.NewStyle().Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1).
			MarginBottom(1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("63")).
			PaddingLeft(1).
			MarginBottom(1),
		ResultTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		ResultURL:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Snippet:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Background(lipgloss.Color("236")).Padding(0, 1),
		Action:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ActionActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Copied:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Skeleton:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		EmptyTitle:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}
