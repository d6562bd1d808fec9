package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"sitesearch/internal/domain"
)

// Pager shows text in ov, handing the terminal over while it runs
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	run     func(r io.Reader) error
}

// NewPager creates a pager backed by ov
func NewPager() *Pager {
	p := &Pager{}
	p.run = runOviewer
	return p
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content until the user quits ov
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return errors.New("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return p.run(strings.NewReader(content))
}

func runOviewer(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return errors.Wrap(err, "create pager")
	}

	// Don't write the document back on exit, it would land on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// BuildReport renders the results of query as plain text for the pager.
// selected is marked with an arrow.
func BuildReport(site, query string, results []domain.SearchResult, feedback map[string]domain.Vote, selected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search results for %q on %s\n", query, site)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))

	if len(results) == 0 {
		b.WriteString("No results found.\n")
		return b.String()
	}

	for i, r := range results {
		marker := " "
		if i == selected {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %d. %s  [%d%% match]\n", marker, i+1, r.Title, r.MatchPercent())
		fmt.Fprintf(&b, "     %s\n", r.URL)
		fmt.Fprintf(&b, "     %s\n", r.Snippet)
		if vote := feedback[r.ID]; vote != domain.VoteNone {
			fmt.Fprintf(&b, "     feedback: %s\n", vote)
		}
		b.WriteString("\n")
	}
	return b.String()
}
