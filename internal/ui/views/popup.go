package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

var grayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// RenderPopupOverlay renders a popup centred on top of a greyed out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	if width <= 0 {
		width = lipgloss.Width(mainContent)
	}
	if height <= 0 {
		height = lipgloss.Height(mainContent)
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(mainContent, "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := ansi.Strip(line)
		if i < y || i >= y+modalH {
			out[i] = desaturate(plain)
			continue
		}

		left := ansi.Truncate(plain, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(plain, x+modalW, "")
		out[i] = desaturate(left) + popupLines[i-y] + desaturate(right)
	}
	return strings.Join(out, "\n")
}

// desaturate recolors already stripped text dim gray
func desaturate(plain string) string {
	if plain == "" {
		return ""
	}
	return grayStyle.Render(plain)
}
