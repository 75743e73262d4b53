package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/ui"
)

// header is the top line: palette on the left, gamut mode and position on the right
type header struct {
	palette  string
	gamut    color.GamutMode
	position int
	total    int
	width    int
	theme    *ui.Theme
}

func (h header) View() string {
	left := h.theme.AppTitle.Render("okterm") + " " + h.theme.Header.Render(h.palette)

	dimmed := lipgloss.NewStyle().Foreground(h.theme.Dimmed)
	rightParts := []string{dimmed.Render("gamut: ") + h.theme.Highlight.Render(h.gamut.String())}
	if h.total > 0 {
		rightParts = append(rightParts, dimmed.Render(fmt.Sprintf("(%d/%d)", h.position, h.total)))
	}
	right := lipgloss.NewStyle().
		Padding(0, 1).
		Render(strings.Join(rightParts, "  "))

	// Push the right side to the edge
	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	spacer := strings.Repeat(" ", spacing)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
