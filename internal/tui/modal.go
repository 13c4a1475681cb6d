package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalWidth(termWidth int) int {
	w := termWidth - 10
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func modalBodyWidth(termWidth int) int {
	return modalWidth(termWidth) - 4
}

// renderModalBox draws a titled modal surface sized for the terminal width.
// The caller overlays it on the current view via placeModal.
func renderModalBox(termWidth int, title string, content string) string {
	w := modalWidth(termWidth)

	header := lipgloss.NewStyle().
		Bold(true).
		Width(w-2).
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(w-2).
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Render(content)

	box := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Render(box)
}

// placeModal centers the modal over the base view, dimming nothing: some
// terminals show background artifacts when re-styling the backdrop, so the
// modal simply covers the center of the screen.
func placeModal(base, modal string, width, height int) string {
	if width <= 0 || height <= 0 {
		return modal
	}
	baseLines := strings.Split(normalizePane(base, width, height), "\n")
	modalLines := strings.Split(modal, "\n")

	mh := len(modalLines)
	mw := 0
	for _, ln := range modalLines {
		if w := lipgloss.Width(ln); w > mw {
			mw = w
		}
	}

	top := (height - mh) / 2
	if top < 0 {
		top = 0
	}
	left := (width - mw) / 2
	if left < 0 {
		left = 0
	}

	for i, mln := range modalLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		pad := strings.Repeat(" ", left)
		baseLines[row] = fitLine(pad+mln, width)
	}
	return strings.Join(baseLines, "\n")
}
