package tui

import "github.com/charmbracelet/lipgloss"

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

func (f confirmModalFocus) toggled() confirmModalFocus {
	if f == confirmFocusConfirm {
		return confirmFocusCancel
	}
	return confirmFocusConfirm
}

// confirmButton renders one borderless action button. Borders are avoided
// here: nesting bordered components inside a modal with a background color
// leaves artifacts on some terminals.
func confirmButton(label string, active bool) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}
	return st.Render(label)
}

// renderConfirmModal draws a two-button prompt. The caller decides which
// button starts focused; destructive flows start on cancel.
func renderConfirmModal(width int, title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	bodyW := modalBodyWidth(width)

	prompt := lipgloss.NewStyle().Width(bodyW).Render(body)
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		confirmButton(confirmLabel, focus == confirmFocusConfirm),
		lipgloss.NewStyle().Background(colorControlBg).Render(" "),
		confirmButton(cancelLabel, focus == confirmFocusCancel),
	)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc: cancel")

	return renderModalBox(width, title, prompt+"\n\n"+controls+"\n\n"+help)
}
