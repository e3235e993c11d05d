package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barohub/barohub/internal/catalog"
)

// confirmDeleteText mirrors the store's delete prompt; the modal is the
// confirm primitive's surface.
const confirmDeleteText = "Ma hubtaa inaad tirtirto koorsadan?"

// handleConfirmKey processes the yes/no delete confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteID
		m.deleteID = ""
		m.overlay = OverlayNone
		err := m.store.Delete(id, func(string) bool { return true })

		var werr *catalog.WriteError
		switch {
		case errors.Is(err, catalog.ErrPermissionDenied):
			return m, m.setNotice(noticeAdminNeeded)
		case errors.As(err, &werr):
			m.refreshCourses()
			return m, m.setNotice(noticeSaveDiverged)
		case err != nil:
			return m, m.setNotice(err.Error())
		}
		m.refreshCourses()
		return m, m.setNotice("Koorsadii waa la tirtiray.")

	case "n", "N", "esc":
		m.deleteID = ""
		m.overlay = OverlayNone
		return m, nil
	}
	return m, nil
}

// renderConfirmDelete renders the yes/no modal.
func (m Model) renderConfirmDelete() string {
	styles := m.theme.Styles()

	course, _ := m.store.Get(m.deleteID)

	var b strings.Builder
	b.WriteString(styles.Danger.Render("Tirtir Koorsada"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(confirmDeleteText))
	if course.Title != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(truncate(course.Title, 48)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y Yes  •  n/esc No"))

	sheet := styles.Sheet.Width(min(m.width-4, 56)).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sheet)
}
