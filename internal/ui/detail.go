package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barohub/barohub/internal/catalog"
)

// openDetail shows the course detail sheet.
func (m *Model) openDetail(c catalog.Course) {
	m.detailID = c.ID
	m.overlay = OverlayDetail
	m.syncDetailViewport()
}

// closeDetail dismisses the detail sheet. Any payment session tied to it is
// cleared as well.
func (m *Model) closeDetail() {
	m.detailID = ""
	m.overlay = OverlayNone
	m.clearSession()
}

// detailCourse resolves the course the detail sheet is showing. The record
// can vanish underneath the sheet only via hand-edited storage; an absent id
// degrades to a closed sheet on the next key.
func (m Model) detailCourse() (catalog.Course, bool) {
	if m.detailID == "" {
		return catalog.Course{}, false
	}
	return m.store.Get(m.detailID)
}

// handleDetailKey processes keys while the detail sheet is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.Buy), key.Matches(msg, m.keys.Open):
		m.startPurchase()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) syncDetailViewport() {
	c, ok := m.detailCourse()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.detailContent(c))
	m.detailViewport.GotoTop()
}

// displayTopics returns the topics to show in the sheet, substituting the
// stock module list when the course has none.
func displayTopics(c catalog.Course) []catalog.Topic {
	if len(c.Topics) > 0 {
		return c.Topics
	}
	return []catalog.Topic{
		{ID: "m1", Title: "Hordhaca Koorsada"},
		{ID: "m2", Title: "Sida loo bilaabo casharka"},
		{ID: "m3", Title: "Xirfadaha muhiimka ah"},
	}
}

func (m Model) detailContent(c catalog.Course) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.theme.CategoryStyle(c.CategoryID).Render(c.Category))
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render(c.Title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("★ %.1f   %s", c.Rating, c.Duration)))
	b.WriteString("\n\n")

	for i, t := range displayTopics(c) {
		// Topics stay locked regardless of "purchase".
		b.WriteString(styles.Text.Render(fmt.Sprintf("CUTUBKA %daad — %s", i+1, t.Title)))
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render("[locked]"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Fadlan iibso koorsada si aad u daawato."))
	return b.String()
}

// renderDetail renders the course detail sheet.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	c, ok := m.detailCourse()
	if !ok {
		return styles.MutedText.Render("Koorsooyin lama helin.")
	}

	header := styles.Header.Width(m.width).Render(
		styles.Text.Bold(true).Render("Program Information") + "  " +
			styles.MutedText.Render("esc to close"),
	)

	buy := styles.Sheet.Render(
		styles.Price.Render(fmt.Sprintf("Hadda Iibso - $%s", formatPrice(c.Price))) +
			styles.MutedText.Render("   press b"),
	)

	footer := styles.Footer.Width(m.width).Render(m.footerText("b Buy  •  j/k Scroll  •  esc Close"))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.detailViewport.View(),
		buy,
		footer,
	)
}
