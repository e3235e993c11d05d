package ui

import (
	"fmt"
	"strings"

	"github.com/barohub/barohub/internal/catalog"
)

// renderHeader renders the logo line: brand, tabs, admin badge, notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var tabs []string
	for i, t := range []Tab{TabHome, TabExplore, TabLearn, TabProfile} {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == m.tab {
			tabs = append(tabs, styles.Selected.Render(" "+label+" "))
		} else {
			tabs = append(tabs, styles.MutedText.Render(label))
		}
	}

	parts := []string{
		styles.Logo.Render("BaroHub"),
		strings.Join(tabs, "  "),
	}
	if m.store.IsAdmin() {
		parts = append(parts, styles.Warning.Render("ADMIN"))
	}
	if m.notice != "" {
		parts = append(parts, styles.Success.Render(truncate(m.notice, 48)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "   "))
}

// renderFooter renders the key hints for the active view.
func (m Model) renderFooter() string {
	hints := "1-4 Tabs  •  / Search  •  c Category  •  enter Open  •  ? Help  •  q Quit"
	switch m.tab {
	case TabExplore:
		if m.store.IsAdmin() {
			hints = "a Add  •  e Edit  •  d Delete  •  / Search  •  c Category  •  enter Open  •  q Quit"
		}
	case TabProfile:
		hints = "space Toggle admin mode  •  1-4 Tabs  •  q Quit"
	case TabLearn:
		hints = "enter Explore courses  •  1-4 Tabs  •  q Quit"
	}
	return m.theme.Styles().Footer.Width(m.width).Render(m.footerText(hints))
}

func (m Model) footerText(hints string) string {
	return truncate(hints, max(m.width-2, 10))
}

// renderCourseRow renders one catalog entry for the list views.
func (m Model) renderCourseRow(c catalog.Course, selected bool) string {
	styles := m.theme.Styles()

	category := m.theme.CategoryStyle(c.CategoryID).Render(c.Category)
	title := truncate(c.Title, max(m.width-30, 16))
	meta := styles.MutedText.Render(fmt.Sprintf("★ %.1f  %s", c.Rating, c.Duration))
	price := styles.Price.Render("$" + formatPrice(c.Price))

	line := fmt.Sprintf("%s  %s  %s  %s", category, styles.Text.Render(title), meta, price)
	if selected {
		return styles.Selected.Render("› ") + line
	}
	return "  " + line
}

// renderHome renders the welcome view: search plus the top of the catalog.
func (m Model) renderHome() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.FaintText.Render("KU SOO DHAWAADA"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render("Mustaqbalkaaga Halkan Ka Bilow."))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Warning.Render("★ Koorsooyinka ugu Fiican"))
	b.WriteString("\n")

	visible := m.visibleCourses()
	if len(visible) > 3 {
		visible = visible[:3]
	}
	if len(visible) == 0 {
		b.WriteString(styles.MutedText.Render("Koorsooyin lama helin."))
	}
	for i, c := range visible {
		b.WriteString(m.renderCourseRow(c, i == m.selectedRow))
		b.WriteString("\n")
	}

	return m.padContent(b.String())
}

// renderExplore renders the full filtered catalog with the category filter.
func (m Model) renderExplore() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Koorsoyin & Barnaamijyo"))
	b.WriteString("\n")
	b.WriteString(styles.Success.Render("Ku biir in ka badan 40,000 oo ka tirsan nidamkeena waxbarashada"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")

	categoryLabel := "All Courses"
	if id := m.categoryID(); id != "" {
		if cat, ok := catalog.CategoryByID(id); ok {
			categoryLabel = cat.Name
		}
	}
	b.WriteString(styles.AccentText.Render("Qaybta: " + categoryLabel))
	b.WriteString(styles.FaintText.Render("  (c to cycle)"))
	b.WriteString("\n\n")

	visible := m.visibleCourses()
	if len(visible) == 0 {
		b.WriteString(styles.MutedText.Render("Koorsooyin lama helin."))
		b.WriteString("\n")
	}
	for i, c := range visible {
		b.WriteString(m.renderCourseRow(c, i == m.selectedRow))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Caawimo: " + m.config.SupportURL))

	return m.padContent(b.String())
}

// renderLearn renders the my-learning empty state. Entitlements are never
// granted, so it is always empty.
func (m Model) renderLearn() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Barashadayda"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Wali koorsooyin ma iibsan."))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("RAADI KOORSOOYINKA (enter)"))
	return m.padContent(b.String())
}

// renderProfile renders the account view with the admin toggle.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()
	var b strings.Builder

	status := "PREMIUM USER"
	toggle := "ENABLE ADMIN MODE"
	if m.store.IsAdmin() {
		status = "ADMINISTRATOR"
		toggle = "DISABLE ADMIN MODE"
	}

	b.WriteString(styles.Text.Bold(true).Render("Mohamed Shiine"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Status: " + status))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Render("Admin Settings"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Daar Admin Mode si aad u maamusho koorsooyinka."))
	b.WriteString("\n\n")
	b.WriteString(styles.Selected.Render(" " + toggle + " (space) "))
	return m.padContent(b.String())
}

// padContent fills the content area so the footer stays on the last line.
func (m Model) padContent(content string) string {
	target := m.height - 3
	if target < 1 {
		return content
	}
	lines := strings.Count(content, "\n") + 1
	if lines >= target {
		return content
	}
	return content + strings.Repeat("\n", target-lines)
}
