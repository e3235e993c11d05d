package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	keys string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay. Any key dismisses it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"1/2/3/4", "Home/Explore/Learn/Profile"},
				{"j/k", "Move selection"},
				{"g/G", "Go to top/bottom"},
				{"enter", "Open course"},
				{"esc", "Close sheet"},
			},
		},
		{
			title: "Browsing",
			items: []helpItem{
				{"/", "Search (enter to apply, esc to clear)"},
				{"c", "Cycle category filter"},
				{"C", "Clear filters"},
			},
		},
		{
			title: "Admin (Explore, admin mode on)",
			items: []helpItem{
				{"a", "Add course"},
				{"e", "Edit selected course"},
				{"d", "Delete selected course"},
			},
		},
		{
			title: "Checkout",
			items: []helpItem{
				{"b", "Buy from the detail sheet"},
				{"1/2 or enter", "Choose gateway"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString("  ")
			b.WriteString(styles.Warning.Render(padRight(item.keys, 14)))
			b.WriteString(styles.MutedText.Render(item.desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	box := styles.Sheet.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
