package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/barohub/barohub/internal/catalog"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string
}

var themes = []Theme{
	{
		Name:          "Hub",
		Background:    "#101218",
		Surface:       "#181b24",
		Text:          "#e7e9f0",
		Muted:         "#8b92a8",
		Faint:         "#565d72",
		Accent:        "#2563eb",
		Success:       "#16a34a",
		Warning:       "#f59e0b",
		Danger:        "#ef4444",
		SelectionBg:   "#2563eb",
		SelectionText: "#ffffff",
		Border:        "#2a2f3e",
		BorderFocus:   "#2563eb",
	},
	{
		Name:          "Night",
		Background:    "#0b0e14",
		Surface:       "#11151f",
		Text:          "#c9d1d9",
		Muted:         "#768390",
		Faint:         "#4d5665",
		Accent:        "#7c3aed",
		Success:       "#3fb950",
		Warning:       "#d29922",
		Danger:        "#f85149",
		SelectionBg:   "#7c3aed",
		SelectionText: "#ffffff",
		Border:        "#21262d",
		BorderFocus:   "#7c3aed",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	Card      lipgloss.Style
	Sheet     lipgloss.Style
	FormLabel lipgloss.Style
	Price     lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),
		FormLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Bold(true),
		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
	}
}

// CategoryStyle returns a label style tinted with the category's display
// color, falling back to the accent color for unknown ids.
func (t Theme) CategoryStyle(categoryID string) lipgloss.Style {
	color := t.Accent
	if cat, ok := catalog.CategoryByID(categoryID); ok {
		color = cat.Color
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}
