package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barohub/barohub/internal/catalog"
)

// Form fields, in focus order. The category picker sits between price and
// image, matching the original form layout.
const (
	fieldTitle = iota
	fieldPrice
	fieldCategory
	fieldImage
	fieldCount
)

// formState holds the admin add/edit sheet. editingID is empty for "new".
type formState struct {
	editingID   string
	title       textinput.Model
	price       textinput.Model
	image       textinput.Model
	categoryIdx int
	focus       int
	errText     string
}

// openForm pre-fills the form from the course being edited, or from the
// default draft for a new one. Entry is admin-gated by the caller.
func (m *Model) openForm(course *catalog.Course) {
	var draft catalog.Draft
	var editingID string
	if course != nil {
		draft = catalog.DraftFor(*course)
		editingID = course.ID
	} else {
		draft = catalog.DefaultDraft()
	}

	title := textinput.New()
	title.Placeholder = "e.g. Graphic Design Pro"
	title.CharLimit = 120
	title.SetValue(draft.Title)

	price := textinput.New()
	price.Placeholder = "49"
	price.CharLimit = 12
	price.SetValue(draft.Price)

	image := textinput.New()
	image.Placeholder = "https://images.unsplash..."
	image.CharLimit = 250
	image.SetValue(draft.Image)

	categoryIdx := 0
	for i, c := range catalog.Categories {
		if c.ID == draft.CategoryID {
			categoryIdx = i
			break
		}
	}

	m.form = formState{
		editingID:   editingID,
		title:       title,
		price:       price,
		image:       image,
		categoryIdx: categoryIdx,
	}
	m.form.title.Focus()
	m.overlay = OverlayForm
}

func (m *Model) closeForm() {
	m.form = formState{}
	m.overlay = OverlayNone
}

// handleFormKey processes keys while the admin form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "tab", "down":
		m.setFormFocus((m.form.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFormFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "ctrl+s":
		return m.saveForm()

	case "enter":
		if m.form.focus == fieldImage {
			return m.saveForm()
		}
		m.setFormFocus(m.form.focus + 1)
		return m, nil

	case "left", "right":
		if m.form.focus == fieldCategory {
			n := len(catalog.Categories)
			if msg.String() == "right" {
				m.form.categoryIdx = (m.form.categoryIdx + 1) % n
			} else {
				m.form.categoryIdx = (m.form.categoryIdx + n - 1) % n
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldPrice:
		m.form.price, cmd = m.form.price.Update(msg)
	case fieldImage:
		m.form.image, cmd = m.form.image.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFormFocus(focus int) {
	m.form.focus = focus
	m.form.title.Blur()
	m.form.price.Blur()
	m.form.image.Blur()
	switch focus {
	case fieldTitle:
		m.form.title.Focus()
	case fieldPrice:
		m.form.price.Focus()
	case fieldImage:
		m.form.image.Focus()
	}
}

// saveForm validates and applies the draft. Validation failures keep the
// form open for correction.
func (m Model) saveForm() (tea.Model, tea.Cmd) {
	draft := catalog.Draft{
		Title:      m.form.title.Value(),
		Price:      m.form.price.Value(),
		CategoryID: catalog.Categories[m.form.categoryIdx].ID,
		Image:      m.form.image.Value(),
	}

	var err error
	if m.form.editingID != "" {
		_, err = m.store.Update(m.form.editingID, draft)
	} else {
		_, err = m.store.Create(draft)
	}

	var verr *catalog.ValidationError
	var werr *catalog.WriteError
	switch {
	case errors.As(err, &verr):
		m.form.errText = "Fadlan buuxi magaca iyo qiimaha koorsada. (" + verr.Error() + ")"
		return m, nil
	case errors.Is(err, catalog.ErrPermissionDenied):
		m.form.errText = "Permission Denied: Admin mode is not active."
		return m, nil
	case errors.As(err, &werr):
		m.closeForm()
		m.refreshCourses()
		return m, m.setNotice(noticeSaveDiverged)
	case err != nil:
		m.form.errText = err.Error()
		return m, nil
	}

	m.closeForm()
	m.refreshCourses()
	return m, m.setNotice(noticeSaved)
}

// renderForm renders the admin add/edit sheet.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	heading := "Koorso Cusub"
	if m.form.editingID != "" {
		heading = "Bedel Koorsada"
	}

	category := catalog.Categories[m.form.categoryIdx]
	categoryLine := "  " + category.Name + "  "
	if m.form.focus == fieldCategory {
		categoryLine = styles.Selected.Render("< " + category.Name + " >")
	} else {
		categoryLine = styles.Text.Render(categoryLine)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(heading))
	b.WriteString("\n\n")
	b.WriteString(styles.FormLabel.Render("CIWAANKA KOORSADA"))
	b.WriteString("\n")
	b.WriteString(m.form.title.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FormLabel.Render("QIIMAHA ($)"))
	b.WriteString("\n")
	b.WriteString(m.form.price.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FormLabel.Render("QAYBTA (CATEGORY)"))
	b.WriteString("\n")
	b.WriteString(categoryLine)
	b.WriteString("\n\n")
	b.WriteString(styles.FormLabel.Render("IMAGE URL"))
	b.WriteString("\n")
	b.WriteString(m.form.image.View())
	b.WriteString("\n\n")

	if m.form.errText != "" {
		b.WriteString(styles.Danger.Render(m.form.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("tab Next field  •  ←/→ Category  •  ctrl+s Save  •  esc Cancel"))

	sheet := styles.Sheet.Width(min(m.width-4, 64)).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sheet)
}
