package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barohub/barohub/internal/catalog"
)

// Somali notices, matching the app's voice.
const (
	noticeAdminNeeded  = "Fadlan daar Admin Mode-ka (Profile) si aad u maamusho koorsooyinka."
	noticeSaved        = "Si guul leh ayaa loo kaydiyay!"
	noticeSaveDiverged = "Waa la kaydiyay, laakiin qoritaanka kaydka waa fashilmay."
)

// handleBrowseKey processes keys on the Home and Explore tabs.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleCourses()

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CycleCategory):
		m.categoryIdx = (m.categoryIdx + 1) % (len(catalog.Categories) + 1)
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.categoryIdx = 0
		m.searchInput.SetValue("")
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(visible)-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(len(visible)-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if c, ok := m.selectedCourse(); ok {
			m.openDetail(c)
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if m.tab != TabExplore {
			return m, nil
		}
		if !m.store.IsAdmin() {
			return m, m.setNotice(noticeAdminNeeded)
		}
		m.openForm(nil)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.tab != TabExplore {
			return m, nil
		}
		if !m.store.IsAdmin() {
			return m, m.setNotice(noticeAdminNeeded)
		}
		if c, ok := m.selectedCourse(); ok {
			m.openForm(&c)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.tab != TabExplore {
			return m, nil
		}
		if !m.store.IsAdmin() {
			return m, m.setNotice(noticeAdminNeeded)
		}
		if c, ok := m.selectedCourse(); ok {
			m.deleteID = c.ID
			m.overlay = OverlayConfirmDelete
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey feeds keys into the focused search input.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.selectedRow = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// The filter re-evaluates on every keystroke; keep the selection valid.
	if visible := m.visibleCourses(); m.selectedRow >= len(visible) {
		m.selectedRow = max(len(visible)-1, 0)
	}
	return m, cmd
}

// handleProfileKey processes keys on the Profile tab.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleAdmin) {
		next := !m.store.IsAdmin()
		if err := m.store.SetAdmin(next); err != nil {
			return m, m.setNotice("Admin mode: " + err.Error())
		}
		if next {
			return m, m.setNotice("Admin Mode: ON")
		}
		return m, m.setNotice("Admin Mode: OFF")
	}
	return m, nil
}

// selectedCourse returns the course under the cursor in the filtered list.
func (m Model) selectedCourse() (catalog.Course, bool) {
	visible := m.visibleCourses()
	if m.selectedRow < 0 || m.selectedRow >= len(visible) {
		return catalog.Course{}, false
	}
	return visible[m.selectedRow], true
}
