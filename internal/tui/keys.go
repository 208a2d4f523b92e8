package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"plane-cli/internal/model"
	"plane-cli/internal/outline"
)

// dispatchKey routes navigation and structural keys. Structural operations
// are all silent no-ops on invalid selections, so dispatch never needs to
// pre-validate beyond picking the focused pane.
func (m appModel) dispatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The configured modifier scheme decides which chord moves blocks.
	modUp, modDown := "alt+up", "alt+down"
	if m.cfg.ModifierScheme == "ctrl" {
		modUp, modDown = "ctrl+up", "ctrl+down"
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.navigate(-1)
		return m, nil
	case "down", "j":
		m.navigate(+1)
		return m, nil
	case "shift+up", "K":
		m.extend(-1)
		return m, nil
	case "shift+down", "J":
		m.extend(+1)
		return m, nil
	case " ":
		sel, list := m.paneSelection()
		if sel.Active >= 0 {
			sel.Toggle(list, sel.Active)
		}
		return m, nil
	case "esc":
		if m.archivePane {
			m.archivePane = false
			return m, nil
		}
		m.sess.Sel.Clear()
		return m, nil

	case "A":
		m.archivePane = !m.archivePane
		return m, nil
	case "v":
		m.showNote = !m.showNote
		return m, nil
	}

	if m.archivePane {
		switch key {
		case "r", "enter":
			m.sess.Restore()
			m.archivePane = false
			return m, m.notifCmd()
		}
		return m, nil
	}

	switch key {
	case modUp:
		m.sess.Move(outline.MoveUp)
	case modDown:
		m.sess.Move(outline.MoveDown)
	case "tab":
		m.sess.Indent(+1)
	case "shift+tab":
		m.sess.Indent(-1)
	case "]":
		m.sess.MoveToNextHeading()
	case "[":
		m.sess.MoveToPrevHeading()
	case "t":
		m.sess.ToggleChecked()
	case "c":
		m.sess.Copy()
		mirrorToSystemClipboard(m.sess.Clipboard())
	case "x":
		m.sess.Cut()
		mirrorToSystemClipboard(m.sess.Clipboard())
	case "p":
		m.sess.Paste()
	case "D":
		m.sess.Duplicate()
	case "d", "delete", "backspace":
		m.sess.Delete()
	case "a":
		m.sess.Archive()
	case "u":
		m.sess.Undo()
	case "ctrl+r":
		m.sess.Redo()
	case "#":
		id := m.sess.InsertNewItem(model.KindHeading, false)
		m.beginEdit(id, "", true)
	case "O":
		id := m.sess.InsertNewItem(model.KindTodo, true)
		m.beginEdit(id, "", true)
	case "e", "i":
		if it, ok := m.sess.ActiveItem(); ok {
			m.beginEdit(it.ID, it.Title, false)
		}
	default:
		if key == m.newItemKey() {
			id := m.sess.InsertNewItem(model.KindTodo, false)
			m.beginEdit(id, "", true)
		}
	}
	m.ensureVisible()
	return m, m.notifCmd()
}

func (m *appModel) newItemKey() string {
	if m.cfg.NewItemTrigger == "o" {
		return "o"
	}
	return "enter"
}

// paneSelection returns the selection and list of the focused pane.
func (m *appModel) paneSelection() (*outline.Selection, []model.Item) {
	if m.archivePane {
		return &m.sess.ArchiveSel, m.sess.Archived
	}
	return &m.sess.Sel, m.sess.Items
}

func (m *appModel) navigate(delta int) {
	sel, list := m.paneSelection()
	if len(list) == 0 {
		return
	}
	next := sel.Active + delta
	if sel.Active < 0 {
		next = 0
		if delta < 0 {
			next = len(list) - 1
		}
	}
	if next < 0 || next >= len(list) {
		return
	}
	sel.SetSingle(next)
	m.ensureVisible()
}

func (m *appModel) extend(delta int) {
	sel, list := m.paneSelection()
	if len(list) == 0 {
		return
	}
	if sel.Active < 0 {
		sel.SetSingle(0)
		return
	}
	next := sel.Active + delta
	if next < 0 || next >= len(list) {
		return
	}
	sel.Extend(list, next, true)
	m.ensureVisible()
}

// ensureVisible scrolls the outline pane so the active row stays on screen.
func (m *appModel) ensureVisible() {
	if m.archivePane {
		return
	}
	visible := m.listHeight()
	a := m.sess.Sel.Active
	if a < 0 {
		return
	}
	if a < m.offset {
		m.offset = a
	}
	if a >= m.offset+visible {
		m.offset = a - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
