package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"plane-cli/internal/model"
)

const indentWidth = 2

func (m appModel) listHeight() int {
	// header + blank + footer + notification line
	h := m.height - 4
	if m.showNote {
		h -= m.noteHeight()
	}
	if m.archivePane {
		h -= m.archiveHeight()
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) noteHeight() int    { return 8 }
func (m appModel) archiveHeight() int { return 10 }

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewOutline())
	if m.archivePane {
		b.WriteString(m.viewArchive())
	}
	if m.showNote {
		b.WriteString(m.viewNote())
	}
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m appModel) viewHeader() string {
	name := filepath.Base(m.store.Path)
	counts := fmt.Sprintf("%d items", len(m.sess.Items))
	if len(m.sess.Archived) > 0 {
		counts += fmt.Sprintf(", %d archived", len(m.sess.Archived))
	}
	left := styleHeader.Render(name)
	right := styleFaint.Render(counts)
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) viewOutline() string {
	var b strings.Builder
	visible := m.listHeight()
	end := m.offset + visible
	if end > len(m.sess.Items) {
		end = len(m.sess.Items)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i, m.sess.Items[i], !m.archivePane))
		b.WriteString("\n")
	}
	for i := end - m.offset; i < visible; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders one outline line: selection gutter, indent, checkbox or
// heading marker, title (or the inline editor when this row is being
// edited), note indicator.
func (m appModel) renderRow(i int, it model.Item, paneFocused bool) string {
	gutter := " "
	if paneFocused && m.sess.Sel.Selected[i] {
		gutter = styleSelected.Render(glyphSelected())
	}

	var line strings.Builder
	line.WriteString(strings.Repeat(" ", it.Indent*indentWidth))

	title := it.Title
	if m.editingID != "" && it.ID == m.editingID {
		title = m.input.View()
	}

	if it.IsHeading() {
		line.WriteString(styleHeading.Render(title))
	} else {
		box := glyphCheckboxOpen()
		if it.Checked {
			box = glyphCheckboxDone()
		}
		line.WriteString(box)
		line.WriteString(" ")
		if it.Checked {
			line.WriteString(styleDone.Render(title))
		} else {
			line.WriteString(title)
		}
	}
	if strings.TrimSpace(it.Note) != "" {
		line.WriteString(" " + styleFaint.Render(glyphNote()))
	}

	row := ansi.Truncate(line.String(), m.width-2, "…")
	if paneFocused && i == m.sess.Sel.Active {
		row = styleActive.Render(row)
	}
	return gutter + " " + row
}

func (m appModel) viewArchive() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Archive"))
	b.WriteString("\n")
	rows := m.archiveHeight() - 1
	for i := 0; i < rows; i++ {
		if i < len(m.sess.Archived) {
			b.WriteString(m.renderArchiveRow(i, m.sess.Archived[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) renderArchiveRow(i int, it model.Item) string {
	gutter := " "
	if m.sess.ArchiveSel.Selected[i] {
		gutter = styleSelected.Render(glyphSelected())
	}
	var line strings.Builder
	line.WriteString(strings.Repeat(" ", it.Indent*indentWidth))
	if it.IsHeading() {
		line.WriteString(styleHeading.Render(it.Title))
	} else {
		line.WriteString(glyphCheckboxDone())
		line.WriteString(" ")
		line.WriteString(styleDone.Render(it.Title))
	}
	row := ansi.Truncate(line.String(), m.width-2, "…")
	if i == m.sess.ArchiveSel.Active {
		row = styleActive.Render(row)
	}
	return gutter + " " + row
}

func (m appModel) viewNote() string {
	var b strings.Builder
	b.WriteString(styleFaint.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	note := ""
	if it, ok := m.sess.ActiveItem(); ok {
		note = it.Note
	}
	rows := m.noteHeight() - 1
	if strings.TrimSpace(note) == "" {
		b.WriteString(styleFaint.Render("(no note)"))
		b.WriteString(strings.Repeat("\n", rows))
		return b.String()
	}
	rendered := strings.Split(renderNote(note, m.width-2), "\n")
	for i := 0; i < rows; i++ {
		if i < len(rendered) {
			b.WriteString(ansi.Truncate(rendered[i], m.width, ""))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) viewFooter() string {
	var b strings.Builder
	if m.notif.msg != "" {
		b.WriteString(styleNotify.Render(glyphIcon(m.notif.icon) + " " + m.notif.msg))
	}
	b.WriteString("\n")

	hints := "j/k move · space select · tab indent · a archive · u undo · q quit"
	if m.archivePane {
		hints = "j/k move · space select · r restore · esc back · q quit"
	}
	b.WriteString(styleFaint.Render(ansi.Truncate(hints, m.width, "…")))
	return b.String()
}
