package outline

import (
	"fmt"

	"plane-cli/internal/model"
)

// Notification icon tags, paired with fixed messages by the emitting
// operation. The host maps tags to glyphs.
const (
	IconCopy      = "copy"
	IconCut       = "cut"
	IconPaste     = "paste"
	IconDuplicate = "duplicate"
	IconDelete    = "delete"
	IconArchive   = "archive"
	IconRestore   = "restore"
	IconUndo      = "undo"
	IconRedo      = "redo"
)

// Session owns one outline document: the active list, the archive list,
// one selection per list, the clipboard buffer, the undo history and the
// in-progress edit state. Every structural operation is a method; there is
// no package-level mutable state, so independent sessions coexist freely.
//
// All operations run to completion synchronously. Policy rejections
// (invalid selection, sentinel guard, non-contiguous move) are silent
// no-ops, never errors: the engine favors predictable keyboard-driven UX
// over exceptions.
type Session struct {
	Items    []model.Item
	Archived []model.Item

	Sel        Selection
	ArchiveSel Selection

	clipboard []model.Item
	hist      history
	edit      editState

	// OnChange fires after any mutation that should persist. Persistence
	// is fire-and-forget: the session never waits for a save.
	OnChange func(items, archived []model.Item)
	// OnNotify fires after user-facing operations with a fixed message and
	// icon tag.
	OnNotify func(message, icon string)
}

func NewSession() *Session {
	return &Session{
		Sel:        NewSelection(),
		ArchiveSel: NewSelection(),
	}
}

// Load wholesale-replaces both lists, e.g. on initial open or when the
// backing file changed externally. All selection, edit and history state
// from before the load is dropped atomically; archive items are forced
// checked and orphaned children are repaired on the way in.
func (s *Session) Load(items, archived []model.Item) {
	s.Items = model.CloneItems(items)
	s.Archived = model.CloneItems(archived)
	RepairOrphans(s.Items)
	for i := range s.Archived {
		s.Archived[i].Checked = true
		s.Archived[i].Indent = model.ClampIndent(s.Archived[i].Kind, s.Archived[i].Indent)
	}
	s.Sel.Clear()
	s.ArchiveSel.Clear()
	s.edit = editState{}
	s.hist.reset()
}

// Clipboard returns a copy of the shared clipboard buffer.
func (s *Session) Clipboard() []model.Item {
	return model.CloneItems(s.clipboard)
}

func (s *Session) CanUndo() bool { return s.hist.canUndo() }
func (s *Session) CanRedo() bool { return s.hist.canRedo() }

// Undo restores the most recent snapshot, pushing the current document onto
// the redo stack.
func (s *Session) Undo() {
	if !s.hist.canUndo() {
		return
	}
	s.hist.applying = true
	s.hist.future = append(s.hist.future, snapshot{
		items:    model.CloneItems(s.Items),
		archived: model.CloneItems(s.Archived),
	})
	last := s.hist.past[len(s.hist.past)-1]
	s.hist.past = s.hist.past[:len(s.hist.past)-1]
	s.Items = last.items
	s.Archived = last.archived
	s.edit = editState{}
	s.revalidateAfterHistory()
	s.hist.applying = false
	s.emitChange()
	s.notify("Undo", IconUndo)
}

// Redo re-applies the most recently undone snapshot.
func (s *Session) Redo() {
	if !s.hist.canRedo() {
		return
	}
	s.hist.applying = true
	s.hist.past = append(s.hist.past, snapshot{
		items:    model.CloneItems(s.Items),
		archived: model.CloneItems(s.Archived),
	})
	next := s.hist.future[len(s.hist.future)-1]
	s.hist.future = s.hist.future[:len(s.hist.future)-1]
	s.Items = next.items
	s.Archived = next.archived
	s.edit = editState{}
	s.revalidateAfterHistory()
	s.hist.applying = false
	s.emitChange()
	s.notify("Redo", IconRedo)
}

// revalidateAfterHistory clamps the active index against the restored list
// and rebuilds the selected set as a singleton. ID-based restore is not
// used here: a snapshot is a different document generation, so positions
// are re-derived from scratch.
func (s *Session) revalidateAfterHistory() {
	if s.Sel.Active >= len(s.Items) {
		s.Sel.Active = len(s.Items) - 1
	}
	if s.Sel.Active >= 0 {
		s.Sel.Anchor = s.Sel.Active
		s.Sel.Selected = map[int]bool{s.Sel.Active: true}
	} else {
		s.Sel.Clear()
	}
	for i := range s.ArchiveSel.Selected {
		if i >= len(s.Archived) {
			delete(s.ArchiveSel.Selected, i)
		}
	}
	s.ArchiveSel.Validate(s.Archived)
}

func (s *Session) emitChange() {
	if s.OnChange != nil {
		s.OnChange(s.Items, s.Archived)
	}
}

func (s *Session) notify(message, icon string) {
	if s.OnNotify != nil {
		s.OnNotify(message, icon)
	}
}

func countMessage(n int, verb string) string {
	return fmt.Sprintf("%d item(s) %s", n, verb)
}

// ActiveItem returns the focused active-list item, if any.
func (s *Session) ActiveItem() (model.Item, bool) {
	if s.Sel.Active < 0 || s.Sel.Active >= len(s.Items) {
		return model.Item{}, false
	}
	return s.Items[s.Sel.Active], true
}

// ToggleChecked flips the checked flag of every selected todo. Headings are
// skipped; a selection of only headings is a no-op.
func (s *Session) ToggleChecked() {
	idx := s.Sel.SortedIndices()
	var todos []int
	for _, i := range idx {
		if i >= 0 && i < len(s.Items) && !s.Items[i].IsHeading() {
			todos = append(todos, i)
		}
	}
	if len(todos) == 0 {
		return
	}
	s.hist.save(s.Items, s.Archived)
	for _, i := range todos {
		s.Items[i].Checked = !s.Items[i].Checked
	}
	s.emitChange()
}
