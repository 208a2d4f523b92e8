package outline

import (
	"strings"

	"plane-cli/internal/model"
)

// editState tracks the single in-progress title edit. Only one item may be
// in editing state at a time; beginning a new edit resolves the prior one
// first.
type editState struct {
	active bool
	itemID string
	isNew  bool
	prior  string // title at begin, for the unchanged-commit fast path
}

// Editing reports the item currently being edited, if any.
func (s *Session) Editing() (id string, isNew, ok bool) {
	return s.edit.itemID, s.edit.isNew, s.edit.active
}

// InsertNewItem creates a blank item after the active block (or at the list
// end), snapshots history at creation, and enters the editing-new state.
// Committing an empty title later removes the item and discards that
// snapshot, so an abandoned new item leaves no undo trace.
//
// asChild requests indent 1; the request is ignored when the insert point
// has no parent above it in its section.
func (s *Session) InsertNewItem(kind model.ItemKind, asChild bool) string {
	s.resolvePendingEdit()

	pos := s.insertPosAfterActive()
	indent := 0
	if asChild && kind == model.KindTodo && HasAncestorParentInSection(s.Items, pos) {
		indent = 1
	}
	var it model.Item
	switch kind {
	case model.KindHeading:
		it = model.NewHeading("")
	default:
		it = model.NewTodo("", indent)
	}

	s.hist.save(s.Items, s.Archived)
	s.insertAt(pos, []model.Item{it})
	s.Sel.SetSingle(pos)
	s.edit = editState{active: true, itemID: it.ID, isNew: true}
	s.emitChange()
	return it.ID
}

// BeginEdit enters the editing-existing state for the item with the given
// ID. A still-active prior edit is resolved first (committed unchanged, or
// discarded when it was an untouched new item).
func (s *Session) BeginEdit(id string) {
	s.resolvePendingEdit()
	i := indexByID(s.Items, id)
	if i < 0 {
		return
	}
	s.edit = editState{active: true, itemID: id, prior: s.Items[i].Title}
}

// CommitEdit ends the edit with the final title.
//
//   - new item, empty title: the item is removed silently and the creation
//     snapshot is discarded;
//   - existing item, empty title: snapshot, then delete (with the usual
//     deletion notification);
//   - changed title: snapshot (unless the creation already did) and assign;
//   - unchanged title: nothing is recorded.
func (s *Session) CommitEdit(title string) {
	if !s.edit.active {
		return
	}
	st := s.edit
	s.edit = editState{}

	i := indexByID(s.Items, st.itemID)
	if i < 0 {
		return // item vanished (e.g. external reload); nothing to commit
	}
	title = strings.TrimSpace(title)

	if title == "" {
		if st.isNew {
			s.discardNewItem(i)
			return
		}
		s.Sel.SetSingle(i)
		s.deleteSelected(true)
		return
	}
	if !st.isNew && title == st.prior {
		return
	}
	if !st.isNew {
		s.hist.save(s.Items, s.Archived)
	}
	s.Items[i].Title = title
	s.emitChange()
}

// CancelEdit abandons the edit: a new item is removed (and its creation
// snapshot discarded), an existing item is left untouched.
func (s *Session) CancelEdit() {
	if !s.edit.active {
		return
	}
	st := s.edit
	s.edit = editState{}
	if !st.isNew {
		return
	}
	if i := indexByID(s.Items, st.itemID); i >= 0 {
		s.discardNewItem(i)
	}
}

// discardNewItem removes a just-created item without notification and pops
// the history entry pushed at its creation.
func (s *Session) discardNewItem(i int) {
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	s.hist.popLast()
	if len(s.Items) == 0 {
		s.Sel.Clear()
	} else {
		if i > len(s.Items)-1 {
			i = len(s.Items) - 1
		}
		s.Sel.SetSingle(i)
	}
	s.emitChange()
}

// resolvePendingEdit commits a prior edit with its current (on-item) title,
// which is a no-op for untouched existing items and discards an untouched
// new item.
func (s *Session) resolvePendingEdit() {
	if !s.edit.active {
		return
	}
	if i := indexByID(s.Items, s.edit.itemID); i >= 0 {
		s.CommitEdit(s.Items[i].Title)
		return
	}
	s.edit = editState{}
}
