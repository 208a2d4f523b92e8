package outline

import (
	"testing"

	"plane-cli/internal/model"
)

func TestInsertNewItemCommitTitle(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.Sel.SetSingle(0)
	id := s.InsertNewItem(model.KindTodo, false)
	if _, isNew, ok := s.Editing(); !ok || !isNew {
		t.Fatalf("expected editing-new state")
	}
	s.CommitEdit("hello")
	wantTitles(t, s.Items, "a", "hello")
	if s.Items[1].ID != id {
		t.Fatalf("committed item id mismatch")
	}
	if _, _, ok := s.Editing(); ok {
		t.Fatalf("commit must return to idle")
	}
	// One undo removes the new item (creation snapshot, no commit snapshot).
	s.Undo()
	wantTitles(t, s.Items, "a")
	if s.CanUndo() {
		t.Fatalf("exactly one history entry expected")
	}
}

func TestInsertNewItemAsChild(t *testing.T) {
	s := newTestSession(todo("p", "p", 0))
	s.Sel.SetSingle(0)
	s.InsertNewItem(model.KindTodo, true)
	if s.Items[1].Indent != 1 {
		t.Fatalf("expected child indent, got %d", s.Items[1].Indent)
	}
	// A child request with no parent above degrades to indent 0.
	s2 := newTestSession(heading("h", "H"))
	s2.Sel.SetSingle(0)
	s2.InsertNewItem(model.KindTodo, true)
	if s2.Items[1].Indent != 0 {
		t.Fatalf("orphan child request must degrade to indent 0")
	}
}

func TestCommitEmptyNewLeavesNoUndoTrace(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	var msgs []string
	s.OnNotify = func(msg, icon string) { msgs = append(msgs, msg) }
	s.Sel.SetSingle(0)
	s.InsertNewItem(model.KindTodo, false)
	s.CommitEdit("   ")
	wantTitles(t, s.Items, "a")
	if s.CanUndo() {
		t.Fatalf("abandoned new item must leave no undo trace")
	}
	if len(msgs) != 0 {
		t.Fatalf("abandoning a new item must be silent, got %v", msgs)
	}
}

func TestCancelNewItem(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.Sel.SetSingle(0)
	s.InsertNewItem(model.KindTodo, false)
	s.CancelEdit()
	wantTitles(t, s.Items, "a")
	if s.CanUndo() {
		t.Fatalf("cancelled new item must leave no undo trace")
	}
}

func TestCommitEmptyExistingDeletes(t *testing.T) {
	s := newTestSession(todo("a", "a", 0), todo("b", "b", 0))
	var msgs []string
	s.OnNotify = func(msg, icon string) { msgs = append(msgs, msg) }
	s.BeginEdit("b")
	s.CommitEdit("")
	wantTitles(t, s.Items, "a")
	if len(msgs) != 1 || msgs[0] != "1 item(s) deleted" {
		t.Fatalf("notifications = %v", msgs)
	}
	if !s.CanUndo() {
		t.Fatalf("existing-item deletion must be undoable")
	}
}

func TestCommitUnchangedRecordsNothing(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.BeginEdit("a")
	s.CommitEdit("a")
	if s.CanUndo() {
		t.Fatalf("unchanged commit must not snapshot")
	}
}

func TestCommitChangedExistingSnapshots(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.BeginEdit("a")
	s.CommitEdit("renamed")
	if s.Items[0].Title != "renamed" {
		t.Fatalf("title = %q", s.Items[0].Title)
	}
	s.Undo()
	if s.Items[0].Title != "a" {
		t.Fatalf("undo did not restore title, got %q", s.Items[0].Title)
	}
}

func TestCancelExistingKeepsState(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.BeginEdit("a")
	s.CancelEdit()
	wantTitles(t, s.Items, "a")
	if s.CanUndo() {
		t.Fatalf("cancel of existing edit must not mutate")
	}
}

func TestBeginEditResolvesPriorNewItem(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.Sel.SetSingle(0)
	s.InsertNewItem(model.KindTodo, false)
	// Starting an edit of "a" while the untouched new item is still in
	// editing state discards the new item first.
	s.BeginEdit("a")
	wantTitles(t, s.Items, "a")
	if id, _, ok := s.Editing(); !ok || id != "a" {
		t.Fatalf("expected editing a, got %q ok=%v", id, ok)
	}
}

func TestLoadDropsAllTransientState(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.Sel.SetSingle(0)
	s.InsertNewItem(model.KindTodo, false)
	s.Load(
		[]model.Item{todo("x", "x", 0)},
		[]model.Item{todo("z", "z", 0)},
	)
	if _, _, ok := s.Editing(); ok {
		t.Fatalf("load must abort the edit session")
	}
	if s.Sel.Active != -1 || len(s.Sel.Selected) != 0 {
		t.Fatalf("load must reset selection")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatalf("load must clear history")
	}
	if !s.Archived[0].Checked {
		t.Fatalf("archive items are forced checked on load")
	}
}
