package outline

import (
	"fmt"
	"testing"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	s := newTestSession(
		todo("a", "a", 0),
		todo("b", "b", 0),
	)
	s.Sel.SetSingle(0)
	s.Delete()
	wantTitles(t, s.Items, "b")
	s.Undo()
	wantTitles(t, s.Items, "a", "b")
	s.Redo()
	wantTitles(t, s.Items, "b")
	s.Undo()
	wantTitles(t, s.Items, "a", "b")
}

func TestUndoSequenceRestoresInitialState(t *testing.T) {
	s := newTestSession(
		todo("a", "a", 0),
		todo("b", "b", 0),
		todo("c", "c", 0),
	)
	ops := 0
	for i := 0; i < 3; i++ {
		s.Sel.SetSingle(0)
		s.Archive()
		ops++
	}
	if len(s.Items) != 0 || len(s.Archived) != 3 {
		t.Fatalf("setup failed: %v / %v", titles(s.Items), titles(s.Archived))
	}
	for i := 0; i < ops; i++ {
		s.Undo()
	}
	wantTitles(t, s.Items, "a", "b", "c")
	if len(s.Archived) != 0 {
		t.Fatalf("archive not restored: %v", titles(s.Archived))
	}
}

func TestNewMutationClearsRedo(t *testing.T) {
	s := newTestSession(todo("a", "a", 0), todo("b", "b", 0))
	s.Sel.SetSingle(0)
	s.Delete()
	s.Undo()
	if !s.CanRedo() {
		t.Fatalf("expected redo after undo")
	}
	s.Sel.SetSingle(1)
	s.Delete()
	if s.CanRedo() {
		t.Fatalf("new mutation must clear the redo stack")
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	s := newTestSession()
	for i := 0; i < historyCap+10; i++ {
		s.hist.save(s.Items, s.Archived)
		s.Items = append(s.Items, todo(fmt.Sprintf("id%d", i), fmt.Sprintf("t%d", i), 0))
	}
	if len(s.hist.past) != historyCap {
		t.Fatalf("past = %d entries, want %d", len(s.hist.past), historyCap)
	}
	for s.CanUndo() {
		s.Undo()
	}
	// Only the last historyCap states are recoverable.
	if len(s.Items) != 10 {
		t.Fatalf("deepest recoverable state has %d items, want 10", len(s.Items))
	}
}

func TestUndoRevalidatesSelection(t *testing.T) {
	s := newTestSession(todo("a", "a", 0))
	s.Sel.SetSingle(0)
	s.Duplicate()
	s.Sel.SetSingle(1)
	s.Undo() // back to a single item; active index 1 is out of range
	if s.Sel.Active != 0 {
		t.Fatalf("active = %d, want clamped 0", s.Sel.Active)
	}
	got := s.Sel.SortedIndices()
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("selection = %v, want singleton [0]", got)
	}
}

func TestSaveGuardedWhileApplying(t *testing.T) {
	var h history
	h.applying = true
	h.save(nil, nil)
	if len(h.past) != 0 {
		t.Fatalf("save must be a no-op while applying")
	}
}
