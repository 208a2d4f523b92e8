package outline

import (
	"testing"

	"plane-cli/internal/model"
)

func TestIndentThenOutdentRestores(t *testing.T) {
	s := newTestSession(
		todo("p", "p", 0),
		todo("x", "x", 0),
	)
	s.Sel.SetSingle(1)
	s.Indent(+1)
	if s.Items[1].Indent != 1 {
		t.Fatalf("indent = %d, want 1", s.Items[1].Indent)
	}
	s.Indent(-1)
	if s.Items[1].Indent != 0 {
		t.Fatalf("indent after round trip = %d, want 0", s.Items[1].Indent)
	}
}

func TestIndentRejectsOrphan(t *testing.T) {
	s := newTestSession(
		heading("h", "H"),
		todo("x", "x", 0),
		todo("y", "y", 0),
	)
	// First item of the list.
	s2 := newTestSession(todo("x", "x", 0))
	s2.Sel.SetSingle(0)
	s2.Indent(+1)
	if s2.Items[0].Indent != 0 {
		t.Fatalf("top item must not indent")
	}
	// Directly after a heading.
	s.Sel.SetSingle(1)
	s.Indent(+1)
	if s.Items[1].Indent != 0 {
		t.Fatalf("section-leading item must not indent")
	}
	// Second item of the section may.
	s.Sel.SetSingle(2)
	s.Indent(+1)
	if s.Items[2].Indent != 1 {
		t.Fatalf("second item should indent")
	}
	assertNoOrphans(t, s.Items)
}

func TestIndentIsNotBlockAware(t *testing.T) {
	s := newTestSession(
		todo("a", "a", 0),
		todo("p", "p", 0),
		todo("c", "c", 1),
	)
	s.Sel.SetSingle(1)
	s.Indent(+1)
	// The selected parent moved under "a"; its unselected child kept
	// indent 1 and now belongs to the same family.
	if s.Items[1].Indent != 1 || s.Items[2].Indent != 1 {
		t.Fatalf("indents = %d,%d, want 1,1", s.Items[1].Indent, s.Items[2].Indent)
	}
}

func TestIndentHeadingNoOp(t *testing.T) {
	s := newTestSession(heading("h", "H"), todo("x", "x", 0))
	s.Sel.SetSingle(0)
	s.Indent(+1)
	if s.Items[0].Indent != 0 {
		t.Fatalf("heading must stay at indent 0")
	}
	if s.CanUndo() {
		t.Fatalf("pure no-op must not record history")
	}
}

func TestMoveParentBlockPastParentBlock(t *testing.T) {
	s := newTestSession(
		todo("p1", "p1", 0),
		todo("c1", "c1", 1),
		todo("p2", "p2", 0),
		todo("c2", "c2", 1),
	)
	s.Sel.SetSingle(2)
	s.Move(MoveUp)
	wantTitles(t, s.Items, "p2", "c2", "p1", "c1")
	// Selection follows the moved block by ID.
	if it, ok := s.ActiveItem(); !ok || it.ID != "p2" {
		t.Fatalf("active item should still be p2")
	}
	assertNoOrphans(t, s.Items)

	s.Move(MoveDown)
	wantTitles(t, s.Items, "p1", "c1", "p2", "c2")
}

func TestMoveChildOnlySwapsWithSibling(t *testing.T) {
	s := newTestSession(
		todo("p", "p", 0),
		todo("c1", "c1", 1),
		todo("c2", "c2", 1),
		todo("q", "q", 0),
	)
	s.Sel.SetSingle(2)
	s.Move(MoveDown) // next item is a parent: no-op
	wantTitles(t, s.Items, "p", "c1", "c2", "q")

	s.Move(MoveUp)
	wantTitles(t, s.Items, "p", "c2", "c1", "q")

	s.Sel.SetSingle(1)
	s.Move(MoveUp) // would cross above its parent: no-op
	wantTitles(t, s.Items, "p", "c2", "c1", "q")
}

func TestMoveTaskHopsHeadingIntoAdjacentSection(t *testing.T) {
	s := newTestSession(
		heading("h1", "H1"),
		todo("x", "x", 0),
		heading("h2", "H2"),
		todo("y", "y", 0),
	)
	s.Sel.SetSingle(1)
	s.Move(MoveDown)
	wantTitles(t, s.Items, "H1", "H2", "x", "y")

	s.Move(MoveUp)
	wantTitles(t, s.Items, "H1", "x", "H2", "y")
}

func TestMoveHeadingSwapsWholeSections(t *testing.T) {
	s := newTestSession(
		heading("h1", "H1"),
		todo("x", "x", 0),
		heading("h2", "H2"),
		todo("y", "y", 0),
		todo("z", "z", 1),
	)
	s.Sel.SetSingle(2)
	s.Move(MoveUp)
	wantTitles(t, s.Items, "H2", "y", "z", "H1", "x")
	s.Move(MoveDown)
	wantTitles(t, s.Items, "H1", "x", "H2", "y", "z")
}

func TestMoveDownBlockedByArchiveSentinel(t *testing.T) {
	s := newTestSession(
		todo("x", "x", 0),
		heading("arch", model.ArchiveTitle),
	)
	s.Sel.SetSingle(0)
	s.Move(MoveDown)
	wantTitles(t, s.Items, "x", model.ArchiveTitle)
	if s.CanUndo() {
		t.Fatalf("rejected move must not record history")
	}
}

func TestMoveMultiAtTopIsNoOp(t *testing.T) {
	s := newTestSession(
		todo("a", "A", 0),
		todo("b", "B", 1),
	)
	s.Sel.Toggle(s.Items, 0)
	s.Sel.Toggle(s.Items, 1)
	s.Move(MoveUp)
	wantTitles(t, s.Items, "A", "B")
	if s.CanUndo() {
		t.Fatalf("no-op move must not record history")
	}
}

func TestMoveMultiNonContiguousIsNoOp(t *testing.T) {
	s := newTestSession(
		todo("a", "a", 0),
		todo("b", "b", 0),
		todo("c", "c", 0),
	)
	s.Sel.Toggle(s.Items, 0)
	s.Sel.Toggle(s.Items, 2)
	s.Move(MoveDown)
	wantTitles(t, s.Items, "a", "b", "c")
}

func TestMoveMultiContiguousRun(t *testing.T) {
	s := newTestSession(
		todo("a", "a", 0),
		todo("b", "b", 0),
		todo("c", "c", 1),
		todo("d", "d", 0),
	)
	// Selecting b expands to its child c; the run b..c moves past d.
	s.Sel.Toggle(s.Items, 1)
	s.Sel.Toggle(s.Items, 3)
	s.Move(MoveUp)
	wantTitles(t, s.Items, "b", "c", "d", "a")
	assertNoOrphans(t, s.Items)
}
