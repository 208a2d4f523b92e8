package outline

import (
	"testing"

	"plane-cli/internal/model"
)

// Test fixtures. IDs are deterministic so failures read well.

func heading(id, title string) model.Item {
	return model.Item{ID: id, Kind: model.KindHeading, Title: title}
}

func todo(id, title string, indent int) model.Item {
	return model.Item{ID: id, Kind: model.KindTodo, Title: title, Indent: indent}
}

func newTestSession(items ...model.Item) *Session {
	s := NewSession()
	s.Items = model.CloneItems(items)
	return s
}

func titles(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func wantTitles(t *testing.T, got []model.Item, want ...string) {
	t.Helper()
	g := titles(got)
	if len(g) != len(want) {
		t.Fatalf("titles = %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("titles = %v, want %v", g, want)
		}
	}
}

// assertNoOrphans checks the structural invariant: no indent-1 todo is the
// first item of its section.
func assertNoOrphans(t *testing.T, list []model.Item) {
	t.Helper()
	for i, it := range list {
		if it.IsHeading() || it.Indent == 0 {
			continue
		}
		if !HasAncestorParentInSection(list, i) {
			t.Fatalf("orphan child %q at %d: %v", it.Title, i, titles(list))
		}
	}
}

func TestChildCount(t *testing.T) {
	list := []model.Item{
		heading("h1", "H"),
		todo("p1", "p", 0),
		todo("c1", "c1", 1),
		todo("c2", "c2", 1),
		todo("p2", "q", 0),
	}
	if got := ChildCount(list, 1); got != 2 {
		t.Fatalf("ChildCount(parent) = %d, want 2", got)
	}
	if got := ChildCount(list, 0); got != 0 {
		t.Fatalf("ChildCount(heading) = %d, want 0", got)
	}
	if got := ChildCount(list, 2); got != 0 {
		t.Fatalf("ChildCount(child) = %d, want 0", got)
	}
	if got := ChildCount(list, 4); got != 0 {
		t.Fatalf("ChildCount(childless) = %d, want 0", got)
	}
	if got := ChildCount(list, 99); got != 0 {
		t.Fatalf("ChildCount(out of range) = %d, want 0", got)
	}
}

func TestBlockLen(t *testing.T) {
	list := []model.Item{
		heading("h1", "H"),
		todo("p1", "p", 0),
		todo("c1", "c1", 1),
		heading("h2", "G"),
		todo("p2", "q", 0),
	}
	if got := BlockLen(list, 0); got != 3 {
		t.Fatalf("heading block = %d, want 3", got)
	}
	if got := BlockLen(list, 1); got != 2 {
		t.Fatalf("parent block = %d, want 2", got)
	}
	if got := BlockLen(list, 2); got != 1 {
		t.Fatalf("child block = %d, want 1", got)
	}
	if got := BlockLen(list, 3); got != 2 {
		t.Fatalf("tail heading block = %d, want 2", got)
	}
}

func TestHasAncestorParentInSection(t *testing.T) {
	list := []model.Item{
		todo("p0", "pre", 0),
		heading("h1", "H"),
		todo("p1", "p", 0),
		todo("c1", "c", 1),
	}
	if HasAncestorParentInSection(list, 2) {
		t.Fatalf("position directly after heading must have no ancestor")
	}
	if !HasAncestorParentInSection(list, 3) {
		t.Fatalf("position after parent must have ancestor")
	}
	if !HasAncestorParentInSection(list, 1) {
		t.Fatalf("preamble position after parent must have ancestor")
	}
	if HasAncestorParentInSection(list, 0) {
		t.Fatalf("list head has no ancestor")
	}
}

func TestCollectEffectiveSelection(t *testing.T) {
	list := []model.Item{
		heading("h1", "H"),
		todo("p1", "p", 0),
		todo("c1", "c1", 1),
		todo("c2", "c2", 1),
		todo("p2", "q", 0),
	}
	sel := map[int]bool{0: true, 1: true, 2: true, 4: true, 77: true}
	got := CollectEffectiveSelection(list, sel, true)
	// Heading dropped, child dropped (parent selected), bogus index dropped.
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("effective selection = %v, want [1 4]", got)
	}

	// With the parent unselected the child survives.
	got = CollectEffectiveSelection(list, map[int]bool{2: true, 3: true}, true)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("effective selection = %v, want [2 3]", got)
	}
}

func TestRepairOrphans(t *testing.T) {
	list := []model.Item{
		heading("h1", "H"),
		todo("c1", "stranded", 1),
		todo("p1", "p", 0),
		todo("c2", "owned", 1),
	}
	RepairOrphans(list)
	if list[1].Indent != 0 {
		t.Fatalf("stranded child not promoted")
	}
	if list[3].Indent != 1 {
		t.Fatalf("owned child must keep its indent")
	}
}
