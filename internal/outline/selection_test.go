package outline

import (
	"testing"

	"plane-cli/internal/model"
)

func selectionFixture() []model.Item {
	return []model.Item{
		todo("a", "a", 0),
		todo("b", "b", 0),
		heading("h", "H"),
		todo("c", "c", 0),
		todo("d", "d", 0),
	}
}

func TestExtendKeyboardCrossesHeading(t *testing.T) {
	list := selectionFixture()
	sel := NewSelection()
	sel.SetSingle(0)
	sel.Extend(list, 4, true)
	if sel.Active != 4 {
		t.Fatalf("active = %d, want 4", sel.Active)
	}
	if sel.Selected[2] {
		t.Fatalf("heading must not join the range")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if !sel.Selected[i] {
			t.Fatalf("index %d missing from range: %v", i, sel.SortedIndices())
		}
	}
}

func TestExtendMouseStopsAtHeading(t *testing.T) {
	list := selectionFixture()
	sel := NewSelection()
	sel.SetSingle(0)
	sel.Extend(list, 4, false)
	// Drag stops before crossing into the next section.
	if sel.Active != 1 {
		t.Fatalf("active = %d, want 1 (truncated endpoint)", sel.Active)
	}
	got := sel.SortedIndices()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("selection = %v, want [0 1]", got)
	}
}

func TestToggleHeadingForcesSingle(t *testing.T) {
	list := selectionFixture()
	sel := NewSelection()
	sel.SetSingle(0)
	sel.Toggle(list, 1)
	sel.Toggle(list, 2) // heading
	got := sel.SortedIndices()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("selection = %v, want [2]", got)
	}
}

func TestToggleRemoveClearsActive(t *testing.T) {
	list := selectionFixture()
	sel := NewSelection()
	sel.Toggle(list, 0)
	sel.Toggle(list, 3)
	if sel.Active != 3 {
		t.Fatalf("active = %d, want 3", sel.Active)
	}
	sel.Toggle(list, 3)
	if sel.Active != -1 {
		t.Fatalf("removing the active index must clear active, got %d", sel.Active)
	}
	if !sel.Selected[0] || sel.Selected[3] {
		t.Fatalf("selection = %v, want [0]", sel.SortedIndices())
	}
}

func TestCaptureRestoreSurvivesReorder(t *testing.T) {
	list := selectionFixture()
	sel := NewSelection()
	sel.Toggle(list, 0)
	sel.Toggle(list, 3)
	cap := sel.Capture(list)

	// Reverse the list and drop item "c" (index 3).
	reordered := []model.Item{list[4], list[1], list[0], list[2]}
	sel.Restore(reordered, cap)
	got := sel.SortedIndices()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("selection = %v, want [2] (item a)", got)
	}
	// Active item "c" is gone; active keeps its last value for the caller
	// to validate.
	sel.Validate(reordered)
	if sel.Active != 3 {
		t.Fatalf("active = %d, want 3 (stale but in range)", sel.Active)
	}
}

func TestValidateResetsOutOfRange(t *testing.T) {
	list := selectionFixture()
	sel := NewSelection()
	sel.SetSingle(4)
	sel.Validate(list[:2])
	if sel.Active != -1 || len(sel.Selected) != 0 {
		t.Fatalf("expected empty selection after validate, got active=%d sel=%v", sel.Active, sel.SortedIndices())
	}
}
