package model

import (
	"strings"
	"testing"
)

func TestNewItemID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewItemID()
		if !strings.HasPrefix(id, "item-") {
			t.Fatalf("id missing prefix: %q", id)
		}
		if len(id) != len("item-")+8 {
			t.Fatalf("unexpected id length: %q", id)
		}
		if id != strings.ToLower(id) {
			t.Fatalf("id not lowercase: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %q", id)
		}
		seen[id] = true
	}
}

func TestClampIndent(t *testing.T) {
	if got := ClampIndent(KindHeading, 1); got != 0 {
		t.Fatalf("heading indent = %d, want 0", got)
	}
	if got := ClampIndent(KindTodo, -3); got != 0 {
		t.Fatalf("negative indent = %d, want 0", got)
	}
	if got := ClampIndent(KindTodo, 5); got != 1 {
		t.Fatalf("deep indent = %d, want 1", got)
	}
	if got := ClampIndent(KindTodo, 1); got != 1 {
		t.Fatalf("indent 1 = %d, want 1", got)
	}
}

func TestArchiveSentinel(t *testing.T) {
	if !(Item{Kind: KindHeading, Title: "Archive"}).IsArchiveSentinel() {
		t.Fatalf("expected sentinel")
	}
	if (Item{Kind: KindHeading, Title: "archive"}).IsArchiveSentinel() {
		t.Fatalf("title match must be exact")
	}
	if (Item{Kind: KindTodo, Title: "Archive"}).IsArchiveSentinel() {
		t.Fatalf("todos are never sentinels")
	}
}

func TestCloneAndReissue(t *testing.T) {
	src := []Item{NewHeading("H"), NewTodo("a", 0), NewTodo("b", 1)}

	clone := CloneItems(src)
	if len(clone) != len(src) {
		t.Fatalf("clone length %d, want %d", len(clone), len(src))
	}
	clone[1].Title = "changed"
	if src[1].Title != "a" {
		t.Fatalf("clone shares backing array with source")
	}

	fresh := ReissueIDs(src)
	for i := range fresh {
		if fresh[i].ID == src[i].ID {
			t.Fatalf("reissued item %d kept old id", i)
		}
		if fresh[i].Title != src[i].Title || fresh[i].Indent != src[i].Indent {
			t.Fatalf("reissue changed content at %d", i)
		}
	}
}
