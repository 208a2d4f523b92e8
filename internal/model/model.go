package model

// ItemKind tags the two outline row shapes. There is no open hierarchy:
// every consumer switches on Kind exhaustively.
type ItemKind string

const (
	KindTodo    ItemKind = "todo"
	KindHeading ItemKind = "heading"
)

// Item is one row of the outline. IDs are stable across reorders; selection
// state tracks items by ID, never by index.
type Item struct {
	ID      string   `json:"id"`
	Kind    ItemKind `json:"kind"`
	Title   string   `json:"title"`
	Indent  int      `json:"indent"` // 0 or 1; headings are always 0
	Checked bool     `json:"checked,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// ArchiveTitle is the reserved heading title that marks the start of the
// archived section in serialized documents. In memory the archive lives in
// a separate list; structural operations treat a heading with this title as
// a hard boundary.
const ArchiveTitle = "Archive"

func (it Item) IsHeading() bool { return it.Kind == KindHeading }

func (it Item) IsArchiveSentinel() bool {
	return it.Kind == KindHeading && it.Title == ArchiveTitle
}

// ClampIndent forces indent into the supported range. Headings never nest.
func ClampIndent(kind ItemKind, indent int) int {
	if kind == KindHeading {
		return 0
	}
	if indent < 0 {
		return 0
	}
	if indent > 1 {
		return 1
	}
	return indent
}

// NewTodo returns an unchecked todo with a fresh ID.
func NewTodo(title string, indent int) Item {
	return Item{
		ID:     NewItemID(),
		Kind:   KindTodo,
		Title:  title,
		Indent: ClampIndent(KindTodo, indent),
	}
}

// NewHeading returns a heading with a fresh ID.
func NewHeading(title string) Item {
	return Item{
		ID:    NewItemID(),
		Kind:  KindHeading,
		Title: title,
	}
}

// CloneItems deep-copies a list, preserving IDs. Items are value types with
// no reference fields, so a copied slice is a full snapshot.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ReissueIDs deep-copies a list and assigns fresh IDs to every item.
// Used by paste and duplicate so repeated insertion never collides.
func ReissueIDs(items []Item) []Item {
	out := CloneItems(items)
	for i := range out {
		out[i].ID = NewItemID()
	}
	return out
}
