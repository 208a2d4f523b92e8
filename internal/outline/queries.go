// Package outline implements the in-memory outline engine: a flat ordered
// list of headings, parent tasks and child tasks, a parallel archive list,
// and the structural operations (indent, move, delete, clipboard, archive,
// undo/redo) that keep both lists consistent.
//
// The flat list encodes a two-level hierarchy by position: a section is the
// run of items between two headings, and an indent-1 todo belongs to the
// nearest indent-0 todo above it within its section. All queries below are
// pure functions over that positional encoding.
package outline

import (
	"sort"

	"plane-cli/internal/model"
)

// ChildCount counts the contiguous indent-1 todos immediately following
// parentIndex. It is 0 unless the item at parentIndex is an indent-0 todo.
func ChildCount(list []model.Item, parentIndex int) int {
	if parentIndex < 0 || parentIndex >= len(list) {
		return 0
	}
	p := list[parentIndex]
	if p.IsHeading() || p.Indent != 0 {
		return 0
	}
	n := 0
	for i := parentIndex + 1; i < len(list); i++ {
		if list[i].IsHeading() || list[i].Indent == 0 {
			break
		}
		n++
	}
	return n
}

// BlockLen is the number of items in the block rooted at index:
// a heading owns everything up to the next heading, a parent owns its
// contiguous children, and a child is a block of one.
func BlockLen(list []model.Item, index int) int {
	if index < 0 || index >= len(list) {
		return 0
	}
	it := list[index]
	if it.IsHeading() {
		n := 1
		for i := index + 1; i < len(list); i++ {
			if list[i].IsHeading() {
				break
			}
			n++
		}
		return n
	}
	if it.Indent == 0 {
		return 1 + ChildCount(list, index)
	}
	return 1
}

// Block returns the items of the block rooted at index (shared backing
// array; callers must clone before mutating).
func Block(list []model.Item, index int) []model.Item {
	n := BlockLen(list, index)
	if n == 0 {
		return nil
	}
	return list[index : index+n]
}

// ParentIndex returns the index of the indent-0 todo owning the child at
// childIndex, or -1. The scan stops at a heading: children never reach
// across a section boundary.
func ParentIndex(list []model.Item, childIndex int) int {
	if childIndex < 0 || childIndex >= len(list) {
		return -1
	}
	if list[childIndex].IsHeading() || list[childIndex].Indent != 1 {
		return -1
	}
	for i := childIndex - 1; i >= 0; i-- {
		if list[i].IsHeading() {
			return -1
		}
		if list[i].Indent == 0 {
			return i
		}
	}
	return -1
}

// HasAncestorParentInSection reports whether an item inserted at position
// would have an indent-0 todo above it in its section. Used to decide when
// an inserted child would be orphaned (and must be forced to indent 0).
func HasAncestorParentInSection(list []model.Item, position int) bool {
	if position > len(list) {
		position = len(list)
	}
	for i := position - 1; i >= 0; i-- {
		if list[i].IsHeading() {
			return false
		}
		if list[i].Indent == 0 {
			return true
		}
	}
	return false
}

// IsChildOfSelectedParent reports whether the item at childIndex is a child
// whose owning parent is in selected.
func IsChildOfSelectedParent(list []model.Item, childIndex int, selected map[int]bool) bool {
	p := ParentIndex(list, childIndex)
	return p >= 0 && selected[p]
}

// CollectEffectiveSelection returns the selected indices in ascending order,
// dropping out-of-range entries, optionally dropping headings, and dropping
// any child whose parent is also selected. Block-based operations use this
// so a selected parent carries its children exactly once.
func CollectEffectiveSelection(list []model.Item, selected map[int]bool, excludeHeadings bool) []int {
	var out []int
	for i := range selected {
		if i < 0 || i >= len(list) {
			continue
		}
		if excludeHeadings && list[i].IsHeading() {
			continue
		}
		if IsChildOfSelectedParent(list, i, selected) {
			continue
		}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// NextHeading returns the index of the first heading at or after from,
// or -1.
func NextHeading(list []model.Item, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(list); i++ {
		if list[i].IsHeading() {
			return i
		}
	}
	return -1
}

// PrevHeading returns the index of the nearest heading strictly above from,
// or -1.
func PrevHeading(list []model.Item, from int) int {
	if from > len(list) {
		from = len(list)
	}
	for i := from - 1; i >= 0; i-- {
		if list[i].IsHeading() {
			return i
		}
	}
	return -1
}

// ArchiveSentinelIndex returns the index of the "Archive" heading in the
// active list, or -1. The active list normally never contains one (the
// archive lives in a separate list), but users can type such a heading,
// and every structural mutation must refuse to place items after it.
func ArchiveSentinelIndex(list []model.Item) int {
	for i := range list {
		if list[i].IsArchiveSentinel() {
			return i
		}
	}
	return -1
}

// RepairOrphans clamps any child that has no parent above it in its section
// to indent 0. Applied on load and after inserts that may strand a child at
// the start of a section.
func RepairOrphans(list []model.Item) {
	for i := range list {
		list[i].Indent = model.ClampIndent(list[i].Kind, list[i].Indent)
		if list[i].Indent == 1 && !HasAncestorParentInSection(list, i) {
			list[i].Indent = 0
		}
	}
}
