package outline

import (
	"sort"

	"plane-cli/internal/model"
)

// Archive moves the effective-selection blocks out of the active list into
// the archive list, newest first: the whole group is prepended at the head
// of the archive in document order. Archived items are forced checked;
// indent is preserved. The cursor then repositions with the same rule table
// as Delete.
func (s *Session) Archive() {
	eff := CollectEffectiveSelection(s.Items, s.Sel.Selected, true)
	if len(eff) == 0 {
		return
	}
	kinds := classifyRoots(eff, probes(s))

	targets := map[int]bool{}
	for _, i := range eff {
		for k := i; k < i+BlockLen(s.Items, i); k++ {
			targets[k] = true
		}
	}
	s.hist.save(s.Items, s.Archived)

	idx := make([]int, 0, len(targets))
	for i := range targets {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	group := make([]model.Item, 0, len(idx))
	for _, i := range idx {
		it := s.Items[i]
		it.Checked = true
		group = append(group, it)
	}

	removed := s.removeIndices(targets)
	s.Archived = append(group, s.Archived...)
	s.repositionAfterRemoval(removed, kinds)
	s.ArchiveSel.Clear()
	s.notify(countMessage(len(group), "archived"), IconArchive)
	s.emitChange()
}

// Restore moves the selected archive items back to the end of the active
// list. A selected parent brings all its children; a selected child brings
// its whole family (parent plus every sibling); an orphaned child with no
// parent above restores alone. Restored items are forced unchecked.
func (s *Session) Restore() {
	roots := s.ArchiveSel.SortedIndices()
	if len(roots) == 0 {
		return
	}

	// Expand each selected index to its family and dedupe: a parent and
	// one of its children selected together restore once.
	targets := map[int]bool{}
	for _, i := range roots {
		if i < 0 || i >= len(s.Archived) {
			continue
		}
		for _, k := range archiveFamily(s.Archived, i) {
			targets[k] = true
		}
	}
	if len(targets) == 0 {
		return
	}
	s.hist.save(s.Items, s.Archived)

	idx := make([]int, 0, len(targets))
	for i := range targets {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	moved := make([]model.Item, 0, len(idx))
	for _, i := range idx {
		it := s.Archived[i]
		it.Checked = false
		moved = append(moved, it)
	}
	for k := len(idx) - 1; k >= 0; k-- {
		i := idx[k]
		s.Archived = append(s.Archived[:i], s.Archived[i+1:]...)
	}

	// Append, but never past an Archive sentinel typed into the active list.
	pos := s.clampToSentinel(len(s.Items))
	s.insertAt(pos, moved)
	// An orphan child restored alone would lead its section; promote it.
	RepairOrphans(s.Items)
	s.selectRange(pos, len(moved))
	s.ArchiveSel.Clear()
	s.notify(countMessage(len(moved), "restored"), IconRestore)
	s.emitChange()
}

// archiveFamily resolves the full restore unit for the archive item at i:
// the owning parent (walking up when i is a child) plus all its contiguous
// children. The archive has no headings, so the walk only stops at the list
// head.
func archiveFamily(list []model.Item, i int) []int {
	root := i
	if list[i].Indent == 1 {
		p := -1
		for k := i - 1; k >= 0; k-- {
			if list[k].Indent == 0 {
				p = k
				break
			}
		}
		if p < 0 {
			return []int{i} // orphan restores alone
		}
		root = p
	}
	out := []int{root}
	for k := root + 1; k < len(list); k++ {
		if list[k].Indent != 1 {
			break
		}
		out = append(out, k)
	}
	return out
}
