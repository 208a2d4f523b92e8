package outline

import "plane-cli/internal/model"

// Copy fills the shared clipboard buffer with the effective selection, each
// item expanded to its full block. Clones keep their IDs; paste reissues
// them. The buffer is overwritten on every call.
func (s *Session) Copy() {
	buf := s.copySelectionBlocks()
	if len(buf) == 0 {
		return
	}
	s.clipboard = buf
	s.notify("Copied", IconCopy)
}

// Cut is Copy followed by Delete; the deletion's own notification is
// suppressed in favor of a single "Cut".
func (s *Session) Cut() {
	buf := s.copySelectionBlocks()
	if len(buf) == 0 {
		return
	}
	s.clipboard = buf
	s.deleteSelected(false)
	s.notify("Cut", IconCut)
}

func (s *Session) copySelectionBlocks() []model.Item {
	eff := CollectEffectiveSelection(s.Items, s.Sel.Selected, true)
	var out []model.Item
	for _, i := range eff {
		out = append(out, model.CloneItems(Block(s.Items, i))...)
	}
	return out
}

// Paste inserts clipboard clones (fresh IDs every paste) after the active
// item's block, or at the list end when nothing is focused. The insert
// position never crosses the Archive sentinel, and a leading child with no
// qualifying parent above the insert point is repaired to indent 0.
func (s *Session) Paste() {
	if len(s.clipboard) == 0 {
		return
	}
	s.hist.save(s.Items, s.Archived)
	pos := s.insertPosAfterActive()
	clones := model.ReissueIDs(s.clipboard)
	if clones[0].Indent == 1 && !HasAncestorParentInSection(s.Items, pos) {
		clones[0].Indent = 0
	}
	s.insertAt(pos, clones)
	s.selectRange(pos, len(clones))
	s.notify("Pasted", IconPaste)
	s.emitChange()
}

// Duplicate clones the effective-selection blocks with fresh IDs, inserts
// them after the last selected item's block, and selects the copies.
func (s *Session) Duplicate() {
	eff := CollectEffectiveSelection(s.Items, s.Sel.Selected, true)
	if len(eff) == 0 {
		return
	}
	var buf []model.Item
	for _, i := range eff {
		buf = append(buf, Block(s.Items, i)...)
	}
	last := eff[len(eff)-1]
	pos := last + BlockLen(s.Items, last)
	pos = s.clampToSentinel(pos)

	s.hist.save(s.Items, s.Archived)
	clones := model.ReissueIDs(buf)
	s.insertAt(pos, clones)
	s.selectRange(pos, len(clones))
	s.notify("Duplicated", IconDuplicate)
	s.emitChange()
}

// insertPosAfterActive computes the paste position: after the active
// parent's block (children included), directly after any other active item,
// or at the list end, clamped to before the Archive sentinel.
func (s *Session) insertPosAfterActive() int {
	pos := len(s.Items)
	if a := s.Sel.Active; a >= 0 && a < len(s.Items) {
		it := s.Items[a]
		if !it.IsHeading() && it.Indent == 0 {
			pos = a + 1 + ChildCount(s.Items, a)
		} else {
			pos = a + 1
		}
	}
	return s.clampToSentinel(pos)
}

func (s *Session) clampToSentinel(pos int) int {
	if sIdx := ArchiveSentinelIndex(s.Items); sIdx >= 0 && pos > sIdx {
		pos = sIdx
	}
	if pos > len(s.Items) {
		pos = len(s.Items)
	}
	return pos
}

func (s *Session) insertAt(pos int, items []model.Item) {
	out := make([]model.Item, 0, len(s.Items)+len(items))
	out = append(out, s.Items[:pos]...)
	out = append(out, items...)
	out = append(out, s.Items[pos:]...)
	s.Items = out
}

// selectRange selects [pos, pos+n) with the first item focused.
func (s *Session) selectRange(pos, n int) {
	sel := map[int]bool{}
	for i := pos; i < pos+n && i < len(s.Items); i++ {
		sel[i] = true
	}
	s.Sel.Selected = sel
	s.Sel.Active = pos
	s.Sel.Anchor = pos
	s.Sel.Validate(s.Items)
}
