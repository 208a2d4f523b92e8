package outline

// Indent shifts the indent of every selected item by delta (+1 or -1).
// Headings never move. An increase is rejected per item when the item is at
// the top of the list or sits directly under a heading, which would orphan
// a child at the start of its section. The operation is not block-aware: a
// selected parent's unselected children keep their indent, so outdenting a
// parent can promote its former children to parents of their own.
func (s *Session) Indent(delta int) {
	if delta == 0 {
		return
	}
	idx := s.Sel.SortedIndices()
	var apply []int
	for _, i := range idx {
		if i < 0 || i >= len(s.Items) {
			continue
		}
		it := s.Items[i]
		if it.IsHeading() {
			continue
		}
		next := it.Indent + delta
		if next < 0 || next > 1 {
			continue
		}
		if delta > 0 && (i == 0 || s.Items[i-1].IsHeading()) {
			continue
		}
		apply = append(apply, i)
	}
	if len(apply) == 0 {
		return
	}
	s.hist.save(s.Items, s.Archived)
	for _, i := range apply {
		s.Items[i].Indent += delta
	}
	s.emitChange()
}
