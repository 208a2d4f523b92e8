package outline

import "plane-cli/internal/model"

// MoveToNextHeading relocates every effective-selection block to just
// inside the following section (directly after the next heading). An item
// whose next heading is the Archive sentinel is skipped: items cannot enter
// the archive this way. When every candidate is skipped the operation is a
// pure no-op and leaves no history entry.
func (s *Session) MoveToNextHeading() { s.moveToHeading(MoveDown) }

// MoveToPrevHeading relocates every effective-selection block to just
// inside the previous section (directly after the second-nearest heading
// above, or the top of the preamble when the item sits under the first
// heading). Items with no heading above are already in the first section
// and are skipped.
func (s *Session) MoveToPrevHeading() { s.moveToHeading(MoveUp) }

func (s *Session) moveToHeading(dir Direction) {
	eff := CollectEffectiveSelection(s.Items, s.Sel.Selected, true)
	if len(eff) == 0 {
		return
	}
	// Track blocks by root ID: each relocation shifts every other index,
	// so positions are re-derived per iteration. Processing bottom-up keeps
	// the document-order of the moved items stable relative to each other.
	ids := make([]string, 0, len(eff))
	for k := len(eff) - 1; k >= 0; k-- {
		ids = append(ids, s.Items[eff[k]].ID)
	}

	cap := s.Sel.Capture(s.Items)
	moved := false
	for _, id := range ids {
		i := indexByID(s.Items, id)
		if i < 0 {
			continue
		}
		n := BlockLen(s.Items, i)
		target, ok := s.headingTarget(i, n, dir)
		if !ok {
			continue
		}
		if !moved {
			// Snapshot lazily: a run where every candidate is skipped must
			// not leave a dangling undo entry.
			s.hist.save(s.Items, s.Archived)
			moved = true
		}
		block := model.CloneItems(s.Items[i : i+n])
		// A lone child leaves its parent's section and becomes a parent.
		if n == 1 && !block[0].IsHeading() && block[0].Indent == 1 {
			block[0].Indent = 0
		}
		s.Items = append(s.Items[:i], s.Items[i+n:]...)
		if target > i {
			target -= n
		}
		s.insertAt(target, block)
	}
	if !moved {
		return
	}
	s.Sel.Restore(s.Items, cap)
	s.Sel.Validate(s.Items)
	s.emitChange()
}

// headingTarget computes the insert position for the block [i, i+n), or
// ok=false when the item must be skipped.
func (s *Session) headingTarget(i, n int, dir Direction) (int, bool) {
	switch dir {
	case MoveDown:
		h := NextHeading(s.Items, i+n)
		if h < 0 || s.Items[h].IsArchiveSentinel() {
			return 0, false
		}
		return h + 1, true
	case MoveUp:
		h1 := PrevHeading(s.Items, i)
		if h1 < 0 {
			return 0, false
		}
		if h0 := PrevHeading(s.Items, h1); h0 >= 0 {
			return h0 + 1, true
		}
		return 0, true // top of the preamble
	}
	return 0, false
}

func indexByID(list []model.Item, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
