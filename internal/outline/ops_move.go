package outline

// Direction of a structural move.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Move relocates the active block (or a contiguous multi-selection) past
// the adjacent block in the given direction.
//
// Block pairing rules:
//   - a child swaps only with an adjacent child; it never crosses into its
//     parent or out of its family;
//   - a parent block (parent + children) swaps with the adjacent parent
//     block, or hops over a lone heading line into the neighboring section;
//   - a heading block (heading + section) swaps with the whole adjacent
//     section.
//
// Moving down is rejected when the adjacent block is, or contains, the
// Archive sentinel heading. All rejections are silent no-ops.
func (s *Session) Move(dir Direction) {
	if dir != MoveUp && dir != MoveDown {
		return
	}
	if len(s.Sel.Selected) > 1 {
		s.moveMulti(dir)
		return
	}
	i := s.Sel.Active
	if i < 0 || i >= len(s.Items) {
		return
	}
	it := s.Items[i]
	if !it.IsHeading() && it.Indent == 1 {
		s.moveChild(i, dir)
		return
	}
	s.moveBlock(i, BlockLen(s.Items, i), it.IsHeading(), dir)
}

// moveChild swaps a lone child with the adjacent child. Any other neighbor
// (its parent, a heading, the list edge) blocks the move.
func (s *Session) moveChild(i int, dir Direction) {
	j := i - 1
	if dir == MoveDown {
		j = i + 1
	}
	if j < 0 || j >= len(s.Items) {
		return
	}
	n := s.Items[j]
	if n.IsHeading() || n.Indent != 1 {
		return
	}
	s.hist.save(s.Items, s.Archived)
	cap := s.Sel.Capture(s.Items)
	s.Items[i], s.Items[j] = s.Items[j], s.Items[i]
	s.Sel.Restore(s.Items, cap)
	s.Sel.Validate(s.Items)
	s.emitChange()
}

// moveBlock swaps the run [start, start+length) with the adjacent block.
// asHeading selects the section-level pairing rules.
func (s *Session) moveBlock(start, length int, asHeading bool, dir Direction) {
	if length <= 0 || start < 0 || start+length > len(s.Items) {
		return
	}
	var aStart, aLen, bStart, bLen int
	switch dir {
	case MoveUp:
		if start == 0 {
			return
		}
		prevStart, prevLen := s.blockAbove(start, asHeading)
		if prevLen <= 0 {
			return
		}
		aStart, aLen = prevStart, prevLen
		bStart, bLen = start, length
	case MoveDown:
		j := start + length
		if j >= len(s.Items) {
			return
		}
		nextLen := s.blockBelow(j, asHeading)
		for k := j; k < j+nextLen; k++ {
			if s.Items[k].IsArchiveSentinel() {
				return
			}
		}
		aStart, aLen = start, length
		bStart, bLen = j, nextLen
	}
	s.hist.save(s.Items, s.Archived)
	cap := s.Sel.Capture(s.Items)
	swapAdjacent(s.Items, aStart, aLen, bStart, bLen)
	s.Sel.Restore(s.Items, cap)
	s.Sel.Validate(s.Items)
	s.emitChange()
}

// blockAbove finds the block ending directly above start. For a heading
// mover the partner is the entire previous section (or the preamble before
// the first heading); for a task mover a heading line above is hopped over
// alone, which carries the task into the previous section.
func (s *Session) blockAbove(start int, asHeading bool) (int, int) {
	if asHeading {
		if h := PrevHeading(s.Items, start); h >= 0 {
			return h, start - h
		}
		return 0, start // preamble run
	}
	j := start - 1
	if s.Items[j].IsHeading() {
		return j, 1
	}
	if s.Items[j].Indent == 1 {
		if p := ParentIndex(s.Items, j); p >= 0 {
			return p, start - p
		}
	}
	return j, start - j
}

// blockBelow measures the block starting at j, from the mover's point of
// view: a task mover hops over a heading line alone, everything else swaps
// with the full block.
func (s *Session) blockBelow(j int, asHeading bool) int {
	if s.Items[j].IsHeading() && !asHeading {
		return 1
	}
	return BlockLen(s.Items, j)
}

// moveMulti moves a multi-selection as one run. The selection is expanded
// with the children of every selected parent and must then be contiguous;
// a run led by a child that still has a parent above is ambiguous ownership
// and blocks the whole move.
func (s *Session) moveMulti(dir Direction) {
	expanded := map[int]bool{}
	for i := range s.Sel.Selected {
		if i < 0 || i >= len(s.Items) {
			continue
		}
		expanded[i] = true
		for c := 0; c < ChildCount(s.Items, i); c++ {
			expanded[i+1+c] = true
		}
	}
	if len(expanded) == 0 {
		return
	}
	lo, hi := -1, -1
	for i := range expanded {
		if lo < 0 || i < lo {
			lo = i
		}
		if i > hi {
			hi = i
		}
	}
	if hi-lo+1 != len(expanded) {
		return
	}
	first := s.Items[lo]
	if !first.IsHeading() && first.Indent == 1 && ParentIndex(s.Items, lo) >= 0 {
		return
	}
	s.moveBlock(lo, hi-lo+1, first.IsHeading(), dir)
}

// swapAdjacent exchanges two touching runs [aStart,aStart+aLen) and
// [bStart,bStart+bLen), a before b.
func swapAdjacent[T any](list []T, aStart, aLen, bStart, bLen int) {
	if aStart+aLen != bStart {
		return
	}
	tmp := make([]T, 0, aLen+bLen)
	tmp = append(tmp, list[bStart:bStart+bLen]...)
	tmp = append(tmp, list[aStart:aStart+aLen]...)
	copy(list[aStart:aStart+aLen+bLen], tmp)
}
