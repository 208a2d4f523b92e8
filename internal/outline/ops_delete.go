package outline

import "sort"

// rootKinds classifies what a removal took out, driving the cursor
// repositioning rules afterwards.
type rootKinds struct {
	heading bool
	parent  bool
	child   bool
}

func classifyRoots(list []int, items []itemKindProbe) rootKinds {
	var k rootKinds
	for _, i := range list {
		if i < 0 || i >= len(items) {
			continue
		}
		switch {
		case items[i].heading:
			k.heading = true
		case items[i].indent == 0:
			k.parent = true
		default:
			k.child = true
		}
	}
	return k
}

type itemKindProbe struct {
	heading bool
	indent  int
}

func probes(s *Session) []itemKindProbe {
	out := make([]itemKindProbe, len(s.Items))
	for i, it := range s.Items {
		out[i] = itemKindProbe{heading: it.IsHeading(), indent: it.Indent}
	}
	return out
}

// Delete removes the selected items together with the children of every
// selected parent, then repositions the cursor:
//
//   - only parents removed: a heading at the landing spot steps the cursor
//     back one;
//   - only children removed: a heading or a parent at the landing spot
//     steps back one, repeatedly, since stepping back can land on another
//     boundary;
//   - a mix of parent and child roots: plain index clamping only.
func (s *Session) Delete() {
	s.deleteSelected(true)
}

// deleteSelected implements Delete; notify=false suppresses the deletion
// notification (Cut emits its own).
func (s *Session) deleteSelected(notify bool) {
	roots := s.Sel.SortedIndices()
	kinds := classifyRoots(roots, probes(s))

	targets := map[int]bool{}
	for _, i := range roots {
		if i < 0 || i >= len(s.Items) {
			continue
		}
		targets[i] = true
		for c := 0; c < ChildCount(s.Items, i); c++ {
			targets[i+1+c] = true
		}
	}
	if len(targets) == 0 {
		return
	}
	s.hist.save(s.Items, s.Archived)
	removed := s.removeIndices(targets)
	s.repositionAfterRemoval(removed, kinds)
	if notify {
		s.notify(countMessage(len(removed), "deleted"), IconDelete)
	}
	s.emitChange()
}

// removeIndices deletes the given indices in descending order (stable under
// removal) and returns them in ascending order.
func (s *Session) removeIndices(targets map[int]bool) []int {
	idx := make([]int, 0, len(targets))
	for i := range targets {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for k := len(idx) - 1; k >= 0; k-- {
		i := idx[k]
		s.Items = append(s.Items[:i], s.Items[i+1:]...)
	}
	return idx
}

// repositionAfterRemoval lands the cursor where the first removed item used
// to be, clamped to the new list, then applies the step-back rule table.
func (s *Session) repositionAfterRemoval(removed []int, kinds rootKinds) {
	if len(s.Items) == 0 || len(removed) == 0 {
		s.Sel.Clear()
		return
	}
	land := removed[0]
	if land > len(s.Items)-1 {
		land = len(s.Items) - 1
	}
	switch {
	case kinds.parent && kinds.child:
		// Mixed removal: simple clamping only.
	case kinds.parent:
		if land >= 0 && s.Items[land].IsHeading() {
			land--
		}
	case kinds.child:
		for land >= 0 {
			it := s.Items[land]
			if it.IsHeading() || it.Indent == 0 {
				land--
				continue
			}
			break
		}
	}
	if land < 0 {
		s.Sel.Clear()
		return
	}
	s.Sel.SetSingle(land)
}
