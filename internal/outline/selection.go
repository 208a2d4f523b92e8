package outline

import (
	"sort"

	"plane-cli/internal/model"
)

// Selection tracks the focused item and the selected set for one list.
// Indices are only trusted within a single operation; across mutations the
// selection is carried by item ID (Capture/Restore), never by raw index.
type Selection struct {
	Active   int // focused item, -1 none
	Anchor   int // range-selection origin, -1 none
	Selected map[int]bool
}

func NewSelection() Selection {
	return Selection{Active: -1, Anchor: -1, Selected: map[int]bool{}}
}

func (s *Selection) ensure() {
	if s.Selected == nil {
		s.Selected = map[int]bool{}
	}
}

// Clear resets to the empty state.
func (s *Selection) Clear() {
	s.Active = -1
	s.Anchor = -1
	s.Selected = map[int]bool{}
}

// SetSingle selects exactly the item at i.
func (s *Selection) SetSingle(i int) {
	s.Active = i
	s.Anchor = i
	s.Selected = map[int]bool{i: true}
}

// Extend grows a range selection from the anchor to i. Headings are never
// part of the range. Keyboard extension always reaches i; mouse-drag
// extension stops before crossing a heading into the next section, and the
// active index lands on the truncated endpoint.
func (s *Selection) Extend(list []model.Item, i int, viaKeyboard bool) {
	if i < 0 || i >= len(list) {
		return
	}
	if s.Anchor < 0 || s.Anchor >= len(list) {
		s.SetSingle(i)
		return
	}
	end := i
	if !viaKeyboard {
		step := 1
		if i < s.Anchor {
			step = -1
		}
		end = s.Anchor
		for j := s.Anchor + step; ; j += step {
			if step > 0 && j > i || step < 0 && j < i {
				break
			}
			if list[j].IsHeading() {
				break
			}
			end = j
		}
	}
	lo, hi := s.Anchor, end
	if lo > hi {
		lo, hi = hi, lo
	}
	sel := map[int]bool{}
	for j := lo; j <= hi; j++ {
		if !list[j].IsHeading() {
			sel[j] = true
		}
	}
	s.Selected = sel
	if viaKeyboard {
		s.Active = i
	} else {
		s.Active = end
	}
}

// Toggle adds or removes i from the selection. A heading cannot join a
// multi-selection: toggling one collapses to a single selection on it.
func (s *Selection) Toggle(list []model.Item, i int) {
	if i < 0 || i >= len(list) {
		return
	}
	if list[i].IsHeading() {
		s.SetSingle(i)
		return
	}
	s.ensure()
	if s.Selected[i] {
		delete(s.Selected, i)
		if s.Active == i {
			s.Active = -1
		}
		return
	}
	s.Selected[i] = true
	s.Anchor = i
	s.Active = i
}

// SortedIndices returns the selected indices in ascending order.
func (s *Selection) SortedIndices() []int {
	out := make([]int, 0, len(s.Selected))
	for i := range s.Selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Validate resets the selection if the active index ran past the end of the
// list. Defensive bound check after operations that shrink the list without
// an explicit ID-based restore.
func (s *Selection) Validate(list []model.Item) {
	if s.Active >= len(list) {
		s.Clear()
	}
}

// CapturedSelection holds a selection expressed as item IDs, surviving any
// reorder or removal of the underlying list.
type CapturedSelection struct {
	ActiveID string
	IDs      []string
}

// Capture maps the current selection to item IDs.
func (s *Selection) Capture(list []model.Item) CapturedSelection {
	cap := CapturedSelection{}
	if s.Active >= 0 && s.Active < len(list) {
		cap.ActiveID = list[s.Active].ID
	}
	for _, i := range s.SortedIndices() {
		if i >= 0 && i < len(list) {
			cap.IDs = append(cap.IDs, list[i].ID)
		}
	}
	return cap
}

// Restore re-derives indices from captured IDs against a possibly reordered
// or shortened list. Items no longer present drop out silently; if the
// active item is gone the active index keeps its last value (callers run
// Validate separately).
func (s *Selection) Restore(list []model.Item, cap CapturedSelection) {
	byID := make(map[string]int, len(list))
	for i := range list {
		byID[list[i].ID] = i
	}
	sel := map[int]bool{}
	for _, id := range cap.IDs {
		if i, ok := byID[id]; ok {
			sel[i] = true
		}
	}
	s.Selected = sel
	if cap.ActiveID != "" {
		if i, ok := byID[cap.ActiveID]; ok {
			s.Active = i
			s.Anchor = i
		}
	}
}
