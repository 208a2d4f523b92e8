package outline

import "plane-cli/internal/model"

// historyCap bounds the undo stack; the oldest snapshot is evicted first.
const historyCap = 50

type snapshot struct {
	items    []model.Item
	archived []model.Item
}

// history keeps whole-document snapshots for undo/redo. The applying guard
// prevents re-entrant saves while an undo/redo is itself mutating the
// session.
type history struct {
	past     []snapshot
	future   []snapshot
	applying bool
}

// save pushes a deep copy of the current document onto the past stack and
// invalidates the redo stack. No-op while an undo/redo is applying.
func (h *history) save(items, archived []model.Item) {
	if h.applying {
		return
	}
	h.past = append(h.past, snapshot{
		items:    model.CloneItems(items),
		archived: model.CloneItems(archived),
	})
	if len(h.past) > historyCap {
		h.past = h.past[len(h.past)-historyCap:]
	}
	h.future = nil
}

// popLast discards the most recent past entry without restoring it. Used to
// cancel a just-created-then-abandoned new item so it leaves no undo trace.
func (h *history) popLast() {
	if len(h.past) == 0 {
		return
	}
	h.past = h.past[:len(h.past)-1]
}

func (h *history) canUndo() bool { return !h.applying && len(h.past) > 0 }
func (h *history) canRedo() bool { return !h.applying && len(h.future) > 0 }

func (h *history) reset() {
	h.past = nil
	h.future = nil
	h.applying = false
}
