package store

import (
	"sync"
	"time"

	"plane-cli/internal/logx"
	"plane-cli/internal/model"
)

// Autosaver coalesces change notifications into debounced background saves.
// The outline engine treats persistence as fire-and-forget: Queue returns
// immediately, the write happens on a timer goroutine, and Flush drains any
// pending write on shutdown.
type Autosaver struct {
	store *Store
	delay time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	items    []model.Item
	archived []model.Item
	pending  bool
}

func NewAutosaver(s *Store, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Autosaver{store: s, delay: delay}
}

// Queue records the latest document state and (re)arms the debounce timer.
// Later calls within the window supersede earlier ones.
func (a *Autosaver) Queue(items, archived []model.Item) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = model.CloneItems(items)
	a.archived = model.CloneItems(archived)
	a.pending = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.flushLocked)
}

func (a *Autosaver) flushLocked() {
	a.mu.Lock()
	items, archived, pending := a.items, a.archived, a.pending
	a.pending = false
	a.mu.Unlock()
	if !pending {
		return
	}
	if err := a.store.Save(items, archived); err != nil {
		logx.Error("autosave failed", "path", a.store.Path, "err", err)
	}
}

// Flush writes any pending state synchronously. Called on quit.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.flushLocked()
}
