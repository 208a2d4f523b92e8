// Package tui is the host shell around the outline engine: a bubbletea
// sidebar rendering the active and archive lists, dispatching keys into
// structural operations and wiring change events into debounced saves.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"plane-cli/internal/logx"
	"plane-cli/internal/model"
	"plane-cli/internal/outline"
	"plane-cli/internal/store"
)

type reloadTickMsg struct{}

type notifExpireMsg struct{ seq int }

// notification is shared by pointer between the bubbletea model copies and
// the session's OnNotify hook, which fires synchronously inside Update.
type notification struct {
	msg  string
	icon string
	seq  int
}

type appModel struct {
	sess  *outline.Session
	store *store.Store
	saver *store.Autosaver
	cfg   *store.Config

	width  int
	height int
	offset int // first visible outline row

	archivePane bool
	showNote    bool

	input     textinput.Model
	editingID string

	notif *notification
}

// Run opens the plan file and starts the sidebar.
func Run(path string) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	items, archived, err := st.Load()
	if err != nil {
		return err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	applyGlyphPreference(cfg.Glyphs)

	m := newAppModel(st, cfg)
	m.sess.Load(items, archived)
	m.restoreUIState()

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(appModel); ok {
		m = fm
	}
	m.saver.Flush()
	m.persistUIState()
	return err
}

func newAppModel(st *store.Store, cfg *store.Config) appModel {
	sess := outline.NewSession()
	saver := store.NewAutosaver(st, 500*time.Millisecond)
	notif := &notification{}

	sess.OnChange = func(items, archived []model.Item) {
		saver.Queue(items, archived)
	}
	sess.OnNotify = func(msg, icon string) {
		notif.msg = msg
		notif.icon = icon
		notif.seq++
		// The op log is an audit trail, best effort and off the hot path.
		go func() {
			if err := st.AppendOp(context.Background(), icon, leadingCount(msg)); err != nil {
				logx.Warn("op log append failed", "err", err)
			}
		}()
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0

	return appModel{
		sess:  sess,
		store: st,
		saver: saver,
		cfg:   cfg,
		input: input,
		notif: notif,
	}
}

// leadingCount extracts the N from "N item(s) ..." notifications; fixed
// messages like "Copied" count as one.
func leadingCount(msg string) int {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return 1
	}
	if n, err := strconv.Atoi(fields[0]); err == nil {
		return n
	}
	return 1
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reloadTickMsg:
		if m.store.Changed() {
			// External edit: wholesale replace. All selection and edit
			// state resets; no partial state survives the reload.
			if items, archived, err := m.store.Load(); err == nil {
				m.sess.Load(items, archived)
				m.editingID = ""
				m.input.Blur()
				m.offset = 0
			} else {
				logx.Warn("reload failed", "err", err)
			}
		}
		return m, tickReload()

	case notifExpireMsg:
		if msg.seq == m.notif.seq {
			m.notif.msg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.editingID != "" {
			return m.updateEditing(msg)
		}
		return m.dispatchKey(msg)
	}
	return m, nil
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.sess.CommitEdit(m.input.Value())
		m.editingID = ""
		m.input.Blur()
		return m, m.notifCmd()
	case "esc":
		m.sess.CancelEdit()
		m.editingID = ""
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// notifCmd schedules expiry for the current notification, if one fired.
func (m appModel) notifCmd() tea.Cmd {
	if m.notif.msg == "" {
		return nil
	}
	seq := m.notif.seq
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return notifExpireMsg{seq: seq} })
}

// beginEdit puts the item with the given id into the inline title editor.
func (m *appModel) beginEdit(id string, initial string, isNew bool) {
	if !isNew {
		m.sess.BeginEdit(id)
	}
	m.editingID = id
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *appModel) restoreUIState() {
	ui, err := m.store.LoadUIState()
	if err != nil {
		logx.Debug("ui state load failed", "err", err)
		return
	}
	m.archivePane = ui.ShowArchive
	m.showNote = ui.ShowNote
	if ui.ActiveItemID != "" {
		for i := range m.sess.Items {
			if m.sess.Items[i].ID == ui.ActiveItemID {
				m.sess.Sel.SetSingle(i)
				break
			}
		}
	}
}

func (m *appModel) persistUIState() {
	ui := &store.UIState{
		ShowArchive: m.archivePane,
		ShowNote:    m.showNote,
	}
	if it, ok := m.sess.ActiveItem(); ok {
		ui.ActiveItemID = it.ID
	}
	if err := m.store.SaveUIState(ui); err != nil {
		logx.Debug("ui state save failed", "err", err)
	}
}
