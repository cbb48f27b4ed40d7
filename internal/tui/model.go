// Package tui is the terminal view layer for the tag input. It renders a
// combo.Snapshot and forwards keys, edits and mouse presses to the session;
// it keeps no selection or filter state of its own.
package tui

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tagmoji/internal/combo"
	"github.com/jask/tagmoji/internal/textbuf"
)

const inputWidth = 32

// Options configures a Model. Items and Placeholder seed the session.
type Options struct {
	Title           string
	InitialItems    []string
	Placeholder     string
	SimilarDistance int
	Logger          *log.Logger
}

// Model is the Bubble Tea model around one combo.Session.
type Model struct {
	session *combo.Session
	keys    *combo.KeyRegistry
	input   textinput.Model
	zones   *zone.Manager
	help    help.Model
	title   string
	log     *log.Logger

	// deferred holds post-render callbacks scheduled by the session during
	// the current Update.
	deferred []func()
	// emojiFocus is the emoji cell holding keyboard focus, -1 when the text
	// control has it.
	emojiFocus int
	err        error
}

// afterRenderMsg carries callbacks that must run once the update that
// scheduled them has been rendered.
type afterRenderMsg struct {
	fns []func()
}

func New(opts Options) (*Model, error) {
	m := &Model{
		keys:       combo.DefaultKeyRegistry(),
		input:      textinput.New(),
		zones:      zone.New(),
		help:       help.New(),
		title:      opts.Title,
		log:        opts.Logger,
		emojiFocus: -1,
	}
	if m.log == nil {
		m.log = log.New(io.Discard, "", 0)
	}
	m.input.Prompt = ""
	m.input.Width = inputWidth
	m.input.Focus()

	s, err := combo.New(combo.Options{
		InitialItems:    opts.InitialItems,
		Placeholder:     opts.Placeholder,
		SimilarDistance: opts.SimilarDistance,
		Keys:            m.keys,
		Scheduler:       combo.SchedulerFunc(m.afterRender),
		Cursor:          m.setCursor,
		Logger:          m.log,
	})
	if err != nil {
		return nil, err
	}
	m.session = s
	m.sync()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Items returns the item catalog, including anything committed this run.
func (m *Model) Items() []string {
	snap, err := m.session.Snapshot()
	if err != nil {
		return nil
	}
	return snap.Items
}

// Selected returns the items chosen when the program ended.
func (m *Model) Selected() []string {
	snap, err := m.session.Snapshot()
	if err != nil {
		return nil
	}
	return snap.Selected
}

func (m *Model) Err() error {
	return m.err
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case afterRenderMsg:
		for _, fn := range msg.fns {
			fn()
		}
		return m, nil
	default:
		m.input, cmd = m.input.Update(msg)
	}
	if m.err != nil {
		m.log.Printf("tui: %v", m.err)
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.flushDeferred())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ev := keyEvent(msg)

	if m.emojiFocus >= 0 {
		m.handleEmojiFocusKey(ev)
		return nil
	}

	res, err := m.session.KeyPressed(ev)
	if err != nil {
		m.err = err
		return nil
	}
	if res.Handled {
		m.apply(res)
		return nil
	}

	snap := m.snapshot()
	if snap.PickerOpen && len(snap.Emojis) > 0 && m.keys.IsAction(ev, combo.ActionEmojiFocus, combo.ScopeEmojiPicker) {
		m.emojiFocus = 0
		m.input.Blur()
		return nil
	}

	beforeValue, beforePos := m.input.Value(), m.input.Position()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value, pos := m.input.Value(), m.input.Position()
	switch {
	case value != beforeValue:
		m.err = m.session.TextChanged(value, textbuf.Collapsed(pos))
	case pos != beforePos:
		m.err = m.session.CursorMoved(textbuf.Collapsed(pos))
	}
	m.sync()
	return cmd
}

// handleEmojiFocusKey routes keys while an emoji cell holds focus.
func (m *Model) handleEmojiFocusKey(ev combo.KeyEvent) {
	snap := m.snapshot()
	if !snap.PickerOpen || m.emojiFocus >= len(snap.Emojis) {
		m.focusInput()
		return
	}
	switch {
	case m.keys.IsAction(ev, combo.ActionActivate, combo.ScopeEmojiItem):
		res, err := m.session.EmojiActivated(snap.Emojis[m.emojiFocus])
		if err != nil {
			m.err = err
			return
		}
		m.apply(res)
	case m.keys.IsAction(ev, combo.ActionEmojiFocus, combo.ScopeEmojiItem):
		m.emojiFocus = (m.emojiFocus + 1) % len(snap.Emojis)
	case m.keys.IsAction(ev, combo.ActionEmojiCancel, combo.ScopeEmojiItem):
		m.focusInput()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	snap := m.snapshot()

	if snap.PickerOpen {
		for i, glyph := range snap.Emojis {
			if m.zones.Get(emojiZone(i)).InBounds(msg) {
				res, err := m.session.EmojiActivated(glyph)
				m.finish(res, err)
				return
			}
		}
	}
	if snap.ListOpen {
		for i, item := range snap.Items {
			if m.zones.Get(itemZone(i)).InBounds(msg) {
				res, err := m.session.SuggestionClicked(item)
				m.finish(res, err)
				return
			}
		}
	}
	for i, item := range snap.Selected {
		if m.zones.Get(removeZone(i)).InBounds(msg) {
			res, err := m.session.RemoveSelected(item)
			m.finish(res, err)
			return
		}
	}
	if m.zones.Get(componentZone).InBounds(msg) {
		m.err = m.session.FocusGained()
		m.focusInput()
		m.sync()
		return
	}
	m.err = m.session.PointerDownOutside()
	m.sync()
}

func (m *Model) finish(res combo.Result, err error) {
	if err != nil {
		m.err = err
		return
	}
	m.apply(res)
}

func (m *Model) apply(res combo.Result) {
	if res.Focus {
		m.focusInput()
	}
	m.sync()
}

func (m *Model) focusInput() {
	m.emojiFocus = -1
	m.input.Focus()
}

// sync pushes the session's value into the text control. The cursor is not
// touched here; insertions restore it through the deferred callback.
func (m *Model) sync() {
	snap := m.snapshot()
	if m.input.Value() != snap.Value {
		m.input.SetValue(snap.Value)
	}
	m.input.Placeholder = snap.Placeholder
	if !snap.PickerOpen && m.emojiFocus >= 0 {
		m.focusInput()
	}
}

func (m *Model) snapshot() combo.Snapshot {
	snap, err := m.session.Snapshot()
	if err != nil {
		m.err = err
	}
	return snap
}

func (m *Model) afterRender(fn func()) {
	m.deferred = append(m.deferred, fn)
}

func (m *Model) flushDeferred() tea.Cmd {
	if len(m.deferred) == 0 {
		return nil
	}
	fns := m.deferred
	m.deferred = nil
	return func() tea.Msg {
		return afterRenderMsg{fns: fns}
	}
}

func (m *Model) setCursor(pos int) {
	m.input.SetCursor(pos)
}
