package combo

import (
	"strings"

	"github.com/jask/tagmoji/internal/textbuf"
)

// Result tells the view what to do after an event.
type Result struct {
	// Handled means the view must suppress its default handling of the
	// event (no text edit, no focus change).
	Handled bool
	// Focus asks the view to return focus to the text control.
	Focus bool
}

// TextChanged records a new value and cursor from the host control. It opens
// the list and, while the picker is open, refilters the emoji list.
func (s *Session) TextChanged(value string, r textbuf.Range) error {
	if err := s.check("text changed"); err != nil {
		return err
	}
	s.buf.Set(value, r)
	s.listOpen = true
	s.picker.UpdateFilter(value)
	return nil
}

// CursorMoved records a cursor change that did not edit the text.
func (s *Session) CursorMoved(r textbuf.Range) error {
	if err := s.check("cursor moved"); err != nil {
		return err
	}
	s.buf.SetRange(r)
	return nil
}

// KeyPressed runs the precedence chain. Only the first matching rule fires.
// An unhandled result means the view should apply the key as a text edit and
// report the outcome through TextChanged.
func (s *Session) KeyPressed(ev KeyEvent) (Result, error) {
	if err := s.check("key pressed"); err != nil {
		return Result{}, err
	}

	if s.picker.IsOpen() {
		switch {
		case s.keys.IsAction(ev, ActionEmojiFirst, ScopeEmojiPicker):
			if ins, ok := s.picker.SelectFirst(s.buf); ok {
				s.logf("inserted %s at %d", ins.Glyph, ins.Cursor)
				s.restoreCursor(ins.Cursor)
			}
			return Result{Handled: true}, nil
		case s.keys.IsAction(ev, ActionEmojiCancel, ScopeEmojiPicker):
			s.picker.Close()
			s.logf("picker closed")
			return Result{Handled: true, Focus: true}, nil
		}
		return Result{}, nil
	}

	if s.keys.IsAction(ev, ActionEmojiOpen, ScopeInput) {
		s.picker.Open()
		s.listOpen = true
		if ev.Key == ":" && !ev.Has(ModCtrl) {
			// The literal colon anchors the filter query.
			_, pos := s.buf.InsertAt(":")
			s.restoreCursor(pos)
		}
		s.logf("picker opened by %s", ev)
		return Result{Handled: true}, nil
	}

	if s.keys.IsAction(ev, ActionCommit, ScopeInput) && s.store.Commit(s.buf.Value()) {
		s.logf("committed %q", strings.TrimSpace(s.buf.Value()))
		s.buf.Clear()
		s.listOpen = true
		return Result{Handled: true}, nil
	}

	if s.keys.IsAction(ev, ActionPopLast, ScopeInput) && s.buf.Len() == 0 {
		if item, ok := s.store.PopLast(); ok {
			s.logf("popped %q", item)
			return Result{Handled: true}, nil
		}
	}

	return Result{}, nil
}

// PointerDownOutside closes the list and the picker. Text and selection are
// kept.
func (s *Session) PointerDownOutside() error {
	if err := s.check("pointer down outside"); err != nil {
		return err
	}
	s.listOpen = false
	if s.picker.IsOpen() {
		s.logf("picker closed by outside pointer")
	}
	s.picker.Close()
	return nil
}

func (s *Session) FocusGained() error {
	if err := s.check("focus gained"); err != nil {
		return err
	}
	s.listOpen = true
	return nil
}

// SuggestionClicked toggles item. The view must keep focus on the text
// control.
func (s *Session) SuggestionClicked(item string) (Result, error) {
	if err := s.check("suggestion clicked"); err != nil {
		return Result{}, err
	}
	s.store.Toggle(item)
	s.listOpen = true
	return Result{Handled: true, Focus: true}, nil
}

// EmojiActivated inserts glyph at the cursor and closes the picker.
func (s *Session) EmojiActivated(glyph string) (Result, error) {
	if err := s.check("emoji activated"); err != nil {
		return Result{}, err
	}
	if ins, ok := s.picker.SelectExplicit(s.buf, glyph); ok {
		s.logf("inserted %s at %d", ins.Glyph, ins.Cursor)
		s.restoreCursor(ins.Cursor)
	}
	return Result{Handled: true, Focus: true}, nil
}

func (s *Session) RemoveSelected(item string) (Result, error) {
	if err := s.check("remove selected"); err != nil {
		return Result{}, err
	}
	s.store.Remove(item)
	return Result{Handled: true, Focus: true}, nil
}

func (s *Session) restoreCursor(pos int) {
	if s.cursor == nil {
		return
	}
	write := s.cursor
	s.sched.AfterRender(func() { write(pos) })
}
