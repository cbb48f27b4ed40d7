package combo

import (
	"slices"
	"strings"
)

type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

const (
	KeyEnter     = "enter"
	KeyEscape    = "esc"
	KeyBackspace = "backspace"
	KeySpace     = "space"
	KeyTab       = "tab"
)

// KeyEvent is a key press as delivered by the view layer. Key is either a
// named key (KeyEnter, ...) or the literal text the key produces.
type KeyEvent struct {
	Key  string
	Mods Modifiers
}

func (e KeyEvent) Has(m Modifiers) bool {
	return e.Mods&m != 0
}

// String renders the event in registry form, e.g. "ctrl+e", "enter", ":".
func (e KeyEvent) String() string {
	var b strings.Builder
	if e.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if e.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if e.Has(ModShift) {
		b.WriteString("shift+")
	}
	b.WriteString(e.Key)
	return b.String()
}

const (
	ScopeInput       = "input"
	ScopeEmojiPicker = "emoji_picker"
	ScopeEmojiItem   = "emoji_item"
)

const (
	ActionEmojiOpen   = "emoji_open"
	ActionEmojiFirst  = "emoji_first"
	ActionEmojiCancel = "emoji_cancel"
	ActionEmojiFocus  = "emoji_focus"
	ActionActivate    = "activate"
	ActionCommit      = "commit"
	ActionPopLast     = "pop_last"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings are the keys the dispatcher routes on. The first key of
// each binding is the one shown in help.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter"}, Action: ActionEmojiFirst, Description: "insert first", Scopes: []string{ScopeEmojiPicker}},
		{Keys: []string{"esc"}, Action: ActionEmojiCancel, Description: "close emoji", Scopes: []string{ScopeEmojiPicker}},
		{Keys: []string{"tab"}, Action: ActionEmojiFocus, Description: "focus emoji", Scopes: []string{ScopeEmojiPicker, ScopeEmojiItem}},
		{Keys: []string{"enter", "space", " "}, Action: ActionActivate, Description: "insert", Scopes: []string{ScopeEmojiItem}},
		{Keys: []string{"esc"}, Action: ActionEmojiCancel, Description: "back", Scopes: []string{ScopeEmojiItem}},
		{Keys: []string{"ctrl+e", ":"}, Action: ActionEmojiOpen, Description: "emoji", Scopes: []string{ScopeInput}},
		{Keys: []string{"enter"}, Action: ActionCommit, Description: "add", Scopes: []string{ScopeInput}},
		{Keys: []string{"backspace"}, Action: ActionPopLast, Description: "remove last", Scopes: []string{ScopeInput}},
	}
}

func DefaultKeyRegistry() *KeyRegistry {
	return NewKeyRegistry(DefaultBindings())
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	if r == nil {
		return nil
	}
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether ev is bound to action in scope. Matching ignores
// case, so ctrl+E and ctrl+e are the same chord.
func (r *KeyRegistry) IsAction(ev KeyEvent, action, scope string) bool {
	if r == nil {
		return false
	}
	pressed := normalizeKey(ev.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
