package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tagmoji/internal/combo"
)

// keyEvent converts a terminal key into the dispatcher's form.
func keyEvent(msg tea.KeyMsg) combo.KeyEvent {
	if msg.Type == tea.KeyRunes {
		ev := combo.KeyEvent{Key: string(msg.Runes)}
		if msg.Alt {
			ev.Mods |= combo.ModAlt
		}
		return ev
	}
	name := msg.String()
	var mods combo.Modifiers
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			mods |= combo.ModCtrl
			name = strings.TrimPrefix(name, "ctrl+")
			continue
		case strings.HasPrefix(name, "alt+"):
			mods |= combo.ModAlt
			name = strings.TrimPrefix(name, "alt+")
			continue
		case strings.HasPrefix(name, "shift+"):
			mods |= combo.ModShift
			name = strings.TrimPrefix(name, "shift+")
			continue
		}
		break
	}
	return combo.KeyEvent{Key: name, Mods: mods}
}

// helpBindings renders the registry's scope as bubbles key bindings for the
// footer. The first key of each binding is shown.
func helpBindings(r *combo.KeyRegistry, scope string) []key.Binding {
	bindings := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(bindings)+1)
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Keys[0], b.Description),
		))
	}
	out = append(out, quitBinding)
	return out
}

var quitBinding = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "done"))
