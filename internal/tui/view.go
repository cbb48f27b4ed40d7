package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tagmoji/internal/combo"
)

const componentZone = "tagmoji"

func emojiZone(i int) string  { return "emoji-" + strconv.Itoa(i) }
func itemZone(i int) string   { return "item-" + strconv.Itoa(i) }
func removeZone(i int) string { return "remove-" + strconv.Itoa(i) }

func (m *Model) View() string {
	snap := m.snapshot()

	var body []string
	body = append(body, renderInputRow(snap, m.input.View(), m.zones))
	if hint := renderSimilar(snap); hint != "" {
		body = append(body, hint)
	}
	if list := renderList(snap, m.zones); list != "" {
		body = append(body, list)
	}
	if picker := renderEmojiPicker(snap, m.emojiFocus, m.zones); picker != "" {
		body = append(body, picker)
	}

	box := containerStyle
	if snap.ListOpen || snap.PickerOpen {
		box = activeBorder
	}
	component := m.zones.Mark(componentZone, box.Render(strings.Join(body, "\n")))

	scope := snap.Scope
	if m.emojiFocus >= 0 {
		scope = combo.ScopeEmojiItem
	}
	parts := []string{}
	if m.title != "" {
		parts = append(parts, titleStyle.Render(m.title))
	}
	parts = append(parts, component, m.help.ShortHelpView(helpBindings(m.keys, scope)))
	return m.zones.Scan(strings.Join(parts, "\n"))
}

// renderInputRow draws the selected badges, the text control and the list
// arrow on one line.
func renderInputRow(snap combo.Snapshot, input string, zones *zone.Manager) string {
	cells := make([]string, 0, len(snap.Selected)+2)
	for i, item := range snap.Selected {
		remove := zones.Mark(removeZone(i), removeStyle.Render("×"))
		cells = append(cells, badgeStyle.Render(item)+remove)
	}
	cells = append(cells, input)
	arrow := "▸"
	if snap.ListOpen {
		arrow = "▾"
	}
	cells = append(cells, arrowStyle.Render(arrow))
	return lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(cells)...)
}

func renderSimilar(snap combo.Snapshot) string {
	if !snap.ListOpen || len(snap.Similar) == 0 {
		return ""
	}
	return hintStyle.Render("similar: " + strings.Join(snap.Similar, ", "))
}

// renderList draws the suggestion list. It is hidden while closed or when
// the catalog is empty.
func renderList(snap combo.Snapshot, zones *zone.Manager) string {
	if !snap.ListOpen || len(snap.Items) == 0 {
		return ""
	}
	selected := make(map[string]bool, len(snap.Selected))
	for _, it := range snap.Selected {
		selected[it] = true
	}
	rows := make([]string, 0, len(snap.Items))
	for i, item := range snap.Items {
		row := listRowStyle.Render("  " + item)
		if selected[item] {
			row = selectedStyle.Render("  "+item) + " " + checkStyle.Render("✓")
		}
		rows = append(rows, zones.Mark(itemZone(i), row))
	}
	return strings.Join(rows, "\n")
}

func renderEmojiPicker(snap combo.Snapshot, focus int, zones *zone.Manager) string {
	if !snap.PickerOpen {
		return ""
	}
	if len(snap.Emojis) == 0 {
		return emptyStyle.Render("No emojis found")
	}
	cells := make([]string, 0, len(snap.Emojis))
	for i, glyph := range snap.Emojis {
		style := emojiCellStyle
		if i == focus {
			style = emojiFocused
		}
		cells = append(cells, zones.Mark(emojiZone(i), style.Render(glyph)))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if snap.FilterText == "" {
		return grid
	}
	return grid + "\n" + filterStyle.Render("filter: "+snap.FilterText)
}

func joinSpaced(cells []string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}
