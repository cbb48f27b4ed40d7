package emoji

import (
	"slices"
	"strings"

	"github.com/jask/tagmoji/internal/textbuf"
)

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Picker filters the catalog by the text after the last ':' in the input and
// inserts the chosen glyph at the buffer's cursor.
type Picker struct {
	catalog  *Catalog
	state    State
	filter   string
	filtered []string
}

// Insertion records a glyph spliced into the buffer and the cursor after it.
type Insertion struct {
	Glyph  string
	Cursor int
}

func NewPicker(catalog *Catalog) *Picker {
	if catalog == nil {
		catalog = Default()
	}
	p := &Picker{catalog: catalog}
	p.reset()
	return p
}

func (p *Picker) State() State {
	if p == nil {
		return StateClosed
	}
	return p.state
}

func (p *Picker) IsOpen() bool {
	return p.State() == StateOpen
}

func (p *Picker) FilterText() string {
	if p == nil {
		return ""
	}
	return p.filter
}

func (p *Picker) Filtered() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.filtered)
}

func (p *Picker) Open() {
	if p == nil {
		return
	}
	p.state = StateOpen
	p.reset()
}

func (p *Picker) Close() {
	if p == nil {
		return
	}
	p.state = StateClosed
	p.reset()
}

// UpdateFilter recomputes the filter from the buffer value. It does nothing
// while the picker is closed. A query that matches no name falls back to the
// whole catalog.
func (p *Picker) UpdateFilter(value string) {
	if p == nil || p.state != StateOpen {
		return
	}
	idx := strings.LastIndex(value, ":")
	if idx < 0 || idx+1 >= len(value) {
		p.reset()
		return
	}
	p.filter = strings.ToLower(value[idx+1:])
	matched := p.catalog.Match(p.filter)
	if len(matched) == 0 {
		matched = p.catalog.Keys()
	}
	p.filtered = matched
}

// SelectFirst inserts the first filtered glyph and closes the picker. With an
// empty filtered list it reports false and leaves the picker open.
func (p *Picker) SelectFirst(buf *textbuf.Buffer) (Insertion, bool) {
	if p == nil || len(p.filtered) == 0 {
		return Insertion{}, false
	}
	return p.insert(buf, p.filtered[0]), true
}

// SelectExplicit inserts glyph regardless of its place in the filtered list
// and closes the picker. Glyphs outside the catalog are ignored.
func (p *Picker) SelectExplicit(buf *textbuf.Buffer, glyph string) (Insertion, bool) {
	if p == nil {
		return Insertion{}, false
	}
	if _, ok := p.catalog.Name(glyph); !ok {
		return Insertion{}, false
	}
	return p.insert(buf, glyph), true
}

func (p *Picker) insert(buf *textbuf.Buffer, glyph string) Insertion {
	_, cursor := buf.InsertAt(glyph)
	p.Close()
	return Insertion{Glyph: glyph, Cursor: cursor}
}

func (p *Picker) reset() {
	p.filter = ""
	p.filtered = p.catalog.Keys()
}
