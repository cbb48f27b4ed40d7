// Package textbuf is the live input string and its cursor range.
//
// Offsets count code points, the same unit the terminal text control uses
// for its cursor, so an emoji such as 🔥 advances the cursor by one.
package textbuf

import "unicode/utf8"

// Range is a cursor selection [Start, End] in code points.
type Range struct {
	Start int
	End   int
}

// Collapsed returns a zero-width range at pos.
func Collapsed(pos int) Range {
	return Range{Start: pos, End: pos}
}

type Buffer struct {
	value []rune
	sel   Range
}

func New(value string) *Buffer {
	b := &Buffer{}
	b.Set(value, Collapsed(utf8.RuneCountInString(value)))
	return b
}

func (b *Buffer) Value() string {
	if b == nil {
		return ""
	}
	return string(b.value)
}

func (b *Buffer) Range() Range {
	if b == nil {
		return Range{}
	}
	return b.sel
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.value)
}

// Set replaces the value and cursor. The range is clamped to the value and
// normalized so Start <= End.
func (b *Buffer) Set(value string, r Range) {
	if b == nil {
		return
	}
	b.value = []rune(value)
	b.sel = b.clamp(r)
}

func (b *Buffer) SetRange(r Range) {
	if b == nil {
		return
	}
	b.sel = b.clamp(r)
}

func (b *Buffer) Clear() {
	b.Set("", Range{})
}

// InsertAt splices text over the current selection and collapses the cursor
// after the inserted text. It returns the new value and cursor position.
func (b *Buffer) InsertAt(text string) (string, int) {
	if b == nil {
		return "", 0
	}
	ins := []rune(text)
	start, end := b.sel.Start, b.sel.End
	out := make([]rune, 0, len(b.value)-(end-start)+len(ins))
	out = append(out, b.value[:start]...)
	out = append(out, ins...)
	out = append(out, b.value[end:]...)
	b.value = out
	pos := start + len(ins)
	b.sel = Collapsed(pos)
	return string(b.value), pos
}

func (b *Buffer) clamp(r Range) Range {
	n := len(b.value)
	fix := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > n {
			return n
		}
		return v
	}
	r.Start, r.End = fix(r.Start), fix(r.End)
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	return r
}
