package emoji

import (
	"strings"
	"testing"

	"github.com/jask/tagmoji/internal/textbuf"
)

func joined(s []string) string {
	return strings.Join(s, ",")
}

func TestPickerOpenResetsFilter(t *testing.T) {
	p := NewPicker(nil)
	if p.IsOpen() {
		t.Fatal("picker should start closed")
	}
	p.Open()
	p.UpdateFilter(":fir")
	p.Open()
	if p.FilterText() != "" {
		t.Fatalf("filter = %q, want empty after reopen", p.FilterText())
	}
	if joined(p.Filtered()) != joined(Default().Keys()) {
		t.Fatalf("filtered = %v, want full catalog", p.Filtered())
	}
}

func TestPickerUpdateFilter(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantFilter string
		want       string
	}{
		{name: "text after colon", value: ":fir", wantFilter: "fir", want: "🔥"},
		{name: "lowercased", value: "tag :ROC", wantFilter: "roc", want: "🚀"},
		{name: "last colon wins", value: ":fire :jo", wantFilter: "jo", want: "😂"},
		{name: "no match falls back", value: ":zzz", wantFilter: "zzz", want: joined(Default().Keys())},
		{name: "bare colon", value: "abc:", wantFilter: "", want: joined(Default().Keys())},
		{name: "no colon", value: "fir", wantFilter: "", want: joined(Default().Keys())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPicker(nil)
			p.Open()
			p.UpdateFilter(tt.value)
			if p.FilterText() != tt.wantFilter {
				t.Fatalf("filter = %q, want %q", p.FilterText(), tt.wantFilter)
			}
			if got := joined(p.Filtered()); got != tt.want {
				t.Fatalf("filtered = %q, want %q", got, tt.want)
			}
			if len(p.Filtered()) == 0 {
				t.Fatal("filtered list must not be empty while open")
			}
		})
	}
}

func TestPickerUpdateFilterIgnoredWhileClosed(t *testing.T) {
	p := NewPicker(nil)
	p.UpdateFilter(":fir")
	if p.FilterText() != "" || len(p.Filtered()) != Default().Len() {
		t.Fatalf("closed picker should not filter, got %q %v", p.FilterText(), p.Filtered())
	}
}

func TestPickerSelectFirst(t *testing.T) {
	p := NewPicker(nil)
	p.Open()
	buf := textbuf.New(":fir")
	p.UpdateFilter(buf.Value())

	ins, ok := p.SelectFirst(buf)
	if !ok {
		t.Fatal("SelectFirst should insert")
	}
	if ins.Glyph != "🔥" || buf.Value() != ":fir🔥" || ins.Cursor != 5 {
		t.Fatalf("insertion = %+v", ins)
	}
	if p.IsOpen() {
		t.Fatal("picker should close after selection")
	}
	if p.FilterText() != "" || len(p.Filtered()) != Default().Len() {
		t.Fatal("closing should reset the filter")
	}
}

func TestPickerSelectFirstEmptyListIsNoop(t *testing.T) {
	p := NewPicker(MustCatalog(nil))
	p.Open()
	buf := textbuf.New("abc")
	if _, ok := p.SelectFirst(buf); ok {
		t.Fatal("SelectFirst on empty list should report false")
	}
	if !p.IsOpen() {
		t.Fatal("picker should stay open when nothing was inserted")
	}
	if buf.Value() != "abc" {
		t.Fatalf("buffer changed to %q", buf.Value())
	}
}

func TestPickerSelectExplicit(t *testing.T) {
	p := NewPicker(nil)
	p.Open()
	buf := &textbuf.Buffer{}
	buf.Set("ab", textbuf.Collapsed(1))
	p.UpdateFilter(":fir")

	ins, ok := p.SelectExplicit(buf, "🤖")
	if !ok {
		t.Fatal("SelectExplicit should insert a catalog glyph")
	}
	if buf.Value() != "a🤖b" || ins.Cursor != 2 {
		t.Fatalf("insertion = %+v", ins)
	}
	if p.IsOpen() {
		t.Fatal("picker should close")
	}

	if _, ok := p.SelectExplicit(buf, "x"); ok {
		t.Fatal("unknown glyph should be ignored")
	}
}
