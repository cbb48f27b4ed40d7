package emoji

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 12 {
		t.Fatalf("len = %d, want 12", c.Len())
	}
	keys := c.Keys()
	if keys[0] != "🔥" || keys[len(keys)-1] != "🌟" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	if name, ok := c.Name("🚀"); !ok || name != "rocket" {
		t.Fatalf("Name(🚀) = %q,%v want rocket,true", name, ok)
	}
	if _, ok := c.Name("x"); ok {
		t.Fatal("unknown glyph should not resolve")
	}
}

func TestCatalogMatchIsSubstring(t *testing.T) {
	c := Default()
	tests := []struct {
		query string
		want  string
	}{
		{query: "fir", want: "🔥"},
		{query: "ar", want: "⭐,🎉,❤️,🌟"},
		{query: "o", want: "🍀,🚀,😂,😎,🤖"},
		{query: "xyz", want: ""},
		{query: "", want: strings.Join(c.Keys(), ",")},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := strings.Join(c.Match(tt.query), ",")
			if got != tt.want {
				t.Fatalf("Match(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{name: "empty glyph", entries: []Entry{{Glyph: "", Name: "x"}}, wantErr: "single grapheme"},
		{name: "two graphemes", entries: []Entry{{Glyph: "🔥🔥", Name: "fires"}}, wantErr: "single grapheme"},
		{name: "upper name", entries: []Entry{{Glyph: "🔥", Name: "Fire"}}, wantErr: "lowercase"},
		{name: "duplicate", entries: []Entry{{Glyph: "🔥", Name: "fire"}, {Glyph: "🔥", Name: "hot"}}, wantErr: "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMustCatalogPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid entries")
		}
	}()
	MustCatalog([]Entry{{Glyph: "ab", Name: "x"}})
}
