// Package emoji holds the compiled-in emoji table and the picker state
// machine that filters it and inserts glyphs into the input buffer.
package emoji

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

type Entry struct {
	Glyph string
	Name  string
}

// Catalog is an ordered, immutable glyph -> name table.
type Catalog struct {
	entries []Entry
	byGlyph map[string]string
}

var defaultEntries = []Entry{
	{Glyph: "🔥", Name: "fire"},
	{Glyph: "⭐", Name: "star"},
	{Glyph: "🍀", Name: "clover"},
	{Glyph: "🎉", Name: "party"},
	{Glyph: "❤️", Name: "heart"},
	{Glyph: "😊", Name: "smile"},
	{Glyph: "🚀", Name: "rocket"},
	{Glyph: "💡", Name: "idea"},
	{Glyph: "😂", Name: "joy"},
	{Glyph: "😎", Name: "cool"},
	{Glyph: "🤖", Name: "robot"},
	{Glyph: "🌟", Name: "sparkle"},
}

var defaultCatalog = MustCatalog(defaultEntries)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog validates entries: each glyph must be a single grapheme cluster
// and appear once, and each name must be non-empty lowercase.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byGlyph: make(map[string]string, len(entries)),
	}
	for i, e := range entries {
		if e.Glyph == "" || uniseg.GraphemeClusterCount(e.Glyph) != 1 {
			return nil, fmt.Errorf("entry %d: glyph %q is not a single grapheme", i, e.Glyph)
		}
		if e.Name == "" || e.Name != strings.ToLower(e.Name) {
			return nil, fmt.Errorf("entry %d: name %q must be non-empty lowercase", i, e.Name)
		}
		if _, dup := c.byGlyph[e.Glyph]; dup {
			return nil, fmt.Errorf("entry %d: duplicate glyph %q", i, e.Glyph)
		}
		c.byGlyph[e.Glyph] = e.Name
		c.entries = append(c.entries, e)
	}
	return c, nil
}

func MustCatalog(entries []Entry) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Keys returns every glyph in table order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Glyph)
	}
	return out
}

func (c *Catalog) Name(glyph string) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.byGlyph[glyph]
	return name, ok
}

// Match returns glyphs whose name contains query, in table order. An empty
// query matches everything.
func (c *Catalog) Match(query string) []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if strings.Contains(e.Name, query) {
			out = append(out, e.Glyph)
		}
	}
	return out
}
