// Package selection holds the catalog of known tag values and the subset the
// user has chosen.
package selection

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Store owns the item catalog and the ordered selection. Items are compared
// case-sensitively, exactly as typed.
type Store struct {
	items    []string
	selected []string
}

// New seeds the catalog with initial, collapsing duplicates and keeping the
// first occurrence's position.
func New(initial []string) *Store {
	s := &Store{}
	for _, it := range initial {
		if !slices.Contains(s.items, it) {
			s.items = append(s.items, it)
		}
	}
	return s
}

func (s *Store) Items() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

func (s *Store) Selected() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.selected)
}

// Commit adds text to the catalog and the selection. Both steps are no-ops
// when the text is already present. It reports whether text was non-empty
// after trimming, which is the caller's cue to clear its input.
func (s *Store) Commit(text string) bool {
	if s == nil {
		return false
	}
	item := strings.TrimSpace(text)
	if item == "" {
		return false
	}
	if !slices.Contains(s.items, item) {
		s.items = append(s.items, item)
	}
	if !slices.Contains(s.selected, item) {
		s.selected = append(s.selected, item)
	}
	return true
}

// Toggle removes item from the selection if present, otherwise appends it.
// Items missing from the catalog are ignored.
func (s *Store) Toggle(item string) {
	if s == nil {
		return
	}
	if idx := slices.Index(s.selected, item); idx >= 0 {
		s.selected = slices.Delete(s.selected, idx, idx+1)
		return
	}
	if !slices.Contains(s.items, item) {
		return
	}
	s.selected = append(s.selected, item)
}

func (s *Store) Remove(item string) bool {
	if s == nil {
		return false
	}
	idx := slices.Index(s.selected, item)
	if idx < 0 {
		return false
	}
	s.selected = slices.Delete(s.selected, idx, idx+1)
	return true
}

// PopLast drops the most recently selected item.
func (s *Store) PopLast() (string, bool) {
	if s == nil || len(s.selected) == 0 {
		return "", false
	}
	last := s.selected[len(s.selected)-1]
	s.selected = s.selected[:len(s.selected)-1]
	return last, true
}

// Similar returns catalog items within maxDist edits of text, ignoring case.
// An item equal to text is never reported.
func (s *Store) Similar(text string, maxDist int) []string {
	if s == nil || maxDist <= 0 {
		return nil
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	q := strings.ToLower(trimmed)
	var out []string
	for _, it := range s.items {
		if it == trimmed {
			continue
		}
		if levenshtein.ComputeDistance(q, strings.ToLower(it)) <= maxDist {
			out = append(out, it)
		}
	}
	return out
}
