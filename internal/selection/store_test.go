package selection

import (
	"slices"
	"strings"
	"testing"
)

func TestNewCollapsesDuplicates(t *testing.T) {
	s := New([]string{"Apple", "Banana", "Apple", "apple"})
	got := strings.Join(s.Items(), ",")
	if got != "Apple,Banana,apple" {
		t.Fatalf("items = %q, want %q", got, "Apple,Banana,apple")
	}
	if len(s.Selected()) != 0 {
		t.Fatalf("selected = %v, want empty", s.Selected())
	}
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name         string
		initial      []string
		commits      []string
		wantItems    string
		wantSelected string
	}{
		{
			name:         "new item appended to both",
			initial:      []string{"Apple"},
			commits:      []string{"Kiwi"},
			wantItems:    "Apple,Kiwi",
			wantSelected: "Kiwi",
		},
		{
			name:         "existing item only selected",
			initial:      []string{"Apple", "Banana"},
			commits:      []string{"Banana"},
			wantItems:    "Apple,Banana",
			wantSelected: "Banana",
		},
		{
			name:         "trimmed before storing",
			commits:      []string{"  Pear  "},
			wantItems:    "Pear",
			wantSelected: "Pear",
		},
		{
			name:         "whitespace only is ignored",
			initial:      []string{"Apple"},
			commits:      []string{"   ", ""},
			wantItems:    "Apple",
			wantSelected: "",
		},
		{
			name:         "repeat commit is idempotent",
			commits:      []string{"Fig", "Fig", " Fig"},
			wantItems:    "Fig",
			wantSelected: "Fig",
		},
		{
			name:         "case sensitive",
			initial:      []string{"Apple"},
			commits:      []string{"apple"},
			wantItems:    "Apple,apple",
			wantSelected: "apple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.initial)
			for _, c := range tt.commits {
				s.Commit(c)
			}
			if got := strings.Join(s.Items(), ","); got != tt.wantItems {
				t.Fatalf("items = %q, want %q", got, tt.wantItems)
			}
			if got := strings.Join(s.Selected(), ","); got != tt.wantSelected {
				t.Fatalf("selected = %q, want %q", got, tt.wantSelected)
			}
		})
	}
}

func TestCommitReportsEmpty(t *testing.T) {
	s := New(nil)
	if s.Commit(" \t ") {
		t.Fatal("whitespace commit should report false")
	}
	if !s.Commit("x") {
		t.Fatal("non-empty commit should report true")
	}
}

func TestCatalogNeverHoldsDuplicates(t *testing.T) {
	s := New([]string{"a", "b"})
	for _, c := range []string{"a", "c", "b", " c", "d", "a ", "d"} {
		s.Commit(c)
		items := s.Items()
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			if seen[it] {
				t.Fatalf("duplicate %q in catalog %v", it, items)
			}
			seen[it] = true
		}
		for _, sel := range s.Selected() {
			if !slices.Contains(items, sel) {
				t.Fatalf("selected %q missing from catalog %v", sel, items)
			}
		}
	}
}

func TestToggle(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	s.Toggle("b")
	s.Toggle("a")
	if got := strings.Join(s.Selected(), ","); got != "b,a" {
		t.Fatalf("selected = %q, want selection order %q", got, "b,a")
	}

	s.Toggle("b")
	if got := strings.Join(s.Selected(), ","); got != "a" {
		t.Fatalf("selected = %q, want %q", got, "a")
	}

	// Double toggle restores membership; order may shift to the end.
	s.Toggle("c")
	s.Toggle("a")
	s.Toggle("a")
	if got := strings.Join(s.Selected(), ","); got != "c,a" {
		t.Fatalf("selected = %q, want %q", got, "c,a")
	}
}

func TestToggleIgnoresUnknownItem(t *testing.T) {
	s := New([]string{"a"})
	s.Toggle("zzz")
	if len(s.Selected()) != 0 {
		t.Fatalf("selected = %v, want empty", s.Selected())
	}
}

func TestRemove(t *testing.T) {
	s := New([]string{"a", "b"})
	s.Toggle("a")
	s.Toggle("b")
	if s.Remove("missing") {
		t.Fatal("removing absent item should report false")
	}
	if !s.Remove("a") {
		t.Fatal("removing present item should report true")
	}
	if got := strings.Join(s.Selected(), ","); got != "b" {
		t.Fatalf("selected = %q, want %q", got, "b")
	}
	if got := strings.Join(s.Items(), ","); got != "a,b" {
		t.Fatalf("catalog should not shrink, got %q", got)
	}
}

func TestPopLast(t *testing.T) {
	s := New(nil)
	s.Commit("a")
	s.Commit("b")

	if last, ok := s.PopLast(); !ok || last != "b" {
		t.Fatalf("PopLast = %q,%v want b,true", last, ok)
	}
	if last, ok := s.PopLast(); !ok || last != "a" {
		t.Fatalf("PopLast = %q,%v want a,true", last, ok)
	}
	if _, ok := s.PopLast(); ok {
		t.Fatal("PopLast on empty selection should be a no-op")
	}
}

func TestSimilar(t *testing.T) {
	s := New([]string{"Apple", "Apply", "Banana", "apple"})
	got := strings.Join(s.Similar("Apple", 1), ",")
	if got != "Apply,apple" {
		t.Fatalf("similar = %q, want %q", got, "Apply,apple")
	}
	if out := s.Similar("Apple", 0); out != nil {
		t.Fatalf("maxDist 0 should disable lookup, got %v", out)
	}
	if out := s.Similar("   ", 2); out != nil {
		t.Fatalf("blank text should yield nothing, got %v", out)
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	s.Toggle("a")
	if s.Commit("a") || s.Remove("a") || len(s.Selected()) != 0 {
		t.Fatal("nil store should be inert")
	}
	if _, ok := s.PopLast(); ok {
		t.Fatal("nil store PopLast should report false")
	}
}
