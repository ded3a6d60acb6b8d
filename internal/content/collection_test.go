package content

import (
	"testing"

	"atelier-cms/internal/domain"
)

func TestNewIDUniqueness(t *testing.T) {
	const n = 100
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := NewID()
		if id == "" {
			t.Fatalf("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestReplaceKeepsOrderAndNeighbors(t *testing.T) {
	items := []domain.Service{
		{ID: "a", Title: "one"},
		{ID: "b", Title: "two"},
		{ID: "c", Title: "three"},
	}

	out, found := Replace(items, domain.Service{ID: "b", Title: "updated"})
	if !found {
		t.Fatalf("expected match for id b")
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out))
	}
	if out[0].Title != "one" || out[2].Title != "three" {
		t.Fatalf("neighbors must be untouched: %#v", out)
	}
	if out[1].ID != "b" || out[1].Title != "updated" {
		t.Fatalf("expected updated element in place, got %#v", out[1])
	}
	if items[1].Title != "two" {
		t.Fatalf("input slice must not be mutated")
	}
}

func TestReplaceUnknownID(t *testing.T) {
	items := []domain.Service{{ID: "a"}}
	out, found := Replace(items, domain.Service{ID: "zz"})
	if found {
		t.Fatalf("expected no match")
	}
	if len(out) != 1 {
		t.Fatalf("collection must be unchanged, got %#v", out)
	}
}

func TestRemoveExactlyOnePreservesOrder(t *testing.T) {
	items := []domain.Review{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
		{ID: "d"},
	}

	out, found := Remove(items, "b")
	if !found {
		t.Fatalf("expected match for id b")
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out))
	}
	want := []string{"a", "c", "d"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("expected order %v, got %#v", want, out)
		}
	}
}

func TestRemoveUnknownID(t *testing.T) {
	items := []domain.Review{{ID: "a"}}
	out, found := Remove(items, "zz")
	if found {
		t.Fatalf("expected no match")
	}
	if len(out) != 1 {
		t.Fatalf("collection must be unchanged, got %#v", out)
	}
}
