package seed

import (
	"context"
	"reflect"
	"testing"

	"atelier-cms/internal/content"
	"atelier-cms/internal/domain"
	"atelier-cms/internal/kvstore"
)

func TestEnsurePopulatesEveryCollection(t *testing.T) {
	mem := kvstore.NewMemoryStore()
	st := content.New(mem)
	ctx := context.Background()

	if err := Ensure(ctx, st); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	counts := map[string]int{}
	if items, err := st.Services(ctx); err == nil {
		counts["services"] = len(items)
	}
	if items, err := st.Packages(ctx); err == nil {
		counts["packages"] = len(items)
	}
	if items, err := st.TeamMembers(ctx); err == nil {
		counts["team members"] = len(items)
	}
	if items, err := st.Reviews(ctx); err == nil {
		counts["reviews"] = len(items)
	}
	if items, err := st.PortfolioItems(ctx); err == nil {
		counts["portfolio items"] = len(items)
	}
	if items, err := st.ContactMessages(ctx); err == nil {
		counts["contact messages"] = len(items)
	}
	if items, err := st.Orders(ctx); err == nil {
		counts["orders"] = len(items)
	}

	for name, n := range counts {
		if n == 0 {
			t.Fatalf("expected %s to be seeded", name)
		}
	}
	if len(counts) != 7 {
		t.Fatalf("expected 7 seeded collections, read %d", len(counts))
	}
}

func TestEnsureDoesNotSeedSingletons(t *testing.T) {
	mem := kvstore.NewMemoryStore()
	st := content.New(mem)

	if err := Ensure(context.Background(), st); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	for _, key := range []string{content.KeyHomeContent, content.KeyContactInfo, content.KeySectionImages} {
		if mem.Has(key) {
			t.Fatalf("singleton %q must not be written by seeding", key)
		}
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	mem := kvstore.NewMemoryStore()
	st := content.New(mem)
	ctx := context.Background()

	if err := Ensure(ctx, st); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	first, err := st.Services(ctx)
	if err != nil {
		t.Fatalf("services: %v", err)
	}

	if err := Ensure(ctx, st); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	second, err := st.Services(ctx)
	if err != nil {
		t.Fatalf("services: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second pass must be a no-op")
	}
}

func TestEnsureLeavesPrePopulatedCollectionsUntouched(t *testing.T) {
	mem := kvstore.NewMemoryStore()
	st := content.New(mem)
	ctx := context.Background()

	custom := []domain.Service{{ID: "mine", Title: "Custom service", Features: []string{}}}
	if err := st.SaveServices(ctx, custom); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := Ensure(ctx, st); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	services, err := st.Services(ctx)
	if err != nil {
		t.Fatalf("services: %v", err)
	}
	if !reflect.DeepEqual(services, custom) {
		t.Fatalf("pre-populated collection was touched: %#v", services)
	}

	// The other collections still seed independently.
	packages, err := st.Packages(ctx)
	if err != nil {
		t.Fatalf("packages: %v", err)
	}
	if len(packages) == 0 {
		t.Fatalf("expected packages to be seeded")
	}
}
