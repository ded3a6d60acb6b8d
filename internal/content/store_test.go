package content

import (
	"context"
	"reflect"
	"testing"

	"atelier-cms/internal/domain"
	"atelier-cms/internal/kvstore"
)

func newTestStore() (*Store, *kvstore.MemoryStore) {
	mem := kvstore.NewMemoryStore()
	return New(mem), mem
}

func TestCollectionsDefaultToEmptyWithoutPersisting(t *testing.T) {
	st, mem := newTestStore()
	ctx := context.Background()

	services, err := st.Services(ctx)
	if err != nil {
		t.Fatalf("services: %v", err)
	}
	if services == nil || len(services) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", services)
	}
	if mem.Has(KeyServices) {
		t.Fatalf("default read must not persist")
	}

	orders, err := st.Orders(ctx)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", orders)
	}
	if mem.Has(KeyOrders) {
		t.Fatalf("default read must not persist")
	}
}

func TestServicesRoundTrip(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	in := []domain.Service{
		{ID: "1", Title: "Brand Identity", Description: "d", Icon: "palette", Features: []string{"Logo"}},
		{ID: "2", Title: "Web", Description: "d2", Icon: "code", Price: "from $4,000", Features: []string{}},
	}
	if err := st.SaveServices(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Services(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", in, got)
	}
}

func TestPackagesSaveThenClear(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	in := []domain.Package{{
		ID:          "1",
		Name:        "Starter",
		Description: "d",
		Price:       "$1,999",
		Duration:    "2-3 weeks",
		Features:    []string{"A", "B"},
		Popular:     false,
	}}
	if err := st.SavePackages(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Packages(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("expected exactly the saved package, got %#v", got)
	}

	if err := st.SavePackages(ctx, []domain.Package{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, err = st.Packages(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection after clearing, got %#v", got)
	}
}

func TestReviewRatingIsNotValidated(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	// The store is deliberately permissive: out-of-range ratings persist
	// unchanged instead of being rejected or clamped.
	in := []domain.Review{{ID: "1", Name: "n", Rating: 7, Approved: true}}
	if err := st.SaveReviews(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Reviews(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].Rating != 7 {
		t.Fatalf("expected rating 7 to persist unchanged, got %#v", got)
	}
}

func TestContactInfoDefaultsWithoutPersisting(t *testing.T) {
	st, mem := newTestStore()

	info, err := st.ContactInfo(context.Background())
	if err != nil {
		t.Fatalf("contact info: %v", err)
	}
	if info.Email != "hello@atelierstudio.co" {
		t.Fatalf("expected default email, got %q", info.Email)
	}
	if mem.Has(KeyContactInfo) {
		t.Fatalf("singleton default must not be persisted on read")
	}
}

func TestSingletonRoundTrip(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	in := domain.HomeContent{
		HeroTitle:        "Custom title",
		HeroSubtitle:     "sub",
		HeroImage:        "/img.jpg",
		CTAButtonText:    "Go",
		CTAButtonLink:    "/contact",
		AboutText:        "about",
		FeaturedServices: []string{"1", "2"},
	}
	if err := st.SaveHomeContent(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.HomeContent(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", in, got)
	}
}

func TestCorruptCollectionFailsLoudly(t *testing.T) {
	st, mem := newTestStore()
	ctx := context.Background()

	if err := mem.Set(ctx, KeyServices, []byte("corrupt{")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := st.Services(ctx); err == nil {
		t.Fatalf("expected error reading corrupt collection")
	}
}
