// Package backup exports the whole content store to a single JSON bundle and
// restores it, the admin panel's download/restore affordance.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"atelier-cms/internal/content"
	"atelier-cms/internal/domain"
)

// Bundle is the full site content as one document. Singletons carry their
// effective value, so exporting a fresh store captures the defaults.
type Bundle struct {
	Services        []domain.Service        `json:"services"`
	Packages        []domain.Package        `json:"packages"`
	TeamMembers     []domain.TeamMember     `json:"teamMembers"`
	Reviews         []domain.Review         `json:"reviews"`
	PortfolioItems  []domain.PortfolioItem  `json:"portfolioItems"`
	ContactMessages []domain.ContactMessage `json:"contactMessages"`
	Orders          []domain.Order          `json:"orders"`
	HomeContent     domain.HomeContent      `json:"homeContent"`
	ContactInfo     domain.ContactInfo      `json:"contactInfo"`
	SectionImages   domain.SectionImages    `json:"sectionImages"`
}

// Export reads every collection and singleton from the store.
func Export(ctx context.Context, st *content.Store) (*Bundle, error) {
	var (
		b   Bundle
		err error
	)
	if b.Services, err = st.Services(ctx); err != nil {
		return nil, fmt.Errorf("export services: %w", err)
	}
	if b.Packages, err = st.Packages(ctx); err != nil {
		return nil, fmt.Errorf("export packages: %w", err)
	}
	if b.TeamMembers, err = st.TeamMembers(ctx); err != nil {
		return nil, fmt.Errorf("export team members: %w", err)
	}
	if b.Reviews, err = st.Reviews(ctx); err != nil {
		return nil, fmt.Errorf("export reviews: %w", err)
	}
	if b.PortfolioItems, err = st.PortfolioItems(ctx); err != nil {
		return nil, fmt.Errorf("export portfolio items: %w", err)
	}
	if b.ContactMessages, err = st.ContactMessages(ctx); err != nil {
		return nil, fmt.Errorf("export contact messages: %w", err)
	}
	if b.Orders, err = st.Orders(ctx); err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}
	if b.HomeContent, err = st.HomeContent(ctx); err != nil {
		return nil, fmt.Errorf("export home content: %w", err)
	}
	if b.ContactInfo, err = st.ContactInfo(ctx); err != nil {
		return nil, fmt.Errorf("export contact info: %w", err)
	}
	if b.SectionImages, err = st.SectionImages(ctx); err != nil {
		return nil, fmt.Errorf("export section images: %w", err)
	}
	return &b, nil
}

// Import persists every part of the bundle wholesale, replacing whatever the
// store currently holds.
func Import(ctx context.Context, st *content.Store, b *Bundle) error {
	if err := st.SaveServices(ctx, orEmpty(b.Services)); err != nil {
		return fmt.Errorf("import services: %w", err)
	}
	if err := st.SavePackages(ctx, orEmpty(b.Packages)); err != nil {
		return fmt.Errorf("import packages: %w", err)
	}
	if err := st.SaveTeamMembers(ctx, orEmpty(b.TeamMembers)); err != nil {
		return fmt.Errorf("import team members: %w", err)
	}
	if err := st.SaveReviews(ctx, orEmpty(b.Reviews)); err != nil {
		return fmt.Errorf("import reviews: %w", err)
	}
	if err := st.SavePortfolioItems(ctx, orEmpty(b.PortfolioItems)); err != nil {
		return fmt.Errorf("import portfolio items: %w", err)
	}
	if err := st.SaveContactMessages(ctx, orEmpty(b.ContactMessages)); err != nil {
		return fmt.Errorf("import contact messages: %w", err)
	}
	if err := st.SaveOrders(ctx, orEmpty(b.Orders)); err != nil {
		return fmt.Errorf("import orders: %w", err)
	}
	if err := st.SaveHomeContent(ctx, b.HomeContent); err != nil {
		return fmt.Errorf("import home content: %w", err)
	}
	if err := st.SaveContactInfo(ctx, b.ContactInfo); err != nil {
		return fmt.Errorf("import contact info: %w", err)
	}
	if err := st.SaveSectionImages(ctx, b.SectionImages); err != nil {
		return fmt.Errorf("import section images: %w", err)
	}
	return nil
}

// WriteTo exports the store as indented JSON.
func WriteTo(ctx context.Context, st *content.Store, w io.Writer) error {
	b, err := Export(ctx, st)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ReadFrom restores the store from a JSON bundle.
func ReadFrom(ctx context.Context, st *content.Store, r io.Reader) error {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return fmt.Errorf("decode bundle: %w", err)
	}
	return Import(ctx, st, &b)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
