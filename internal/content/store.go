// Package content exposes typed accessors over the kvstore port, one pair per
// content type. Collections are read and written as a whole; the store has no
// merge, patch or validation logic. Callers must pass the full, intended
// final collection to every save.
package content

import (
	"context"

	"atelier-cms/internal/domain"
	"atelier-cms/internal/kvstore"
)

// Storage keys, one per content type.
const (
	KeyServices        = "services"
	KeyPackages        = "packages"
	KeyTeamMembers     = "team_members"
	KeyReviews         = "reviews"
	KeyPortfolioItems  = "portfolio_items"
	KeyContactMessages = "contact_messages"
	KeyOrders          = "orders"
	KeyHomeContent     = "home_content"
	KeyContactInfo     = "contact_info"
	KeySectionImages   = "section_images"
)

// Store is the entity store for all site content.
type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) Services(ctx context.Context) ([]domain.Service, error) {
	return kvstore.Read(ctx, s.kv, KeyServices, []domain.Service{})
}

func (s *Store) SaveServices(ctx context.Context, items []domain.Service) error {
	return kvstore.Write(ctx, s.kv, KeyServices, items)
}

func (s *Store) Packages(ctx context.Context) ([]domain.Package, error) {
	return kvstore.Read(ctx, s.kv, KeyPackages, []domain.Package{})
}

func (s *Store) SavePackages(ctx context.Context, items []domain.Package) error {
	return kvstore.Write(ctx, s.kv, KeyPackages, items)
}

func (s *Store) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return kvstore.Read(ctx, s.kv, KeyTeamMembers, []domain.TeamMember{})
}

func (s *Store) SaveTeamMembers(ctx context.Context, items []domain.TeamMember) error {
	return kvstore.Write(ctx, s.kv, KeyTeamMembers, items)
}

func (s *Store) Reviews(ctx context.Context) ([]domain.Review, error) {
	return kvstore.Read(ctx, s.kv, KeyReviews, []domain.Review{})
}

func (s *Store) SaveReviews(ctx context.Context, items []domain.Review) error {
	return kvstore.Write(ctx, s.kv, KeyReviews, items)
}

func (s *Store) PortfolioItems(ctx context.Context) ([]domain.PortfolioItem, error) {
	return kvstore.Read(ctx, s.kv, KeyPortfolioItems, []domain.PortfolioItem{})
}

func (s *Store) SavePortfolioItems(ctx context.Context, items []domain.PortfolioItem) error {
	return kvstore.Write(ctx, s.kv, KeyPortfolioItems, items)
}

func (s *Store) ContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return kvstore.Read(ctx, s.kv, KeyContactMessages, []domain.ContactMessage{})
}

func (s *Store) SaveContactMessages(ctx context.Context, items []domain.ContactMessage) error {
	return kvstore.Write(ctx, s.kv, KeyContactMessages, items)
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	return kvstore.Read(ctx, s.kv, KeyOrders, []domain.Order{})
}

func (s *Store) SaveOrders(ctx context.Context, items []domain.Order) error {
	return kvstore.Write(ctx, s.kv, KeyOrders, items)
}

// Singletons default inline on empty reads; the default is never persisted
// until an explicit save.

func (s *Store) HomeContent(ctx context.Context) (domain.HomeContent, error) {
	return kvstore.Read(ctx, s.kv, KeyHomeContent, domain.DefaultHomeContent())
}

func (s *Store) SaveHomeContent(ctx context.Context, v domain.HomeContent) error {
	return kvstore.Write(ctx, s.kv, KeyHomeContent, v)
}

func (s *Store) ContactInfo(ctx context.Context) (domain.ContactInfo, error) {
	return kvstore.Read(ctx, s.kv, KeyContactInfo, domain.DefaultContactInfo())
}

func (s *Store) SaveContactInfo(ctx context.Context, v domain.ContactInfo) error {
	return kvstore.Write(ctx, s.kv, KeyContactInfo, v)
}

func (s *Store) SectionImages(ctx context.Context) (domain.SectionImages, error) {
	return kvstore.Read(ctx, s.kv, KeySectionImages, domain.DefaultSectionImages())
}

func (s *Store) SaveSectionImages(ctx context.Context, v domain.SectionImages) error {
	return kvstore.Write(ctx, s.kv, KeySectionImages, v)
}
