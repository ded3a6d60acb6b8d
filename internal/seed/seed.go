// Package seed bootstraps empty collections with sample content on first run.
package seed

import (
	"context"
	"fmt"

	"atelier-cms/internal/content"
)

// Ensure populates every empty collection with its sample dataset. Each
// collection is checked independently, so a collection the admin already
// filled is never touched and a failed pass is safe to retry later. Calling
// Ensure again after a successful pass is a no-op. Singletons are not seeded;
// their accessors default inline without writing.
func Ensure(ctx context.Context, store *content.Store) error {
	if err := seedServices(ctx, store); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := seedPackages(ctx, store); err != nil {
		return fmt.Errorf("seed packages: %w", err)
	}
	if err := seedTeamMembers(ctx, store); err != nil {
		return fmt.Errorf("seed team members: %w", err)
	}
	if err := seedReviews(ctx, store); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	if err := seedPortfolioItems(ctx, store); err != nil {
		return fmt.Errorf("seed portfolio items: %w", err)
	}
	if err := seedContactMessages(ctx, store); err != nil {
		return fmt.Errorf("seed contact messages: %w", err)
	}
	if err := seedOrders(ctx, store); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	return nil
}

func seedServices(ctx context.Context, store *content.Store) error {
	items, err := store.Services(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SaveServices(ctx, sampleServices())
}

func seedPackages(ctx context.Context, store *content.Store) error {
	items, err := store.Packages(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SavePackages(ctx, samplePackages())
}

func seedTeamMembers(ctx context.Context, store *content.Store) error {
	items, err := store.TeamMembers(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SaveTeamMembers(ctx, sampleTeamMembers())
}

func seedReviews(ctx context.Context, store *content.Store) error {
	items, err := store.Reviews(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SaveReviews(ctx, sampleReviews())
}

func seedPortfolioItems(ctx context.Context, store *content.Store) error {
	items, err := store.PortfolioItems(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SavePortfolioItems(ctx, samplePortfolioItems())
}

func seedContactMessages(ctx context.Context, store *content.Store) error {
	items, err := store.ContactMessages(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SaveContactMessages(ctx, sampleContactMessages())
}

func seedOrders(ctx context.Context, store *content.Store) error {
	items, err := store.Orders(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return store.SaveOrders(ctx, sampleOrders())
}
