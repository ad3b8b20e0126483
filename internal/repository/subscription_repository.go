package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/foodgram/internal/db"
	"github.com/nikolayk812/foodgram/internal/domain"
)

type subscriptionRepository struct {
	q *db.Queries
}

func (r *subscriptionRepository) Subscribe(ctx context.Context, followerID, authorID string) error {
	if followerID == "" || authorID == "" {
		return fmt.Errorf("followerID or authorID is empty")
	}

	rowsAffected, err := r.q.AddSubscription(ctx, db.AddSubscriptionParams{
		FollowerID: followerID,
		AuthorID:   authorID,
	})
	if isPgError(err, checkViolation) {
		return domain.ErrSelfSubscription
	}
	if err != nil {
		return fmt.Errorf("q.AddSubscription: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAlreadySubscribed
	}

	return nil
}

func (r *subscriptionRepository) Unsubscribe(ctx context.Context, followerID, authorID string) error {
	if followerID == "" || authorID == "" {
		return fmt.Errorf("followerID or authorID is empty")
	}

	rowsAffected, err := r.q.DeleteSubscription(ctx, db.DeleteSubscriptionParams{
		FollowerID: followerID,
		AuthorID:   authorID,
	})
	if err != nil {
		return fmt.Errorf("q.DeleteSubscription: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotSubscribed
	}

	return nil
}

// ListSubscriptions returns the authors followed by followerID, newest
// subscription first. A non-empty authorID narrows the result to that author.
// Recipes are left for the caller to fill in.
func (r *subscriptionRepository) ListSubscriptions(ctx context.Context, followerID, authorID string) ([]domain.Subscription, error) {
	if followerID == "" {
		return nil, fmt.Errorf("followerID is empty")
	}

	rows, err := r.q.ListSubscriptions(ctx, db.ListSubscriptionsParams{
		FollowerID: followerID,
		AuthorID:   authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListSubscriptions: %w", err)
	}

	subscriptions := make([]domain.Subscription, 0, len(rows))
	for _, row := range rows {
		subscriptions = append(subscriptions, domain.Subscription{
			AuthorID:     row.AuthorID,
			RecipesCount: int(row.RecipesCount),
		})
	}

	return subscriptions, nil
}
