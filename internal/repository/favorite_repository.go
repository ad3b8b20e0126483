package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/foodgram/internal/db"
	"github.com/nikolayk812/foodgram/internal/domain"
)

type favoriteRepository struct {
	q *db.Queries
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, ownerID string, recipeID int64) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.AddFavorite(ctx, db.AddFavoriteParams{
		OwnerID:  ownerID,
		RecipeID: recipeID,
	})
	if isPgError(err, foreignKeyViolation) {
		return domain.ErrRecipeNotFound
	}
	if err != nil {
		return fmt.Errorf("q.AddFavorite: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAlreadyFavorited
	}

	return nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, ownerID string, recipeID int64) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteFavorite(ctx, db.DeleteFavoriteParams{
		OwnerID:  ownerID,
		RecipeID: recipeID,
	})
	if err != nil {
		return fmt.Errorf("q.DeleteFavorite: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFavorited
	}

	return nil
}
