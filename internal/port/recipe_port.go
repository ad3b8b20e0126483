package port

import (
	"context"

	"github.com/nikolayk812/foodgram/internal/domain"
)

type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe domain.NewRecipe) (domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID int64, recipe domain.NewRecipe) (domain.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error
	GetRecipe(ctx context.Context, recipeID int64) (domain.Recipe, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	SearchIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	UpsertIngredient(ctx context.Context, name, measurementUnit string) (domain.Ingredient, error)
	CreateTag(ctx context.Context, tag domain.Tag) (domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, ownerID string, recipeID int64) error
	RemoveFavorite(ctx context.Context, ownerID string, recipeID int64) error
}

type SubscriptionRepository interface {
	Subscribe(ctx context.Context, followerID, authorID string) error
	Unsubscribe(ctx context.Context, followerID, authorID string) error
	ListSubscriptions(ctx context.Context, followerID, authorID string) ([]domain.Subscription, error)
}
