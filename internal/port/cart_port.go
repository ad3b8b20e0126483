package port

import (
	"context"

	"github.com/nikolayk812/foodgram/internal/domain"
)

type CartRepository interface {
	// GetOrCreateOpenCart returns the owner's open cart, creating it when absent.
	// Inside a transaction the returned cart row stays locked until commit.
	GetOrCreateOpenCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// GetOpenCart returns domain.ErrCartNotFound when the owner has no open cart.
	GetOpenCart(ctx context.Context, ownerID string, forUpdate bool) (domain.Cart, error)
	AddRecipe(ctx context.Context, cartID, recipeID int64) error
	RemoveRecipe(ctx context.Context, cartID, recipeID int64) error
	// CloseCart marks the cart downloaded. The next cart is created lazily.
	CloseCart(ctx context.Context, cartID int64) error
	ListIngredientLines(ctx context.Context, cartID int64) ([]domain.IngredientLine, error)
	ListCarts(ctx context.Context, ownerID string) ([]domain.Cart, error)
}
