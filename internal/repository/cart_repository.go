package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodgram/internal/db"
	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/port"
)

// openCartAttempts bounds the insert-then-lock loop in GetOrCreateOpenCart.
// A miss means a concurrent export closed the cart in between.
const openCartAttempts = 2

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *cartRepository) GetOrCreateOpenCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Cart, error) {
		for range openCartAttempts {
			if err := q.InsertOpenCart(ctx, ownerID); err != nil {
				return domain.Cart{}, fmt.Errorf("q.InsertOpenCart: %w", err)
			}

			dbCart, err := q.GetOpenCartForUpdate(ctx, ownerID)
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			if err != nil {
				return domain.Cart{}, fmt.Errorf("q.GetOpenCartForUpdate: %w", err)
			}

			return withRecipeIDs(ctx, q, dbCart)
		}

		return domain.Cart{}, domain.ErrCartConflict
	})
}

func (r *cartRepository) GetOpenCart(ctx context.Context, ownerID string, forUpdate bool) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	get := r.q.GetOpenCart
	if forUpdate {
		get = r.q.GetOpenCartForUpdate
	}

	dbCart, err := get(ctx, ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetOpenCart: %w", err)
	}

	return withRecipeIDs(ctx, r.q, dbCart)
}

func (r *cartRepository) AddRecipe(ctx context.Context, cartID, recipeID int64) error {
	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if err := lockOpenCart(ctx, q, cartID); err != nil {
			return struct{}{}, err
		}

		// blocks a concurrent DeleteRecipe until this membership is committed
		_, err := q.LockLiveRecipe(ctx, recipeID)
		if errors.Is(err, pgx.ErrNoRows) {
			return struct{}{}, domain.ErrRecipeNotFound
		}
		if err != nil {
			return struct{}{}, fmt.Errorf("q.LockLiveRecipe: %w", err)
		}

		rowsAffected, err := q.AddCartRecipe(ctx, db.AddCartRecipeParams{
			CartID:   cartID,
			RecipeID: recipeID,
		})
		if isPgError(err, foreignKeyViolation) {
			return struct{}{}, domain.ErrRecipeNotFound
		}
		if err != nil {
			return struct{}{}, fmt.Errorf("q.AddCartRecipe: %w", err)
		}
		if rowsAffected == 0 {
			return struct{}{}, domain.ErrAlreadyInCart
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) RemoveRecipe(ctx context.Context, cartID, recipeID int64) error {
	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if err := lockOpenCart(ctx, q, cartID); err != nil {
			return struct{}{}, err
		}

		rowsAffected, err := q.DeleteCartRecipe(ctx, db.DeleteCartRecipeParams{
			CartID:   cartID,
			RecipeID: recipeID,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCartRecipe: %w", err)
		}
		if rowsAffected == 0 {
			return struct{}{}, domain.ErrNotInCart
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) CloseCart(ctx context.Context, cartID int64) error {
	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if err := lockOpenCart(ctx, q, cartID); err != nil {
			return struct{}{}, err
		}

		rowsAffected, err := q.MarkCartDownloaded(ctx, cartID)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.MarkCartDownloaded: %w", err)
		}
		if rowsAffected == 0 {
			return struct{}{}, domain.ErrCartClosed
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) ListIngredientLines(ctx context.Context, cartID int64) ([]domain.IngredientLine, error) {
	rows, err := r.q.ListCartIngredientLines(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCartIngredientLines: %w", err)
	}

	return mapIngredientLineRowsToDomain(rows), nil
}

func (r *cartRepository) ListCarts(ctx context.Context, ownerID string) ([]domain.Cart, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	dbCarts, err := r.q.ListCarts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCarts: %w", err)
	}

	carts := make([]domain.Cart, 0, len(dbCarts))
	for _, dbCart := range dbCarts {
		cart, err := withRecipeIDs(ctx, r.q, dbCart)
		if err != nil {
			return nil, err
		}
		carts = append(carts, cart)
	}

	return carts, nil
}

// lockOpenCart takes the row lock on the cart and rejects downloaded carts,
// so membership of a closed cart never changes.
func lockOpenCart(ctx context.Context, q *db.Queries, cartID int64) error {
	dbCart, err := q.GetCartForUpdate(ctx, cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCartNotFound
	}
	if err != nil {
		return fmt.Errorf("q.GetCartForUpdate: %w", err)
	}
	if dbCart.Downloaded {
		return domain.ErrCartClosed
	}

	return nil
}

func withRecipeIDs(ctx context.Context, q *db.Queries, dbCart db.Cart) (domain.Cart, error) {
	recipeIDs, err := q.ListCartRecipeIDs(ctx, dbCart.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.ListCartRecipeIDs: %w", err)
	}

	cart := mapCartToDomain(dbCart)
	cart.RecipeIDs = recipeIDs

	return cart, nil
}

func mapCartToDomain(c db.Cart) domain.Cart {
	return domain.Cart{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Downloaded: c.Downloaded,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func mapIngredientLineRowsToDomain(rows []db.ListCartIngredientLinesRow) []domain.IngredientLine {
	lines := make([]domain.IngredientLine, 0, len(rows))

	for _, row := range rows {
		lines = append(lines, domain.IngredientLine{
			RecipeID: row.RecipeID,
			Key: domain.IngredientKey{
				Name:            row.Name,
				MeasurementUnit: row.MeasurementUnit,
			},
			Amount: row.Amount,
		})
	}

	return lines
}
