package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodgram/internal/db"
	"github.com/nikolayk812/foodgram/internal/port"
)

type store struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) port.Store {
	return &store{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewStoreWithTx(tx pgx.Tx) port.Store {
	return &store{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (s *store) Carts() port.CartRepository {
	return &cartRepository{q: s.q, pool: s.pool}
}

func (s *store) Recipes() port.RecipeRepository {
	return &recipeRepository{q: s.q, pool: s.pool}
}

func (s *store) Favorites() port.FavoriteRepository {
	return &favoriteRepository{q: s.q}
}

func (s *store) Subscriptions() port.SubscriptionRepository {
	return &subscriptionRepository{q: s.q}
}

func (s *store) InTx(ctx context.Context, fn func(port.Store) error) error {
	_, err := withTx(ctx, s.pool, s.q, func(q *db.Queries) (struct{}, error) {
		return struct{}{}, fn(&store{q: q})
	})
	return err
}
