package port

import "context"

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Carts() CartRepository
	Recipes() RecipeRepository
	Favorites() FavoriteRepository
	Subscriptions() SubscriptionRepository

	// InTx runs fn in a transaction. Calling InTx on a store that is already
	// bound to a transaction reuses it.
	InTx(ctx context.Context, fn func(Store) error) error
}
