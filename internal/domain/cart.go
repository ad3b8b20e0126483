package domain

import (
	"time"
)

// CartState is the lifecycle state of a shopping cart.
type CartState int

const (
	CartOpen CartState = iota
	CartClosed
)

func (s CartState) String() string {
	switch s {
	case CartOpen:
		return "open"
	case CartClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Cart is a user's shopping cart. A user has at most one open cart;
// once downloaded the cart is frozen and a new one is opened lazily.
type Cart struct {
	ID         int64
	OwnerID    string
	Downloaded bool
	RecipeIDs  []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Cart) State() CartState {
	if c.Downloaded {
		return CartClosed
	}
	return CartOpen
}
