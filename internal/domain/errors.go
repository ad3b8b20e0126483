package domain

import "errors"

var (
	ErrAlreadyInCart       = errors.New("recipe is already in the cart")
	ErrNotInCart           = errors.New("recipe is not in the cart")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrFontResourceMissing = errors.New("font resource missing")
	ErrCartConflict        = errors.New("concurrent cart creation conflict")
	ErrCartNotFound        = errors.New("cart not found")
	ErrCartClosed          = errors.New("cart is already downloaded")
	ErrAlreadyFavorited    = errors.New("recipe is already in favorites")
	ErrNotFavorited        = errors.New("recipe is not in favorites")
	ErrInvalidRecipe       = errors.New("invalid recipe")
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrTagNotFound         = errors.New("tag not found")
	ErrForbidden           = errors.New("only the author may change the recipe")
	ErrSelfSubscription    = errors.New("cannot subscribe to yourself")
	ErrAlreadySubscribed   = errors.New("already subscribed to the author")
	ErrNotSubscribed       = errors.New("not subscribed to the author")
)
