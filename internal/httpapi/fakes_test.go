package httpapi_test

import (
	"context"
	"sync"

	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/service"
)

// fakeCarts records the owner of every call and answers with canned values.
type fakeCarts struct {
	mu     sync.Mutex
	owners []string

	summary   domain.RecipeSummary
	view      service.CartView
	history   []domain.Cart
	export    service.Export
	err       error
	exportErr error
	formats   []service.Format
}

func (f *fakeCarts) record(ownerID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.owners = append(f.owners, ownerID)
}

func (f *fakeCarts) AddToCart(_ context.Context, ownerID string, recipeID int64) (domain.RecipeSummary, error) {
	f.record(ownerID)
	if f.err != nil {
		return domain.RecipeSummary{}, f.err
	}
	s := f.summary
	s.ID = recipeID
	return s, nil
}

func (f *fakeCarts) RemoveFromCart(_ context.Context, ownerID string, _ int64) error {
	f.record(ownerID)
	return f.err
}

func (f *fakeCarts) Preview(_ context.Context, ownerID string) (service.CartView, error) {
	f.record(ownerID)
	return f.view, f.err
}

func (f *fakeCarts) History(_ context.Context, ownerID string) ([]domain.Cart, error) {
	f.record(ownerID)
	return f.history, f.err
}

func (f *fakeCarts) Export(_ context.Context, ownerID string, format service.Format) (service.Export, error) {
	f.record(ownerID)
	f.mu.Lock()
	f.formats = append(f.formats, format)
	f.mu.Unlock()
	if f.exportErr != nil {
		return service.Export{}, f.exportErr
	}
	return f.export, nil
}

type fakeCatalog struct {
	recipes     []domain.Recipe
	ingredients []domain.Ingredient
	tags        []domain.Tag
	err         error

	lastFilter       domain.RecipeFilter
	lastNew          domain.NewRecipe
	lastPrefix       string
	lastOwner        string
	lastRecipesLimit int
	subscriptions    []domain.Subscription
}

func (f *fakeCatalog) CreateRecipe(_ context.Context, recipe domain.NewRecipe) (domain.Recipe, error) {
	f.lastNew = recipe
	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}
	return domain.Recipe{ID: 42, AuthorID: recipe.AuthorID, Name: recipe.Name, CookingTime: recipe.CookingTime}, nil
}

func (f *fakeCatalog) GetRecipe(_ context.Context, recipeID int64) (domain.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID == recipeID {
			return r, nil
		}
	}
	return domain.Recipe{}, domain.ErrRecipeNotFound
}

func (f *fakeCatalog) ListRecipes(_ context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	f.lastFilter = filter
	return f.recipes, f.err
}

func (f *fakeCatalog) SearchIngredients(_ context.Context, namePrefix string) ([]domain.Ingredient, error) {
	f.lastPrefix = namePrefix
	return f.ingredients, f.err
}

func (f *fakeCatalog) ListTags(context.Context) ([]domain.Tag, error) {
	return f.tags, f.err
}

func (f *fakeCatalog) AddFavorite(ctx context.Context, _ string, recipeID int64) (domain.RecipeSummary, error) {
	r, err := f.GetRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeSummary{}, err
	}
	return r.Summary(), f.err
}

func (f *fakeCatalog) RemoveFavorite(_ context.Context, _ string, _ int64) error {
	return f.err
}

// UpdateRecipe and DeleteRecipe allow only the author of a known recipe.
func (f *fakeCatalog) UpdateRecipe(ctx context.Context, ownerID string, recipeID int64, recipe domain.NewRecipe) (domain.Recipe, error) {
	f.lastOwner, f.lastNew = ownerID, recipe
	r, err := f.authored(ctx, ownerID, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}
	r.Name, r.Text, r.CookingTime = recipe.Name, recipe.Text, recipe.CookingTime
	return r, nil
}

func (f *fakeCatalog) DeleteRecipe(ctx context.Context, ownerID string, recipeID int64) error {
	f.lastOwner = ownerID
	_, err := f.authored(ctx, ownerID, recipeID)
	return err
}

func (f *fakeCatalog) authored(ctx context.Context, ownerID string, recipeID int64) (domain.Recipe, error) {
	r, err := f.GetRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if r.AuthorID != ownerID {
		return domain.Recipe{}, domain.ErrForbidden
	}
	return r, nil
}

func (f *fakeCatalog) Subscribe(_ context.Context, followerID, authorID string, recipesLimit int) (domain.Subscription, error) {
	f.lastOwner, f.lastRecipesLimit = followerID, recipesLimit
	if followerID == authorID {
		return domain.Subscription{}, domain.ErrSelfSubscription
	}
	if f.err != nil {
		return domain.Subscription{}, f.err
	}
	return domain.Subscription{AuthorID: authorID}, nil
}

func (f *fakeCatalog) Unsubscribe(_ context.Context, followerID, _ string) error {
	f.lastOwner = followerID
	return f.err
}

func (f *fakeCatalog) Subscriptions(_ context.Context, followerID string, recipesLimit int) ([]domain.Subscription, error) {
	f.lastOwner, f.lastRecipesLimit = followerID, recipesLimit
	return f.subscriptions, f.err
}
