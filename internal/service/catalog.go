package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/port"
	"go.uber.org/zap"
)

// CatalogService reads and publishes recipes and keeps favorites.
type CatalogService struct {
	store  port.Store
	logger *zap.Logger
}

func NewCatalogService(store port.Store, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger.Named("catalog"),
	}
}

func (s *CatalogService) CreateRecipe(ctx context.Context, recipe domain.NewRecipe) (domain.Recipe, error) {
	if recipe.AuthorID == "" {
		return domain.Recipe{}, domain.ErrUnauthenticated
	}

	created, err := s.store.Recipes().CreateRecipe(ctx, recipe)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("recipes.CreateRecipe: %w", err)
	}

	s.logger.Info("recipe published", zap.Int64("recipe_id", created.ID), zap.String("author_id", created.AuthorID))

	return created, nil
}

// UpdateRecipe replaces the recipe on behalf of its author.
func (s *CatalogService) UpdateRecipe(ctx context.Context, ownerID string, recipeID int64, recipe domain.NewRecipe) (domain.Recipe, error) {
	if ownerID == "" {
		return domain.Recipe{}, domain.ErrUnauthenticated
	}
	recipe.AuthorID = ownerID

	var updated domain.Recipe
	err := s.store.InTx(ctx, func(tx port.Store) error {
		if err := checkAuthor(ctx, tx, ownerID, recipeID); err != nil {
			return err
		}

		var err error
		updated, err = tx.Recipes().UpdateRecipe(ctx, recipeID, recipe)
		if err != nil {
			return fmt.Errorf("recipes.UpdateRecipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Recipe{}, err
	}

	s.logger.Info("recipe updated", zap.Int64("recipe_id", recipeID), zap.String("author_id", ownerID))

	return updated, nil
}

// DeleteRecipe removes the recipe from the catalog on behalf of its author.
// Carts that were already downloaded keep it.
func (s *CatalogService) DeleteRecipe(ctx context.Context, ownerID string, recipeID int64) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	err := s.store.InTx(ctx, func(tx port.Store) error {
		if err := checkAuthor(ctx, tx, ownerID, recipeID); err != nil {
			return err
		}

		if err := tx.Recipes().DeleteRecipe(ctx, recipeID); err != nil {
			return fmt.Errorf("recipes.DeleteRecipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("recipe deleted", zap.Int64("recipe_id", recipeID), zap.String("author_id", ownerID))

	return nil
}

func checkAuthor(ctx context.Context, store port.Store, ownerID string, recipeID int64) error {
	recipe, err := store.Recipes().GetRecipe(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("recipes.GetRecipe: %w", err)
	}
	if recipe.AuthorID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *CatalogService) GetRecipe(ctx context.Context, recipeID int64) (domain.Recipe, error) {
	recipe, err := s.store.Recipes().GetRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("recipes.GetRecipe: %w", err)
	}
	return recipe, nil
}

func (s *CatalogService) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	recipes, err := s.store.Recipes().ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("recipes.ListRecipes: %w", err)
	}
	return recipes, nil
}

func (s *CatalogService) SearchIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	ingredients, err := s.store.Recipes().SearchIngredients(ctx, namePrefix)
	if err != nil {
		return nil, fmt.Errorf("recipes.SearchIngredients: %w", err)
	}
	return ingredients, nil
}

func (s *CatalogService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.store.Recipes().ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipes.ListTags: %w", err)
	}
	return tags, nil
}

// ImportIngredients upserts the ingredient catalog in one transaction and
// returns how many entries were processed.
func (s *CatalogService) ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	err := s.store.InTx(ctx, func(tx port.Store) error {
		for _, i := range ingredients {
			if _, err := tx.Recipes().UpsertIngredient(ctx, i.Name, i.MeasurementUnit); err != nil {
				return fmt.Errorf("recipes.UpsertIngredient[%s]: %w", i.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("ingredients imported", zap.Int("count", len(ingredients)))

	return len(ingredients), nil
}

// ImportTags creates or updates tags by slug in one transaction.
func (s *CatalogService) ImportTags(ctx context.Context, tags []domain.Tag) ([]domain.Tag, error) {
	imported := make([]domain.Tag, 0, len(tags))

	err := s.store.InTx(ctx, func(tx port.Store) error {
		for _, t := range tags {
			tag, err := tx.Recipes().CreateTag(ctx, t)
			if err != nil {
				return fmt.Errorf("recipes.CreateTag[%s]: %w", t.Slug, err)
			}
			imported = append(imported, tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tags imported", zap.Int("count", len(imported)))

	return imported, nil
}

func (s *CatalogService) AddFavorite(ctx context.Context, ownerID string, recipeID int64) (domain.RecipeSummary, error) {
	if ownerID == "" {
		return domain.RecipeSummary{}, domain.ErrUnauthenticated
	}

	recipe, err := s.store.Recipes().GetRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeSummary{}, fmt.Errorf("recipes.GetRecipe: %w", err)
	}

	if err := s.store.Favorites().AddFavorite(ctx, ownerID, recipeID); err != nil {
		return domain.RecipeSummary{}, fmt.Errorf("favorites.AddFavorite: %w", err)
	}

	return recipe.Summary(), nil
}

func (s *CatalogService) RemoveFavorite(ctx context.Context, ownerID string, recipeID int64) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := s.store.Recipes().GetRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("recipes.GetRecipe: %w", err)
	}

	if err := s.store.Favorites().RemoveFavorite(ctx, ownerID, recipeID); err != nil {
		return fmt.Errorf("favorites.RemoveFavorite: %w", err)
	}

	return nil
}

// Subscribe makes followerID follow authorID and returns the subscription
// with up to recipesLimit of the author's newest recipes.
func (s *CatalogService) Subscribe(ctx context.Context, followerID, authorID string, recipesLimit int) (domain.Subscription, error) {
	if followerID == "" {
		return domain.Subscription{}, domain.ErrUnauthenticated
	}
	if followerID == authorID {
		return domain.Subscription{}, domain.ErrSelfSubscription
	}

	var subscription domain.Subscription
	err := s.store.InTx(ctx, func(tx port.Store) error {
		if err := tx.Subscriptions().Subscribe(ctx, followerID, authorID); err != nil {
			return fmt.Errorf("subscriptions.Subscribe: %w", err)
		}

		subscriptions, err := listSubscriptions(ctx, tx, followerID, authorID, recipesLimit)
		if err != nil {
			return err
		}
		if len(subscriptions) != 1 {
			return fmt.Errorf("subscription to %q not found after insert", authorID)
		}

		subscription = subscriptions[0]
		return nil
	})
	if err != nil {
		return domain.Subscription{}, err
	}

	s.logger.Debug("subscribed", zap.String("follower_id", followerID), zap.String("author_id", authorID))

	return subscription, nil
}

func (s *CatalogService) Unsubscribe(ctx context.Context, followerID, authorID string) error {
	if followerID == "" {
		return domain.ErrUnauthenticated
	}
	if followerID == authorID {
		return domain.ErrSelfSubscription
	}

	if err := s.store.Subscriptions().Unsubscribe(ctx, followerID, authorID); err != nil {
		return fmt.Errorf("subscriptions.Unsubscribe: %w", err)
	}

	return nil
}

// Subscriptions lists the authors followed by followerID.
func (s *CatalogService) Subscriptions(ctx context.Context, followerID string, recipesLimit int) ([]domain.Subscription, error) {
	if followerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	return listSubscriptions(ctx, s.store, followerID, "", recipesLimit)
}

func listSubscriptions(ctx context.Context, store port.Store, followerID, authorID string, recipesLimit int) ([]domain.Subscription, error) {
	subscriptions, err := store.Subscriptions().ListSubscriptions(ctx, followerID, authorID)
	if err != nil {
		return nil, fmt.Errorf("subscriptions.ListSubscriptions: %w", err)
	}

	for i, sub := range subscriptions {
		recipes, err := store.Recipes().ListRecipes(ctx, domain.RecipeFilter{
			AuthorID: sub.AuthorID,
			Limit:    recipesLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("recipes.ListRecipes[%s]: %w", sub.AuthorID, err)
		}

		summaries := make([]domain.RecipeSummary, 0, len(recipes))
		for _, r := range recipes {
			summaries = append(summaries, r.Summary())
		}
		subscriptions[i].Recipes = summaries
	}

	return subscriptions, nil
}
