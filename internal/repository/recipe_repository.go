package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodgram/internal/db"
	"github.com/nikolayk812/foodgram/internal/domain"
)

const (
	defaultPageLimit = 6
	maxPageLimit     = 100
)

type recipeRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe domain.NewRecipe) (domain.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Recipe, error) {
		if err := checkReferences(ctx, q, recipe); err != nil {
			return domain.Recipe{}, err
		}

		row, err := q.InsertRecipe(ctx, db.InsertRecipeParams{
			AuthorID:    recipe.AuthorID,
			Name:        strings.TrimSpace(recipe.Name),
			Text:        recipe.Text,
			CookingTime: recipe.CookingTime,
			Image:       recipe.Image,
		})
		if isPgError(err, uniqueViolation) {
			return domain.Recipe{}, fmt.Errorf("%w: name %q is taken", domain.ErrInvalidRecipe, recipe.Name)
		}
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("q.InsertRecipe: %w", err)
		}

		if err := insertDetails(ctx, q, row.ID, recipe); err != nil {
			return domain.Recipe{}, err
		}

		return getRecipe(ctx, q, row.ID)
	})
}

// UpdateRecipe replaces every field of the recipe, its ingredients and tags
// included. The author is not changed.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipeID int64, recipe domain.NewRecipe) (domain.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Recipe, error) {
		if err := checkReferences(ctx, q, recipe); err != nil {
			return domain.Recipe{}, err
		}

		rowsAffected, err := q.UpdateRecipe(ctx, db.UpdateRecipeParams{
			ID:          recipeID,
			Name:        strings.TrimSpace(recipe.Name),
			Text:        recipe.Text,
			CookingTime: recipe.CookingTime,
			Image:       recipe.Image,
		})
		if isPgError(err, uniqueViolation) {
			return domain.Recipe{}, fmt.Errorf("%w: name %q is taken", domain.ErrInvalidRecipe, recipe.Name)
		}
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("q.UpdateRecipe: %w", err)
		}
		if rowsAffected == 0 {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}

		if err := q.DeleteRecipeIngredients(ctx, recipeID); err != nil {
			return domain.Recipe{}, fmt.Errorf("q.DeleteRecipeIngredients: %w", err)
		}
		if err := q.DeleteRecipeTags(ctx, recipeID); err != nil {
			return domain.Recipe{}, fmt.Errorf("q.DeleteRecipeTags: %w", err)
		}

		if err := insertDetails(ctx, q, recipeID, recipe); err != nil {
			return domain.Recipe{}, err
		}

		return getRecipe(ctx, q, recipeID)
	})
}

// DeleteRecipe hides the recipe from the catalog and drops it from open carts
// and favorites. Downloaded carts keep referencing it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		rowsAffected, err := q.MarkRecipeDeleted(ctx, recipeID)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.MarkRecipeDeleted: %w", err)
		}
		if rowsAffected == 0 {
			return struct{}{}, domain.ErrRecipeNotFound
		}

		if _, err := q.DeleteRecipeFromOpenCarts(ctx, recipeID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteRecipeFromOpenCarts: %w", err)
		}
		if _, err := q.DeleteRecipeFavorites(ctx, recipeID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteRecipeFavorites: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

func (r *recipeRepository) GetRecipe(ctx context.Context, recipeID int64) (domain.Recipe, error) {
	return getRecipe(ctx, r.q, recipeID)
}

func (r *recipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}

	dbRecipes, err := r.q.ListRecipes(ctx, db.ListRecipesParams{
		AuthorID:    filter.AuthorID,
		TagSlugs:    nonNilStrings(filter.TagSlugs),
		InCartOf:    filter.InCartOf,
		FavoritedBy: filter.FavoritedBy,
		PageLimit:   int32(limit),
		PageOffset:  int32(min(max(filter.Offset, 0), math.MaxInt32)),
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListRecipes: %w", err)
	}

	return withDetails(ctx, r.q, dbRecipes)
}

func (r *recipeRepository) SearchIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	dbIngredients, err := r.q.SearchIngredients(ctx, escapeLike(namePrefix))
	if err != nil {
		return nil, fmt.Errorf("q.SearchIngredients: %w", err)
	}

	ingredients := make([]domain.Ingredient, 0, len(dbIngredients))
	for _, i := range dbIngredients {
		ingredients = append(ingredients, domain.Ingredient{
			ID:              i.ID,
			Name:            i.Name,
			MeasurementUnit: i.MeasurementUnit,
		})
	}

	return ingredients, nil
}

func (r *recipeRepository) UpsertIngredient(ctx context.Context, name, measurementUnit string) (domain.Ingredient, error) {
	name, measurementUnit = strings.TrimSpace(name), strings.TrimSpace(measurementUnit)
	if name == "" || measurementUnit == "" {
		return domain.Ingredient{}, fmt.Errorf("name or measurement unit is empty")
	}

	id, err := r.q.UpsertIngredient(ctx, db.UpsertIngredientParams{
		Name:            name,
		MeasurementUnit: measurementUnit,
	})
	if err != nil {
		return domain.Ingredient{}, fmt.Errorf("q.UpsertIngredient: %w", err)
	}

	return domain.Ingredient{ID: id, Name: name, MeasurementUnit: measurementUnit}, nil
}

func (r *recipeRepository) CreateTag(ctx context.Context, tag domain.Tag) (domain.Tag, error) {
	if tag.Name == "" || tag.Slug == "" {
		return domain.Tag{}, fmt.Errorf("tag name or slug is empty")
	}
	if tag.Color == "" {
		tag.Color = "#FF0000"
	}

	id, err := r.q.InsertTag(ctx, db.InsertTagParams{
		Name:  tag.Name,
		Slug:  tag.Slug,
		Color: tag.Color,
	})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("q.InsertTag: %w", err)
	}

	tag.ID = id
	return tag, nil
}

func (r *recipeRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	dbTags, err := r.q.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListTags: %w", err)
	}

	tags := make([]domain.Tag, 0, len(dbTags))
	for _, t := range dbTags {
		tags = append(tags, domain.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug, Color: t.Color})
	}

	return tags, nil
}

func checkReferences(ctx context.Context, q *db.Queries, recipe domain.NewRecipe) error {
	ingredientIDs := recipe.IngredientIDs()
	found, err := q.CountIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return fmt.Errorf("q.CountIngredientsByIDs: %w", err)
	}
	if int(found) != len(ingredientIDs) {
		return domain.ErrIngredientNotFound
	}

	found, err = q.CountTagsByIDs(ctx, recipe.TagIDs)
	if err != nil {
		return fmt.Errorf("q.CountTagsByIDs: %w", err)
	}
	if int(found) != len(recipe.TagIDs) {
		return domain.ErrTagNotFound
	}

	return nil
}

func insertDetails(ctx context.Context, q *db.Queries, recipeID int64, recipe domain.NewRecipe) error {
	for i, ia := range recipe.Ingredients {
		err := q.InsertRecipeIngredient(ctx, db.InsertRecipeIngredientParams{
			RecipeID:     recipeID,
			IngredientID: ia.IngredientID,
			Amount:       ia.Amount,
			Position:     int32(i),
		})
		if err != nil {
			return fmt.Errorf("q.InsertRecipeIngredient: %w", err)
		}
	}

	for _, tagID := range recipe.TagIDs {
		err := q.InsertRecipeTag(ctx, db.InsertRecipeTagParams{
			RecipeID: recipeID,
			TagID:    tagID,
		})
		if err != nil {
			return fmt.Errorf("q.InsertRecipeTag: %w", err)
		}
	}

	return nil
}

func getRecipe(ctx context.Context, q *db.Queries, recipeID int64) (domain.Recipe, error) {
	dbRecipe, err := q.GetRecipe(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("q.GetRecipe: %w", err)
	}

	recipes, err := withDetails(ctx, q, []db.Recipe{dbRecipe})
	if err != nil {
		return domain.Recipe{}, err
	}

	return recipes[0], nil
}

// withDetails loads ingredients and tags of all recipes in two queries.
func withDetails(ctx context.Context, q *db.Queries, dbRecipes []db.Recipe) ([]domain.Recipe, error) {
	if len(dbRecipes) == 0 {
		return []domain.Recipe{}, nil
	}

	ids := make([]int64, 0, len(dbRecipes))
	for _, r := range dbRecipes {
		ids = append(ids, r.ID)
	}

	ingredientRows, err := q.ListRecipeIngredients(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("q.ListRecipeIngredients: %w", err)
	}

	tagRows, err := q.ListRecipeTags(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("q.ListRecipeTags: %w", err)
	}

	ingredients := make(map[int64][]domain.RecipeIngredient, len(dbRecipes))
	for _, row := range ingredientRows {
		ingredients[row.RecipeID] = append(ingredients[row.RecipeID], domain.RecipeIngredient{
			Ingredient: domain.Ingredient{
				ID:              row.IngredientID,
				Name:            row.Name,
				MeasurementUnit: row.MeasurementUnit,
			},
			Amount: row.Amount,
		})
	}

	tags := make(map[int64][]domain.Tag, len(dbRecipes))
	for _, row := range tagRows {
		tags[row.RecipeID] = append(tags[row.RecipeID], domain.Tag{
			ID:    row.ID,
			Name:  row.Name,
			Slug:  row.Slug,
			Color: row.Color,
		})
	}

	recipes := make([]domain.Recipe, 0, len(dbRecipes))
	for _, r := range dbRecipes {
		recipes = append(recipes, domain.Recipe{
			ID:          r.ID,
			AuthorID:    r.AuthorID,
			Name:        r.Name,
			Text:        r.Text,
			CookingTime: r.CookingTime,
			Image:       r.Image,
			Tags:        tags[r.ID],
			Ingredients: ingredients[r.ID],
			CreatedAt:   r.CreatedAt,
		})
	}

	return recipes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
