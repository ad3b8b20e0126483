package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinAmount      = 1
	MaxAmount      = 32000
	MinCookingTime = 1
	MaxCookingTime = 32000
	MaxNameLength  = 200
)

type Tag struct {
	ID    int64
	Name  string
	Slug  string
	Color string
}

type RecipeIngredient struct {
	Ingredient Ingredient
	Amount     int32
}

type Recipe struct {
	ID          int64
	AuthorID    string
	Name        string
	Text        string
	CookingTime int32
	Image       string
	Tags        []Tag
	Ingredients []RecipeIngredient

	CreatedAt time.Time
}

// Summary is the short representation returned by cart and favorite actions.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

type RecipeSummary struct {
	ID          int64
	Name        string
	Image       string
	CookingTime int32
}

type IngredientAmount struct {
	IngredientID int64
	Amount       int32
}

// NewRecipe is the input for publishing a recipe.
type NewRecipe struct {
	AuthorID    string
	Name        string
	Text        string
	CookingTime int32
	Image       string
	TagIDs      []int64
	Ingredients []IngredientAmount
}

func (r NewRecipe) Validate() error {
	switch {
	case r.AuthorID == "":
		return fmt.Errorf("%w: author is empty", ErrInvalidRecipe)
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidRecipe)
	case utf8.RuneCountInString(r.Name) > MaxNameLength:
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidRecipe, MaxNameLength)
	case r.CookingTime < MinCookingTime || r.CookingTime > MaxCookingTime:
		return fmt.Errorf("%w: cooking time must be in [%d, %d]", ErrInvalidRecipe, MinCookingTime, MaxCookingTime)
	case len(r.Ingredients) == 0:
		return fmt.Errorf("%w: ingredients are required", ErrInvalidRecipe)
	case len(r.TagIDs) == 0:
		return fmt.Errorf("%w: tags are required", ErrInvalidRecipe)
	}

	seenIngredients := make(map[int64]struct{}, len(r.Ingredients))
	for _, ia := range r.Ingredients {
		if ia.Amount < MinAmount || ia.Amount > MaxAmount {
			return fmt.Errorf("%w: amount must be in [%d, %d]", ErrInvalidRecipe, MinAmount, MaxAmount)
		}
		if _, ok := seenIngredients[ia.IngredientID]; ok {
			return fmt.Errorf("%w: repeated ingredient %d", ErrInvalidRecipe, ia.IngredientID)
		}
		seenIngredients[ia.IngredientID] = struct{}{}
	}

	seenTags := make(map[int64]struct{}, len(r.TagIDs))
	for _, id := range r.TagIDs {
		if _, ok := seenTags[id]; ok {
			return fmt.Errorf("%w: repeated tag %d", ErrInvalidRecipe, id)
		}
		seenTags[id] = struct{}{}
	}

	return nil
}

func (r NewRecipe) IngredientIDs() []int64 {
	ids := make([]int64, 0, len(r.Ingredients))
	for _, ia := range r.Ingredients {
		ids = append(ids, ia.IngredientID)
	}
	return ids
}

// RecipeFilter narrows a recipe listing. Empty fields match everything.
type RecipeFilter struct {
	AuthorID    string
	TagSlugs    []string
	InCartOf    string
	FavoritedBy string
	Limit       int
	Offset      int
}
