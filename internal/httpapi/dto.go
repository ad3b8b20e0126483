package httpapi

import (
	"time"

	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/service"
)

type recipeSummaryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
}

type tagDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type ingredientDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type recipeIngredientDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

type recipeDTO struct {
	ID          int64                 `json:"id"`
	Author      string                `json:"author"`
	Name        string                `json:"name"`
	Text        string                `json:"text"`
	Image       string                `json:"image"`
	CookingTime int32                 `json:"cooking_time"`
	Tags        []tagDTO              `json:"tags"`
	Ingredients []recipeIngredientDTO `json:"ingredients"`
	CreatedAt   time.Time             `json:"created_at"`
}

type createRecipeRequest struct {
	Name        string  `json:"name"`
	Text        string  `json:"text"`
	Image       string  `json:"image"`
	CookingTime int32   `json:"cooking_time"`
	Tags        []int64 `json:"tags"`
	Ingredients []struct {
		ID     int64 `json:"id"`
		Amount int32 `json:"amount"`
	} `json:"ingredients"`
}

type subscriptionDTO struct {
	Author       string             `json:"author"`
	RecipesCount int                `json:"recipes_count"`
	Recipes      []recipeSummaryDTO `json:"recipes"`
}

type aggregateLineDTO struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          uint64 `json:"amount"`
}

type cartDTO struct {
	ID        int64     `json:"id"`
	State     string    `json:"state"`
	Recipes   []int64   `json:"recipes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type cartPreviewDTO struct {
	Cart        *cartDTO           `json:"cart"`
	Ingredients []aggregateLineDTO `json:"ingredients"`
}

func (req createRecipeRequest) toDomain(authorID string) domain.NewRecipe {
	ingredients := make([]domain.IngredientAmount, 0, len(req.Ingredients))
	for _, i := range req.Ingredients {
		ingredients = append(ingredients, domain.IngredientAmount{IngredientID: i.ID, Amount: i.Amount})
	}

	return domain.NewRecipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		TagIDs:      req.Tags,
		Ingredients: ingredients,
	}
}

func mapSummary(s domain.RecipeSummary) recipeSummaryDTO {
	return recipeSummaryDTO{
		ID:          s.ID,
		Name:        s.Name,
		Image:       s.Image,
		CookingTime: s.CookingTime,
	}
}

func mapSubscription(s domain.Subscription) subscriptionDTO {
	recipes := make([]recipeSummaryDTO, 0, len(s.Recipes))
	for _, r := range s.Recipes {
		recipes = append(recipes, mapSummary(r))
	}

	return subscriptionDTO{
		Author:       s.AuthorID,
		RecipesCount: s.RecipesCount,
		Recipes:      recipes,
	}
}

func mapSubscriptions(subs []domain.Subscription) []subscriptionDTO {
	result := make([]subscriptionDTO, 0, len(subs))
	for _, s := range subs {
		result = append(result, mapSubscription(s))
	}
	return result
}

func mapTag(t domain.Tag) tagDTO {
	return tagDTO{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func mapTags(tags []domain.Tag) []tagDTO {
	result := make([]tagDTO, 0, len(tags))
	for _, t := range tags {
		result = append(result, mapTag(t))
	}
	return result
}

func mapIngredients(ingredients []domain.Ingredient) []ingredientDTO {
	result := make([]ingredientDTO, 0, len(ingredients))
	for _, i := range ingredients {
		result = append(result, ingredientDTO{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit})
	}
	return result
}

func mapRecipe(r domain.Recipe) recipeDTO {
	ingredients := make([]recipeIngredientDTO, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		ingredients = append(ingredients, recipeIngredientDTO{
			ID:              ri.Ingredient.ID,
			Name:            ri.Ingredient.Name,
			MeasurementUnit: ri.Ingredient.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}

	return recipeDTO{
		ID:          r.ID,
		Author:      r.AuthorID,
		Name:        r.Name,
		Text:        r.Text,
		Image:       r.Image,
		CookingTime: r.CookingTime,
		Tags:        mapTags(r.Tags),
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt,
	}
}

func mapRecipes(recipes []domain.Recipe) []recipeDTO {
	result := make([]recipeDTO, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, mapRecipe(r))
	}
	return result
}

func mapCart(c domain.Cart) cartDTO {
	recipes := c.RecipeIDs
	if recipes == nil {
		recipes = []int64{}
	}

	return cartDTO{
		ID:        c.ID,
		State:     c.State().String(),
		Recipes:   recipes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func mapCarts(carts []domain.Cart) []cartDTO {
	result := make([]cartDTO, 0, len(carts))
	for _, c := range carts {
		result = append(result, mapCart(c))
	}
	return result
}

func mapCartView(v service.CartView) cartPreviewDTO {
	lines := make([]aggregateLineDTO, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, aggregateLineDTO{
			Name:            l.Key.Name,
			MeasurementUnit: l.Key.MeasurementUnit,
			Amount:          l.Total,
		})
	}

	var cart *cartDTO
	if v.Cart != nil {
		c := mapCart(*v.Cart)
		cart = &c
	}

	return cartPreviewDTO{Cart: cart, Ingredients: lines}
}
