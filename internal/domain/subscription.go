package domain

// Subscription is an author followed by a user, with a preview of the
// author's newest recipes.
type Subscription struct {
	AuthorID     string
	RecipesCount int
	Recipes      []RecipeSummary
}
