package domain

// IngredientKey identifies a distinct row of a shopping list.
type IngredientKey struct {
	Name            string
	MeasurementUnit string
}

type Ingredient struct {
	ID              int64
	Name            string
	MeasurementUnit string
}

func (i Ingredient) Key() IngredientKey {
	return IngredientKey{Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

// IngredientLine is one ingredient amount of a recipe placed in a cart.
type IngredientLine struct {
	RecipeID int64
	Key      IngredientKey
	Amount   int32
}

// AggregateLine is the total amount of one ingredient key across a cart.
type AggregateLine struct {
	Key   IngredientKey
	Total uint64
}
