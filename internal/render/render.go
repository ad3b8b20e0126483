// Package render turns tabular shopping list data into downloadable documents.
// Renderers know nothing about carts or recipes.
package render

import "io"

// Header is the first row of every rendered document.
var Header = Row{Label: "Ingredient", Quantity: "Quantity"}

type Row struct {
	Label    string
	Quantity string
}

type Renderer interface {
	// Render writes the header row followed by rows to w.
	Render(w io.Writer, rows []Row) error
	ContentType() string
	Extension() string
}
