package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/port"
	"github.com/nikolayk812/foodgram/internal/render"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
)

var (
	// ErrNothingToExport means the owner has no open cart or it has no ingredients.
	ErrNothingToExport = errors.New("nothing to export")
	ErrUnknownFormat   = errors.New("unknown export format")
)

// Export is a rendered shopping list of a cart that has been closed.
type Export struct {
	CartID      int64
	Filename    string
	ContentType string
	Body        []byte
}

// CartView is the read-only state of the owner's open cart.
type CartView struct {
	Cart  *domain.Cart
	Lines []domain.AggregateLine
}

type CartService struct {
	store     port.Store
	renderers map[Format]render.Renderer
	locale    language.Tag
	logger    *zap.Logger
}

// NewCartService wires the export formats. pdf must be a fully initialised
// renderer: a missing font is a startup failure, not a request failure.
func NewCartService(store port.Store, pdf render.Renderer, locale language.Tag, logger *zap.Logger) *CartService {
	return &CartService{
		store: store,
		renderers: map[Format]render.Renderer{
			FormatPDF:  pdf,
			FormatCSV:  render.CSV{},
			FormatText: render.Text{},
		},
		locale: locale,
		logger: logger.Named("cart"),
	}
}

func (s *CartService) OpenCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.ErrUnauthenticated
	}

	cart, err := s.store.Carts().GetOrCreateOpenCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetOrCreateOpenCart: %w", err)
	}

	return cart, nil
}

// AddToCart puts the recipe into the owner's open cart, opening a new cart
// when the previous one has been downloaded.
func (s *CartService) AddToCart(ctx context.Context, ownerID string, recipeID int64) (domain.RecipeSummary, error) {
	if ownerID == "" {
		return domain.RecipeSummary{}, domain.ErrUnauthenticated
	}

	var (
		summary domain.RecipeSummary
		cartID  int64
	)

	err := s.store.InTx(ctx, func(tx port.Store) error {
		recipe, err := tx.Recipes().GetRecipe(ctx, recipeID)
		if err != nil {
			return fmt.Errorf("recipes.GetRecipe: %w", err)
		}

		cart, err := tx.Carts().GetOrCreateOpenCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("carts.GetOrCreateOpenCart: %w", err)
		}

		if err := tx.Carts().AddRecipe(ctx, cart.ID, recipeID); err != nil {
			return fmt.Errorf("carts.AddRecipe: %w", err)
		}

		summary, cartID = recipe.Summary(), cart.ID
		return nil
	})
	if err != nil {
		return domain.RecipeSummary{}, err
	}

	s.logger.Debug("recipe added to cart",
		zap.String("owner_id", ownerID), zap.Int64("cart_id", cartID), zap.Int64("recipe_id", recipeID))

	return summary, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, ownerID string, recipeID int64) error {
	if ownerID == "" {
		return domain.ErrUnauthenticated
	}

	err := s.store.InTx(ctx, func(tx port.Store) error {
		if _, err := tx.Recipes().GetRecipe(ctx, recipeID); err != nil {
			return fmt.Errorf("recipes.GetRecipe: %w", err)
		}

		cart, err := tx.Carts().GetOpenCart(ctx, ownerID, true)
		if errors.Is(err, domain.ErrCartNotFound) {
			return domain.ErrNotInCart
		}
		if err != nil {
			return fmt.Errorf("carts.GetOpenCart: %w", err)
		}

		if err := tx.Carts().RemoveRecipe(ctx, cart.ID, recipeID); err != nil {
			return fmt.Errorf("carts.RemoveRecipe: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("recipe removed from cart", zap.String("owner_id", ownerID), zap.Int64("recipe_id", recipeID))

	return nil
}

// Preview aggregates the open cart without closing it.
func (s *CartService) Preview(ctx context.Context, ownerID string) (CartView, error) {
	if ownerID == "" {
		return CartView{}, domain.ErrUnauthenticated
	}

	carts := s.store.Carts()

	cart, err := carts.GetOpenCart(ctx, ownerID, false)
	if errors.Is(err, domain.ErrCartNotFound) {
		return CartView{Lines: []domain.AggregateLine{}}, nil
	}
	if err != nil {
		return CartView{}, fmt.Errorf("carts.GetOpenCart: %w", err)
	}

	lines, err := carts.ListIngredientLines(ctx, cart.ID)
	if err != nil {
		return CartView{}, fmt.Errorf("carts.ListIngredientLines: %w", err)
	}

	return CartView{
		Cart:  &cart,
		Lines: domain.Aggregate(lines, s.locale),
	}, nil
}

func (s *CartService) History(ctx context.Context, ownerID string) ([]domain.Cart, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	carts, err := s.store.Carts().ListCarts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("carts.ListCarts: %w", err)
	}

	return carts, nil
}

// Export aggregates the owner's open cart, renders it and closes the cart in
// one transaction. Recipes added concurrently wait for the cart lock and land
// in a new cart. If rendering fails or ctx is cancelled the cart stays open.
func (s *CartService) Export(ctx context.Context, ownerID string, format Format) (Export, error) {
	if ownerID == "" {
		return Export{}, domain.ErrUnauthenticated
	}

	if format == "" {
		format = FormatPDF
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return Export{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var export Export

	err := s.store.InTx(ctx, func(tx port.Store) error {
		cart, err := tx.Carts().GetOpenCart(ctx, ownerID, true)
		if errors.Is(err, domain.ErrCartNotFound) {
			return ErrNothingToExport
		}
		if err != nil {
			return fmt.Errorf("carts.GetOpenCart: %w", err)
		}

		lines, err := tx.Carts().ListIngredientLines(ctx, cart.ID)
		if err != nil {
			return fmt.Errorf("carts.ListIngredientLines: %w", err)
		}

		aggregate := domain.Aggregate(lines, s.locale)
		if len(aggregate) == 0 {
			return ErrNothingToExport
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, Rows(aggregate)); err != nil {
			return fmt.Errorf("renderer.Render: %w", err)
		}

		if err := tx.Carts().CloseCart(ctx, cart.ID); err != nil {
			return fmt.Errorf("carts.CloseCart: %w", err)
		}

		export = Export{
			CartID:      cart.ID,
			Filename:    fmt.Sprintf("Order-%d.%s", cart.ID, renderer.Extension()),
			ContentType: renderer.ContentType(),
			Body:        buf.Bytes(),
		}
		return nil
	})
	if err != nil {
		return Export{}, err
	}

	s.logger.Info("cart exported",
		zap.String("owner_id", ownerID),
		zap.Int64("cart_id", export.CartID),
		zap.String("format", string(format)),
		zap.Int("bytes", len(export.Body)))

	return export, nil
}

// Rows converts aggregate lines to renderer rows.
func Rows(lines []domain.AggregateLine) []render.Row {
	rows := make([]render.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, render.Row{
			Label:    line.Key.Name,
			Quantity: FormatQuantity(line.Total, line.Key.MeasurementUnit),
		})
	}
	return rows
}

// FormatQuantity renders an amount as "<amount> <unit>".
func FormatQuantity(total uint64, unit string) string {
	return fmt.Sprintf("%d %s", total, unit)
}
