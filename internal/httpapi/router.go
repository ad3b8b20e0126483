// Package httpapi exposes the cart and recipe catalog over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/service"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// CartActions is the shopping cart core consumed by the handlers.
type CartActions interface {
	AddToCart(ctx context.Context, ownerID string, recipeID int64) (domain.RecipeSummary, error)
	RemoveFromCart(ctx context.Context, ownerID string, recipeID int64) error
	Preview(ctx context.Context, ownerID string) (service.CartView, error)
	History(ctx context.Context, ownerID string) ([]domain.Cart, error)
	Export(ctx context.Context, ownerID string, format service.Format) (service.Export, error)
}

// Catalog is the recipe catalog consumed by the handlers.
type Catalog interface {
	CreateRecipe(ctx context.Context, recipe domain.NewRecipe) (domain.Recipe, error)
	UpdateRecipe(ctx context.Context, ownerID string, recipeID int64, recipe domain.NewRecipe) (domain.Recipe, error)
	DeleteRecipe(ctx context.Context, ownerID string, recipeID int64) error
	GetRecipe(ctx context.Context, recipeID int64) (domain.Recipe, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	SearchIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	AddFavorite(ctx context.Context, ownerID string, recipeID int64) (domain.RecipeSummary, error)
	RemoveFavorite(ctx context.Context, ownerID string, recipeID int64) error
	Subscribe(ctx context.Context, followerID, authorID string, recipesLimit int) (domain.Subscription, error)
	Unsubscribe(ctx context.Context, followerID, authorID string) error
	Subscriptions(ctx context.Context, followerID string, recipesLimit int) ([]domain.Subscription, error)
}

type Config struct {
	Carts           CartActions
	Catalog         Catalog
	JWTSecret       string
	CORSOrigins     []string
	ExportPerMinute int
	Logger          *zap.Logger
}

// access is who may call a route.
type access int

const (
	public access = iota
	optionalAuth
	requiredAuth
)

// route is one operation of the API. Every operation has its own handler
// with typed input and output, chosen here before any core call.
type route struct {
	method string
	path   string
	access access
	handle httprouter.Handle
}

type handler struct {
	carts   CartActions
	catalog Catalog
	logger  *zap.Logger
}

func (h *handler) routes(exportLimiter *ownerRateLimiter) []route {
	return []route{
		{http.MethodGet, "/health", public, h.health},

		{http.MethodPost, "/api/recipes/:id/shopping_cart", requiredAuth, h.addToCart},
		{http.MethodDelete, "/api/recipes/:id/shopping_cart", requiredAuth, h.removeFromCart},
		{http.MethodGet, "/api/cart", requiredAuth, h.previewCart},
		{http.MethodGet, "/api/cart/history", requiredAuth, h.cartHistory},
		{http.MethodGet, "/api/cart/download", requiredAuth, exportLimiter.wrap(h.downloadCart)},

		{http.MethodPost, "/api/recipes/:id/favorite", requiredAuth, h.addFavorite},
		{http.MethodDelete, "/api/recipes/:id/favorite", requiredAuth, h.removeFavorite},

		{http.MethodGet, "/api/recipes", optionalAuth, h.listRecipes},
		{http.MethodPost, "/api/recipes", requiredAuth, h.createRecipe},
		{http.MethodGet, "/api/recipes/:id", optionalAuth, h.getRecipe},
		{http.MethodPatch, "/api/recipes/:id", requiredAuth, h.updateRecipe},
		{http.MethodDelete, "/api/recipes/:id", requiredAuth, h.deleteRecipe},
		{http.MethodGet, "/api/ingredients", public, h.searchIngredients},
		{http.MethodGet, "/api/tags", public, h.listTags},

		// httprouter does not allow a static segment next to :id,
		// so the listing lives outside /api/users.
		{http.MethodPost, "/api/users/:id/subscribe", requiredAuth, h.subscribe},
		{http.MethodDelete, "/api/users/:id/subscribe", requiredAuth, h.unsubscribe},
		{http.MethodGet, "/api/subscriptions", requiredAuth, h.listSubscriptions},
	}
}

func NewRouter(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	h := &handler{
		carts:   cfg.Carts,
		catalog: cfg.Catalog,
		logger:  logger,
	}
	auth := &authenticator{secret: []byte(cfg.JWTSecret), logger: logger}

	router := httprouter.New()
	router.HandleMethodNotAllowed = true
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "not_found", Message: "no such route"})
	})
	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Code: "method_not_allowed", Message: "method not allowed"})
	})

	for _, rt := range h.routes(newOwnerRateLimiter(cfg.ExportPerMinute)) {
		handle := rt.handle
		switch rt.access {
		case requiredAuth:
			handle = auth.required(handle)
		case optionalAuth:
			handle = auth.optional(handle)
		}
		router.Handle(rt.method, rt.path, handle)
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", requestIDHeader},
	})

	return requestLogger(logger, recoverer(logger, securityHeaders(c.Handler(router))))
}
