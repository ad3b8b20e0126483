package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/service"
)

const maxBodyBytes = 1 << 20

var errInvalidRequest = errors.New("invalid request")

func (h *handler) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recipeID parses the :id path parameter. A malformed id names no recipe.
func recipeID(ps httprouter.Params) (int64, error) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrRecipeNotFound
	}
	return id, nil
}

func (h *handler) addToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	summary, err := h.carts.AddToCart(r.Context(), OwnerID(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapSummary(summary))
}

func (h *handler) removeFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.carts.RemoveFromCart(r.Context(), OwnerID(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) previewCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	view, err := h.carts.Preview(r.Context(), OwnerID(r.Context()))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapCartView(view))
}

func (h *handler) cartHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	carts, err := h.carts.History(r.Context(), OwnerID(r.Context()))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapCarts(carts))
}

// downloadCart exports and closes the open cart. With nothing to export it
// answers 200 with an empty body and the cart is left untouched.
func (h *handler) downloadCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	format := service.Format(r.URL.Query().Get("format"))

	export, err := h.carts.Export(r.Context(), OwnerID(r.Context()), format)
	if errors.Is(err, service.ErrNothingToExport) {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Body)
}

func (h *handler) addFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	summary, err := h.catalog.AddFavorite(r.Context(), OwnerID(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapSummary(summary))
}

func (h *handler) removeFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.catalog.RemoveFavorite(r.Context(), OwnerID(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, ok, err := recipeFilter(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if !ok {
		// cart or favorites filter of an anonymous user
		writeJSON(w, http.StatusOK, []recipeDTO{})
		return
	}

	recipes, err := h.catalog.ListRecipes(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapRecipes(recipes))
}

// recipeFilter reads the listing query. ok is false when the query can match
// nothing without asking the catalog.
func recipeFilter(r *http.Request) (domain.RecipeFilter, bool, error) {
	query := r.URL.Query()
	ownerID := OwnerID(r.Context())

	filter := domain.RecipeFilter{
		AuthorID: query.Get("author"),
		TagSlugs: query["tags"],
	}

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"limit", &filter.Limit},
		{"offset", &filter.Offset},
	} {
		n, err := queryInt(query, p.name)
		if err != nil {
			return domain.RecipeFilter{}, false, err
		}
		*p.dst = n
	}

	if query.Get("is_in_shopping_cart") == "1" {
		if ownerID == "" {
			return filter, false, nil
		}
		filter.InCartOf = ownerID
	}
	if query.Get("is_favorited") == "1" {
		if ownerID == "" {
			return filter, false, nil
		}
		filter.FavoritedBy = ownerID
	}

	return filter, true, nil
}

// queryInt reads an optional non-negative integer that fits a database int.
// A missing parameter is zero.
func queryInt(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer between 0 and %d", errInvalidRequest, name, math.MaxInt32)
	}

	return n, nil
}

func (h *handler) getRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipe, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapRecipe(recipe))
}

func decodeRecipe(w http.ResponseWriter, r *http.Request) (createRecipeRequest, error) {
	var req createRecipeRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return createRecipeRequest{}, fmt.Errorf("%w: %w", errInvalidRequest, err)
	}

	return req, nil
}

func (h *handler) createRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, err := decodeRecipe(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipe, err := h.catalog.CreateRecipe(r.Context(), req.toDomain(OwnerID(r.Context())))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapRecipe(recipe))
}

func (h *handler) updateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	req, err := decodeRecipe(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ownerID := OwnerID(r.Context())
	recipe, err := h.catalog.UpdateRecipe(r.Context(), ownerID, id, req.toDomain(ownerID))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapRecipe(recipe))
}

func (h *handler) deleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := recipeID(ps)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.catalog.DeleteRecipe(r.Context(), OwnerID(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) subscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipesLimit, err := queryInt(r.URL.Query(), "recipes_limit")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	sub, err := h.catalog.Subscribe(r.Context(), OwnerID(r.Context()), ps.ByName("id"), recipesLimit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapSubscription(sub))
}

func (h *handler) unsubscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.catalog.Unsubscribe(r.Context(), OwnerID(r.Context()), ps.ByName("id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listSubscriptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	recipesLimit, err := queryInt(r.URL.Query(), "recipes_limit")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	subs, err := h.catalog.Subscriptions(r.Context(), OwnerID(r.Context()), recipesLimit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSubscriptions(subs))
}

func (h *handler) searchIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ingredients, err := h.catalog.SearchIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapIngredients(ingredients))
}

func (h *handler) listTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tags, err := h.catalog.ListTags(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, mapTags(tags))
}
