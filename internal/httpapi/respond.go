package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nikolayk812/foodgram/internal/domain"
	"github.com/nikolayk812/foodgram/internal/service"
	"go.uber.org/zap"
)

// Error codes returned in the "code" field of error responses.
const (
	CodeAlreadyInCart     = "already_in_cart"
	CodeNotInCart         = "not_in_cart"
	CodeAlreadyFavorited  = "already_favorited"
	CodeNotFavorited      = "not_favorited"
	CodeAlreadySubscribed = "already_subscribed"
	CodeNotSubscribed     = "not_subscribed"
	CodeSelfSubscription  = "self_subscription"
	CodeInvalidRecipe     = "invalid_recipe"
	CodeInvalidRequest    = "invalid_request"
	CodeUnknownFormat     = "unknown_format"
	CodeRecipeNotFound    = "recipe_not_found"
	CodeUnauthenticated   = "unauthenticated"
	CodeForbidden         = "forbidden"
	CodeCartConflict      = "cart_conflict"
	CodeTooManyRequests   = "too_many_requests"
	CodeInternal          = "internal_error"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorMapping ties a sentinel error to its response. With detail set the
// message keeps the text wrapped after the sentinel, e.g. which field of a
// recipe is invalid.
type errorMapping struct {
	sentinel error
	status   int
	code     string
	detail   bool
}

var errorMappings = []errorMapping{
	{domain.ErrAlreadyInCart, http.StatusBadRequest, CodeAlreadyInCart, false},
	{domain.ErrNotInCart, http.StatusBadRequest, CodeNotInCart, false},
	{domain.ErrAlreadyFavorited, http.StatusBadRequest, CodeAlreadyFavorited, false},
	{domain.ErrNotFavorited, http.StatusBadRequest, CodeNotFavorited, false},
	{domain.ErrAlreadySubscribed, http.StatusBadRequest, CodeAlreadySubscribed, false},
	{domain.ErrNotSubscribed, http.StatusBadRequest, CodeNotSubscribed, false},
	{domain.ErrSelfSubscription, http.StatusBadRequest, CodeSelfSubscription, false},
	{domain.ErrInvalidRecipe, http.StatusBadRequest, CodeInvalidRecipe, true},
	{domain.ErrIngredientNotFound, http.StatusBadRequest, CodeInvalidRecipe, false},
	{domain.ErrTagNotFound, http.StatusBadRequest, CodeInvalidRecipe, false},
	{errInvalidRequest, http.StatusBadRequest, CodeInvalidRequest, true},
	{service.ErrUnknownFormat, http.StatusBadRequest, CodeUnknownFormat, true},
	{domain.ErrRecipeNotFound, http.StatusNotFound, CodeRecipeNotFound, false},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated, false},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden, false},
	{domain.ErrCartConflict, http.StatusConflict, CodeCartConflict, false},
	{domain.ErrCartClosed, http.StatusConflict, CodeCartConflict, false},
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps err to a status and a machine-readable code.
// Unclassified errors are logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	m, ok := classify(err)
	if !ok {
		logger.Error("request failed",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: CodeInternal, Message: internalErrorMessage})
		return
	}

	writeJSON(w, m.status, errorResponse{Code: m.code, Message: m.message(err)})
}

func classify(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m, true
		}
	}
	return errorMapping{}, false
}

// message is the client-facing text of err. Wrap prefixes added on the way
// up the call stack are dropped.
func (m errorMapping) message(err error) string {
	text := m.sentinel.Error()
	if !m.detail {
		return text
	}

	full := err.Error()
	if i := strings.Index(full, text); i >= 0 {
		return full[i:]
	}
	return text
}
