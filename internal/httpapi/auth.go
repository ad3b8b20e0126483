package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/nikolayk812/foodgram/internal/domain"
	"go.uber.org/zap"
)

type ctxKey int

const (
	ownerIDKey ctxKey = iota
	requestIDKey
)

// OwnerID returns the authenticated principal, or "" for anonymous requests.
func OwnerID(ctx context.Context) string {
	ownerID, _ := ctx.Value(ownerIDKey).(string)
	return ownerID
}

func withOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// authenticator verifies HS256 bearer tokens issued by the identity provider.
// The token subject is the owner ID.
type authenticator struct {
	secret []byte
	logger *zap.Logger
}

func (a *authenticator) principal(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", domain.ErrUnauthenticated
	}

	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || (!strings.EqualFold(scheme, "Bearer") && !strings.EqualFold(scheme, "Token")) {
		return "", fmt.Errorf("%w: unsupported authorization scheme", domain.ErrUnauthenticated)
	}

	token, err := jwt.Parse(strings.TrimSpace(raw), func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: token has no subject", domain.ErrUnauthenticated)
	}

	return subject, nil
}

// required rejects requests without a valid token.
func (a *authenticator) required(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ownerID, err := a.principal(r)
		if err != nil {
			writeError(w, r, a.logger, err)
			return
		}
		next(w, r.WithContext(withOwnerID(r.Context(), ownerID)), ps)
	}
}

// optional lets anonymous requests through but still rejects a bad token.
func (a *authenticator) optional(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if r.Header.Get("Authorization") == "" {
			next(w, r, ps)
			return
		}
		a.required(next)(w, r, ps)
	}
}
