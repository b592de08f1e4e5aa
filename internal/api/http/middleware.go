package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Ahmed-779/Vehicle-Booking/internal/security"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const principalContextKey contextKey = "principal"

// Principal is the authenticated actor behind a request.
type Principal struct {
	UserID  int32
	Email   string
	IsAdmin bool
}

// PrincipalFrom extracts the authenticated principal placed by the
// middleware. The second return is false on unauthenticated requests.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}

// AuthMiddleware validates bearer JWTs and attaches the principal.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate requires a valid access token. Admin privilege comes from the
// token's role claim, resolved at issue time; no handler consults a user
// list.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization header required"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokens.ValidateToken(token)
		if err != nil || claims.Type != security.TokenTypeAccess {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		principal := Principal{
			UserID:  claims.UserID,
			Email:   claims.Email,
			IsAdmin: claims.IsAdmin(),
		}
		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a handler behind the admin role claim.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		if !p.IsAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "administrator access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
