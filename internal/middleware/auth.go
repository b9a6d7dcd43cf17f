package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"

	"github.com/google/uuid"
)

type TokenParser interface {
	Parse(token string) (domain.Principal, error)
}

// UserLookup resolves the token subject to the stored account.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Authenticate requires a valid "Authorization: Bearer <token>" header whose subject still exists.
// The role is taken from storage, not from the token, so role changes and deletions apply at once.
func Authenticate(tokens TokenParser, users UserLookup, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			p, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("token rejected", slog.String("remote", r.RemoteAddr), slog.Any("error", err))
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			u, err := users.GetByID(r.Context(), p.UserID)
			if err != nil {
				if errors.Is(err, e.ErrNotFound) {
					logger.Warn("token subject gone", slog.String("user_id", p.UserID.String()))
					writeError(w, http.StatusUnauthorized, "unknown user")
					return
				}
				logger.Error("user lookup failed", slog.String("user_id", p.UserID.String()), slog.Any("error", err))
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			p.Role = u.Role

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole lets the request through only when the authenticated principal has one of roles.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			for _, role := range roles {
				if p.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "forbidden")
		})
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
