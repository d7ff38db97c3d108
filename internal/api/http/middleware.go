package http

import (
	"context"
	"net/http"
	"strings"

	"rentops-backend/internal/config"
	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/security"

	"github.com/gorilla/mux"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// ClaimsFromContext returns the authenticated user's claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}

// AuthMiddleware enforces the per-route security level: public routes pass
// through, access routes need a valid bearer token, admin routes additionally
// need the ADMIN role. Unknown routes default to admin.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			routeName := ""
			if route := mux.CurrentRoute(r); route != nil {
				routeName = route.GetName()
			}

			level := config.GetSecurityLevel(routeName)
			if level == config.SecurityPublic {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.Type != security.TokenTypeAccess {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}

			if level == config.SecurityAdmin && claims.Role != string(domain.UserRoleAdmin) {
				writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin role required"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs each request at debug level.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("http request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
