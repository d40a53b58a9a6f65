package httpapi

import (
	"context"
	"net/http"
	"strings"

	"raydan-backend-go/internal/services"
)

type contextKey string

const (
	ctxAdminID contextKey = "adminID"
	ctxEmail   contextKey = "email"
	ctxRole    contextKey = "role"
)

func WithAuth(tokenService services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			token, claims, err := tokenService.ParseToken(tokenStr)
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			if claims["typ"] != "access" {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			adminID, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)
			ctx := context.WithValue(r.Context(), ctxAdminID, adminID)
			ctx = context.WithValue(ctx, ctxEmail, email)
			ctx = context.WithValue(ctx, ctxRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CurrentAdminID(r *http.Request) string {
	if value, ok := r.Context().Value(ctxAdminID).(string); ok {
		return value
	}
	return ""
}

func CurrentRole(r *http.Request) string {
	if value, ok := r.Context().Value(ctxRole).(string); ok {
		return value
	}
	return ""
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := map[string]bool{}
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed[CurrentRole(r)] {
				WriteError(w, http.StatusForbidden, "Not allowed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
