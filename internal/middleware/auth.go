package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ordergate/internal/models"
	"ordergate/internal/store"
	"ordergate/internal/utils"
)

type contextKey string

// UserKey holds the authenticated *models.User in the request context.
const UserKey contextKey = "user"

// UserFromContext returns the user attached by AuthJWT.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(UserKey).(*models.User)
	return u, ok
}

// AuthJWT validates the bearer token and resolves the referenced user
// before letting the request through.
func AuthJWT(secret string, users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Access denied. No token provided",
				})
				return
			}

			userID, err := utils.ParseJWT(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Invalid or expired token",
				})
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				msg := "Invalid or expired token"
				status := http.StatusUnauthorized
				if !errors.Is(err, store.ErrNotFound) {
					msg = "Internal server error"
					status = http.StatusInternalServerError
				}
				utils.JSON(w, status, utils.APIResponse{Success: false, Message: msg})
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
