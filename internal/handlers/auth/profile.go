package auth

import (
	"net/http"

	"ordergate/internal/middleware"
	"ordergate/internal/models"
	"ordergate/internal/utils"
)

type ProfileHandler struct{}

type profileData struct {
	User *models.User `json:"user"`
}

// ServeHTTP handles GET /api/auth/profile. The middleware has already
// resolved the user, so this cannot fail short of a broken context.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profileData{User: user},
	})
}
