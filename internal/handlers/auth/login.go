package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"ordergate/internal/store"
	"ordergate/internal/utils"
)

type LoginHandler struct {
	Users     store.UserStore
	JWTSecret string
	JWTExpiry time.Duration
}

type LoginRequest struct {
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
}

// ServeHTTP handles POST /api/auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	if req.UserID == "" || req.PhoneNumber == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "User ID and phone number are required",
		})
		return
	}

	user, err := h.Users.FindByLogin(r.Context(), req.UserID, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Invalid user ID or phone number",
			})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	if !user.IsActive {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Account is deactivated",
		})
		return
	}

	now := time.Now()
	if err := h.Users.SetLastLogin(r.Context(), user.ID.Hex(), now); err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}
	user.LastLogin = &now

	token, err := utils.GenerateJWT(user.ID.Hex(), h.JWTSecret, h.JWTExpiry)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to generate token",
		})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful",
		Data:    AuthData{User: user, Token: token},
	})
}
