package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ordergate/internal/models"
	"ordergate/internal/store"
	"ordergate/internal/utils"
)

type SignupHandler struct {
	Users     store.UserStore
	JWTSecret string
	JWTExpiry time.Duration
}

type SignupRequest struct {
	AdminName   string `json:"adminName"`
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// AuthData is the payload returned by signup and login.
type AuthData struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// ServeHTTP handles POST /api/auth/signup
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	req.AdminName = strings.TrimSpace(req.AdminName)
	req.UserID = strings.TrimSpace(req.UserID)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	if req.AdminName == "" || req.UserID == "" || req.PhoneNumber == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Admin name, user ID, and phone number are required",
		})
		return
	}

	now := time.Now()
	user := &models.User{
		AdminName:   req.AdminName,
		UserID:      req.UserID,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
		LastLogin:   &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// Only honor an explicit admin role, used for controlled seeding.
	if req.Role == "admin" {
		user.Role = "admin"
	}

	if errs := user.Validate(); len(errs) > 0 {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Validation error",
			Errors:  errs,
		})
		return
	}

	exists, err := h.Users.ExistsOther(r.Context(), req.UserID, req.PhoneNumber, "")
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}
	if exists {
		utils.JSON(w, http.StatusConflict, utils.APIResponse{
			Success: false,
			Message: "User with this user ID or phone number already exists",
		})
		return
	}

	if err := h.Users.Create(r.Context(), user); err != nil {
		// Concurrent signup can still lose the race against the unique index.
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			utils.JSON(w, http.StatusConflict, utils.APIResponse{
				Success: false,
				Message: fmt.Sprintf("%s already exists", conflict.Field),
			})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), h.JWTSecret, h.JWTExpiry)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to generate token",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    AuthData{User: user, Token: token},
	})
}
