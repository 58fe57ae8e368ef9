package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ordergate/internal/middleware"
	"ordergate/internal/models"
	"ordergate/internal/store"
	"ordergate/internal/utils"
)

type UpdateProfileHandler struct {
	Users store.UserStore
}

type UpdateProfileRequest struct {
	AdminName   string `json:"adminName"`
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
}

// ServeHTTP handles PUT /api/auth/profile
func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var req UpdateProfileRequest
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

	var errs []string
	if req.AdminName != "" {
		if msg := models.ValidateAdminName(req.AdminName); msg != "" {
			errs = append(errs, msg)
		}
	}
	if req.UserID != "" {
		if msg := models.ValidateUserID(req.UserID); msg != "" {
			errs = append(errs, msg)
		}
	}
	if req.PhoneNumber != "" {
		if msg := models.ValidatePhoneNumber(req.PhoneNumber); msg != "" {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Validation error",
			Errors:  errs,
		})
		return
	}

	// Uniqueness is only rechecked for the identity fields, never adminName.
	if req.UserID != "" || req.PhoneNumber != "" {
		exists, err := h.Users.ExistsOther(r.Context(), req.UserID, req.PhoneNumber, caller.ID.Hex())
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
				Message: "User ID or phone number already exists",
			})
			return
		}
	}

	updated, err := h.Users.UpdateProfile(r.Context(), caller.ID.Hex(), store.ProfileUpdate{
		AdminName:   req.AdminName,
		UserID:      req.UserID,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			utils.JSON(w, http.StatusConflict, utils.APIResponse{
				Success: false,
				Message: "User ID or phone number already exists",
			})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile updated successfully",
		Data:    profileData{User: updated},
	})
}
