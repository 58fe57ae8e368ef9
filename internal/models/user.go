package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	AdminName   string        `json:"adminName" bson:"adminName"`
	UserID      string        `json:"userId" bson:"userId"`
	PhoneNumber string        `json:"phoneNumber" bson:"phoneNumber"`
	Role        string        `json:"role,omitempty" bson:"role,omitempty"`
	IsActive    bool          `json:"isActive" bson:"isActive"`
	LastLogin   *time.Time    `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// ValidateAdminName returns a message describing the violation, or "" if valid.
func ValidateAdminName(s string) string {
	if len(s) < 3 {
		return "Admin name must be at least 3 characters long"
	}
	if len(s) > 50 {
		return "Admin name cannot exceed 50 characters"
	}
	return ""
}

func ValidateUserID(s string) string {
	if len(s) < 3 {
		return "User ID must be at least 3 characters long"
	}
	if len(s) > 30 {
		return "User ID cannot exceed 30 characters"
	}
	return ""
}

func ValidatePhoneNumber(s string) string {
	if !phonePattern.MatchString(s) {
		return "Please enter a valid phone number"
	}
	return ""
}

// Validate checks every field constraint and collects the violations.
func (u *User) Validate() []string {
	var errs []string
	if msg := ValidateAdminName(u.AdminName); msg != "" {
		errs = append(errs, msg)
	}
	if msg := ValidateUserID(u.UserID); msg != "" {
		errs = append(errs, msg)
	}
	if msg := ValidatePhoneNumber(u.PhoneNumber); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}
