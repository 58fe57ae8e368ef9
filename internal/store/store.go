package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordergate/internal/models"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("user not found")

// ConflictError reports a uniqueness violation on userId or phoneNumber.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// ProfileUpdate carries the fields of a partial profile update.
// Empty strings mean "not supplied".
type ProfileUpdate struct {
	AdminName   string
	UserID      string
	PhoneNumber string
}

// UserStore is the persistence surface the handlers depend on.
type UserStore interface {
	// FindByID looks a user up by its hex document id.
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindByLogin finds the user matching the exact (userId, phoneNumber) pair.
	FindByLogin(ctx context.Context, userID, phoneNumber string) (*models.User, error)
	// ExistsOther reports whether any user other than excludeID holds the
	// given userId or phoneNumber. Empty values are not matched.
	ExistsOther(ctx context.Context, userID, phoneNumber, excludeID string) (bool, error)
	// Create inserts the user, relying on the store's unique indexes to
	// reject duplicates with a *ConflictError.
	Create(ctx context.Context, u *models.User) error
	// SetLastLogin stamps the user's last login time.
	SetLastLogin(ctx context.Context, id string, t time.Time) error
	// UpdateProfile applies the supplied fields and returns the updated user.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error)
	// DeleteAll removes every user. Used by the seeder only.
	DeleteAll(ctx context.Context) error
}
