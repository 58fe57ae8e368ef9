// Package storetest provides an in-memory UserStore for tests.
package storetest

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"ordergate/internal/models"
	"ordergate/internal/store"
)

var _ store.UserStore = (*Memory)(nil)

// Memory is a map-backed UserStore that enforces the same uniqueness
// rules as the MongoDB indexes.
type Memory struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by hex id
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]*models.User)}
}

func (m *Memory) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) FindByLogin(_ context.Context, userID, phoneNumber string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UserID == userID && u.PhoneNumber == phoneNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) ExistsOther(_ context.Context, userID, phoneNumber, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conflict(userID, phoneNumber, excludeID) != "", nil
}

func (m *Memory) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if field := m.conflict(u.UserID, u.PhoneNumber, ""); field != "" {
		return &store.ConflictError{Field: field}
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	cp := *u
	m.users[u.ID.Hex()] = &cp
	return nil
}

func (m *Memory) SetLastLogin(_ context.Context, id string, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.LastLogin = &t
	u.UpdatedAt = time.Now()
	return nil
}

func (m *Memory) UpdateProfile(_ context.Context, id string, upd store.ProfileUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if field := m.conflict(upd.UserID, upd.PhoneNumber, id); field != "" {
		return nil, &store.ConflictError{Field: field}
	}
	if upd.AdminName != "" {
		u.AdminName = upd.AdminName
	}
	if upd.UserID != "" {
		u.UserID = upd.UserID
	}
	if upd.PhoneNumber != "" {
		u.PhoneNumber = upd.PhoneNumber
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (m *Memory) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[string]*models.User)
	return nil
}

func (m *Memory) conflict(userID, phoneNumber, excludeID string) string {
	for id, u := range m.users {
		if id == excludeID {
			continue
		}
		if userID != "" && u.UserID == userID {
			return "userId"
		}
		if phoneNumber != "" && u.PhoneNumber == phoneNumber {
			return "phoneNumber"
		}
	}
	return ""
}
