package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Data for default implementation
	CreateError        error
	GetByUsernameError error

	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore(seed ...*domain.User) *MockUserStore {
	m := &MockUserStore{users: make(map[string]*domain.User), nextID: 1}
	for _, u := range seed {
		cp := *u
		cp.ID = m.nextID
		m.nextID++
		m.users[cp.Username] = &cp
	}
	return m
}

// Stored returns the stored copy of username, or nil.
func (m *MockUserStore) Stored(username string) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[username]; ok {
		cp := *u
		return &cp
	}
	return nil
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	if user.HashedPassword == "" {
		return store.ErrInvalidEntity
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.Username] = &cp
	return nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	if m.GetByUsernameError != nil {
		return nil, m.GetByUsernameError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}
