package mocks

import (
	"context"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, user *domain.User) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

// Ensure MockJWTService implements auth.JWTService
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, user)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// NewTokenPerRoleJWTService returns a mock that accepts "<role>-token" and
// yields claims for user "tester" with that role.
func NewTokenPerRoleJWTService(roles ...string) *MockJWTService {
	known := make(map[string]string, len(roles))
	for _, r := range roles {
		known[r+"-token"] = r
	}
	return &MockJWTService{
		GenerateTokenFn: func(_ context.Context, user *domain.User) (string, error) {
			return user.Role + "-token", nil
		},
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			role, ok := known[token]
			if !ok {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{Name: "tester", Role: role, Subject: "tester"}, nil
		},
	}
}
