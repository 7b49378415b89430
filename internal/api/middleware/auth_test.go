package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/coupon-api/internal/api/shared"
	"github.com/phrazzld/coupon-api/internal/mocks"
	"github.com/phrazzld/coupon-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := shared.GetClaims(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Test-User", claims.Name)
		w.WriteHeader(http.StatusOK)
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) shared.APIResponse {
	t.Helper()
	var body shared.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		svc        *mocks.MockJWTService
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			svc:        &mocks.MockJWTService{Claims: &auth.Claims{Name: "alice", Role: "admin"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			svc:        &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Authorization header required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			svc:        &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid authorization format",
		},
		{
			name:       "expired",
			header:     "Bearer old",
			svc:        &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token expired",
		},
		{
			name:       "invalid",
			header:     "Bearer forged",
			svc:        &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid token",
		},
		{
			name:       "unexpected failure",
			header:     "Bearer x",
			svc:        &mocks.MockJWTService{ValidateErr: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Authentication error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthMiddleware(tt.svc).Authenticate(okHandler(t))
			req := httptest.NewRequest(http.MethodGet, "/api/coupon/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", rec.Header().Get("X-Test-User"))
				return
			}
			body := decodeEnvelope(t, rec)
			assert.False(t, body.IsSuccess)
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.Equal(t, []string{tt.wantMsg}, body.ErrorMessages)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	jwtSvc := mocks.NewTokenPerRoleJWTService("admin", "customer")
	h := NewAuthMiddleware(jwtSvc).Authenticate(RequireRole("admin")(okHandler(t)))

	t.Run("admin passes", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/coupon", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/coupon", nil)
		req.Header.Set("Authorization", "Bearer customer-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, []string{"Forbidden"}, decodeEnvelope(t, rec).ErrorMessages)
	})

	t.Run("no claims in context", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		RequireRole("admin")(okHandler(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
