package api

import (
	"net/http"

	"github.com/phrazzld/coupon-api/internal/api/shared"
	"github.com/phrazzld/coupon-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users service.UserService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	res, err := h.users.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, LoginResponse{
		User:  toUserResponse(res.User),
		Token: res.Token,
	})
}

// Register handles POST /api/Register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.users.Register(r.Context(), req.UserName, req.Password, req.Name, req.Role)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, toUserResponse(user))
}
