package server

import (
	"net/http"

	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/types"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, h.logger, err)
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	h.respondWithToken(w, r, http.StatusOK, user)
}

// UpdatePassword handles PUT /auth/password for the authenticated user.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.UpdatePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, h.logger, err)
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"message": "password updated"})
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, status, types.AuthResponse{User: user, Token: token})
}
