package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/warrantyit/server/internal/api/middleware"
	"github.com/warrantyit/server/internal/api/types"
	"github.com/warrantyit/server/internal/services"
)

type AuthHandler struct {
	auth     services.AuthService
	validate *validator.Validate
}

func NewAuthHandler(auth services.AuthService, v *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: auth, validate: v}
}

// Register godoc
// @Summary  Register a new account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body types.RegisterRequest true "registration"
// @Success  201 {object} types.APIResponse
// @Router   /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeInvalid(w, types.ValidationMessage(err))
		return
	}
	if err := types.ValidatePassword(req.Password); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User registered successfully", types.AuthData{User: user, Token: token})
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body types.LoginRequest true "credentials"
// @Success  200 {object} types.APIResponse
// @Router   /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeInvalid(w, types.ValidationMessage(err))
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", types.AuthData{User: user, Token: token})
}

// Profile godoc
// @Summary  Current account profile
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} types.APIResponse
// @Router   /api/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.auth.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Profile retrieved successfully", profile)
}
