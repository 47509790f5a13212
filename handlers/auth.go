// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/berkayk/pollhub/auth"
	"github.com/berkayk/pollhub/middleware"
	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/store"
	"github.com/berkayk/pollhub/token"
)

type AuthHandler struct {
	users *store.UserStore
	codec *token.Codec
}

func NewAuthHandler(users *store.UserStore, codec *token.Codec) *AuthHandler {
	return &AuthHandler{users: users, codec: codec}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateSignUp(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	taken, err := h.users.ExistsByUsername(r.Context(), req.Username)
	if err != nil {
		domainError(w, err)
		return
	}
	if taken {
		middleware.JSONResponse(w, http.StatusBadRequest, models.ApiResponse{
			Success: false,
			Message: "Username is already taken!",
		})
		return
	}

	taken, err = h.users.ExistsByEmail(r.Context(), req.Email)
	if err != nil {
		domainError(w, err)
		return
	}
	if taken {
		middleware.JSONResponse(w, http.StatusBadRequest, models.ApiResponse{
			Success: false,
			Message: "Email Address already in use!",
		})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		domainError(w, err)
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		// Lost an availability race: someone registered the same username
		// or email between the checks and the insert.
		if errors.Is(err, store.ErrDuplicate) {
			middleware.JSONResponse(w, http.StatusBadRequest, models.ApiResponse{
				Success: false,
				Message: "Username or email is already taken!",
			})
			return
		}
		domainError(w, err)
		return
	}
	if err := h.users.AssignRole(r.Context(), user.ID, models.RoleUser); err != nil {
		domainError(w, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.ApiResponse{
		Success: true,
		Message: "User registered successfully",
	})
}

// Signin handles POST /api/auth/signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UsernameOrEmail == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username_or_email and password are required")
		return
	}

	// Unknown account and wrong password fail identically.
	user, err := h.users.FindByUsernameOrEmail(r.Context(), req.UsernameOrEmail)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username/email or password")
		return
	}
	if err != nil {
		domainError(w, err)
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username/email or password")
		return
	}

	raw, err := h.codec.Issue(user.ID, time.Now())
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("user signed in", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.JwtAuthenticationResponse{
		AccessToken: raw,
		TokenType:   "Bearer",
	})
}

func validateSignUp(req models.SignUpRequest) string {
	if len(req.Name) < 4 || len(req.Name) > 40 {
		return "name must be 4 to 40 characters"
	}
	if len(req.Username) < 3 || len(req.Username) > 15 {
		return "username must be 3 to 15 characters"
	}
	if req.Email == "" || len(req.Email) > 40 || !strings.Contains(req.Email, "@") {
		return "a valid email of at most 40 characters is required"
	}
	if len(req.Password) < 6 || len(req.Password) > 20 {
		return "password must be 6 to 20 characters"
	}
	return ""
}
