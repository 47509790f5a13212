// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/berkayk/pollhub/auth"
	"github.com/berkayk/pollhub/middleware"
	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/polls"
	"github.com/berkayk/pollhub/store"
)

type UserHandler struct {
	users   *store.UserStore
	polls   *store.PollStore
	votes   *store.VoteStore
	service *polls.Service
}

func NewUserHandler(users *store.UserStore, pollStore *store.PollStore, votes *store.VoteStore, service *polls.Service) *UserHandler {
	return &UserHandler{users: users, polls: pollStore, votes: votes, service: service}
}

// Me handles GET /api/user/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.CurrentIdentity(r)
	if err := auth.Authorize(identity, models.RoleUser); err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserSummary{
		ID:       identity.ID,
		Username: identity.Username,
		Name:     identity.Name,
	})
}

// CheckUsernameAvailability handles GET /api/user/checkUsernameAvailability
func (h *UserHandler) CheckUsernameAvailability(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	taken, err := h.users.ExistsByUsername(r.Context(), username)
	if err != nil {
		domainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.UserIdentityAvailability{Available: !taken})
}

// CheckEmailAvailability handles GET /api/user/checkEmailAvailability
func (h *UserHandler) CheckEmailAvailability(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	taken, err := h.users.ExistsByEmail(r.Context(), email)
	if err != nil {
		domainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.UserIdentityAvailability{Available: !taken})
}

// Profile handles GET /api/users/{username}
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.users.FindByUsername(r.Context(), username)
	if errors.Is(err, store.ErrNotFound) {
		domainError(w, polls.ErrUserNotFound)
		return
	}
	if err != nil {
		domainError(w, err)
		return
	}

	pollCount, err := h.polls.CountCreatedBy(r.Context(), user.ID)
	if err != nil {
		domainError(w, err)
		return
	}
	voteCount, err := h.votes.CountByUser(r.Context(), user.ID)
	if err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		JoinedAt:  user.CreatedAt,
		PollCount: pollCount,
		VoteCount: voteCount,
	})
}

// PollsCreatedBy handles GET /api/users/{username}/polls
func (h *UserHandler) PollsCreatedBy(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	page, size, err := parsePage(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.ListCreatedBy(r.Context(), username, page, size, middleware.CurrentIdentity(r))
	if err != nil {
		domainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// PollsVotedBy handles GET /api/users/{username}/votes
func (h *UserHandler) PollsVotedBy(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	page, size, err := parsePage(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.ListVotedBy(r.Context(), username, page, size, middleware.CurrentIdentity(r))
	if err != nil {
		domainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
