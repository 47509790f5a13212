// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/berkayk/pollhub/auth"
	"github.com/berkayk/pollhub/middleware"
	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/polls"
)

type PollHandler struct {
	service *polls.Service
}

func NewPollHandler(service *polls.Service) *PollHandler {
	return &PollHandler{service: service}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	identity := middleware.CurrentIdentity(r)
	if err := auth.Authorize(identity, models.RoleUser); err != nil {
		domainError(w, err)
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resp, err := h.service.Create(r.Context(), req, identity)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("poll created", "poll_id", resp.ID, "creator", identity.Username)

	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// ListPolls handles GET /api/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	page, size, err := parsePage(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.List(r.Context(), page, size, middleware.CurrentIdentity(r))
	if err != nil {
		domainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	resp, err := h.service.Get(r.Context(), pollID, middleware.CurrentIdentity(r))
	if err != nil {
		domainError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CastVote handles POST /api/polls/{id}/votes
func (h *PollHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	identity := middleware.CurrentIdentity(r)
	if err := auth.Authorize(identity, models.RoleUser); err != nil {
		domainError(w, err)
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_id is required")
		return
	}

	resp, err := h.service.CastVote(r.Context(), pollID, req.ChoiceID, identity)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "choice_id", req.ChoiceID, "voter", identity.Username)

	middleware.JSONResponse(w, http.StatusOK, resp)
}
