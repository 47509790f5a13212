// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/berkayk/pollhub/auth"
	"github.com/berkayk/pollhub/middleware"
	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/polls"
)

// domainError maps a core-layer failure onto its HTTP status. Anything not
// recognized is an infrastructure failure and becomes a 500 without leaking
// the underlying error to the client.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, polls.ErrPollNotFound),
		errors.Is(err, polls.ErrChoiceNotFound),
		errors.Is(err, polls.ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, polls.ErrPollExpired):
		middleware.ErrorResponse(w, http.StatusGone, err.Error())
	case errors.Is(err, polls.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, polls.ErrInvalidPoll):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in to continue")
	case errors.Is(err, auth.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "You may not perform this action")
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// parsePage reads the page and size query parameters with defaults.
func parsePage(r *http.Request) (int, int, error) {
	page := 0
	size := models.DefaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, errors.New("page must be a non-negative number")
		}
		page = n
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > models.MaxPageSize {
			return 0, 0, fmt.Errorf("size must be between 1 and %d", models.MaxPageSize)
		}
		size = n
	}
	return page, size, nil
}
