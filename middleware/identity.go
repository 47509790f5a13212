// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/store"
	"github.com/berkayk/pollhub/token"
)

type contextKey int

const identityKey contextKey = iota

// Authenticate resolves the request's bearer token into an identity and
// stores it in the request context. Resolution fails open: a missing,
// malformed, expired, or otherwise unverifiable token leaves the request
// anonymous and never rejects it here. Authenticated-only handlers decide
// for themselves whether an anonymous caller is acceptable.
func Authenticate(codec *token.Codec, users *store.UserStore) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity := resolveIdentity(r, codec, users)
			if identity != nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
			}
			next(w, r)
		}
	}
}

// CurrentIdentity returns the authenticated identity of the request, or nil
// for anonymous callers.
func CurrentIdentity(r *http.Request) *models.Identity {
	identity, _ := r.Context().Value(identityKey).(*models.Identity)
	return identity
}

func resolveIdentity(r *http.Request, codec *token.Codec, users *store.UserStore) *models.Identity {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}

	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		slog.Debug("authorization header is not a bearer token", "path", r.URL.Path)
		return nil
	}

	userID, err := codec.Verify(raw, time.Now())
	if err != nil {
		slog.Info("rejected bearer token", "reason", err, "remote", GetClientIP(r))
		return nil
	}

	user, err := users.FindByID(r.Context(), userID)
	if err != nil {
		// A valid signature over an unknown subject: the user may have been
		// deleted since the token was issued.
		slog.Warn("token subject has no matching user", "user_id", userID, "error", err)
		return nil
	}

	roles, err := users.RolesOf(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to load user roles", "user_id", user.ID, "error", err)
		return nil
	}

	return &models.Identity{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roles,
	}
}
