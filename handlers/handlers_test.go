// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/berkayk/pollhub/middleware"
	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/polls"
	"github.com/berkayk/pollhub/store"
	"github.com/berkayk/pollhub/testutil"
	"github.com/berkayk/pollhub/token"
)

// testEnv wires the full handler stack against a fresh test database.
type testEnv struct {
	conn    *sql.DB
	users   *store.UserStore
	pollSt  *store.PollStore
	votes   *store.VoteStore
	service *polls.Service
	codec   *token.Codec

	authHandler *AuthHandler
	pollHandler *PollHandler
	userHandler *UserHandler

	// authed wraps a handler with bearer token resolution, the same way
	// the router does.
	authed func(http.HandlerFunc) http.HandlerFunc
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	codec, err := token.NewCodec([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		t.Fatalf("Failed to build token codec: %v", err)
	}

	users := store.NewUserStore(conn)
	pollSt := store.NewPollStore(conn)
	votes := store.NewVoteStore(conn)
	service := polls.NewService(pollSt, votes, users)

	return &testEnv{
		conn:        conn,
		users:       users,
		pollSt:      pollSt,
		votes:       votes,
		service:     service,
		codec:       codec,
		authHandler: NewAuthHandler(users, codec),
		pollHandler: NewPollHandler(service),
		userHandler: NewUserHandler(users, pollSt, votes, service),
		authed:      middleware.Authenticate(codec, users),
	}
}

// bearer returns an Authorization header value for the given user.
func (e *testEnv) bearer(t *testing.T, user *models.User) string {
	t.Helper()
	raw, err := e.codec.Issue(user.ID, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return "Bearer " + raw
}
