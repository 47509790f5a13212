// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/berkayk/pollhub/cliparse"
	"github.com/berkayk/pollhub/handlers"
	"github.com/berkayk/pollhub/middleware"
	"github.com/berkayk/pollhub/polls"
	"github.com/berkayk/pollhub/store"
	"github.com/berkayk/pollhub/token"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	codec, err := token.NewCodec([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	// Initialize stores and the core service
	users := store.NewUserStore(db)
	pollStore := store.NewPollStore(db)
	votes := store.NewVoteStore(db)
	service := polls.NewService(pollStore, votes, users)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, codec)
	pollHandler := handlers.NewPollHandler(service)
	userHandler := handlers.NewUserHandler(users, pollStore, votes, service)

	// Every route resolves the bearer token first; handlers enforce
	// access per operation.
	authed := middleware.Authenticate(codec, users)
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(authed(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth/signup", middleware.WithLogging(authHandler.Signup))
	mux.HandleFunc("POST /api/auth/signin", middleware.WithLogging(authHandler.Signin))

	// Polls and voting
	mux.HandleFunc("POST /api/polls", wrap(pollHandler.CreatePoll))
	mux.HandleFunc("GET /api/polls", wrap(pollHandler.ListPolls))
	mux.HandleFunc("GET /api/polls/{id}", wrap(pollHandler.GetPoll))
	mux.HandleFunc("POST /api/polls/{id}/votes", wrap(pollHandler.CastVote))

	// Current user
	mux.HandleFunc("GET /api/user/me", wrap(userHandler.Me))
	mux.HandleFunc("GET /api/user/checkUsernameAvailability", middleware.WithLogging(userHandler.CheckUsernameAvailability))
	mux.HandleFunc("GET /api/user/checkEmailAvailability", middleware.WithLogging(userHandler.CheckEmailAvailability))

	// Public user profiles
	mux.HandleFunc("GET /api/users/{username}", middleware.WithLogging(userHandler.Profile))
	mux.HandleFunc("GET /api/users/{username}/polls", wrap(userHandler.PollsCreatedBy))
	mux.HandleFunc("GET /api/users/{username}/votes", wrap(userHandler.PollsVotedBy))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollhub API v1"))
	})

	return mux, nil
}
