// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PollHub API.

# Handler Types

Each handler is a struct holding its store and service dependencies:

  - AuthHandler: Registration and token-based sign-in
  - PollHandler: Poll creation, listing, retrieval, and vote casting
  - UserHandler: Current user, availability checks, profiles, per-user poll lists

Handlers are created via constructor functions:

	authHandler := handlers.NewAuthHandler(users, codec)
	pollHandler := handlers.NewPollHandler(service)

# Authentication Flow

Accounts are created and signed in through:

	POST /api/auth/signup → Signup (returns ApiResponse)
	POST /api/auth/signin → Signin (returns access_token)

The token travels in the Authorization header as "Bearer <token>". The
middleware resolves it into an identity; handlers enforce access per
operation with auth.Authorize, so a request with a bad token fails the
same way as one with no token at all.

# Voting Flow

	POST /api/polls            → CreatePoll (authenticated)
	GET  /api/polls            → ListPolls (paged, anonymous ok)
	GET  /api/polls/{id}       → GetPoll (anonymous ok)
	POST /api/polls/{id}/votes → CastVote (authenticated)

Casting responds with the poll's refreshed aggregate so the client can
render results immediately. Status codes distinguish the failure modes:
404 unknown poll or choice, 410 expired poll, 409 duplicate vote.

# Error Mapping

domainError translates core-layer sentinel errors into HTTP statuses.
Unrecognized errors are logged and reported as a generic 500.
*/
package handlers
