// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PollHub API server.

PollHub is a poll and voting backend: registered users create polls with
two to six choices and a bounded voting window, anyone can browse
results, and each user gets exactly one vote per poll.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run .

Or with flags:

	go run . -p 8080 -d "postgres://..." -jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - JWT_SECRET (-jwt-secret): Secret for signing access tokens

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_DRIVER (-driver): postgres or sqlite (default: postgres)
  - TOKEN_TTL (-token-ttl): Access token lifetime (default: 24h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Bearer token resolution, CORS, logging, JSON helpers
  - polls: Core service (creation, casting, batch aggregation)
  - store: SQL access for users, polls, and votes
  - models: Request/response and domain types
  - token: Signed access token issue/verify
  - auth: Password hashing and role checks
  - db: Schema creation and role seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
