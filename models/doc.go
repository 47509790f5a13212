// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain entities, request/response types, and
shared constants for the PollHub API.

# Domain Types

  - User: registered account with a bcrypt password hash
  - Identity: the resolved caller of one request (nil means anonymous)
  - Poll: question plus 2-6 choices and an expiration instant
  - Choice: one selectable answer, owned by its poll
  - Vote: one user's selection in one poll

# Request/Response Types

DTOs mirror the JSON wire format. Responses never carry password hashes;
the User type excludes the hash from JSON explicitly.

# Conventions

All IDs are opaque strings (UUIDs generated at insert time). Timestamps
are time.Time values serialized as RFC 3339.
*/
package models
