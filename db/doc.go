// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns schema creation and reference-data seeding.

# Schema

Six tables: users, roles, user_roles, polls, choices, votes. All primary
keys are application-generated UUID strings, which keeps the DDL portable
across the postgres and sqlite drivers.

# Uniqueness constraints

  - users.username (unique)
  - users.email (unique)
  - roles.name (unique)
  - votes (poll_id, user_id) (unique)

The votes constraint is correctness-critical: it is the storage-level
arbiter of the one-vote-per-user-per-poll rule under concurrent casts.
*/
package db
