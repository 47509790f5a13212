// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and the access decision point.

Password hashing uses bcrypt; the hash is opaque to the rest of the system
and is only ever compared, never decoded.

Authorize is a pure function of (identity, required role). Handlers call it
explicitly before invoking an operation, which keeps the authorization
decision unit-testable without a request pipeline.
*/
package auth
