// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package token issues and verifies the signed bearer tokens that carry a
user's identity between requests.

Tokens are JWTs signed with HMAC-SHA256 over a secret shared by all server
instances. Because validity is determined entirely by the signature and the
embedded expiry, no server-side session store is needed and verification is
safe under unbounded concurrency.

Verification failures are classified into four sentinel errors so callers
can log the distinction without branching on library internals:

  - ErrBadSignature: signature does not match the shared secret
  - ErrMalformed: the token cannot be parsed
  - ErrExpired: the expiry instant has passed (inclusive)
  - ErrUnsupported: the token names a signing scheme other than HS256

There is no revocation: a verified token is valid until it expires.
*/
package token
