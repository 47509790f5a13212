// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse loads server configuration from CLI flags, environment
variables, and an optional .env file (flags win, then env).

Required settings:

  - DATABASE_URL (-d): connection string for the configured driver
  - JWT_SECRET (--jwt-secret): shared secret for token signing

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_DRIVER (--driver): postgres or sqlite (default: postgres)
  - TOKEN_TTL (--token-ttl): token lifetime as a Go duration (default: 24h)
*/
package cliparse
