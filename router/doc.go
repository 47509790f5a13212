// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to their handlers.

NewRouter builds the stores, the poll service, and the handlers from a
database connection and a Config, then registers all routes on a
ServeMux:

	mux, err := router.NewRouter(db, cfg)

Routes use Go 1.22 method-and-pattern syntax ("POST /api/polls/{id}/votes").
Every API route is wrapped with request logging and bearer token
resolution; whether an anonymous caller is acceptable is decided inside
each handler, not here.
*/
package router
