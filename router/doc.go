// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method-aware ServeMux patterns:

	GET  /health
	GET  /api/state
	POST /api/draw
	POST /api/reset
	GET  /api/debug-assignments
	GET  /

NewRouter constructs the round manager and wires it through the handlers,
wrapping each API route with request logging:

	mux := router.NewRouter(dbConn, cfg)

NewRouterWithManager accepts a pre-built manager, which tests use to inject
a seeded random source for deterministic assignments.
*/
package router
