// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Secret Santa API.

# Handler Types

One handler covers the whole surface, constructed with the round manager it
delegates to:

	roundHandler := handlers.NewRoundHandler(manager)

# Routes

	GET  /api/state             → GetState (public projection, never the assignment)
	POST /api/draw              → Draw (body {"name": ...}; idempotent per giver)
	POST /api/reset             → Reset (new round, all reveals discarded)
	GET  /api/debug-assignments → DebugAssignments (full mapping, unauthenticated)

# Error Mapping

Caller-input errors (unknown name, a name with no assignment) return 400
with the standard error envelope. Everything else — generation failures,
storage failures — returns 500. Corrupt persisted state never produces an
error response at all: the manager regenerates transparently.

The caller-supplied name is trusted as-is; there is no authentication of
which human is actually asking.
*/
package handlers
