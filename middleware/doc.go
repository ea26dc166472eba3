// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler with structured request logging via log/slog,
recording method, path, client IP, response status, and duration:

	mux.HandleFunc("GET /api/state", middleware.WithLogging(handler.GetState))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
	middleware.ParseJSONBody(r, &req)

ErrorResponse emits the standard error envelope:

	{"error": "Bad Request", "message": "name is required"}

# CORS

The CORS middleware reflects the request origin and handles OPTIONS
preflight, so a separately-served frontend can call the API during
development.

# Client IP

GetClientIP resolves the client address behind proxies: X-Forwarded-For
first, then X-Real-IP, then RemoteAddr with the port stripped.
*/
package middleware
