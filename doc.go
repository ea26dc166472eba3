// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Secret Santa API server.

Secret Santa assigns every member of a fixed group exactly one other member
to gift (a derangement of the group) and lets each member privately look up
their own giftee exactly once. The round, reveals included, survives
restarts.

# Starting the Server

The server needs a member list and, optionally, storage configuration:

	MEMBERS="Alice,Bob,Carol" go run main.go

Or with flags:

	go run main.go -p 8484 -m "Alice,Bob,Carol" -t sqlite -d santa.db

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - MEMBERS (-m): comma-separated member names, at least 2, unique

Optional settings:

  - PORT (-p): server port (default: 8484)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): SQLite file path (default: santa.db) or PostgreSQL
    connection string

# Architecture

The server uses a handler-based architecture with dependency injection:

  - assign: derangement generation and validation
  - round: round lifecycle, reveal state, persistence
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
