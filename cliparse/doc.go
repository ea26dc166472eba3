// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8484)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - Members: ordered, unique member names (required, at least 2)

# CLI Flags

	-p   Server port
	-d   Database URL or SQLite file path
	-t   Database type
	-m   Comma-separated member names

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	MEMBERS       → -m

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if the member list is missing, has fewer than 2
names after trimming, or contains duplicates. The member list fixes the
group for the lifetime of the process; the order given is the order used
everywhere members are listed.
*/
package cliparse
