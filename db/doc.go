// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

One table. The round is persisted as a single opaque JSON payload in a row
pinned to id = 1:

	round (id CHECK (id = 1), payload, updated_at)

The round package never reads individual fields out of the row in SQL; it
loads the whole payload, decodes it, and overwrites it whole on every
mutation. Corrupt payloads are handled there, not here.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

CreateSchema is idempotent (IF NOT EXISTS) and works against both supported
drivers, SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq).
*/
package db
