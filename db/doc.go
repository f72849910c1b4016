// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses github.com/lib/pq. "sqlite" uses modernc.org/sqlite with
foreign keys enabled and a single connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - account: login accounts, admin flag, phone number
  - candidate: the roster, optionally owned by one account
  - vote: one row per voter identity

# Relationships

	account 1──0..1 candidate (owner_account_id, unique)
	candidate 1──* vote

All foreign keys use ON DELETE CASCADE.

# Constraints

The one-vote-per-identity rule lives in the schema:

	UNIQUE (voter_kind, voter_key)

voter_kind is 'account' or 'session'.
*/
package db
