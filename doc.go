// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the election API server.

The server runs a single election: it lists candidates, records one vote
per voter (a logged-in account, or otherwise the browser's anonymous
session), stops accepting changes at a fixed deadline, and shows results
according to the caller's role.

# Starting the Server

Configuration comes from flags, the environment, or a .env file in the
working directory:

	DATABASE_URL=election.db SESSION_SECRET=... VOTING_DEADLINE=2025-11-07T23:59:59+03:00 go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -deadline 2025-11-07T23:59:59+03:00

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): Key that signs session cookies
  - VOTING_DEADLINE (-deadline): RFC 3339 timestamp with offset; votes are
    accepted up to and including this instant

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_FILE (-seed): YAML accounts and candidates applied at startup
  - KAFKA_BROKERS (-kafka-brokers): Publish vote events to these brokers
  - KAFKA_TOPIC (-kafka-topic): Event topic (default: votes)
  - SECURE_COOKIES (-secure-cookies): Send the session cookie over HTTPS only

# Architecture

  - handlers: HTTP request handlers (voting, results, candidates, accounts)
  - router: Route definitions using Go 1.22+ routing
  - identity: Session cookie to voter identity and role
  - election: Deadline gate, access policy, tally and role projections
  - store: Vote ledger, candidate roster and accounts over database/sql
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session signing, password hashing, ID generation
  - events: Kafka vote event stream
  - metrics: Prometheus collectors
  - seed: YAML seed loader
  - clock: Injectable time source
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
