// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: Secret for session cookie signing and IP hashing (required)
  - Deadline: the single voting deadline, timezone-aware (required)
  - KafkaBrokers / KafkaTopic: optional vote event stream
  - SeedFile: optional YAML file of accounts and candidates
  - SecureCookies: set the Secure attribute on session cookies

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-deadline         Voting deadline (RFC 3339)
	-seed             Seed file
	-kafka-brokers    Kafka brokers, comma separated
	-kafka-topic      Kafka topic
	-session-secret   Session secret
	-secure-cookies   true/false

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	VOTING_DEADLINE → -deadline
	SEED_FILE       → -seed
	KAFKA_BROKERS   → -kafka-brokers
	KAFKA_TOPIC     → -kafka-topic
	SESSION_SECRET  → -session-secret
	SECURE_COOKIES  → -secure-cookies

CLI flags take precedence over environment variables, and the environment
takes precedence over a .env file loaded with LoadDotEnv.

# Validation

ParseFlags returns an error if required values are missing or the deadline
has no UTC offset. "2025-11-07T23:59:59+03:00" is accepted;
"2025-11-07 23:59:59" is not.
*/
package cliparse
