// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token, password and session utilities.

# Session Tokens

Anonymous browsers vote under a random UUID token:

	token, err := auth.NewSessionToken()

The token is created once per browser and kept in the session cookie, so
the same client always resolves to the same identity.

# Session Cookies

Sessions are signed with HMAC-SHA256 over the session secret:

	codec := auth.NewSessionCodec(cfg.SessionSecret)
	value := codec.Encode(auth.Session{Token: token, AccountID: id})
	session, err := codec.Decode(value)

Decode returns ErrInvalidSession for any value that was not produced by
the same secret. Values are URL-safe base64 and can be used as cookie
values directly.

# Passwords

Account passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, attempt) // ErrInvalidCredentials on mismatch

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

Votes record a salted hash of the client address, never the address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
