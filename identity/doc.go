// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity turns the session cookie of a request into an actor: the
voter identity a ballot is recorded under and the role that decides what
results the caller may see.

# Sessions

Every browser holds a signed election_session cookie carrying an
anonymous token and, after login, an account id. A request without a
valid cookie is issued a fresh token on the way out.

# Usage

	resolver := identity.NewResolver(auth.NewSessionCodec(secret), accounts, secure)
	mux.HandleFunc("GET /election", resolver.WithActor(handler))

	actor, _ := identity.FromContext(r.Context())

Logged-in callers vote under their account; everyone else votes under
their session token.
*/
package identity
