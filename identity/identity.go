// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/middleware"
	"github.com/mohammadtout24/electionV2/models"
	"github.com/mohammadtout24/electionV2/store"
)

// SessionMaxAge matches a two week browser session.
const SessionMaxAge = 14 * 24 * time.Hour

// AccountResolver loads an account and decides its role.
type AccountResolver interface {
	ResolveRole(ctx context.Context, accountID string) (models.Account, election.Role, error)
}

// Resolver turns the session cookie of a request into an Actor.
type Resolver struct {
	codec    auth.SessionCodec
	accounts AccountResolver
	secure   bool
}

func NewResolver(codec auth.SessionCodec, accounts AccountResolver, secureCookies bool) *Resolver {
	return &Resolver{codec: codec, accounts: accounts, secure: secureCookies}
}

type ctxKey struct{}

// NewContext returns ctx carrying actor.
func NewContext(ctx context.Context, actor election.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// FromContext returns the actor stored by WithActor.
func FromContext(ctx context.Context) (election.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(election.Actor)
	return actor, ok
}

// Resolve identifies the caller. A request without a valid session gets
// a new anonymous token, written to the response as a cookie; a request
// that already carries an actor in its context is not resolved again.
func (r *Resolver) Resolve(w http.ResponseWriter, req *http.Request) (election.Actor, error) {
	if actor, ok := FromContext(req.Context()); ok {
		return actor, nil
	}

	session, ok := r.readSession(req)
	if !ok {
		token, err := auth.NewSessionToken()
		if err != nil {
			return election.Actor{}, err
		}
		session = auth.Session{Token: token}
		r.WriteSession(w, session)
	}

	actor := election.Actor{
		Identity:     election.SessionIdentity(session.Token),
		Role:         election.VoterRole(),
		SessionToken: session.Token,
	}
	if session.AccountID == "" {
		return actor, nil
	}

	acct, role, err := r.accounts.ResolveRole(req.Context(), session.AccountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		// The account is gone; keep the browser's anonymous identity.
		slog.Warn("session names unknown account", "account_id", session.AccountID)
		r.WriteSession(w, auth.Session{Token: session.Token})
		return actor, nil
	}
	if err != nil {
		return election.Actor{}, err
	}

	actor.Identity = election.AccountIdentity(acct.ID)
	actor.Role = role
	actor.AccountID = acct.ID
	actor.Username = acct.Username
	return actor, nil
}

// WithActor resolves the caller once and stores it in the request context.
func (r *Resolver) WithActor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		actor, err := r.Resolve(w, req)
		if err != nil {
			slog.Error("failed to resolve identity", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve session")
			return
		}
		next(w, req.WithContext(NewContext(req.Context(), actor)))
	}
}

// Login binds accountID to the caller's session. The anonymous token is
// kept so the browser's own session survives.
func (r *Resolver) Login(w http.ResponseWriter, actor election.Actor, accountID string) {
	r.WriteSession(w, auth.Session{Token: actor.SessionToken, AccountID: accountID})
}

// Logout drops the account and starts a fresh anonymous session.
func (r *Resolver) Logout(w http.ResponseWriter) error {
	token, err := auth.NewSessionToken()
	if err != nil {
		return err
	}
	r.WriteSession(w, auth.Session{Token: token})
	return nil
}

// WriteSession sets the signed session cookie.
func (r *Resolver) WriteSession(w http.ResponseWriter, s auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    r.codec.Encode(s),
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (r *Resolver) readSession(req *http.Request) (auth.Session, bool) {
	cookie, err := req.Cookie(auth.SessionCookieName)
	if err != nil {
		return auth.Session{}, false
	}
	session, err := r.codec.Decode(cookie.Value)
	if err != nil {
		slog.Warn("discarding invalid session cookie", "remote", middleware.GetClientIP(req))
		return auth.Session{}, false
	}
	return session, true
}
