// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SessionCookieName is the cookie the session travels in.
const SessionCookieName = "election_session"

// Session is the client-held state: the anonymous token, plus the
// account id once the browser has logged in.
type Session struct {
	Token     string
	AccountID string
}

// SessionCodec signs sessions into cookie values and verifies them back.
type SessionCodec struct {
	secret []byte
}

func NewSessionCodec(secret string) SessionCodec {
	return SessionCodec{secret: []byte(secret)}
}

// Encode returns payload.signature, both URL-safe base64 without padding
func (c SessionCodec) Encode(s Session) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(s.Token + "|" + s.AccountID))
	return payload + "." + c.sign(payload)
}

// Decode verifies the signature and returns the session it protects
func (c SessionCodec) Decode(value string) (Session, error) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok || payload == "" || sig == "" {
		return Session{}, ErrInvalidSession
	}

	if !hmac.Equal([]byte(sig), []byte(c.sign(payload))) {
		return Session{}, ErrInvalidSession
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Session{}, ErrInvalidSession
	}

	token, accountID, ok := strings.Cut(string(raw), "|")
	if !ok || token == "" {
		return Session{}, ErrInvalidSession
	}

	return Session{Token: token, AccountID: accountID}, nil
}

func (c SessionCodec) sign(payload string) string {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
