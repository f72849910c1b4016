// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/clock"
	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/identity"
	"github.com/mohammadtout24/electionV2/metrics"
	"github.com/mohammadtout24/electionV2/store"
	"github.com/mohammadtout24/electionV2/testutil"
)

// testEnv wires the handlers the way the router does, over an in-memory
// database and a clock that starts a day before the deadline.
type testEnv struct {
	db         *sql.DB
	cfg        cliparse.Config
	clock      *clock.FakeClock
	metrics    *metrics.Metrics
	events     *testutil.RecordingPublisher
	resolver   *identity.Resolver
	voting     *VotingHandler
	results    *ResultsHandler
	candidates *CandidateHandler
	accounts   *AccountHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	cfg := testutil.GetTestConfig()
	clk := clock.Fake(testutil.BeforeDeadline())
	m := metrics.New()
	pub := &testutil.RecordingPublisher{}
	resolver := identity.NewResolver(auth.NewSessionCodec(cfg.SessionSecret), store.NewAccounts(conn), false)

	return &testEnv{
		db:         conn,
		cfg:        cfg,
		clock:      clk,
		metrics:    m,
		events:     pub,
		resolver:   resolver,
		voting:     NewVotingHandler(conn, cfg, clk, m, pub),
		results:    NewResultsHandler(conn, cfg, clk, m),
		candidates: NewCandidateHandler(conn, cfg),
		accounts:   NewAccountHandler(conn, cfg, resolver, m),
	}
}

// do runs h behind the identity resolver, as the router mounts it
func (e *testEnv) do(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.resolver.WithActor(h)(w, req)
	return w
}

// as attaches a session cookie for token, logged in as accountID if set
func as(req *http.Request, token, accountID string) *http.Request {
	req.AddCookie(testutil.SessionCookie(token, accountID))
	return req
}

// sessionSet decodes the session cookie written to w, if any
func sessionSet(t *testing.T, w *httptest.ResponseRecorder) (auth.Session, bool) {
	t.Helper()
	codec := auth.NewSessionCodec(testutil.TestSessionSecret)
	for _, c := range w.Result().Cookies() {
		if c.Name != auth.SessionCookieName {
			continue
		}
		s, err := codec.Decode(c.Value)
		if err != nil {
			t.Fatalf("Server set an undecodable session: %v", err)
		}
		return s, true
	}
	return auth.Session{}, false
}

func TestCurrentActor_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/election", nil)

	if _, ok := currentActor(w, req); ok {
		t.Fatal("Expected no actor without the resolver")
	}
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func ioNopCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
