// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/db"
	"github.com/mohammadtout24/electionV2/events"
)

// TestSessionSecret signs session cookies in tests
const TestSessionSecret = "test-session-secret"

// TestDeadline is the deadline of GetTestConfig
var TestDeadline = time.Date(2025, 11, 7, 23, 59, 59, 0, time.FixedZone("AST", 3*60*60))

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A uniquely named shared-cache database lives as long as one
	// connection to it is open, and is invisible to other tests.
	url := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open("sqlite", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  "sqlite",
		SessionSecret: TestSessionSecret,
		Deadline:      TestDeadline,
		KafkaTopic:    "votes",
	}
}

// BeforeDeadline is an instant at which voting is open
func BeforeDeadline() time.Time {
	return TestDeadline.Add(-24 * time.Hour)
}

// AfterDeadline is an instant at which voting is closed
func AfterDeadline() time.Time {
	return TestDeadline.Add(time.Second)
}

// CreateTestAccount inserts an account and returns its ID
func CreateTestAccount(t *testing.T, conn *sql.DB, username, password string, isAdmin bool) string {
	t.Helper()

	accountID, _ := auth.GenerateID(12)
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO account (id, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, accountID, username, hash, isAdmin, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return accountID
}

// CreateTestCandidate inserts a candidate and returns its ID.
// ownerAccountID may be empty for an unlinked candidate.
func CreateTestCandidate(t *testing.T, conn *sql.DB, name, ownerAccountID string) string {
	t.Helper()

	candidateID, _ := auth.GenerateID(12)
	var owner *string
	if ownerAccountID != "" {
		owner = &ownerAccountID
	}

	_, err := conn.Exec(`
		INSERT INTO candidate (id, name, party, topic, bio, image_url, owner_account_id, created_at)
		VALUES ($1, $2, 'Independent', 'General', '', $3, $4, $5)
	`, candidateID, name, "/media/candidates/"+candidateID+".png", owner, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// InsertTestVote writes a vote row directly, bypassing the ledger
func InsertTestVote(t *testing.T, conn *sql.DB, voterKind, voterKey, candidateID string) string {
	t.Helper()

	voteID, _ := auth.GenerateID(16)
	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO vote (id, voter_kind, voter_key, candidate_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, voteID, voterKind, voterKey, candidateID, now, now)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// CountVotes returns the number of vote rows
func CountVotes(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&n); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// SessionCookie builds a signed session cookie as the server would set it
func SessionCookie(token, accountID string) *http.Cookie {
	codec := auth.NewSessionCodec(TestSessionSecret)
	return &http.Cookie{
		Name:  auth.SessionCookieName,
		Value: codec.Encode(auth.Session{Token: token, AccountID: accountID}),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// RecordingPublisher keeps every published vote event in memory.
// Setting Err makes Publish fail after recording the attempt.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.VoteEvent
	Err    error
}

func (p *RecordingPublisher) Publish(ctx context.Context, ev events.VoteEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.Err
}

func (p *RecordingPublisher) Close() error { return nil }

// Events returns a copy of the published events
func (p *RecordingPublisher) Events() []events.VoteEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.VoteEvent(nil), p.events...)
}
