// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/berkayk/pollhub/auth"
	"github.com/berkayk/pollhub/cliparse"
	"github.com/berkayk/pollhub/db"
	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/store"
)

// TestPassword is the plaintext password of every user created by
// CreateTestUser.
const TestPassword = "password123"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema and seeded roles. Each call gets its own database; it lives until
// the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A uniquely named shared-cache database keeps the pool's connections
	// pointed at the same in-memory store.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedRoles(conn); err != nil {
		t.Fatalf("Failed to seed roles: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		DatabaseDriver: "sqlite",
		JWTSecret:      "test-jwt-secret",
		TokenTTL:       time.Hour,
	}
}

// CreateTestUser inserts a user with the ROLE_USER role and TestPassword
// as its password.
func CreateTestUser(t *testing.T, conn *sql.DB, name, username, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	users := store.NewUserStore(conn)
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	if err := users.AssignRole(context.Background(), user.ID, models.RoleUser); err != nil {
		t.Fatalf("Failed to assign test role: %v", err)
	}

	return user
}

// CreateTestPoll inserts a poll with the given choices and returns it with
// choice IDs populated.
func CreateTestPoll(t *testing.T, conn *sql.DB, creatorID string, expiresAt time.Time, choiceTexts ...string) *models.Poll {
	t.Helper()

	poll := &models.Poll{
		ID:        uuid.NewString(),
		Question:  "Test question?",
		CreatedBy: creatorID,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	for i, text := range choiceTexts {
		poll.Choices = append(poll.Choices, models.Choice{
			ID:       uuid.NewString(),
			PollID:   poll.ID,
			Text:     text,
			Position: i,
		})
	}

	if err := store.NewPollStore(conn).Create(context.Background(), poll); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return poll
}

// CastTestVote inserts a vote row directly.
func CastTestVote(t *testing.T, conn *sql.DB, pollID, choiceID, userID string) {
	t.Helper()

	vote := &models.Vote{
		ID:       uuid.NewString(),
		PollID:   pollID,
		ChoiceID: choiceID,
		UserID:   userID,
		CastAt:   time.Now(),
	}
	if err := store.NewVoteStore(conn).Insert(context.Background(), vote); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
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
