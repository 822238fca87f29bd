// Package session holds the authenticated user and bearer token, persisted
// in the local database so a login survives process restarts. It is the
// client-side analog of the browser storage keys the web app would use.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ceyizapp/ceyiz/internal/model"
)

// Persisted keys. Always written and cleared together.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// Store is the process-wide session state. It is constructed once at startup
// and passed explicitly to whoever needs it; it is not safe for concurrent
// use.
type Store struct {
	db *sql.DB

	user         *model.User
	token        string
	refreshToken string

	// Register flow: account created, email verification outstanding.
	pendingVerification bool
	pendingEmail        string
}

// Load restores the session from the local database. A missing token or user
// record leaves the store unauthenticated; a corrupt user record is treated
// the same rather than failing startup.
func Load(ctx context.Context, database *sql.DB) (*Store, error) {
	s := &Store{db: database}

	token, err := getKey(ctx, database, keyAccessToken)
	if err != nil {
		return nil, err
	}
	userJSON, err := getKey(ctx, database, keyUser)
	if err != nil {
		return nil, err
	}
	refresh, err := getKey(ctx, database, keyRefreshToken)
	if err != nil {
		return nil, err
	}

	if token != "" && userJSON != "" {
		var user model.User
		if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
			s.user = &user
			s.token = token
			s.refreshToken = refresh
		}
	}
	return s, nil
}

// User returns the current user, or nil when unauthenticated.
func (s *Store) User() *model.User {
	return s.user
}

// Token returns the current bearer token, or empty when unauthenticated.
func (s *Store) Token() string {
	return s.token
}

// Authenticated reports whether a user and token are present.
func (s *Store) Authenticated() bool {
	return s.user != nil && s.token != ""
}

// SetSession stores a fresh login both in memory and in the local database.
func (s *Store) SetSession(ctx context.Context, user model.User, token, refreshToken string) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}

	if err := setKey(ctx, s.db, keyAccessToken, token); err != nil {
		return err
	}
	if err := setKey(ctx, s.db, keyRefreshToken, refreshToken); err != nil {
		return err
	}
	if err := setKey(ctx, s.db, keyUser, string(userJSON)); err != nil {
		return err
	}

	s.user = &user
	s.token = token
	s.refreshToken = refreshToken
	s.pendingVerification = false
	s.pendingEmail = ""
	return nil
}

// SetUser replaces the in-memory user without touching persisted tokens,
// used when check-auth refreshes the profile.
func (s *Store) SetUser(user *model.User) {
	s.user = user
}

// Clear wipes the session from memory and the local database. It runs on
// logout regardless of whether the remote logout call succeeded.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.user = nil
	s.token = ""
	s.refreshToken = ""
	s.pendingVerification = false
	s.pendingEmail = ""
	return nil
}

// SetPendingVerification marks a registration as awaiting email verification.
func (s *Store) SetPendingVerification(email string) {
	s.pendingVerification = true
	s.pendingEmail = email
}

// PendingVerification returns the awaiting-verification flag and the email it
// applies to.
func (s *Store) PendingVerification() (bool, string) {
	return s.pendingVerification, s.pendingEmail
}

func getKey(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session key %q: %w", key, err)
	}
	return value, nil
}

func setKey(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing session key %q: %w", key, err)
	}
	return nil
}
