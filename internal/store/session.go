package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"pmdeck/internal/model"

	_ "modernc.org/sqlite"
)

const sessionDBName = "session.sqlite"

const (
	sessionKeyToken = "authToken"
	sessionKeyUser  = "currentUser"
)

// SessionStore persists the auth session fields (token + current-user
// snapshot) across restarts. It is the only persisted state pmdeck owns;
// project records always reset to the seed set.
//
// Best effort by design: a missing or unreadable row reads as "no session".
type SessionStore struct {
	Dir string
}

func (s SessionStore) path() string {
	return filepath.Join(s.Dir, sessionDBName)
}

func (s SessionStore) open(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return nil, errors.New("session store: empty dir")
	}
	if err := ensureDir(s.Dir); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, err
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s SessionStore) set(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

func (s SessionStore) get(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Save writes the token and user snapshot in one transaction.
func (s SessionStore) Save(ctx context.Context, token string, user model.User) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.set(ctx, tx, sessionKeyToken, token); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.set(ctx, tx, sessionKeyUser, string(b)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Load returns the persisted session, if any. Corrupted rows are treated as
// no session rather than an error.
func (s SessionStore) Load(ctx context.Context) (token string, user model.User, ok bool, err error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", model.User{}, false, err
	}
	defer db.Close()

	token, hasToken, err := s.get(ctx, db, sessionKeyToken)
	if err != nil {
		return "", model.User{}, false, err
	}
	raw, hasUser, err := s.get(ctx, db, sessionKeyUser)
	if err != nil {
		return "", model.User{}, false, err
	}
	if !hasToken || !hasUser {
		return "", model.User{}, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", model.User{}, false, nil
	}
	return token, user, true, nil
}

// Clear removes the persisted session fields.
func (s SessionStore) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`,
		sessionKeyToken, sessionKeyUser)
	return err
}
