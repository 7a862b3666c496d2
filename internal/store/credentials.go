package store

import (
	"database/sql"
	"time"
)

// credentialName is the fixed name the API key is stored under. It is the
// only row ever written, so an empty credentials table and a missing key
// are the same condition.
const credentialName = "api_key"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// SetKey persists the API key, overwriting any previous value. An empty key
// is rejected without touching the store.
func (s *Store) SetKey(key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	_, err := s.db.Exec(`
		INSERT INTO credentials (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, credentialName, key, time.Now().UTC())
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetKey returns the stored API key, or ok=false when none is stored.
func (s *Store) GetKey() (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE name = ?`, credentialName).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// DeleteKey removes the stored API key. It reports false when the store
// held no credentials at all.
func (s *Store) DeleteKey() (bool, error) {
	res, err := s.db.Exec(`DELETE FROM credentials`)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
