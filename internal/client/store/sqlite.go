package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/morikawa/riskadvisor/internal/client/models"
	"github.com/morikawa/riskadvisor/internal/common"
	"github.com/morikawa/riskadvisor/internal/dbx"
)

// SQLiteStore keeps the persisted entries in a local metadata(key, value)
// table so they survive process restarts.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Credential(ctx context.Context) (string, error) {
	value, err := s.get(ctx, s.db, common.CredentialKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *SQLiteStore) SetCredential(ctx context.Context, token string) error {
	return s.set(ctx, s.db, common.CredentialKey, []byte(token))
}

func (s *SQLiteStore) ClearCredential(ctx context.Context) error {
	return s.delete(ctx, s.db, common.CredentialKey)
}

func (s *SQLiteStore) CachedUser(ctx context.Context) (*models.User, error) {
	value, err := s.get(ctx, s.db, common.CachedUserKey)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(value, &u); err != nil {
		return nil, fmt.Errorf("failed to decode cached user: %w", err)
	}
	return &u, nil
}

func (s *SQLiteStore) SetCachedUser(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode cached user: %w", err)
	}
	return s.set(ctx, s.db, common.CachedUserKey, data)
}

func (s *SQLiteStore) ClearCachedUser(ctx context.Context) error {
	return s.delete(ctx, s.db, common.CachedUserKey)
}

// ClearAll removes the credential and the cached user in one transaction,
// so a crash between the two deletes cannot leave a partially cleared state.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.delete(ctx, tx, common.CredentialKey); err != nil {
			return err
		}
		return s.delete(ctx, tx, common.CachedUserKey)
	})
}
