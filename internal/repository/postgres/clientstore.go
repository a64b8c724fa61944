package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/avc/orderchat/internal/domain"
	"github.com/jackc/pgx/v5"
)

const upsertValueSQL = `INSERT INTO client_store (profile, key, value, updated_at)
	 VALUES ($1, $2, $3, NOW())
	 ON CONFLICT (profile, key) DO UPDATE
	 SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// ClientStore реализует domain.ClientStore в таблице client_store.
// Значения разных профилей не пересекаются.
type ClientStore struct {
	db      DBTX
	profile string
}

// NewClientStore создает новый ClientStore
func NewClientStore(db DBTX, profile string) *ClientStore {
	return &ClientStore{db: db, profile: profile}
}

// Get возвращает значение по ключу
func (r *ClientStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx,
		`SELECT value FROM client_store WHERE profile = $1 AND key = $2`,
		r.profile, key,
	).Scan(&value)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("repository: failed to get %q: %w", key, err)
	}

	return value, nil
}

// Set сохраняет значение
func (r *ClientStore) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.Exec(ctx, upsertValueSQL, r.profile, key, value); err != nil {
		return fmt.Errorf("repository: failed to set %q: %w", key, err)
	}
	return nil
}

// SetMany сохраняет несколько значений в одной транзакции
func (r *ClientStore) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := tx.Exec(ctx, upsertValueSQL, r.profile, key, values[key]); err != nil {
			return fmt.Errorf("repository: failed to set %q: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return nil
}

// Ping проверяет соединение с базой
func (r *ClientStore) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: failed to ping database: %w", err)
	}
	return nil
}
