package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"giraffe-store/internal/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS storefront_state (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVRepository хранит состояние витрины в Postgres, одна строка на ключ.
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// EnsureSchema создает таблицу, если ее еще нет.
func (r *KVRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ошибка при создании таблицы storefront_state: %w", err)
	}
	return nil
}

// Get - метод получения значения по ключу.
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM storefront_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ключа %s: %w", key, err)
	}
	return value, nil
}

// Set - метод сохранения значения, перезаписывает существующее.
func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO storefront_state (key, value, updated_at)
         VALUES ($1, $2, now())
         ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении ключа %s: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM storefront_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("ошибка при удалении ключа %s: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Close() error {
	return r.db.Close()
}
