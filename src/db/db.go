package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS paymill_transactions (
	id                  TEXT PRIMARY KEY,
	amount              TEXT NOT NULL DEFAULT '',
	origin_amount       BIGINT NOT NULL DEFAULT 0,
	currency            TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL DEFAULT '',
	description         TEXT NOT NULL DEFAULT '',
	livemode            BOOLEAN NOT NULL DEFAULT FALSE,
	client_id           TEXT,
	payment_id          TEXT,
	preauthorization_id TEXT,
	response_code       INTEGER NOT NULL DEFAULT 0,
	short_id            TEXT NOT NULL DEFAULT '',
	app_id              TEXT,
	invoices            TEXT[] NOT NULL DEFAULT '{}',
	created_at          TIMESTAMPTZ,
	updated_at          TIMESTAMPTZ,
	raw                 JSONB NOT NULL,
	synced_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS paymill_transactions_client_id_idx ON paymill_transactions (client_id);
CREATE INDEX IF NOT EXISTS paymill_transactions_created_at_idx ON paymill_transactions (created_at);
`

func Connect(url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
