package storage

import (
	"context"
	"fmt"
	"olx-scraper/models"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWriter mirrors a search into the olx_listings table.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS olx_listings (
		id BIGSERIAL PRIMARY KEY,
		search_query TEXT NOT NULL,
		title TEXT NOT NULL,
		price TEXT,
		location TEXT,
		link TEXT NOT NULL,
		search_date TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_olx_listings_link
		ON olx_listings(link) WHERE link <> 'N/A';
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

const insertListingSQL = `
	INSERT INTO olx_listings (search_query, title, price, location, link, search_date)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (link) WHERE link <> 'N/A' DO NOTHING;
`

// buildBatch queues one insert per listing; it returns the batch and how
// many statements were queued.
func buildBatch(results models.SearchResults) (*pgx.Batch, int) {
	batch := &pgx.Batch{}
	for _, l := range results.Results {
		batch.Queue(
			insertListingSQL,
			results.SearchQuery,
			strings.TrimSpace(l.Title),
			l.Price,
			l.Location,
			strings.TrimSpace(l.Link),
			l.SearchDate,
		)
	}
	return batch, batch.Len()
}

func (w *PostgresWriter) WriteBatch(results models.SearchResults) error {
	batch, enqueued := buildBatch(results)
	if enqueued == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	br := w.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < enqueued; i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}

	return nil
}
