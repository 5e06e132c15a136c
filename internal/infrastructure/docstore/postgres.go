package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"stillform-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Postgres keeps documents in a JSONB table. seq preserves insertion order
// and is left untouched on update.
type Postgres[T Document] struct {
	pool  *pgxpool.Pool
	table string
}

func NewPostgres[T Document](pool *pgxpool.Pool, table string) *Postgres[T] {
	return &Postgres[T]{pool: pool, table: pq.QuoteIdentifier(table)}
}

// EnsureSchema creates the backing table if it does not exist
func (p *Postgres[T]) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         TEXT PRIMARY KEY,
			seq        BIGSERIAL,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, p.table)

	if _, err := p.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", p.table, err)
	}
	return nil
}

func (p *Postgres[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	var raw []byte

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, p.table)
	err := p.pool.QueryRow(ctx, query, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, ErrNotFound
		}
		return doc, fmt.Errorf("query %s: %w", id, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode %s: %w", id, err)
	}
	return doc, nil
}

func (p *Postgres[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY seq`, p.table)
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p.table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (p *Postgres[T]) Upsert(ctx context.Context, doc T) error {
	return p.upsert(ctx, p.pool, doc)
}

// Seed inserts docs in one transaction when the table is empty
func (p *Postgres[T]) Seed(ctx context.Context, docs []T) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, p.table)
	if err := p.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", p.table, err)
	}
	if count > 0 {
		return 0, nil
	}

	err := database.WithTransaction(ctx, p.pool, func(tx pgx.Tx) error {
		for _, doc := range docs {
			if err := p.upsert(ctx, tx, doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// executor is satisfied by both *pgxpool.Pool and pgx.Tx
type executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (p *Postgres[T]) upsert(ctx context.Context, db executor, doc T) error {
	id := doc.DocumentID()
	if id == "" {
		return fmt.Errorf("document has empty id")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`, p.table)

	if _, err := db.Exec(ctx, query, id, raw); err != nil {
		return fmt.Errorf("upsert %s: %w", id, err)
	}
	return nil
}
