// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package syncgw

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketsite/internal/models"
)

// Postgres stores rows in the content_rows table, one JSONB document per
// (collection, id). The schema is created by the database package's
// migrations.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a Backend backed by the given database.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// List returns every row of a collection ordered by id.
func (p *Postgres) List(ctx context.Context, c models.Collection) ([]Record, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, data, updated_at
		FROM content_rows
		WHERE collection = $1
		ORDER BY id
	`, string(c))
	if err != nil {
		return nil, fmt.Errorf("list content rows: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		r := Record{Collection: c}
		var data []byte
		if err := rows.Scan(&r.ID, &data, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan content row: %w", err)
		}
		r.Data = data
		records = append(records, r)
	}
	return records, rows.Err()
}

// Put upserts a row. Creates it if it doesn't exist.
func (p *Postgres) Put(ctx context.Context, r Record) error {
	updatedAt := r.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO content_rows (collection, id, data, updated_at)
		VALUES ($1, $2, $3::jsonb, $4)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		string(r.Collection), r.ID, string(r.Data), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("put content row: %w", err)
	}
	return nil
}

// Remove deletes a row. Deleting a missing row is not an error.
func (p *Postgres) Remove(ctx context.Context, c models.Collection, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM content_rows WHERE collection = $1 AND id = $2`, string(c), id)
	if err != nil {
		return fmt.Errorf("remove content row: %w", err)
	}
	return nil
}
