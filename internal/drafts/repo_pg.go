package drafts

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new draft and returns the generated id.
func (r *PGRepo) Create(ctx context.Context, draft Draft) (int64, error) {
	const query = `
INSERT INTO drafts (title, payload, template, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		query,
		draft.Title,
		[]byte(draft.Payload),
		draft.Template,
		draft.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get fetches a draft by id.
func (r *PGRepo) Get(ctx context.Context, id int64) (Draft, error) {
	const query = `
SELECT id, title, payload, template, created_at, updated_at
FROM drafts
WHERE id = $1`

	var draft Draft
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&draft.ID,
		&draft.Title,
		&payload,
		&draft.Template,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, err
	}
	draft.Payload = payload
	return draft, nil
}

// ListSummaries lists all drafts newest-first by update time, payload excluded.
func (r *PGRepo) ListSummaries(ctx context.Context) ([]Summary, error) {
	const query = `
SELECT id, title, template, created_at, updated_at
FROM drafts
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Template, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update overwrites all mutable fields unconditionally and bumps updated_at.
// A missing id is surfaced as ErrNotFound rather than silently succeeding.
func (r *PGRepo) Update(ctx context.Context, draft Draft) error {
	const query = `
UPDATE drafts
SET title = $2, payload = $3, template = $4, updated_at = $5
WHERE id = $1`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		draft.ID,
		draft.Title,
		[]byte(draft.Payload),
		draft.Template,
		draft.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a draft if present; deleting a missing id succeeds.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM drafts WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
