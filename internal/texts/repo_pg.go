package texts

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectVersionColumns = `SELECT id, project_id, content, source, file_name, storage_key, created_at
FROM text_versions`

// Create inserts a new text version.
func (r *PGRepo) Create(ctx context.Context, v TextVersion) error {
	const query = `
INSERT INTO text_versions (
    id,
    project_id,
    content,
    source,
    file_name,
    storage_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		v.ID,
		v.ProjectID,
		v.Content,
		v.Source,
		nullString(v.FileName),
		nullString(v.StorageKey),
		v.CreatedAt,
	)
	return err
}

// Latest returns the newest version of a project.
func (r *PGRepo) Latest(ctx context.Context, projectID string) (TextVersion, error) {
	const query = selectVersionColumns + `
WHERE project_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`
	return scanVersion(r.DB.QueryRowContext(ctx, query, projectID))
}

// GetByID returns a version of a project by id.
func (r *PGRepo) GetByID(ctx context.Context, projectID, versionID string) (TextVersion, error) {
	const query = selectVersionColumns + `
WHERE project_id = $1 AND id = $2`
	return scanVersion(r.DB.QueryRowContext(ctx, query, projectID, versionID))
}

// ListByProject returns versions newest first, honoring limit/offset.
func (r *PGRepo) ListByProject(ctx context.Context, projectID string, limit, offset int) ([]TextVersion, error) {
	if offset < 0 {
		offset = 0
	}
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	const query = selectVersionColumns + `
WHERE project_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, projectID, limitArg, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TextVersion{}
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (TextVersion, error) {
	var v TextVersion
	var fileName sql.NullString
	var storageKey sql.NullString
	err := row.Scan(
		&v.ID,
		&v.ProjectID,
		&v.Content,
		&v.Source,
		&fileName,
		&storageKey,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TextVersion{}, ErrNotFound
		}
		return TextVersion{}, err
	}
	if fileName.Valid {
		v.FileName = fileName.String
	}
	if storageKey.Valid {
		v.StorageKey = storageKey.String
	}
	return v, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
