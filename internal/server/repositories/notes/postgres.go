package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"noteshare/internal/common"
	"noteshare/internal/dbx"
	"noteshare/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX. Tags are stored
// as a jsonb column; with the pgx driver in database/sql mode there is no
// native []string scan path, so they go through encoding/json.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO notes (owner_id, title, body, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		note.OwnerID, note.Title, note.Body, tags, note.CreatedAt, note.UpdatedAt).Scan(&note.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	query := `
		SELECT id, owner_id, title, body, tags, created_at, updated_at
		FROM notes
		WHERE id = $1
	`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE notes
		SET title = $2, body = $3, tags = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		note.ID, note.Title, note.Body, tags, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(result)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(result)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	query := `
		SELECT id, owner_id, title, body, tags, created_at, updated_at
		FROM notes
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`
	return r.list(ctx, query, ownerID)
}

func (r *PostgresRepository) ListSharedWith(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT n.id, n.owner_id, n.title, n.body, n.tags, n.created_at, n.updated_at
		FROM notes n
		JOIN collaborations c ON c.note_id = n.id
		WHERE c.user_id = $1
		ORDER BY n.updated_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*models.Note, error) {
	note := &models.Note{}
	var tags []byte
	err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Body, &tags,
		&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(tags, &note.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	return note, nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}
	return encoded, nil
}

func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
