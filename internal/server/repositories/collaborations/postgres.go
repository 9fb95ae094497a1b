package collaborations

import (
	"context"
	"fmt"

	"noteshare/internal/common"
	"noteshare/internal/dbx"
	"noteshare/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, grant *models.Collaboration) (*models.Collaboration, error) {
	query := `
		INSERT INTO collaborations (note_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, grant.NoteID, grant.UserID).
		Scan(&grant.ID, &grant.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return grant, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, noteID, userID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM collaborations WHERE note_id = $1 AND user_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, noteID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, noteID, userID string) error {
	query := `
		DELETE FROM collaborations
		WHERE note_id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, noteID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByNote(ctx context.Context, noteID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM collaborations WHERE note_id = $1`, noteID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByNote(ctx context.Context, noteID string) ([]*models.Collaboration, error) {
	query := `
		SELECT id, note_id, user_id, created_at
		FROM collaborations
		WHERE note_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Collaboration
	for rows.Next() {
		grant := &models.Collaboration{}
		if err := rows.Scan(&grant.ID, &grant.NoteID, &grant.UserID, &grant.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, grant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
