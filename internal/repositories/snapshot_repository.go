package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"schemaviz/internal/models"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Create(ctx context.Context, snapshot *models.Snapshot) error {
	snapshot.Prepare()

	modelJSON, err := json.Marshal(snapshot.Model)
	if err != nil {
		return fmt.Errorf("failed to encode schema model: %w", err)
	}

	query := `
		INSERT INTO snapshots (id, name, filename, dialect, content, model, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	snapshot.CreatedAt = time.Now()
	_, err = r.pool.Exec(ctx, query,
		snapshot.ID,
		snapshot.Name,
		snapshot.Filename,
		snapshot.Dialect,
		snapshot.Content,
		modelJSON,
		snapshot.CreatedAt,
	)

	return err
}

func (r *SnapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Snapshot, error) {
	query := `
		SELECT id, name, filename, dialect, content, model, created_at
		FROM snapshots WHERE id = $1
	`

	var snapshot models.Snapshot
	var modelJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Name,
		&snapshot.Filename,
		&snapshot.Dialect,
		&snapshot.Content,
		&modelJSON,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if len(modelJSON) > 0 {
		var model models.SchemaModel
		if err := json.Unmarshal(modelJSON, &model); err != nil {
			return nil, fmt.Errorf("failed to decode schema model: %w", err)
		}
		snapshot.Model = &model
	}

	return &snapshot, nil
}

// List returns snapshot summaries, newest first. Content and model are left
// empty; fetch a single snapshot for the full payload.
func (r *SnapshotRepository) List(ctx context.Context) ([]models.Snapshot, error) {
	query := `
		SELECT id, name, filename, dialect, created_at
		FROM snapshots ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]models.Snapshot, 0)
	for rows.Next() {
		var snapshot models.Snapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.Name,
			&snapshot.Filename,
			&snapshot.Dialect,
			&snapshot.CreatedAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM snapshots WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
