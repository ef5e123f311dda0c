package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *ResourceRequirement) error
	FindByProjectID(ctx context.Context, projectID string) ([]*ResourceRequirement, error)
	Delete(ctx context.Context, id string) error
	// DeleteOrphans removes resource requirements whose project no longer
	// exists. Used by the maintenance sweep.
	DeleteOrphans(ctx context.Context) (int64, error)
}

type pgResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) ResourceRepository {
	return &pgResourceRepository{pool: pool}
}

func (r *pgResourceRepository) Create(ctx context.Context, resource *ResourceRequirement) error {
	query := `
		INSERT INTO project_resources (project_id, role_required, start_time, duration_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		resource.ProjectID, resource.RoleRequired, resource.StartTime, resource.DurationMinutes,
	).Scan(&resource.ID, &resource.CreatedAt)
}

func (r *pgResourceRepository) FindByProjectID(ctx context.Context, projectID string) ([]*ResourceRequirement, error) {
	query := `
		SELECT id, project_id, role_required, start_time, duration_minutes, created_at
		FROM project_resources
		WHERE project_id = $1
		ORDER BY start_time
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []*ResourceRequirement
	for rows.Next() {
		res := &ResourceRequirement{}
		if err := rows.Scan(
			&res.ID, &res.ProjectID, &res.RoleRequired, &res.StartTime,
			&res.DurationMinutes, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *pgResourceRepository) Delete(ctx context.Context, id string) error {
	// Deleting an id that is already gone is not an error
	query := `DELETE FROM project_resources WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *pgResourceRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM project_resources pr
		WHERE NOT EXISTS (SELECT 1 FROM projects p WHERE p.id = pr.project_id)
	`
	tag, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
