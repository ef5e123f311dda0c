package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	FindAll(ctx context.Context) ([]*Project, error)
	FindScheduled(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, project *Project) error
	UpdateImageURL(ctx context.Context, id, imageURL string) error
	// DeleteWithResources removes the project's resource requirements and then
	// the project itself in a single transaction. Returns false when no project
	// matched the id.
	DeleteWithResources(ctx context.Context, id string) (bool, error)
}

type pgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgProjectRepository{pool: pool}
}

const projectColumns = `id, title, description_fr, description_en, description_km, start_date, duration_minutes, status, status_color, image_url, created_at`

func (r *pgProjectRepository) Create(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (title, description_fr, description_en, description_km, start_date, duration_minutes, status, status_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		project.Title, project.DescriptionFR, project.DescriptionEN, project.DescriptionKM,
		project.StartDate, project.DurationMinutes, project.Status, project.StatusColor,
	).Scan(&project.ID, &project.CreatedAt)
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p := &Project{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.DescriptionFR, &p.DescriptionEN, &p.DescriptionKM,
		&p.StartDate, &p.DurationMinutes, &p.Status, &p.StatusColor, &p.ImageURL,
		&p.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) FindAll(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY start_date DESC, created_at DESC
	`
	return r.queryProjects(ctx, query)
}

func (r *pgProjectRepository) FindScheduled(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE start_date IS NOT NULL
		ORDER BY start_date
	`
	return r.queryProjects(ctx, query)
}

func (r *pgProjectRepository) queryProjects(ctx context.Context, query string) ([]*Project, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(
			&p.ID, &p.Title, &p.DescriptionFR, &p.DescriptionEN, &p.DescriptionKM,
			&p.StartDate, &p.DurationMinutes, &p.Status, &p.StatusColor, &p.ImageURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *pgProjectRepository) Update(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects
		SET title = $2, description_fr = $3, description_en = $4, description_km = $5,
		    start_date = $6, duration_minutes = $7, status = $8, status_color = $9
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.Title, project.DescriptionFR, project.DescriptionEN,
		project.DescriptionKM, project.StartDate, project.DurationMinutes,
		project.Status, project.StatusColor,
	)
	return err
}

func (r *pgProjectRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	query := `UPDATE projects SET image_url = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, imageURL)
	return err
}

func (r *pgProjectRepository) DeleteWithResources(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_resources WHERE project_id = $1`, id); err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
