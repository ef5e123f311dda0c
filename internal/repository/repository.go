// internal/repository/repository.go
package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ============================================
// Models / Entities
// ============================================

type Project struct {
	ID              string
	Title           string
	DescriptionFR   *string
	DescriptionEN   *string
	DescriptionKM   *string
	StartDate       *time.Time
	DurationMinutes *int
	Status          string
	StatusColor     string
	ImageURL        *string
	CreatedAt       time.Time
}

type ResourceRequirement struct {
	ID              string
	ProjectID       string
	RoleRequired    string
	StartTime       time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// ============================================
// Repositories Container
// ============================================

type Repositories struct {
	ProjectRepo  ProjectRepository
	ResourceRepo ResourceRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProjectRepo:  NewProjectRepository(pool),
		ResourceRepo: NewResourceRepository(pool),
	}
}
