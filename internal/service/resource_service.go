package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/socket"
)

// ============================================
// Resource Requirement Service
// ============================================

type ResourceService interface {
	ListByProject(ctx context.Context, projectID string) ([]*repository.ResourceRequirement, error)
	Create(ctx context.Context, projectID, roleRequired string, startTime time.Time, durationMinutes int) (*repository.ResourceRequirement, error)
	Delete(ctx context.Context, id string) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	projectRepo  repository.ProjectRepository
	broadcaster  *socket.Broadcaster
}

func NewResourceService(resourceRepo repository.ResourceRepository, projectRepo repository.ProjectRepository, broadcaster *socket.Broadcaster) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		projectRepo:  projectRepo,
		broadcaster:  broadcaster,
	}
}

func (s *resourceService) ListByProject(ctx context.Context, projectID string) ([]*repository.ResourceRequirement, error) {
	return s.resourceRepo.FindByProjectID(ctx, projectID)
}

func (s *resourceService) Create(ctx context.Context, projectID, roleRequired string, startTime time.Time, durationMinutes int) (*repository.ResourceRequirement, error) {
	if strings.TrimSpace(roleRequired) == "" {
		return nil, fmt.Errorf("%w: role_required is required", ErrValidation)
	}
	if startTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", ErrValidation)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", ErrValidation)
	}

	// Check the parent explicitly so a bad project id surfaces as 404 instead
	// of a constraint violation
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	resource := &repository.ResourceRequirement{
		ProjectID:       projectID,
		RoleRequired:    roleRequired,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.ResourceAdded(projectID, resource.ID)
	}
	return resource, nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	// Idempotent: an id that is already gone still succeeds
	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.ResourceRemoved(id)
	}
	return nil
}
