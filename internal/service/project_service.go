package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/db"
	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/socket"
	"github.com/eventflow-ifc/eventflow-backend/internal/types"
)

// ============================================
// Project Service
// ============================================

const (
	projectListCacheKey = "projects:list"
	projectCacheTTL     = 5 * time.Minute

	duplicateTitlePrefix = "Copy of - "
)

// ProjectInput carries the editable fields of a project. Update is a full
// replace: fields left nil are written as NULL, overwriting prior values.
type ProjectInput struct {
	Title           string
	DescriptionFR   *string
	DescriptionEN   *string
	DescriptionKM   *string
	StartDate       *time.Time
	DurationMinutes *int
	Status          string
}

type ProjectService interface {
	List(ctx context.Context) ([]*repository.Project, error)
	GetByID(ctx context.Context, id string) (*repository.Project, error)
	Create(ctx context.Context, in ProjectInput) (*repository.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (*repository.Project, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (*repository.Project, error)
	AttachImage(ctx context.Context, id, imageURL string) (*repository.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	cache       *db.RedisDB
	broadcaster *socket.Broadcaster
}

func NewProjectService(projectRepo repository.ProjectRepository, cache *db.RedisDB, broadcaster *socket.Broadcaster) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		cache:       cache,
		broadcaster: broadcaster,
	}
}

func (s *projectService) List(ctx context.Context) ([]*repository.Project, error) {
	if s.cache != nil {
		var cached []*repository.Project
		if err := s.cache.GetCache(ctx, projectListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, projectListCacheKey, projects, projectCacheTTL); err != nil {
			log.Printf("[Cache] Failed to cache project list: %v", err)
		}
	}
	return projects, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*repository.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.DurationMinutes != nil && *in.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", ErrValidation)
	}

	// Status is forced to draft on creation regardless of caller input
	project := &repository.Project{
		Title:           in.Title,
		DescriptionFR:   in.DescriptionFR,
		DescriptionEN:   in.DescriptionEN,
		DescriptionKM:   in.DescriptionKM,
		StartDate:       in.StartDate,
		DurationMinutes: in.DurationMinutes,
		Status:          types.StatusDraft,
		StatusColor:     types.ColorForStatus(types.StatusDraft),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	if s.broadcaster != nil {
		s.broadcaster.ProjectCreated(project.ID)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, in ProjectInput) (*repository.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Status == "" {
		in.Status = types.StatusDraft
	}
	if !types.IsValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	if in.DurationMinutes != nil && *in.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", ErrValidation)
	}

	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	// Full replace: every editable field takes the caller-supplied value,
	// including nils
	project.Title = in.Title
	project.DescriptionFR = in.DescriptionFR
	project.DescriptionEN = in.DescriptionEN
	project.DescriptionKM = in.DescriptionKM
	project.StartDate = in.StartDate
	project.DurationMinutes = in.DurationMinutes
	project.Status = in.Status
	project.StatusColor = types.ColorForStatus(in.Status)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	if s.broadcaster != nil {
		s.broadcaster.ProjectUpdated(project.ID)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	found, err := s.projectRepo.DeleteWithResources(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	s.invalidate(ctx)
	if s.broadcaster != nil {
		s.broadcaster.ProjectDeleted(id)
	}
	return nil
}

func (s *projectService) Duplicate(ctx context.Context, id string) (*repository.Project, error) {
	source, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrNotFound
	}

	// Shallow copy: descriptions and scheduling carry over, status resets to
	// draft, resource requirements do not follow
	dup := &repository.Project{
		Title:           duplicateTitlePrefix + source.Title,
		DescriptionFR:   source.DescriptionFR,
		DescriptionEN:   source.DescriptionEN,
		DescriptionKM:   source.DescriptionKM,
		StartDate:       source.StartDate,
		DurationMinutes: source.DurationMinutes,
		Status:          types.StatusDraft,
		StatusColor:     types.ColorForStatus(types.StatusDraft),
	}

	if err := s.projectRepo.Create(ctx, dup); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	if s.broadcaster != nil {
		s.broadcaster.ProjectCreated(dup.ID)
	}
	return dup, nil
}

func (s *projectService) AttachImage(ctx context.Context, id, imageURL string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	if err := s.projectRepo.UpdateImageURL(ctx, id, imageURL); err != nil {
		return nil, err
	}
	project.ImageURL = &imageURL

	s.invalidate(ctx)
	if s.broadcaster != nil {
		s.broadcaster.ProjectUpdated(id)
	}
	return project, nil
}

func (s *projectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, "projects:*"); err != nil {
		log.Printf("[Cache] Failed to invalidate project cache: %v", err)
	}
	if err := s.cache.InvalidateCache(ctx, "calendar:*"); err != nil {
		log.Printf("[Cache] Failed to invalidate calendar cache: %v", err)
	}
}
