package service

import (
	"errors"

	"github.com/eventflow-ifc/eventflow-backend/internal/config"
	"github.com/eventflow-ifc/eventflow-backend/internal/db"
	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/socket"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("invalid input")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Project  ProjectService
	Resource ResourceService
	Calendar CalendarService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config      *config.Config
	Repos       *repository.Repositories
	Cache       *db.RedisDB // optional, nil when Redis is not configured
	Broadcaster *socket.Broadcaster
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Project: NewProjectService(
			deps.Repos.ProjectRepo,
			deps.Cache,
			deps.Broadcaster,
		),
		Resource: NewResourceService(
			deps.Repos.ResourceRepo,
			deps.Repos.ProjectRepo,
			deps.Broadcaster,
		),
		Calendar: NewCalendarService(
			deps.Repos.ProjectRepo,
			deps.Cache,
		),
	}
}
