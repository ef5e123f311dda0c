package handlers

import (
	"errors"
	"net/http"

	"github.com/eventflow-ifc/eventflow-backend/internal/models"
	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/service"
	"github.com/eventflow-ifc/eventflow-backend/internal/upload"
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Project  *ProjectHandler
	Resource *ResourceHandler
	Calendar *CalendarHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services, uploader upload.Uploader, maxUploadBytes int64) *Handlers {
	return &Handlers{
		Project: &ProjectHandler{
			projectService: services.Project,
			uploader:       uploader,
			maxUploadBytes: maxUploadBytes,
		},
		Resource: &ResourceHandler{resourceService: services.Resource},
		Calendar: &CalendarHandler{calendarService: services.Calendar},
	}
}

// respondError translates a service error to the wire taxonomy: validation
// failures are 400, missing ids 404, anything else is a storage failure
// surfaced as 500 with the underlying error passed through.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: message, Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: message, Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: message, Error: err.Error()})
	}
}

// ============================================
// Response Mappers
// ============================================

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		DescriptionFR:   p.DescriptionFR,
		DescriptionEN:   p.DescriptionEN,
		DescriptionKM:   p.DescriptionKM,
		StartDate:       p.StartDate,
		DurationMinutes: p.DurationMinutes,
		Status:          p.Status,
		StatusColor:     p.StatusColor,
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
	}
}

func toResourceResponse(r *repository.ResourceRequirement) models.ResourceResponse {
	return models.ResourceResponse{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		RoleRequired:    r.RoleRequired,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		CreatedAt:       r.CreatedAt,
	}
}

func toCalendarEventResponse(e service.CalendarEvent) models.CalendarEventResponse {
	return models.CalendarEventResponse{
		ID:     e.ID,
		Title:  e.Title,
		Start:  e.Start,
		End:    e.End,
		AllDay: false,
		Resource: models.CalendarEventResource{
			StatusColor: e.StatusColor,
		},
	}
}
