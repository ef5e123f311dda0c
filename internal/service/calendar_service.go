package service

import (
	"context"
	"log"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/db"
	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/types"
)

// ============================================
// Calendar Projection
// ============================================

const calendarCacheKey = "calendar:events"

// CalendarEvent is the derived, read-only calendar view of a scheduled
// project. It is recomputed per request and never persisted.
type CalendarEvent struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	StatusColor string
}

type CalendarService interface {
	Events(ctx context.Context) ([]CalendarEvent, error)
}

type calendarService struct {
	projectRepo repository.ProjectRepository
	cache       *db.RedisDB
}

func NewCalendarService(projectRepo repository.ProjectRepository, cache *db.RedisDB) CalendarService {
	return &calendarService{
		projectRepo: projectRepo,
		cache:       cache,
	}
}

func (s *calendarService) Events(ctx context.Context) ([]CalendarEvent, error) {
	if s.cache != nil {
		var cached []CalendarEvent
		if err := s.cache.GetCache(ctx, calendarCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.projectRepo.FindScheduled(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(projects))
	for _, p := range projects {
		if event, ok := ProjectToEvent(p); ok {
			events = append(events, event)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, calendarCacheKey, events, projectCacheTTL); err != nil {
			log.Printf("[Cache] Failed to cache calendar events: %v", err)
		}
	}
	return events, nil
}

// ProjectToEvent maps a scheduled project to its calendar event. The second
// return is false for projects without a start date, which never appear on
// the calendar. Projects without a duration span the default 60 minutes.
func ProjectToEvent(p *repository.Project) (CalendarEvent, bool) {
	if p.StartDate == nil {
		return CalendarEvent{}, false
	}
	duration := types.DefaultDurationMinutes
	if p.DurationMinutes != nil && *p.DurationMinutes > 0 {
		duration = *p.DurationMinutes
	}
	start := *p.StartDate
	return CalendarEvent{
		ID:          p.ID,
		Title:       p.Title,
		Start:       start,
		End:         start.Add(time.Duration(duration) * time.Minute),
		StatusColor: p.StatusColor,
	}, true
}
