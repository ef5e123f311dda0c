package models

import "time"

// ============================================
// Project DTOs
// ============================================

type CreateProjectRequest struct {
	Title           string     `json:"title" binding:"required"`
	DescriptionFR   *string    `json:"description_fr"`
	DescriptionEN   *string    `json:"description_en"`
	DescriptionKM   *string    `json:"description_km"`
	StartDate       *time.Time `json:"start_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	// Accepted but ignored: new projects are always drafts
	Status string `json:"status"`
}

// UpdateProjectRequest is a full replace. Fields the caller omits are written
// as NULL, overwriting whatever was stored.
type UpdateProjectRequest struct {
	Title           string     `json:"title"`
	DescriptionFR   *string    `json:"description_fr"`
	DescriptionEN   *string    `json:"description_en"`
	DescriptionKM   *string    `json:"description_km"`
	StartDate       *time.Time `json:"start_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Status          string     `json:"status"`
}

type ProjectResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	DescriptionFR   *string    `json:"description_fr"`
	DescriptionEN   *string    `json:"description_en"`
	DescriptionKM   *string    `json:"description_km"`
	StartDate       *time.Time `json:"start_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Status          string     `json:"status"`
	StatusColor     string     `json:"status_color"`
	ImageURL        *string    `json:"image_url"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ============================================
// Resource Requirement DTOs
// ============================================

type CreateResourceRequest struct {
	RoleRequired    string     `json:"role_required" binding:"required"`
	StartTime       *time.Time `json:"start_time" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required"`
}

type ResourceResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	RoleRequired    string    `json:"role_required"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ============================================
// Calendar DTOs
// ============================================

type CalendarEventResource struct {
	StatusColor string `json:"status_color"`
}

type CalendarEventResponse struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Start    time.Time             `json:"start"`
	End      time.Time             `json:"end"`
	AllDay   bool                  `json:"allDay"`
	Resource CalendarEventResource `json:"resource"`
}

// ============================================
// Error body
// ============================================

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type ConfirmationResponse struct {
	Message string `json:"message"`
}
