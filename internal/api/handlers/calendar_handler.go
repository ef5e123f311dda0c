package handlers

import (
	"net/http"

	"github.com/eventflow-ifc/eventflow-backend/internal/models"
	"github.com/eventflow-ifc/eventflow-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Calendar Handler
// ============================================

type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Events - Derived calendar view of all scheduled projects
// GET /calendar-events
func (h *CalendarHandler) Events(c *gin.Context) {
	events, err := h.calendarService.Events(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch calendar events")
		return
	}

	response := make([]models.CalendarEventResponse, len(events))
	for i, e := range events {
		response[i] = toCalendarEventResponse(e)
	}

	c.JSON(http.StatusOK, response)
}
