package handlers

import (
	"net/http"

	"github.com/eventflow-ifc/eventflow-backend/internal/models"
	"github.com/eventflow-ifc/eventflow-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Resource Requirement Handler
// ============================================

type ResourceHandler struct {
	resourceService service.ResourceService
}

func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// ListByProject - List resource requirements for a project
// GET /projects/:id/resources
func (h *ResourceHandler) ListByProject(c *gin.Context) {
	projectID := c.Param("id")

	resources, err := h.resourceService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "Failed to fetch resources")
		return
	}

	response := make([]models.ResourceResponse, len(resources))
	for i, r := range resources {
		response[i] = toResourceResponse(r)
	}

	c.JSON(http.StatusOK, response)
}

// Create - Add a resource requirement to a project
// POST /projects/:id/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	projectID := c.Param("id")

	var req models.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "All fields are required", Error: err.Error()})
		return
	}

	resource, err := h.resourceService.Create(
		c.Request.Context(),
		projectID,
		req.RoleRequired,
		*req.StartTime,
		req.DurationMinutes,
	)
	if err != nil {
		respondError(c, err, "Failed to create resource")
		return
	}

	c.JSON(http.StatusCreated, toResourceResponse(resource))
}

// Delete - Remove a resource requirement by its own id
// DELETE /resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.resourceService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete resource")
		return
	}

	c.JSON(http.StatusOK, models.ConfirmationResponse{Message: "Resource deleted successfully"})
}
