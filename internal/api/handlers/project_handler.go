package handlers

import (
	"net/http"

	"github.com/eventflow-ifc/eventflow-backend/internal/models"
	"github.com/eventflow-ifc/eventflow-backend/internal/service"
	"github.com/eventflow-ifc/eventflow-backend/internal/upload"
	"github.com/gin-gonic/gin"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
	uploader       upload.Uploader
	maxUploadBytes int64
}

func NewProjectHandler(projectService service.ProjectService, uploader upload.Uploader, maxUploadBytes int64) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		uploader:       uploader,
		maxUploadBytes: maxUploadBytes,
	}
}

// List - List all projects
// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch projects")
		return
	}

	response := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p)
	}

	c.JSON(http.StatusOK, response)
}

// Get - Get a project by ID
// GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Create - Create a new project
// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Title is required", Error: err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), service.ProjectInput{
		Title:           req.Title,
		DescriptionFR:   req.DescriptionFR,
		DescriptionEN:   req.DescriptionEN,
		DescriptionKM:   req.DescriptionKM,
		StartDate:       req.StartDate,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// Update - Full replace of a project's editable fields
// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, service.ProjectInput{
		Title:           req.Title,
		DescriptionFR:   req.DescriptionFR,
		DescriptionEN:   req.DescriptionEN,
		DescriptionKM:   req.DescriptionKM,
		StartDate:       req.StartDate,
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
	})
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete - Delete a project and its resource requirements
// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, models.ConfirmationResponse{Message: "Project deleted successfully"})
}

// Duplicate - Create a draft copy of an existing project
// POST /projects/:id/duplicate
func (h *ProjectHandler) Duplicate(c *gin.Context) {
	id := c.Param("id")

	project, err := h.projectService.Duplicate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to duplicate project")
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// UploadImage - Attach an uploaded image to a project
// POST /projects/:id/image
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	if h.uploader == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Object storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "No file provided", Error: err.Error()})
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "File too large"})
		return
	}

	// Confirm the project before paying for the upload
	if _, err := h.projectService.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, err, "Project not found")
		return
	}

	imageURL, err := h.uploader.Upload(c.Request.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to upload image", Error: err.Error()})
		return
	}

	project, err := h.projectService.AttachImage(c.Request.Context(), id, imageURL)
	if err != nil {
		respondError(c, err, "Failed to attach image")
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}
