package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type projectRequest struct {
	Name        string                `json:"name" binding:"required"`
	Manager     string                `json:"manager" binding:"required"`
	Status      *models.ProjectStatus `json:"status"`
	Progress    *int                  `json:"progress"`
	Deadline    *string               `json:"deadline"`
	TeamSize    *int                  `json:"team_size"`
	Description string                `json:"description"`
}

func (r projectRequest) toInput(c *gin.Context) (services.ProjectInput, bool) {
	input := services.ProjectInput{
		Name:        r.Name,
		Manager:     r.Manager,
		Status:      r.Status,
		Progress:    r.Progress,
		TeamSize:    r.TeamSize,
		Description: r.Description,
	}
	if r.Deadline != nil && *r.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", *r.Deadline)
		if err != nil {
			apierrors.BadRequest(c, "deadline must be in YYYY-MM-DD form")
			return services.ProjectInput{}, false
		}
		input.Deadline = &deadline
	}
	return input, true
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(input, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": dto.ToProjectDTO(*project)})
}

// ListProjects returns every project
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectDTOs(projects)})
}

// GetProject returns a project with its assigned employees
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}
	project, err := h.projectService.GetProject(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
}

// ListProjectsByEmployee returns the projects the employee is assigned to
func (h *ProjectHandler) ListProjectsByEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	projects, err := h.projectService.ListProjectsByEmployee(employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectDTOs(projects)})
}

// UpdateProject applies a full update to a project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	project, err := h.projectService.UpdateProject(id, input, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
}

// DeleteProject removes a project and its assignment rows
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(id, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// AssignEmployees replaces the project's assignment set
func (h *ProjectHandler) AssignEmployees(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req struct {
		EmployeeIDs []uint64 `json:"employee_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.AssignEmployees(id, req.EmployeeIDs, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
}

// RemoveEmployees detaches the given employees from the project
func (h *ProjectHandler) RemoveEmployees(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req struct {
		EmployeeIDs []uint64 `json:"employee_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.RemoveEmployees(id, req.EmployeeIDs, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": dto.ToProjectDTO(*project)})
}
