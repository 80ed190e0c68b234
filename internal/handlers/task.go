package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func parseDeadline(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	deadline, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		apierrors.BadRequest(c, "deadline must be in YYYY-MM-DD form")
		return nil, false
	}
	return &deadline, true
}

// CreateTask creates a task under a project
func (h *TaskHandler) CreateTask(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req struct {
		Name        string               `json:"name" binding:"required"`
		Description string               `json:"description"`
		AssignedTo  string               `json:"assigned_to" binding:"required"`
		Priority    *models.TaskPriority `json:"priority"`
		Status      *models.TaskStatus   `json:"status"`
		Progress    *int                 `json:"progress"`
		Deadline    *string              `json:"deadline"`
		Stage       *models.TaskStage    `json:"stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	deadline, ok := parseDeadline(c, req.Deadline)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(projectID, services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
		Progress:    req.Progress,
		Deadline:    deadline,
		Stage:       req.Stage,
	}, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": dto.ToTaskDTO(*task)})
}

// ListTasks returns every task across all projects
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetTask returns a task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// ListTasksByProject returns the project's tasks, narrowed by the optional
// status, priority, stage and assigned_to query parameters
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var filter repository.TaskFilter
	if v := c.Query("status"); v != "" {
		status := models.TaskStatus(v)
		filter.Status = &status
	}
	if v := c.Query("priority"); v != "" {
		priority := models.TaskPriority(v)
		filter.Priority = &priority
	}
	if v := c.Query("stage"); v != "" {
		stage := models.TaskStage(v)
		filter.Stage = &stage
	}
	if v := c.Query("assigned_to"); v != "" {
		filter.AssignedTo = &v
	}

	tasks, err := h.taskService.ListTasksByProject(projectID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// ListOverdueTasks returns the project's unfinished tasks past their deadline
func (h *TaskHandler) ListOverdueTasks(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}
	tasks, err := h.taskService.ListOverdueTasks(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// ListTasksDueSoon returns the project's unfinished tasks due within the
// next week
func (h *TaskHandler) ListTasksDueSoon(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}
	tasks, err := h.taskService.ListTasksDueSoon(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetStatistics returns the project's aggregated task counts
func (h *TaskHandler) GetStatistics(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}
	stats, err := h.taskService.GetStatistics(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// UpdateTask applies a partial update to a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        *string              `json:"name"`
		Description *string              `json:"description"`
		AssignedTo  *string              `json:"assigned_to"`
		Priority    *models.TaskPriority `json:"priority"`
		Status      *models.TaskStatus   `json:"status"`
		Progress    *int                 `json:"progress"`
		Deadline    *string              `json:"deadline"`
		Stage       *models.TaskStage    `json:"stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	deadline, ok := parseDeadline(c, req.Deadline)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(id, services.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
		Progress:    req.Progress,
		Deadline:    deadline,
		Stage:       req.Stage,
	}, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// UpdateStatus sets the task's status; the progress follows the coupling
// rules
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status models.TaskStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateStatus(id, req.Status, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// UpdateProgress sets the task's progress; the status follows the coupling
// rules unless the task is on hold
func (h *TaskHandler) UpdateProgress(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateProgress(id, *req.Progress, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// UpdateStatusAndProgress applies status and progress together in one call
func (h *TaskHandler) UpdateStatusAndProgress(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status   *models.TaskStatus `json:"status"`
		Progress *int               `json:"progress"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateStatusAndProgress(id, req.Status, req.Progress, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// AssignTask reassigns the task to another person
func (h *TaskHandler) AssignTask(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		AssignedTo string `json:"assigned_to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.AssignTask(id, req.AssignedTo, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": dto.ToTaskDTO(*task)})
}

// DeleteTask removes the task with its files, posts and comments
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(id, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// UploadFile attaches a file to the task
func (h *TaskHandler) UploadFile(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "file is required")
		return
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		apierrors.BadRequest(c, "failed to read file")
		return
	}

	file, err := h.taskService.UploadFile(taskID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, data, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"file": dto.ToTaskFileDTO(*file)})
}

// ListFiles returns the task's file metadata
func (h *TaskHandler) ListFiles(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	files, err := h.taskService.ListFiles(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": dto.ToTaskFileDTOs(files)})
}

// DownloadFile serves a task file's content
func (h *TaskHandler) DownloadFile(c *gin.Context) {
	fileID, ok := parseIDParam(c, "fileId")
	if !ok {
		return
	}
	file, err := h.taskService.GetFile(fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.FileType, file.Data)
}

// DeleteFile removes a file from its task
func (h *TaskHandler) DeleteFile(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	fileID, ok := parseIDParam(c, "fileId")
	if !ok {
		return
	}
	if err := h.taskService.DeleteFile(fileID, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
