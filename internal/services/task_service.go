package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskFileNotFound       = errors.New("task file not found")
	ErrTaskNameRequired       = errors.New("task name cannot be empty")
	ErrTaskAssigneeRequired   = errors.New("task assignee cannot be empty")
	ErrTaskProgressOutOfRange = errors.New("task progress must be between 0 and 100")
)

// TaskService handles task business logic. Status and progress are coupled:
// every write that touches either field goes through nextTaskState so the
// pair stays consistent.
type TaskService struct {
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	auditService *AuditService
	now          func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, auditService *AuditService) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

// CreateTaskInput carries the fields for creating a task. Optional fields
// fall back to defaults: MEDIUM priority, PENDING status, progress 0 and the
// DEVELOPMENT stage.
type CreateTaskInput struct {
	Name        string
	Description string
	AssignedTo  string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
	Progress    *int
	Deadline    *time.Time
	Stage       *models.TaskStage
}

// UpdateTaskInput carries a partial task update; nil fields are left alone.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	AssignedTo  *string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
	Progress    *int
	Deadline    *time.Time
	Stage       *models.TaskStage
}

// CreateTask creates a task under the given project.
func (s *TaskService) CreateTask(projectID uint64, input CreateTaskInput, actor string) (*models.Task, error) {
	exists, err := s.projectRepo.ExistsByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTaskNameRequired
	}
	if strings.TrimSpace(input.AssignedTo) == "" {
		return nil, ErrTaskAssigneeRequired
	}
	if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
		return nil, ErrTaskProgressOutOfRange
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Priority:    models.TaskPriorityMedium,
		Status:      models.TaskStatusPending,
		Progress:    0,
		Deadline:    input.Deadline,
		Stage:       models.TaskStageDevelopment,
		ProjectID:   projectID,
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Stage != nil {
		task.Stage = *input.Stage
	}

	// Creation runs through the same coupling rules as any later update, so
	// a task created with progress 40 starts IN_PROGRESS.
	state := nextTaskState(
		taskState{Status: task.Status, Progress: task.Progress},
		taskStateChange{Status: input.Status, Progress: input.Progress},
	)
	task.Status = state.Status
	task.Progress = state.Progress

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if _, err := s.auditService.Record(actor, fmt.Sprintf("Created task: %s", task.Name)); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask returns a task by ID.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task across all projects.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByProject returns the project's tasks, narrowed by the filter.
func (s *TaskService) ListTasksByProject(projectID uint64, filter repository.TaskFilter) ([]models.Task, error) {
	exists, err := s.projectRepo.ExistsByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrProjectNotFound
	}
	tasks, err := s.taskRepo.FindByProjectID(projectID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListOverdueTasks returns the project's unfinished tasks whose deadline has
// passed.
func (s *TaskService) ListOverdueTasks(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindOverdue(projectID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksDueSoon returns the project's unfinished tasks due within the next
// few days.
func (s *TaskService) ListTasksDueSoon(projectID uint64) ([]models.Task, error) {
	from := s.now()
	to := from.AddDate(0, 0, constants.DueSoonDays)
	tasks, err := s.taskRepo.FindDueSoon(projectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks due soon: %w", err)
	}
	return tasks, nil
}

// GetStatistics aggregates the project's task counts.
func (s *TaskService) GetStatistics(projectID uint64) (*repository.TaskStatistics, error) {
	exists, err := s.projectRepo.ExistsByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrProjectNotFound
	}
	stats, err := s.taskRepo.Statistics(projectID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute task statistics: %w", err)
	}
	return stats, nil
}

// UpdateTask applies a partial update. Status and progress changes are
// synchronized exactly as in the dedicated status/progress endpoints.
func (s *TaskService) UpdateTask(id uint64, input UpdateTaskInput, actor string) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrTaskNameRequired
		}
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.AssignedTo != nil {
		if strings.TrimSpace(*input.AssignedTo) == "" {
			return nil, ErrTaskAssigneeRequired
		}
		task.AssignedTo = *input.AssignedTo
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Deadline != nil {
		task.Deadline = input.Deadline
	}
	if input.Stage != nil {
		task.Stage = *input.Stage
	}
	if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
		return nil, ErrTaskProgressOutOfRange
	}

	state := nextTaskState(
		taskState{Status: task.Status, Progress: task.Progress},
		taskStateChange{Status: input.Status, Progress: input.Progress},
	)
	task.Status = state.Status
	task.Progress = state.Progress

	audit, err := s.auditService.Entry(actor, fmt.Sprintf("Updated task: %s", task.Name))
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.SaveWithAudit(task, audit); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateStatus sets the task's status and lets the coupling rules adjust the
// progress.
func (s *TaskService) UpdateStatus(id uint64, status models.TaskStatus, actor string) (*models.Task, error) {
	return s.updateState(id, taskStateChange{Status: &status}, actor,
		fmt.Sprintf("status to %s", status))
}

// UpdateProgress sets the task's progress and lets the coupling rules adjust
// the status, unless the task is ON_HOLD.
func (s *TaskService) UpdateProgress(id uint64, progress int, actor string) (*models.Task, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrTaskProgressOutOfRange
	}
	return s.updateState(id, taskStateChange{Progress: &progress}, actor,
		fmt.Sprintf("progress to %d%%", progress))
}

// UpdateStatusAndProgress applies status and progress in one call. The status
// rule runs first, then the progress rule, so the explicit progress wins
// except when the new status is ON_HOLD.
func (s *TaskService) UpdateStatusAndProgress(id uint64, status *models.TaskStatus, progress *int, actor string) (*models.Task, error) {
	if progress != nil && (*progress < 0 || *progress > 100) {
		return nil, ErrTaskProgressOutOfRange
	}
	var parts []string
	if status != nil {
		parts = append(parts, fmt.Sprintf("status to %s", *status))
	}
	if progress != nil {
		parts = append(parts, fmt.Sprintf("progress to %d%%", *progress))
	}
	if len(parts) == 0 {
		return s.GetTask(id)
	}
	return s.updateState(id, taskStateChange{Status: status, Progress: progress}, actor,
		strings.Join(parts, " and "))
}

func (s *TaskService) updateState(id uint64, change taskStateChange, actor, what string) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}

	state := nextTaskState(taskState{Status: task.Status, Progress: task.Progress}, change)
	task.Status = state.Status
	task.Progress = state.Progress

	audit, err := s.auditService.Entry(actor, fmt.Sprintf("Updated task %s %s", task.Name, what))
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.SaveWithAudit(task, audit); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// AssignTask reassigns the task to another person.
func (s *TaskService) AssignTask(id uint64, assignedTo, actor string) (*models.Task, error) {
	if strings.TrimSpace(assignedTo) == "" {
		return nil, ErrTaskAssigneeRequired
	}
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	task.AssignedTo = assignedTo

	audit, err := s.auditService.Entry(actor, fmt.Sprintf("Assigned task %s to %s", task.Name, assignedTo))
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.SaveWithAudit(task, audit); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}
	return task, nil
}

// DeleteTask removes the task together with its files, posts and comments.
func (s *TaskService) DeleteTask(id uint64, actor string) error {
	task, err := s.GetTask(id)
	if err != nil {
		return err
	}
	audit, err := s.auditService.Entry(actor, fmt.Sprintf("Deleted task: %s", task.Name))
	if err != nil {
		return err
	}
	if err := s.taskRepo.DeleteCascade(task.ID, audit); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// UploadFile attaches a file to the task.
func (s *TaskService) UploadFile(taskID uint64, fileName, fileType string, fileSize int64, data []byte, actor string) (*models.TaskFile, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	file := &models.TaskFile{
		TaskID:     taskID,
		FileName:   fileName,
		FileType:   fileType,
		FileSize:   fileSize,
		Data:       data,
		UploadedBy: actor,
	}
	if err := s.taskRepo.CreateFile(file); err != nil {
		return nil, fmt.Errorf("failed to upload task file: %w", err)
	}

	if _, err := s.auditService.Record(actor, fmt.Sprintf("Uploaded %s for task %s", fileName, task.Name)); err != nil {
		return nil, err
	}
	return file, nil
}

// GetFile returns a task file with its content.
func (s *TaskService) GetFile(fileID uint64) (*models.TaskFile, error) {
	file, err := s.taskRepo.FindFileByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskFileNotFound
		}
		return nil, fmt.Errorf("failed to get task file: %w", err)
	}
	return file, nil
}

// ListFiles returns the metadata of the task's files.
func (s *TaskService) ListFiles(taskID uint64) ([]models.TaskFile, error) {
	if _, err := s.GetTask(taskID); err != nil {
		return nil, err
	}
	files, err := s.taskRepo.FindFilesByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task files: %w", err)
	}
	return files, nil
}

// DeleteFile removes a file from its task.
func (s *TaskService) DeleteFile(fileID uint64, actor string) error {
	file, err := s.GetFile(fileID)
	if err != nil {
		return err
	}
	task, err := s.GetTask(file.TaskID)
	if err != nil {
		return err
	}
	if err := s.taskRepo.DeleteFile(fileID); err != nil {
		return fmt.Errorf("failed to delete task file: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Deleted %s for task %s", file.FileName, task.Name))
	return err
}
