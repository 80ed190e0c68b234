package dto

import (
	"time"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	AssignedTo  string              `json:"assigned_to"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	Progress    int                 `json:"progress"`
	Deadline    *time.Time          `json:"deadline,omitempty"`
	Stage       models.TaskStage    `json:"stage"`
	ProjectID   uint64              `json:"project_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TaskFileDTO represents task file metadata; the blob is served separately.
type TaskFileDTO struct {
	ID         uint64    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedBy string    `json:"uploaded_by"`
	TaskID     uint64    `json:"task_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskPostDTO represents a feed post with its comments
type TaskPostDTO struct {
	ID        uint64           `json:"id"`
	Content   string           `json:"content"`
	Author    string           `json:"author"`
	TaskID    uint64           `json:"task_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Comments  []TaskCommentDTO `json:"comments"`
}

// TaskCommentDTO represents a comment under a post
type TaskCommentDTO struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	PostID    uint64    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		Priority:    task.Priority,
		Status:      task.Status,
		Progress:    task.Progress,
		Deadline:    task.Deadline,
		Stage:       task.Stage,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, ToTaskDTO(task))
	}
	return dtos
}

// ToTaskFileDTO converts a TaskFile model to TaskFileDTO
func ToTaskFileDTO(file models.TaskFile) TaskFileDTO {
	return TaskFileDTO{
		ID:         file.ID,
		FileName:   file.FileName,
		FileType:   file.FileType,
		FileSize:   file.FileSize,
		UploadedBy: file.UploadedBy,
		TaskID:     file.TaskID,
		CreatedAt:  file.CreatedAt,
	}
}

// ToTaskFileDTOs converts a slice of TaskFile models
func ToTaskFileDTOs(files []models.TaskFile) []TaskFileDTO {
	dtos := make([]TaskFileDTO, 0, len(files))
	for _, file := range files {
		dtos = append(dtos, ToTaskFileDTO(file))
	}
	return dtos
}

// ToTaskCommentDTO converts a TaskComment model to TaskCommentDTO
func ToTaskCommentDTO(comment models.TaskComment) TaskCommentDTO {
	return TaskCommentDTO{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    comment.Author,
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// ToTaskCommentDTOs converts a slice of TaskComment models
func ToTaskCommentDTOs(comments []models.TaskComment) []TaskCommentDTO {
	dtos := make([]TaskCommentDTO, 0, len(comments))
	for _, comment := range comments {
		dtos = append(dtos, ToTaskCommentDTO(comment))
	}
	return dtos
}

// ToTaskPostDTO converts a TaskPost model to TaskPostDTO
func ToTaskPostDTO(post models.TaskPost) TaskPostDTO {
	return TaskPostDTO{
		ID:        post.ID,
		Content:   post.Content,
		Author:    post.Author,
		TaskID:    post.TaskID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Comments:  ToTaskCommentDTOs(post.Comments),
	}
}

// ToTaskPostDTOs converts a slice of TaskPost models
func ToTaskPostDTOs(posts []models.TaskPost) []TaskPostDTO {
	dtos := make([]TaskPostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, ToTaskPostDTO(post))
	}
	return dtos
}
