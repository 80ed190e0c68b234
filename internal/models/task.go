package models

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusOnHold     TaskStatus = "ON_HOLD"
)

type TaskStage string

const (
	TaskStageDevelopment TaskStage = "DEVELOPMENT"
	TaskStageTesting     TaskStage = "TESTING"
	TaskStageStaging     TaskStage = "STAGING"
	TaskStageProduction  TaskStage = "PRODUCTION"
)

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	AssignedTo  string       `gorm:"type:varchar(100);not null" json:"assigned_to"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Progress    int          `gorm:"not null;default:0" json:"progress"`
	Deadline    *time.Time   `json:"deadline"`
	Stage       TaskStage    `gorm:"type:varchar(20)" json:"stage"`
	ProjectID   uint64       `gorm:"not null;index" json:"project_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	Project Project    `gorm:"foreignKey:ProjectID" json:"-"`
	Files   []TaskFile `gorm:"foreignKey:TaskID" json:"files,omitempty"`
	Posts   []TaskPost `gorm:"foreignKey:TaskID" json:"posts,omitempty"`
}
