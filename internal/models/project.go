package models

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "PLANNING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusOnHold     ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
)

type Project struct {
	ID       uint64        `gorm:"primarykey" json:"id"`
	Name     string        `gorm:"type:varchar(255);not null" json:"name"`
	Manager  string        `gorm:"type:varchar(100);not null" json:"manager"`
	Status   ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	Progress int           `gorm:"not null;default:0" json:"progress"`
	Deadline *time.Time    `json:"deadline"`

	// TeamSize is the configured headcount ceiling, not the number of
	// assigned employees. Assignment changes never recompute it.
	TeamSize    int       `gorm:"not null;default:1" json:"team_size"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	AssignedEmployees []Employee `gorm:"many2many:project_employees" json:"assigned_employees,omitempty"`
}
