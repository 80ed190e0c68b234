package dto

import (
	"time"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// ProjectDTO represents a project in API responses. TeamSize is the
// configured ceiling, independent of how many employees are assigned.
type ProjectDTO struct {
	ID                uint64               `json:"id"`
	Name              string               `json:"name"`
	Manager           string               `json:"manager"`
	Status            models.ProjectStatus `json:"status"`
	Progress          int                  `json:"progress"`
	Deadline          *time.Time           `json:"deadline,omitempty"`
	TeamSize          int                  `json:"team_size"`
	Description       string               `json:"description"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	AssignedEmployees []EmployeeDTO        `json:"assigned_employees"`
}

// AuditTrailDTO represents an audit ledger entry in API responses
type AuditTrailDTO struct {
	ID            uint64    `json:"id"`
	ActionMessage string    `json:"action_message"`
	PerformedBy   string    `json:"performed_by"`
	DateTriggered time.Time `json:"date_triggered"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:                project.ID,
		Name:              project.Name,
		Manager:           project.Manager,
		Status:            project.Status,
		Progress:          project.Progress,
		Deadline:          project.Deadline,
		TeamSize:          project.TeamSize,
		Description:       project.Description,
		CreatedAt:         project.CreatedAt,
		UpdatedAt:         project.UpdatedAt,
		AssignedEmployees: ToEmployeeDTOs(project.AssignedEmployees),
	}
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, 0, len(projects))
	for _, project := range projects {
		dtos = append(dtos, ToProjectDTO(project))
	}
	return dtos
}

// ToAuditTrailDTO converts an AuditTrail model to AuditTrailDTO
func ToAuditTrailDTO(entry models.AuditTrail) AuditTrailDTO {
	return AuditTrailDTO{
		ID:            entry.ID,
		ActionMessage: entry.ActionMessage,
		PerformedBy:   entry.PerformedBy,
		DateTriggered: entry.DateTriggered,
	}
}

// ToAuditTrailDTOs converts a slice of AuditTrail models
func ToAuditTrailDTOs(entries []models.AuditTrail) []AuditTrailDTO {
	dtos := make([]AuditTrailDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, ToAuditTrailDTO(entry))
	}
	return dtos
}
