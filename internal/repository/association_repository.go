package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormAssociationRepository is a GORM implementation of AssociationRepository
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewAssociationRepository creates a new AssociationRepository
func NewAssociationRepository(db *gorm.DB) AssociationRepository {
	return &GormAssociationRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *GormAssociationRepository) WithTx(tx *gorm.DB) AssociationRepository {
	return &GormAssociationRepository{db: tx}
}

// DocumentsOf returns the documents owned by the employee
func (r *GormAssociationRepository) DocumentsOf(employeeID uint64) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.Where("employee_id = ?", employeeID).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// RemoveDocuments deletes the given documents
func (r *GormAssociationRepository) RemoveDocuments(docs []models.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.Delete(&docs).Error
}

// ProfileOf returns the employee's profile image, or nil if none exists
func (r *GormAssociationRepository) ProfileOf(employeeID uint64) (*models.ProfileImage, error) {
	var profile models.ProfileImage
	err := r.db.Where("employee_id = ?", employeeID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// RemoveProfile deletes the profile image
func (r *GormAssociationRepository) RemoveProfile(profile *models.ProfileImage) error {
	return r.db.Delete(profile).Error
}

// ProjectsContaining returns every project whose assignment set includes the
// employee
func (r *GormAssociationRepository) ProjectsContaining(employeeID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.
		Joins("JOIN project_employees ON project_employees.project_id = projects.id").
		Where("project_employees.employee_id = ?", employeeID).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// DetachEmployeeFromProject removes the assignment row. The project's
// team-size ceiling is configuration and stays as-is.
func (r *GormAssociationRepository) DetachEmployeeFromProject(projectID, employeeID uint64) error {
	return r.db.Exec(
		"DELETE FROM project_employees WHERE project_id = ? AND employee_id = ?",
		projectID, employeeID,
	).Error
}

// MeetingsInviting returns every meeting whose invitee list includes the
// employee
func (r *GormAssociationRepository) MeetingsInviting(employeeID uint64) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.
		Joins("JOIN meeting_invitees ON meeting_invitees.meeting_id = meetings.id").
		Where("meeting_invitees.employee_id = ?", employeeID).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// DetachEmployeeFromMeeting removes the invitation row
func (r *GormAssociationRepository) DetachEmployeeFromMeeting(meetingID, employeeID uint64) error {
	return r.db.Exec(
		"DELETE FROM meeting_invitees WHERE meeting_id = ? AND employee_id = ?",
		meetingID, employeeID,
	).Error
}
