package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormMeetingRepository is a GORM implementation of MeetingRepository
type GormMeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &GormMeetingRepository{db: db}
}

// Create creates a new meeting along with its invitee rows
func (r *GormMeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// FindByID finds a meeting by ID with its invitees
func (r *GormMeetingRepository) FindByID(id uint64) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.Preload("Invitees").First(&meeting, id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindAll returns all meetings with their invitees
func (r *GormMeetingRepository) FindAll() ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Preload("Invitees").
		Order("meeting_date ASC, meeting_time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindUpcoming returns meetings on or after the given date
func (r *GormMeetingRepository) FindUpcoming(from time.Time) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Preload("Invitees").
		Where("meeting_date >= ?", from).
		Order("meeting_date ASC, meeting_time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByDate returns the meetings on a given date, earliest first
func (r *GormMeetingRepository) FindByDate(date time.Time) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Preload("Invitees").
		Where("meeting_date = ?", date).
		Order("meeting_time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByCreator returns the meetings created by the given user, newest first
func (r *GormMeetingRepository) FindByCreator(createdBy string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Preload("Invitees").
		Where("created_by = ?", createdBy).
		Order("created_at DESC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByStatus returns the meetings in the given status
func (r *GormMeetingRepository) FindByStatus(status models.MeetingStatus) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Preload("Invitees").
		Where("status = ?", status).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByEmployeeID returns the meetings inviting the employee
func (r *GormMeetingRepository) FindByEmployeeID(employeeID uint64) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.Preload("Invitees").
		Joins("JOIN meeting_invitees ON meeting_invitees.meeting_id = meetings.id").
		Where("meeting_invitees.employee_id = ?", employeeID).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// Update updates a meeting's own columns
func (r *GormMeetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Omit("Invitees").Save(meeting).Error
}

// ReplaceInvitees swaps the meeting's invitee set; an empty slice clears it
func (r *GormMeetingRepository) ReplaceInvitees(meeting *models.Meeting, invitees []models.Employee) error {
	return r.db.Model(meeting).Association("Invitees").Replace(invitees)
}

// Delete deletes a meeting and its invitee rows in one transaction
func (r *GormMeetingRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM meeting_invitees WHERE meeting_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meeting{}, id).Error
	})
}
