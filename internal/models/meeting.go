package models

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "SCHEDULED"
	MeetingStatusInProgress MeetingStatus = "IN_PROGRESS"
	MeetingStatusCompleted  MeetingStatus = "COMPLETED"
	MeetingStatusCancelled  MeetingStatus = "CANCELLED"
)

type Meeting struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`

	// MeetingDate holds the calendar date; MeetingTime the wall-clock time
	// of day in "15:04" form, as entered by the scheduler.
	MeetingDate time.Time     `gorm:"not null" json:"meeting_date"`
	MeetingTime string        `gorm:"type:varchar(5);not null" json:"meeting_time"`
	CreatedBy   string        `gorm:"type:varchar(100);not null" json:"created_by"`
	Status      MeetingStatus `gorm:"type:varchar(20)" json:"status"`
	Notes       string        `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relations
	Invitees []Employee `gorm:"many2many:meeting_invitees" json:"invitees,omitempty"`
}
