package dto

import (
	"time"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// InviteeDTO is the employee summary embedded in meeting responses
type InviteeDTO struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// MeetingDTO represents a meeting in API responses. The date and wall-clock
// time travel separately, the time in "HH:MM" form as entered.
type MeetingDTO struct {
	ID          uint64               `json:"id"`
	Title       string               `json:"title"`
	MeetingDate string               `json:"meeting_date"`
	MeetingTime string               `json:"meeting_time"`
	CreatedBy   string               `json:"created_by"`
	Status      models.MeetingStatus `json:"status"`
	Notes       string               `json:"notes"`
	CreatedAt   time.Time            `json:"created_at"`
	Invitees    []InviteeDTO         `json:"invitees"`
}

// ToMeetingDTO converts a Meeting model to MeetingDTO
func ToMeetingDTO(meeting models.Meeting) MeetingDTO {
	invitees := make([]InviteeDTO, 0, len(meeting.Invitees))
	for _, invitee := range meeting.Invitees {
		invitees = append(invitees, InviteeDTO{
			ID:        invitee.ID,
			FirstName: invitee.FirstName,
			LastName:  invitee.LastName,
			Email:     invitee.Email,
		})
	}
	return MeetingDTO{
		ID:          meeting.ID,
		Title:       meeting.Title,
		MeetingDate: meeting.MeetingDate.Format("2006-01-02"),
		MeetingTime: meeting.MeetingTime,
		CreatedBy:   meeting.CreatedBy,
		Status:      meeting.Status,
		Notes:       meeting.Notes,
		CreatedAt:   meeting.CreatedAt,
		Invitees:    invitees,
	}
}

// ToMeetingDTOs converts a slice of Meeting models
func ToMeetingDTOs(meetings []models.Meeting) []MeetingDTO {
	dtos := make([]MeetingDTO, 0, len(meetings))
	for _, meeting := range meetings {
		dtos = append(dtos, ToMeetingDTO(meeting))
	}
	return dtos
}
