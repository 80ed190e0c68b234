package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

var (
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrMeetingTitleRequired = errors.New("meeting title cannot be empty")
	ErrInvalidMeetingDate   = errors.New("meeting date must be in YYYY-MM-DD form")
	ErrInvalidMeetingTime   = errors.New("meeting time must be in HH:MM form")
)

const (
	meetingDateLayout = "2006-01-02"
	meetingTimeLayout = "15:04"
)

// MeetingService handles meeting scheduling and invitee management.
type MeetingService struct {
	meetingRepo  repository.MeetingRepository
	employeeRepo repository.EmployeeRepository
	auditService *AuditService
	now          func() time.Time
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(meetingRepo repository.MeetingRepository, employeeRepo repository.EmployeeRepository, auditService *AuditService) *MeetingService {
	return &MeetingService{
		meetingRepo:  meetingRepo,
		employeeRepo: employeeRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

// MeetingInput carries the fields for creating or updating a meeting. On
// update, a nil InviteeIDs leaves the invitee list untouched while an empty
// slice clears it.
type MeetingInput struct {
	Title      string
	Date       string
	Time       string
	Notes      string
	InviteeIDs *[]uint64
}

func (s *MeetingService) parseSchedule(input MeetingInput) (time.Time, string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return time.Time{}, "", ErrMeetingTitleRequired
	}
	date, err := time.Parse(meetingDateLayout, input.Date)
	if err != nil {
		return time.Time{}, "", ErrInvalidMeetingDate
	}
	if _, err := time.Parse(meetingTimeLayout, input.Time); err != nil {
		return time.Time{}, "", ErrInvalidMeetingTime
	}
	return date, input.Time, nil
}

// CreateMeeting schedules a new meeting with the actor as creator. Invitee
// IDs that match no employee are silently dropped.
func (s *MeetingService) CreateMeeting(input MeetingInput, actor string) (*models.Meeting, error) {
	date, clock, err := s.parseSchedule(input)
	if err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		Title:       input.Title,
		MeetingDate: date,
		MeetingTime: clock,
		CreatedBy:   actor,
		Status:      models.MeetingStatusScheduled,
		Notes:       input.Notes,
	}
	if input.InviteeIDs != nil {
		invitees, err := s.employeeRepo.FindByIDs(lo.Uniq(*input.InviteeIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to load invitees: %w", err)
		}
		meeting.Invitees = invitees
	}

	if err := s.meetingRepo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Created meeting: %s", meeting.Title)); err != nil {
		return nil, err
	}
	return meeting, nil
}

// GetMeeting returns a meeting with its invitees.
func (s *MeetingService) GetMeeting(id uint64) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings returns every meeting.
func (s *MeetingService) ListMeetings() ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// ListUpcomingMeetings returns meetings from today onwards.
func (s *MeetingService) ListUpcomingMeetings() ([]models.Meeting, error) {
	today := s.now().Truncate(24 * time.Hour)
	meetings, err := s.meetingRepo.FindUpcoming(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming meetings: %w", err)
	}
	return meetings, nil
}

// ListMeetingsByDate returns the meetings on the given calendar day.
func (s *MeetingService) ListMeetingsByDate(date string) ([]models.Meeting, error) {
	day, err := time.Parse(meetingDateLayout, date)
	if err != nil {
		return nil, ErrInvalidMeetingDate
	}
	meetings, err := s.meetingRepo.FindByDate(day)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// ListMeetingsByCreator returns the meetings scheduled by the given user.
func (s *MeetingService) ListMeetingsByCreator(createdBy string) ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.FindByCreator(createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// ListMeetingsByStatus returns the meetings in the given status.
func (s *MeetingService) ListMeetingsByStatus(status models.MeetingStatus) ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.FindByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// ListMeetingsByEmployee returns the meetings inviting the given employee.
func (s *MeetingService) ListMeetingsByEmployee(employeeID uint64) ([]models.Meeting, error) {
	meetings, err := s.meetingRepo.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// UpdateMeeting reschedules a meeting. The invitee list is replaced only when
// InviteeIDs is non-nil.
func (s *MeetingService) UpdateMeeting(id uint64, input MeetingInput, actor string) (*models.Meeting, error) {
	meeting, err := s.GetMeeting(id)
	if err != nil {
		return nil, err
	}
	date, clock, err := s.parseSchedule(input)
	if err != nil {
		return nil, err
	}

	meeting.Title = input.Title
	meeting.MeetingDate = date
	meeting.MeetingTime = clock
	meeting.Notes = input.Notes

	if err := s.meetingRepo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	if input.InviteeIDs != nil {
		invitees, err := s.employeeRepo.FindByIDs(lo.Uniq(*input.InviteeIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to load invitees: %w", err)
		}
		if err := s.meetingRepo.ReplaceInvitees(meeting, invitees); err != nil {
			return nil, fmt.Errorf("failed to replace invitees: %w", err)
		}
	}

	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated meeting: %s", meeting.Title)); err != nil {
		return nil, err
	}
	return s.GetMeeting(id)
}

// UpdateMeetingStatus moves the meeting through its lifecycle.
func (s *MeetingService) UpdateMeetingStatus(id uint64, status models.MeetingStatus, actor string) (*models.Meeting, error) {
	meeting, err := s.GetMeeting(id)
	if err != nil {
		return nil, err
	}
	meeting.Status = status
	if err := s.meetingRepo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting status: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated meeting %s status to %s", meeting.Title, status)); err != nil {
		return nil, err
	}
	return meeting, nil
}

// DeleteMeeting cancels the meeting entirely, removing its invitee rows.
func (s *MeetingService) DeleteMeeting(id uint64, actor string) error {
	meeting, err := s.GetMeeting(id)
	if err != nil {
		return err
	}
	if err := s.meetingRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Deleted meeting: %s", meeting.Title))
	return err
}
