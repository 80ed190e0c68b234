package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

func setupMeetingService(t *testing.T) (*gorm.DB, *MeetingService) {
	t.Helper()
	db := setupTestDB(t)
	auditService := NewAuditService(repository.NewAuditRepository(db))
	return db, NewMeetingService(
		repository.NewMeetingRepository(db),
		repository.NewEmployeeRepository(db),
		auditService,
	)
}

func seedInvitees(t *testing.T, db *gorm.DB, n int) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		employee := models.Employee{FirstName: "E", LastName: "V", Email: string(rune('a'+i)) + "@corp.test"}
		require.NoError(t, db.Create(&employee).Error)
		ids = append(ids, employee.ID)
	}
	return ids
}

func TestMeetingService_CreateWithInvitees(t *testing.T) {
	db, service := setupMeetingService(t)
	ids := seedInvitees(t, db, 2)

	meeting, err := service.CreateMeeting(MeetingInput{
		Title:      "Sprint Review",
		Date:       "2026-09-15",
		Time:       "14:00",
		InviteeIDs: &ids,
	}, "dana")
	require.NoError(t, err)
	require.Equal(t, models.MeetingStatusScheduled, meeting.Status)
	require.Equal(t, "dana", meeting.CreatedBy)
	require.Len(t, meeting.Invitees, 2)
	require.EqualValues(t, 1, countAuditEntries(t, db, "Created meeting: Sprint Review"))
}

func TestMeetingService_CreateValidation(t *testing.T) {
	_, service := setupMeetingService(t)

	_, err := service.CreateMeeting(MeetingInput{Title: " ", Date: "2026-09-15", Time: "14:00"}, "dana")
	require.ErrorIs(t, err, ErrMeetingTitleRequired)

	_, err = service.CreateMeeting(MeetingInput{Title: "x", Date: "15/09/2026", Time: "14:00"}, "dana")
	require.ErrorIs(t, err, ErrInvalidMeetingDate)

	_, err = service.CreateMeeting(MeetingInput{Title: "x", Date: "2026-09-15", Time: "2pm"}, "dana")
	require.ErrorIs(t, err, ErrInvalidMeetingTime)
}

func TestMeetingService_UpdateNilInviteesKeepsList(t *testing.T) {
	db, service := setupMeetingService(t)
	ids := seedInvitees(t, db, 2)

	meeting, err := service.CreateMeeting(MeetingInput{
		Title:      "Standup",
		Date:       "2026-09-15",
		Time:       "09:00",
		InviteeIDs: &ids,
	}, "dana")
	require.NoError(t, err)

	updated, err := service.UpdateMeeting(meeting.ID, MeetingInput{
		Title: "Standup (moved)",
		Date:  "2026-09-16",
		Time:  "09:30",
	}, "dana")
	require.NoError(t, err)
	require.Equal(t, "Standup (moved)", updated.Title)
	require.Len(t, updated.Invitees, 2)
}

func TestMeetingService_UpdateEmptyInviteesClearsList(t *testing.T) {
	db, service := setupMeetingService(t)
	ids := seedInvitees(t, db, 2)

	meeting, err := service.CreateMeeting(MeetingInput{
		Title:      "Standup",
		Date:       "2026-09-15",
		Time:       "09:00",
		InviteeIDs: &ids,
	}, "dana")
	require.NoError(t, err)

	empty := []uint64{}
	updated, err := service.UpdateMeeting(meeting.ID, MeetingInput{
		Title:      "Standup",
		Date:       "2026-09-15",
		Time:       "09:00",
		InviteeIDs: &empty,
	}, "dana")
	require.NoError(t, err)
	require.Empty(t, updated.Invitees)
}

func TestMeetingService_UpdateStatus(t *testing.T) {
	db, service := setupMeetingService(t)

	meeting, err := service.CreateMeeting(MeetingInput{Title: "Retro", Date: "2026-09-15", Time: "16:00"}, "dana")
	require.NoError(t, err)

	updated, err := service.UpdateMeetingStatus(meeting.ID, models.MeetingStatusCompleted, "dana")
	require.NoError(t, err)
	require.Equal(t, models.MeetingStatusCompleted, updated.Status)
	require.EqualValues(t, 1, countAuditEntries(t, db, "Updated meeting Retro status to COMPLETED"))
}

func TestMeetingService_DeleteRemovesInviteeRows(t *testing.T) {
	db, service := setupMeetingService(t)
	ids := seedInvitees(t, db, 2)

	meeting, err := service.CreateMeeting(MeetingInput{
		Title:      "Doomed",
		Date:       "2026-09-15",
		Time:       "10:00",
		InviteeIDs: &ids,
	}, "dana")
	require.NoError(t, err)

	require.NoError(t, service.DeleteMeeting(meeting.ID, "dana"))

	var count int64
	require.NoError(t, db.Table("meeting_invitees").Where("meeting_id = ?", meeting.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)

	// invitees themselves survive
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestMeetingService_GetMissing(t *testing.T) {
	_, service := setupMeetingService(t)

	_, err := service.GetMeeting(99999)
	require.ErrorIs(t, err, ErrMeetingNotFound)
}
