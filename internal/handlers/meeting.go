package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type MeetingHandler struct {
	meetingService *services.MeetingService
}

func NewMeetingHandler(meetingService *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

type meetingRequest struct {
	Title      string    `json:"title" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
	Notes      string    `json:"notes"`
	InviteeIDs *[]uint64 `json:"invitee_ids"`
}

func (r meetingRequest) toInput() services.MeetingInput {
	return services.MeetingInput{
		Title:      r.Title,
		Date:       r.Date,
		Time:       r.Time,
		Notes:      r.Notes,
		InviteeIDs: r.InviteeIDs,
	}
}

// CreateMeeting schedules a meeting with the current user as creator
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	var req meetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.meetingService.CreateMeeting(req.toInput(), username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meeting": dto.ToMeetingDTO(*meeting)})
}

// ListMeetings returns meetings; the upcoming, date, created_by and status
// query parameters narrow the result
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	var (
		meetings []models.Meeting
		err      error
	)
	switch {
	case c.Query("upcoming") == "true":
		meetings, err = h.meetingService.ListUpcomingMeetings()
	case c.Query("date") != "":
		meetings, err = h.meetingService.ListMeetingsByDate(c.Query("date"))
	case c.Query("created_by") != "":
		meetings, err = h.meetingService.ListMeetingsByCreator(c.Query("created_by"))
	case c.Query("status") != "":
		meetings, err = h.meetingService.ListMeetingsByStatus(models.MeetingStatus(c.Query("status")))
	default:
		meetings, err = h.meetingService.ListMeetings()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": dto.ToMeetingDTOs(meetings)})
}

// GetMeeting returns a meeting with its invitees
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	meeting, err := h.meetingService.GetMeeting(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": dto.ToMeetingDTO(*meeting)})
}

// ListMeetingsByEmployee returns the meetings inviting the given employee
func (h *MeetingHandler) ListMeetingsByEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	meetings, err := h.meetingService.ListMeetingsByEmployee(employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": dto.ToMeetingDTOs(meetings)})
}

// UpdateMeeting reschedules a meeting. Omitting invitee_ids keeps the current
// list; an empty array clears it.
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req meetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.meetingService.UpdateMeeting(id, req.toInput(), username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": dto.ToMeetingDTO(*meeting)})
}

// UpdateMeetingStatus moves the meeting through its lifecycle
func (h *MeetingHandler) UpdateMeetingStatus(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status models.MeetingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.meetingService.UpdateMeetingStatus(id, req.Status, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": dto.ToMeetingDTO(*meeting)})
}

// DeleteMeeting cancels the meeting entirely
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.meetingService.DeleteMeeting(id, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted"})
}
