package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/logger"
	"github.com/jnmnltrnz/workforce-management-api/internal/middleware"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

// parseIDParam reads a numeric path parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// currentUsername returns the authenticated username, responding 401 when the
// session carries none.
func currentUsername(c *gin.Context) (string, bool) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return "", false
	}
	return username, true
}

// readMultipartFile loads an uploaded file into memory.
func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// respondServiceError translates service-level errors into API responses,
// preserving the error kind. Unknown errors become a 500 and are logged with
// their cause; the response stays generic.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTaskFileNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrProfileImageNotFound),
		errors.Is(err, services.ErrMeetingNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrEmployeeEmailTaken):
		apierrors.Conflict(c, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrResetNotPermitted):
		apierrors.Unauthorized(c, err.Error())

	case errors.Is(err, services.ErrNotPostAuthor),
		errors.Is(err, services.ErrNotCommentAuthor):
		apierrors.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrEmployeeNameRequired),
		errors.Is(err, services.ErrEmployeeEmailRequired),
		errors.Is(err, services.ErrTaskNameRequired),
		errors.Is(err, services.ErrTaskAssigneeRequired),
		errors.Is(err, services.ErrTaskProgressOutOfRange),
		errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrProjectManagerRequired),
		errors.Is(err, services.ErrMeetingTitleRequired),
		errors.Is(err, services.ErrInvalidMeetingDate),
		errors.Is(err, services.ErrInvalidMeetingTime),
		errors.Is(err, services.ErrPostContentRequired),
		errors.Is(err, services.ErrCommentContentRequired),
		errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, err.Error())

	default:
		logger.Log.Error("request failed", zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
