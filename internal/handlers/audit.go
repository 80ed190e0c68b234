package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// ListAuditTrails returns the ledger, newest first. A performed_by query
// parameter narrows to one actor.
func (h *AuditHandler) ListAuditTrails(c *gin.Context) {
	var (
		entries []models.AuditTrail
		err     error
	)
	if actor := c.Query("performed_by"); actor != "" {
		entries, err = h.auditService.ListByActor(actor)
	} else {
		entries, err = h.auditService.ListAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit_trails": dto.ToAuditTrailDTOs(entries)})
}
