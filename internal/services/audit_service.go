package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

var (
	ErrAuditActorRequired   = errors.New("audit actor cannot be empty")
	ErrAuditMessageRequired = errors.New("audit message cannot be empty")
)

// AuditService is the append-only ledger of state-changing actions. Every
// mutating operation in the system records exactly one entry here; nothing
// ever updates or removes one.
type AuditService struct {
	auditRepo repository.AuditRepository
	now       func() time.Time
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo repository.AuditRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// Entry builds an audit row without persisting it. Repositories insert these
// inside the same transaction as the mutation they describe so the ledger and
// the change commit together.
func (s *AuditService) Entry(actor, message string) (*models.AuditTrail, error) {
	if actor == "" {
		return nil, ErrAuditActorRequired
	}
	if message == "" {
		return nil, ErrAuditMessageRequired
	}
	return &models.AuditTrail{
		ActionMessage: message,
		PerformedBy:   actor,
		DateTriggered: s.now(),
	}, nil
}

// Record validates and persists a new audit entry.
func (s *AuditService) Record(actor, message string) (*models.AuditTrail, error) {
	entry, err := s.Entry(actor, message)
	if err != nil {
		return nil, err
	}
	if err := s.auditRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}
	return entry, nil
}

// ListAll returns every audit entry.
func (s *AuditService) ListAll() ([]models.AuditTrail, error) {
	entries, err := s.auditRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// ListByActor returns the entries performed by the given actor. The match is
// exact; no case folding.
func (s *AuditService) ListByActor(actor string) ([]models.AuditTrail, error) {
	entries, err := s.auditRepo.FindByActor(actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
