package repository

import (
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormAuditRepository is a GORM implementation of AuditRepository
type GormAuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &GormAuditRepository{db: db}
}

// Create appends a new audit entry. Existing entries are never touched.
func (r *GormAuditRepository) Create(entry *models.AuditTrail) error {
	return r.db.Create(entry).Error
}

// FindAll returns every audit entry, newest first
func (r *GormAuditRepository) FindAll() ([]models.AuditTrail, error) {
	var entries []models.AuditTrail
	if err := r.db.Order("date_triggered DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByActor returns the entries performed by the given actor, exact match
func (r *GormAuditRepository) FindByActor(actor string) ([]models.AuditTrail, error) {
	var entries []models.AuditTrail
	if err := r.db.Where("performed_by = ?", actor).
		Order("date_triggered DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
