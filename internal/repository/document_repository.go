package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormDocumentRepository is a GORM implementation of DocumentRepository
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &GormDocumentRepository{db: db}
}

// CreateDocument stores a new document blob
func (r *GormDocumentRepository) CreateDocument(doc *models.Document) error {
	return r.db.Create(doc).Error
}

// FindDocumentByID finds a document by ID, including its blob
func (r *GormDocumentRepository) FindDocumentByID(id uint64) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ExistsDocumentByID reports whether the document exists
func (r *GormDocumentRepository) ExistsDocumentByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Document{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteDocument deletes a document by ID
func (r *GormDocumentRepository) DeleteDocument(id uint64) error {
	return r.db.Delete(&models.Document{}, id).Error
}

// ReplaceProfile swaps the employee's profile image for the given one
func (r *GormDocumentRepository) ReplaceProfile(profile *models.ProfileImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ProfileImage
		err := tx.Where("employee_id = ?", profile.EmployeeID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		}
		return tx.Create(profile).Error
	})
}

// DeleteProfileByEmployeeID removes the employee's profile image if present
func (r *GormDocumentRepository) DeleteProfileByEmployeeID(employeeID uint64) error {
	return r.db.Where("employee_id = ?", employeeID).Delete(&models.ProfileImage{}).Error
}
