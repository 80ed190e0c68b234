package repository

import (
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormAccountRepository is a GORM implementation of AccountRepository
type GormAccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(id uint64) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByUsername finds an account by its exact username
func (r *GormAccountRepository) FindByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByUsername reports whether the username is taken
func (r *GormAccountRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns all accounts
func (r *GormAccountRepository) FindAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update updates an account
func (r *GormAccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}
