package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateAccount is returned when creating the account fails inside the employee creation transaction.
	ErrCreateAccount = errors.New("employee repository: create account failed")
	// ErrCreateEmployee is returned when creating the employee fails inside the employee creation transaction.
	ErrCreateEmployee = errors.New("employee repository: create employee failed")
	// ErrCreateProfile is returned when creating the profile placeholder fails inside the employee creation transaction.
	ErrCreateProfile = errors.New("employee repository: create profile failed")
)

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// CreateWithAccountAndProfile creates the account, the employee, the profile
// placeholder and the audit entry atomically. The employee and its account
// share one lifecycle, so a failure anywhere rolls back everything.
func (r *GormEmployeeRepository) CreateWithAccountAndProfile(employee *models.Employee, account *models.Account, profile *models.ProfileImage, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAccount, err)
		}

		employee.AccountID = &account.ID
		if err := tx.Create(employee).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateEmployee, err)
		}

		profile.EmployeeID = employee.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProfile, err)
		}

		return tx.Create(audit).Error
	})
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Preload("Account").First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByIDs loads the employees matching the given IDs
func (r *GormEmployeeRepository) FindByIDs(ids []uint64) ([]models.Employee, error) {
	if len(ids) == 0 {
		return []models.Employee{}, nil
	}
	var employees []models.Employee
	if err := r.db.Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindAllExceptFirstName lists employees, hiding the given first name
func (r *GormEmployeeRepository) FindAllExceptFirstName(firstName string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Preload("Account").
		Where("first_name <> ?", firstName).
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// ExistsByEmail reports whether an employee with the email exists
func (r *GormEmployeeRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Employee{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByID reports whether the employee exists
func (r *GormEmployeeRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an employee
func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// DeleteCascade removes all records referencing the employee, then the
// employee row and its account, in one transaction. The store has no cascade
// support for these relationships; the ordering here is the contract:
// documents, profile image, project assignments, meeting invitations, audit
// entry, employee, account.
func (r *GormEmployeeRepository) DeleteCascade(employee *models.Employee, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		assoc := NewAssociationRepository(tx)

		docs, err := assoc.DocumentsOf(employee.ID)
		if err != nil {
			return err
		}
		if err := assoc.RemoveDocuments(docs); err != nil {
			return err
		}

		profile, err := assoc.ProfileOf(employee.ID)
		if err != nil {
			return err
		}
		if profile != nil {
			if err := assoc.RemoveProfile(profile); err != nil {
				return err
			}
		}

		projects, err := assoc.ProjectsContaining(employee.ID)
		if err != nil {
			return err
		}
		for _, project := range projects {
			if err := assoc.DetachEmployeeFromProject(project.ID, employee.ID); err != nil {
				return err
			}
		}

		meetings, err := assoc.MeetingsInviting(employee.ID)
		if err != nil {
			return err
		}
		for _, meeting := range meetings {
			if err := assoc.DetachEmployeeFromMeeting(meeting.ID, employee.ID); err != nil {
				return err
			}
		}

		if err := tx.Create(audit).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Employee{}, employee.ID).Error; err != nil {
			return err
		}

		// The account has no lifecycle of its own.
		if employee.AccountID != nil {
			if err := tx.Delete(&models.Account{}, *employee.AccountID).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
