package repository

import (
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with its assigned employees
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("AssignedEmployees").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll returns all projects with their assigned employees
func (r *GormProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("AssignedEmployees").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByEmployeeID returns the projects the employee is assigned to
func (r *GormProjectRepository) FindByEmployeeID(employeeID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("AssignedEmployees").
		Joins("JOIN project_employees ON project_employees.project_id = projects.id").
		Where("project_employees.employee_id = ?", employeeID).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ExistsByID reports whether the project exists
func (r *GormProjectRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project and its assignment rows in one transaction
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_employees WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// ReplaceAssignments swaps the project's entire assignment set and appends
// the audit entry atomically. Team size is configuration and is not touched.
func (r *GormProjectRepository) ReplaceAssignments(project *models.Project, employees []models.Employee, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(project).Association("AssignedEmployees").Replace(employees); err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
}

// RemoveAssignments detaches the given employees and appends the audit entry
// atomically
func (r *GormProjectRepository) RemoveAssignments(projectID uint64, employeeIDs []uint64, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		assoc := NewAssociationRepository(tx)
		for _, employeeID := range employeeIDs {
			if err := assoc.DetachEmployeeFromProject(projectID, employeeID); err != nil {
				return err
			}
		}
		return tx.Create(audit).Error
	})
}
