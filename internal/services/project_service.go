package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrProjectNameRequired    = errors.New("project name cannot be empty")
	ErrProjectManagerRequired = errors.New("project manager cannot be empty")
)

// ProjectService handles project business logic and membership management.
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	employeeRepo repository.EmployeeRepository
	auditService *AuditService
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, employeeRepo repository.EmployeeRepository, auditService *AuditService) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		auditService: auditService,
	}
}

// ProjectInput carries the fields for creating or updating a project.
// Optional fields fall back to defaults on create: PLANNING status, progress
// 0 and a team size of 1.
type ProjectInput struct {
	Name        string
	Manager     string
	Status      *models.ProjectStatus
	Progress    *int
	Deadline    *time.Time
	TeamSize    *int
	Description string
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(input ProjectInput, actor string) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}
	if strings.TrimSpace(input.Manager) == "" {
		return nil, ErrProjectManagerRequired
	}

	project := &models.Project{
		Name:        input.Name,
		Manager:     input.Manager,
		Status:      models.ProjectStatusPlanning,
		Progress:    0,
		Deadline:    input.Deadline,
		TeamSize:    1,
		Description: input.Description,
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.TeamSize != nil {
		project.TeamSize = *input.TeamSize
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Created project: %s", project.Name)); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject returns a project with its assigned employees.
func (s *ProjectService) GetProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects returns every project.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListProjectsByEmployee returns the projects the employee is assigned to.
func (s *ProjectService) ListProjectsByEmployee(employeeID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies the input to an existing project. Assignments are not
// touched here; use AssignEmployees and RemoveEmployees for membership.
func (s *ProjectService) UpdateProject(id uint64, input ProjectInput, actor string) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}
	if strings.TrimSpace(input.Manager) == "" {
		return nil, ErrProjectManagerRequired
	}

	project.Name = input.Name
	project.Manager = input.Manager
	project.Description = input.Description
	project.Deadline = input.Deadline
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.TeamSize != nil {
		project.TeamSize = *input.TeamSize
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated project: %s", project.Name)); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and its assignment rows.
func (s *ProjectService) DeleteProject(id uint64, actor string) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Deleted project: %s", project.Name))
	return err
}

// AssignEmployees replaces the project's entire assignment set with the given
// employees. IDs that match no employee are silently dropped, and an empty
// list clears the project's team. The configured team size is never touched.
func (s *ProjectService) AssignEmployees(projectID uint64, employeeIDs []uint64, actor string) (*models.Project, error) {
	project, err := s.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.FindByIDs(lo.Uniq(employeeIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	audit, err := s.auditService.Entry(actor,
		fmt.Sprintf("Assigned %d employee(s) to project %s", len(employees), project.Name))
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.ReplaceAssignments(project, employees, audit); err != nil {
		return nil, fmt.Errorf("failed to assign employees: %w", err)
	}
	return s.GetProject(projectID)
}

// RemoveEmployees detaches the given employees from the project. Unlike
// AssignEmployees, an ID that matches no employee fails the whole call before
// anything is detached.
func (s *ProjectService) RemoveEmployees(projectID uint64, employeeIDs []uint64, actor string) (*models.Project, error) {
	project, err := s.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	ids := lo.Uniq(employeeIDs)
	for _, id := range ids {
		exists, err := s.employeeRepo.ExistsByID(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check employee: %w", err)
		}
		if !exists {
			return nil, ErrEmployeeNotFound
		}
	}

	audit, err := s.auditService.Entry(actor,
		fmt.Sprintf("Removed %d employee(s) from project %s", len(ids), project.Name))
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.RemoveAssignments(projectID, ids, audit); err != nil {
		return nil, fmt.Errorf("failed to remove employees: %w", err)
	}
	return s.GetProject(projectID)
}
