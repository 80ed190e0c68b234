package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
	"github.com/jnmnltrnz/workforce-management-api/internal/utils"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeEmailTaken    = errors.New("an employee with this email already exists")
	ErrEmployeeNameRequired  = errors.New("employee first and last name cannot be empty")
	ErrEmployeeEmailRequired = errors.New("employee email cannot be empty")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrProfileImageNotFound  = errors.New("profile image not found")
)

// EmployeeService handles employee business logic: account provisioning on
// create and the full referential cleanup on delete.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	accountRepo  repository.AccountRepository
	documentRepo repository.DocumentRepository
	assocRepo    repository.AssociationRepository
	auditService *AuditService
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	accountRepo repository.AccountRepository,
	documentRepo repository.DocumentRepository,
	assocRepo repository.AssociationRepository,
	auditService *AuditService,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
		documentRepo: documentRepo,
		assocRepo:    assocRepo,
		auditService: auditService,
	}
}

// EmployeeInput carries the fields for creating or updating an employee.
type EmployeeInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Department string
	Position   string
	HireDate   *time.Time
	Salary     float64
	Notes      string
}

// CreateEmployee creates the employee together with a login account and an
// empty profile image placeholder, all in one transaction. It returns the
// generated plain-text password once; only the hash is stored.
func (s *EmployeeService) CreateEmployee(input EmployeeInput, actor string) (*models.Employee, string, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, "", ErrEmployeeNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", ErrEmployeeEmailRequired
	}

	taken, err := s.employeeRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, "", ErrEmployeeEmailTaken
	}

	username, err := s.generateUsername(input.FirstName, input.LastName)
	if err != nil {
		return nil, "", err
	}
	password, err := utils.GenerateAlphanumeric(constants.GeneratedPasswordLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Department: input.Department,
		Position:   input.Position,
		HireDate:   input.HireDate,
		Salary:     input.Salary,
		Notes:      input.Notes,
	}
	account := &models.Account{
		Username:        username,
		PasswordHash:    string(hash),
		DefaultPassword: true,
	}
	profile := &models.ProfileImage{}

	audit, err := s.auditService.Entry(actor, fmt.Sprintf("New employee %s was added", employee.FullName()))
	if err != nil {
		return nil, "", err
	}
	if err := s.employeeRepo.CreateWithAccountAndProfile(employee, account, profile, audit); err != nil {
		return nil, "", fmt.Errorf("failed to create employee: %w", err)
	}
	employee.Account = account
	return employee, password, nil
}

// generateUsername derives lower(first).lower(last) and appends an increasing
// integer suffix until the username is free.
func (s *EmployeeService) generateUsername(firstName, lastName string) (string, error) {
	base := strings.ToLower(strings.TrimSpace(firstName)) + "." + strings.ToLower(strings.TrimSpace(lastName))
	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := s.accountRepo.ExistsByUsername(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, suffix)
	}
}

// GetEmployee returns an employee by ID.
func (s *EmployeeService) GetEmployee(id uint64) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// ListEmployees returns every employee except the built-in admin.
func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	employees, err := s.employeeRepo.FindAllExceptFirstName(constants.AdminUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee applies the input to an existing employee. The email stays
// unique across employees.
func (s *EmployeeService) UpdateEmployee(id uint64, input EmployeeInput, actor string) (*models.Employee, error) {
	employee, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, ErrEmployeeNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, ErrEmployeeEmailRequired
	}
	if input.Email != employee.Email {
		taken, err := s.employeeRepo.ExistsByEmail(input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, ErrEmployeeEmailTaken
		}
	}

	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Email = input.Email
	employee.Phone = input.Phone
	employee.Department = input.Department
	employee.Position = input.Position
	employee.HireDate = input.HireDate
	employee.Salary = input.Salary
	employee.Notes = input.Notes

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated employee %s", employee.FullName())); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes the employee and everything that references it:
// documents, profile image, project assignments, meeting invitations and the
// login account, all in one transaction. displayName is the name recorded in
// the audit entry; callers pass the name as shown to the operator, which may
// differ from the stored row.
func (s *EmployeeService) DeleteEmployee(id uint64, displayName, actor string) error {
	employee, err := s.GetEmployee(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = employee.FullName()
	}
	audit, err := s.auditService.Entry(actor, fmt.Sprintf("Deleted employee %s", displayName))
	if err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteCascade(employee, audit); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// UploadDocument stores a document for the employee.
func (s *EmployeeService) UploadDocument(employeeID uint64, fileName, fileType string, data []byte, actor string) (*models.Document, error) {
	employee, err := s.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	doc := &models.Document{
		FileName:   fileName,
		FileType:   fileType,
		Data:       data,
		EmployeeID: employeeID,
	}
	if err := s.documentRepo.CreateDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Uploaded %s for %s", fileName, employee.FullName())); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns the employee's documents.
func (s *EmployeeService) ListDocuments(employeeID uint64) ([]models.Document, error) {
	if _, err := s.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	docs, err := s.assocRepo.DocumentsOf(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns a document with its content.
func (s *EmployeeService) GetDocument(documentID uint64) (*models.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// DeleteDocument removes a single document.
func (s *EmployeeService) DeleteDocument(documentID uint64, actor string) error {
	doc, err := s.GetDocument(documentID)
	if err != nil {
		return err
	}
	employee, err := s.GetEmployee(doc.EmployeeID)
	if err != nil {
		return err
	}
	if err := s.documentRepo.DeleteDocument(documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Deleted %s for %s", doc.FileName, employee.FullName()))
	return err
}

// UploadProfileImage replaces the employee's avatar.
func (s *EmployeeService) UploadProfileImage(employeeID uint64, fileName, fileType string, data []byte, actor string) (*models.ProfileImage, error) {
	employee, err := s.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	profile := &models.ProfileImage{
		FileName:   fileName,
		FileType:   fileType,
		Data:       data,
		EmployeeID: employeeID,
	}
	if err := s.documentRepo.ReplaceProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to upload profile image: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated profile image for %s", employee.FullName())); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfileImage returns the employee's avatar, or ErrProfileImageNotFound
// when only the empty placeholder exists.
func (s *EmployeeService) GetProfileImage(employeeID uint64) (*models.ProfileImage, error) {
	if _, err := s.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	profile, err := s.assocRepo.ProfileOf(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile image: %w", err)
	}
	if profile == nil || len(profile.Data) == 0 {
		return nil, ErrProfileImageNotFound
	}
	return profile, nil
}

// DeleteProfileImage removes the employee's avatar.
func (s *EmployeeService) DeleteProfileImage(employeeID uint64, actor string) error {
	employee, err := s.GetEmployee(employeeID)
	if err != nil {
		return err
	}
	if err := s.documentRepo.DeleteProfileByEmployeeID(employeeID); err != nil {
		return fmt.Errorf("failed to delete profile image: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Deleted profile image for %s", employee.FullName()))
	return err
}
