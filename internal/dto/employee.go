package dto

import (
	"time"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// AccountDTO represents a login account in API responses. The password hash
// and session token never leave the server.
type AccountDTO struct {
	ID              uint64     `json:"id"`
	Username        string     `json:"username"`
	DefaultPassword bool       `json:"default_password"`
	Authenticated   bool       `json:"authenticated"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
}

// EmployeeDTO represents an employee in API responses
type EmployeeDTO struct {
	ID         uint64      `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Department string      `json:"department"`
	Position   string      `json:"position"`
	HireDate   *time.Time  `json:"hire_date,omitempty"`
	Salary     float64     `json:"salary"`
	Notes      string      `json:"notes"`
	CreatedAt  time.Time   `json:"created_at"`
	Account    *AccountDTO `json:"account,omitempty"`
}

// CredentialsDTO carries generated credentials back to the operator. The
// password appears exactly once, at creation or reset time.
type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DocumentDTO represents document metadata; the blob is served separately.
type DocumentDTO struct {
	ID         uint64    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	EmployeeID uint64    `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToAccountDTO converts an Account model to AccountDTO
func ToAccountDTO(account models.Account) AccountDTO {
	return AccountDTO{
		ID:              account.ID,
		Username:        account.Username,
		DefaultPassword: account.DefaultPassword,
		Authenticated:   account.Authenticated,
		LastLogin:       account.LastLogin,
	}
}

// ToEmployeeDTO converts an Employee model to EmployeeDTO
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Phone:      employee.Phone,
		Department: employee.Department,
		Position:   employee.Position,
		HireDate:   employee.HireDate,
		Salary:     employee.Salary,
		Notes:      employee.Notes,
		CreatedAt:  employee.CreatedAt,
	}
	if employee.Account != nil {
		account := ToAccountDTO(*employee.Account)
		dto.Account = &account
	}
	return dto
}

// ToEmployeeDTOs converts a slice of Employee models
func ToEmployeeDTOs(employees []models.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		dtos = append(dtos, ToEmployeeDTO(employee))
	}
	return dtos
}

// ToDocumentDTO converts a Document model to DocumentDTO
func ToDocumentDTO(doc models.Document) DocumentDTO {
	return DocumentDTO{
		ID:         doc.ID,
		FileName:   doc.FileName,
		FileType:   doc.FileType,
		EmployeeID: doc.EmployeeID,
		CreatedAt:  doc.CreatedAt,
	}
}

// ToDocumentDTOs converts a slice of Document models
func ToDocumentDTOs(docs []models.Document) []DocumentDTO {
	dtos := make([]DocumentDTO, 0, len(docs))
	for _, doc := range docs {
		dtos = append(dtos, ToDocumentDTO(doc))
	}
	return dtos
}
