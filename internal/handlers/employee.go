package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

type employeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   *string `json:"hire_date"`
	Salary     float64 `json:"salary"`
	Notes      string  `json:"notes"`
}

func (r employeeRequest) toInput(c *gin.Context) (services.EmployeeInput, bool) {
	input := services.EmployeeInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Position:   r.Position,
		Salary:     r.Salary,
		Notes:      r.Notes,
	}
	if r.HireDate != nil && *r.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", *r.HireDate)
		if err != nil {
			apierrors.BadRequest(c, "hire_date must be in YYYY-MM-DD form")
			return services.EmployeeInput{}, false
		}
		input.HireDate = &hireDate
	}
	return input, true
}

// CreateEmployee creates an employee with a provisioned login account and
// returns the generated credentials once.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	employee, password, err := h.employeeService.CreateEmployee(input, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"employee": dto.ToEmployeeDTO(*employee),
		"credentials": dto.CredentialsDTO{
			Username: employee.Account.Username,
			Password: password,
		},
	})
}

// ListEmployees returns every employee except the built-in admin
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": dto.ToEmployeeDTOs(employees)})
}

// GetEmployee returns an employee by ID
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": dto.ToEmployeeDTO(*employee)})
}

// UpdateEmployee applies a full update to an employee
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(id, input, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": dto.ToEmployeeDTO(*employee)})
}

// DeleteEmployee removes an employee and everything referencing it. An
// optional display name in the body is recorded in the audit entry.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		DisplayName string `json:"display_name"`
	}
	// Body is optional on delete
	_ = c.ShouldBindJSON(&req)

	if err := h.employeeService.DeleteEmployee(id, req.DisplayName, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// UploadDocument stores an uploaded file for the employee
func (h *EmployeeHandler) UploadDocument(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "file is required")
		return
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		apierrors.BadRequest(c, "failed to read file")
		return
	}

	doc, err := h.employeeService.UploadDocument(id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": dto.ToDocumentDTO(*doc)})
}

// ListDocuments returns the employee's document metadata
func (h *EmployeeHandler) ListDocuments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	docs, err := h.employeeService.ListDocuments(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": dto.ToDocumentDTOs(docs)})
}

// DownloadDocument serves a document's content
func (h *EmployeeHandler) DownloadDocument(c *gin.Context) {
	documentID, ok := parseIDParam(c, "documentId")
	if !ok {
		return
	}
	doc, err := h.employeeService.GetDocument(documentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.FileType, doc.Data)
}

// DeleteDocument removes a single document
func (h *EmployeeHandler) DeleteDocument(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	documentID, ok := parseIDParam(c, "documentId")
	if !ok {
		return
	}
	if err := h.employeeService.DeleteDocument(documentID, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// UploadProfileImage replaces the employee's avatar
func (h *EmployeeHandler) UploadProfileImage(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "file is required")
		return
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		apierrors.BadRequest(c, "failed to read file")
		return
	}

	if _, err := h.employeeService.UploadProfileImage(id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile image updated"})
}

// GetProfileImage serves the employee's avatar
func (h *EmployeeHandler) GetProfileImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	profile, err := h.employeeService.GetProfileImage(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, profile.FileType, profile.Data)
}

// DeleteProfileImage removes the employee's avatar
func (h *EmployeeHandler) DeleteProfileImage(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.employeeService.DeleteProfileImage(id, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile image deleted"})
}
