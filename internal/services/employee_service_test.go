package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *EmployeeService
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())

	auditService := NewAuditService(repository.NewAuditRepository(s.db))
	s.service = NewEmployeeService(
		repository.NewEmployeeRepository(s.db),
		repository.NewAccountRepository(s.db),
		repository.NewDocumentRepository(s.db),
		repository.NewAssociationRepository(s.db),
		auditService,
	)
}

func (s *EmployeeServiceTestSuite) createEmployee(first, last, email string) (*models.Employee, string) {
	employee, password, err := s.service.CreateEmployee(EmployeeInput{
		FirstName: first,
		LastName:  last,
		Email:     email,
	}, "admin")
	s.Require().NoError(err)
	return employee, password
}

func (s *EmployeeServiceTestSuite) TestCreateProvisionsAccountAndProfile() {
	employee, password := s.createEmployee("John", "Smith", "john@corp.test")

	s.Require().NotNil(employee.Account)
	s.Equal("john.smith", employee.Account.Username)
	s.True(employee.Account.DefaultPassword)
	s.Len(password, 10)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(employee.Account.PasswordHash), []byte(password)))

	var profile models.ProfileImage
	s.Require().NoError(s.db.Where("employee_id = ?", employee.ID).First(&profile).Error)
	s.Empty(profile.Data)

	s.EqualValues(1, countAuditEntries(s.T(), s.db, "New employee John Smith was added"))
}

func (s *EmployeeServiceTestSuite) TestUsernameCollisionGetsSuffix() {
	first, _ := s.createEmployee("John", "Smith", "john1@corp.test")
	second, _ := s.createEmployee("John", "Smith", "john2@corp.test")
	third, _ := s.createEmployee("John", "Smith", "john3@corp.test")

	s.Equal("john.smith", first.Account.Username)
	s.Equal("john.smith1", second.Account.Username)
	s.Equal("john.smith2", third.Account.Username)
}

func (s *EmployeeServiceTestSuite) TestDuplicateEmailRejected() {
	s.createEmployee("John", "Smith", "john@corp.test")

	_, _, err := s.service.CreateEmployee(EmployeeInput{
		FirstName: "Johanna",
		LastName:  "Smithers",
		Email:     "john@corp.test",
	}, "admin")
	s.ErrorIs(err, ErrEmployeeEmailTaken)
}

func (s *EmployeeServiceTestSuite) TestDeleteCascade() {
	employee, _ := s.createEmployee("Mara", "Jade", "mara@corp.test")

	// documents
	_, err := s.service.UploadDocument(employee.ID, "contract.pdf", "application/pdf", []byte("pdf"), "admin")
	s.Require().NoError(err)
	// avatar
	_, err = s.service.UploadProfileImage(employee.ID, "mara.png", "image/png", []byte("png"), "admin")
	s.Require().NoError(err)

	// project and meeting membership
	project := &models.Project{Name: "Apollo", Manager: "admin", Status: models.ProjectStatusPlanning, TeamSize: 5}
	s.Require().NoError(s.db.Create(project).Error)
	s.Require().NoError(s.db.Model(project).Association("AssignedEmployees").Append(employee))

	meeting := &models.Meeting{Title: "Kickoff", MeetingTime: "09:30", CreatedBy: "admin", Status: models.MeetingStatusScheduled}
	s.Require().NoError(s.db.Create(meeting).Error)
	s.Require().NoError(s.db.Model(meeting).Association("Invitees").Append(employee))

	accountID := *employee.AccountID

	s.Require().NoError(s.service.DeleteEmployee(employee.ID, "", "admin"))

	var count int64
	s.Require().NoError(s.db.Model(&models.Document{}).Where("employee_id = ?", employee.ID).Count(&count).Error)
	s.EqualValues(0, count)
	s.Require().NoError(s.db.Model(&models.ProfileImage{}).Where("employee_id = ?", employee.ID).Count(&count).Error)
	s.EqualValues(0, count)
	s.Require().NoError(s.db.Table("project_employees").Where("employee_id = ?", employee.ID).Count(&count).Error)
	s.EqualValues(0, count)
	s.Require().NoError(s.db.Table("meeting_invitees").Where("employee_id = ?", employee.ID).Count(&count).Error)
	s.EqualValues(0, count)
	s.Require().NoError(s.db.Model(&models.Employee{}).Where("id = ?", employee.ID).Count(&count).Error)
	s.EqualValues(0, count)
	s.Require().NoError(s.db.Model(&models.Account{}).Where("id = ?", accountID).Count(&count).Error)
	s.EqualValues(0, count)

	// project and meeting survive, only the links are gone
	s.Require().NoError(s.db.Model(&models.Project{}).Count(&count).Error)
	s.EqualValues(1, count)
	s.Require().NoError(s.db.Model(&models.Meeting{}).Count(&count).Error)
	s.EqualValues(1, count)

	s.EqualValues(1, countAuditEntries(s.T(), s.db, "Deleted employee Mara Jade"))
}

func (s *EmployeeServiceTestSuite) TestDeleteUsesCallerDisplayName() {
	employee, _ := s.createEmployee("Old", "Name", "old@corp.test")

	s.Require().NoError(s.service.DeleteEmployee(employee.ID, "New Name", "admin"))
	s.EqualValues(1, countAuditEntries(s.T(), s.db, "Deleted employee New Name"))
}

func (s *EmployeeServiceTestSuite) TestDeleteMissingEmployee() {
	err := s.service.DeleteEmployee(99999, "", "admin")
	s.ErrorIs(err, ErrEmployeeNotFound)
}

func (s *EmployeeServiceTestSuite) TestTeamSizeUntouchedByDelete() {
	employee, _ := s.createEmployee("Tess", "Vale", "tess@corp.test")

	project := &models.Project{Name: "Fixed Team", Manager: "admin", Status: models.ProjectStatusPlanning, TeamSize: 7}
	s.Require().NoError(s.db.Create(project).Error)
	s.Require().NoError(s.db.Model(project).Association("AssignedEmployees").Append(employee))

	s.Require().NoError(s.service.DeleteEmployee(employee.ID, "", "admin"))

	var reloaded models.Project
	s.Require().NoError(s.db.First(&reloaded, project.ID).Error)
	s.Equal(7, reloaded.TeamSize)
}

func (s *EmployeeServiceTestSuite) TestProfileImagePlaceholderReads404() {
	employee, _ := s.createEmployee("No", "Avatar", "noavatar@corp.test")

	_, err := s.service.GetProfileImage(employee.ID)
	s.ErrorIs(err, ErrProfileImageNotFound)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
