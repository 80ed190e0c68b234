package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ProjectService
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())

	auditService := NewAuditService(repository.NewAuditRepository(s.db))
	s.service = NewProjectService(
		repository.NewProjectRepository(s.db),
		repository.NewEmployeeRepository(s.db),
		auditService,
	)
}

func (s *ProjectServiceTestSuite) seedEmployees(emails ...string) []models.Employee {
	employees := make([]models.Employee, 0, len(emails))
	for _, email := range emails {
		employee := models.Employee{FirstName: "E", LastName: email, Email: email}
		s.Require().NoError(s.db.Create(&employee).Error)
		employees = append(employees, employee)
	}
	return employees
}

func (s *ProjectServiceTestSuite) createProject() *models.Project {
	project, err := s.service.CreateProject(ProjectInput{Name: "Orion", Manager: "dana"}, "admin")
	s.Require().NoError(err)
	return project
}

func (s *ProjectServiceTestSuite) TestCreateDefaults() {
	project := s.createProject()

	s.Equal(models.ProjectStatusPlanning, project.Status)
	s.Equal(0, project.Progress)
	s.Equal(1, project.TeamSize)
	s.EqualValues(1, countAuditEntries(s.T(), s.db, "Created project: Orion"))
}

func (s *ProjectServiceTestSuite) TestAssignReplacesWholeSet() {
	project := s.createProject()
	employees := s.seedEmployees("a@t", "b@t", "c@t")

	updated, err := s.service.AssignEmployees(project.ID, []uint64{employees[0].ID, employees[1].ID}, "admin")
	s.Require().NoError(err)
	s.Len(updated.AssignedEmployees, 2)

	// second assignment replaces, not appends
	updated, err = s.service.AssignEmployees(project.ID, []uint64{employees[2].ID}, "admin")
	s.Require().NoError(err)
	s.Require().Len(updated.AssignedEmployees, 1)
	s.Equal(employees[2].ID, updated.AssignedEmployees[0].ID)
}

func (s *ProjectServiceTestSuite) TestAssignDropsUnknownIDs() {
	project := s.createProject()
	employees := s.seedEmployees("a@t")

	updated, err := s.service.AssignEmployees(project.ID, []uint64{employees[0].ID, 99999}, "admin")
	s.Require().NoError(err)
	s.Len(updated.AssignedEmployees, 1)
}

func (s *ProjectServiceTestSuite) TestAssignEmptyListClearsTeam() {
	project := s.createProject()
	employees := s.seedEmployees("a@t", "b@t")

	_, err := s.service.AssignEmployees(project.ID, []uint64{employees[0].ID, employees[1].ID}, "admin")
	s.Require().NoError(err)

	updated, err := s.service.AssignEmployees(project.ID, []uint64{}, "admin")
	s.Require().NoError(err)
	s.Empty(updated.AssignedEmployees)
}

func (s *ProjectServiceTestSuite) TestAssignNeverTouchesTeamSize() {
	project, err := s.service.CreateProject(ProjectInput{Name: "Sized", Manager: "dana", TeamSize: intPtr(9)}, "admin")
	s.Require().NoError(err)
	employees := s.seedEmployees("a@t")

	updated, err := s.service.AssignEmployees(project.ID, []uint64{employees[0].ID}, "admin")
	s.Require().NoError(err)
	s.Equal(9, updated.TeamSize)
}

func (s *ProjectServiceTestSuite) TestRemoveUnknownIDFailsWholeCall() {
	project := s.createProject()
	employees := s.seedEmployees("a@t", "b@t")

	_, err := s.service.AssignEmployees(project.ID, []uint64{employees[0].ID, employees[1].ID}, "admin")
	s.Require().NoError(err)

	_, err = s.service.RemoveEmployees(project.ID, []uint64{employees[0].ID, 99999}, "admin")
	s.ErrorIs(err, ErrEmployeeNotFound)

	// nothing was detached
	reloaded, err := s.service.GetProject(project.ID)
	s.Require().NoError(err)
	s.Len(reloaded.AssignedEmployees, 2)
}

func (s *ProjectServiceTestSuite) TestRemoveDetachesEmployees() {
	project := s.createProject()
	employees := s.seedEmployees("a@t", "b@t")

	_, err := s.service.AssignEmployees(project.ID, []uint64{employees[0].ID, employees[1].ID}, "admin")
	s.Require().NoError(err)

	updated, err := s.service.RemoveEmployees(project.ID, []uint64{employees[0].ID}, "admin")
	s.Require().NoError(err)
	s.Require().Len(updated.AssignedEmployees, 1)
	s.Equal(employees[1].ID, updated.AssignedEmployees[0].ID)
}

func (s *ProjectServiceTestSuite) TestValidation() {
	_, err := s.service.CreateProject(ProjectInput{Name: "", Manager: "dana"}, "admin")
	s.ErrorIs(err, ErrProjectNameRequired)

	_, err = s.service.CreateProject(ProjectInput{Name: "x", Manager: " "}, "admin")
	s.ErrorIs(err, ErrProjectManagerRequired)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
