package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
	project *models.Project
}

func (s *TaskServiceTestSuite) SetupTest() {
	var err error
	s.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)

	err = s.db.AutoMigrate(
		&models.Project{},
		&models.Employee{},
		&models.Task{},
		&models.TaskFile{},
		&models.TaskPost{},
		&models.TaskComment{},
		&models.AuditTrail{},
	)
	s.Require().NoError(err)

	auditService := NewAuditService(repository.NewAuditRepository(s.db))
	s.service = NewTaskService(repository.NewTaskRepository(s.db), repository.NewProjectRepository(s.db), auditService)

	s.project = &models.Project{Name: "Platform Rewrite", Manager: "dana", Status: models.ProjectStatusInProgress, TeamSize: 3}
	s.Require().NoError(s.db.Create(s.project).Error)
}

func (s *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *TaskServiceTestSuite) createTask(input CreateTaskInput) *models.Task {
	task, err := s.service.CreateTask(s.project.ID, input, "dana")
	s.Require().NoError(err)
	return task
}

func (s *TaskServiceTestSuite) TestCreateDefaults() {
	task := s.createTask(CreateTaskInput{Name: "Wire up CI", AssignedTo: "alex"})

	s.Equal(models.TaskPriorityMedium, task.Priority)
	s.Equal(models.TaskStatusPending, task.Status)
	s.Equal(0, task.Progress)
	s.Equal(models.TaskStageDevelopment, task.Stage)
	s.EqualValues(1, countAuditEntries(s.T(), s.db, "Created task: Wire up CI"))
}

func (s *TaskServiceTestSuite) TestCreateWithInitialProgressSyncsStatus() {
	task := s.createTask(CreateTaskInput{Name: "Spike", AssignedTo: "alex", Progress: intPtr(40)})

	s.Equal(models.TaskStatusInProgress, task.Status)
	s.Equal(40, task.Progress)
}

func (s *TaskServiceTestSuite) TestCreateValidation() {
	_, err := s.service.CreateTask(s.project.ID, CreateTaskInput{Name: " ", AssignedTo: "alex"}, "dana")
	s.ErrorIs(err, ErrTaskNameRequired)

	_, err = s.service.CreateTask(s.project.ID, CreateTaskInput{Name: "x", AssignedTo: ""}, "dana")
	s.ErrorIs(err, ErrTaskAssigneeRequired)

	_, err = s.service.CreateTask(s.project.ID, CreateTaskInput{Name: "x", AssignedTo: "alex", Progress: intPtr(101)}, "dana")
	s.ErrorIs(err, ErrTaskProgressOutOfRange)

	_, err = s.service.CreateTask(99999, CreateTaskInput{Name: "x", AssignedTo: "alex"}, "dana")
	s.ErrorIs(err, ErrProjectNotFound)
}

func (s *TaskServiceTestSuite) TestProgressUpdateCompletesTask() {
	task := s.createTask(CreateTaskInput{Name: "Ship it", AssignedTo: "alex"})

	updated, err := s.service.UpdateProgress(task.ID, 100, "dana")
	s.Require().NoError(err)
	s.Equal(models.TaskStatusCompleted, updated.Status)
	s.Equal(100, updated.Progress)
}

func (s *TaskServiceTestSuite) TestStatusBackToPendingResetsProgress() {
	task := s.createTask(CreateTaskInput{Name: "Ship it", AssignedTo: "alex"})

	_, err := s.service.UpdateProgress(task.ID, 100, "dana")
	s.Require().NoError(err)

	updated, err := s.service.UpdateStatus(task.ID, models.TaskStatusPending, "dana")
	s.Require().NoError(err)
	s.Equal(models.TaskStatusPending, updated.Status)
	s.Equal(0, updated.Progress)
}

func (s *TaskServiceTestSuite) TestOnHoldPinsStatus() {
	task := s.createTask(CreateTaskInput{Name: "Deferred work", AssignedTo: "alex"})

	_, err := s.service.UpdateStatus(task.ID, models.TaskStatusOnHold, "dana")
	s.Require().NoError(err)

	updated, err := s.service.UpdateProgress(task.ID, 50, "dana")
	s.Require().NoError(err)
	s.Equal(models.TaskStatusOnHold, updated.Status)
	s.Equal(50, updated.Progress)
}

func (s *TaskServiceTestSuite) TestCombinedUpdateAppliesStatusThenProgress() {
	task := s.createTask(CreateTaskInput{Name: "Combined", AssignedTo: "alex"})

	updated, err := s.service.UpdateStatusAndProgress(task.ID, statusPtr(models.TaskStatusCompleted), intPtr(80), "dana")
	s.Require().NoError(err)
	s.Equal(models.TaskStatusInProgress, updated.Status)
	s.Equal(80, updated.Progress)
}

func (s *TaskServiceTestSuite) TestStateUpdateWritesAuditEntry() {
	task := s.createTask(CreateTaskInput{Name: "Audited", AssignedTo: "alex"})

	_, err := s.service.UpdateProgress(task.ID, 30, "dana")
	s.Require().NoError(err)
	s.EqualValues(1, countAuditEntries(s.T(), s.db, "Updated task Audited progress to 30%"))
}

func (s *TaskServiceTestSuite) TestDeleteCascadeRemovesFilesPostsComments() {
	task := s.createTask(CreateTaskInput{Name: "Doomed", AssignedTo: "alex"})

	post := &models.TaskPost{Content: "status?", Author: "alex", TaskID: task.ID}
	s.Require().NoError(s.db.Create(post).Error)
	s.Require().NoError(s.db.Create(&models.TaskComment{Content: "soon", Author: "dana", PostID: post.ID}).Error)
	s.Require().NoError(s.db.Create(&models.TaskFile{FileName: "notes.txt", FileType: "text/plain", FileSize: 4, Data: []byte("data"), UploadedBy: "alex", TaskID: task.ID}).Error)

	s.Require().NoError(s.service.DeleteTask(task.ID, "dana"))

	for _, model := range []interface{}{&models.Task{}, &models.TaskPost{}, &models.TaskComment{}, &models.TaskFile{}} {
		var count int64
		s.Require().NoError(s.db.Model(model).Count(&count).Error)
		s.EqualValues(0, count)
	}
	s.EqualValues(1, countAuditEntries(s.T(), s.db, "Deleted task: Doomed"))
}

func (s *TaskServiceTestSuite) TestStatisticsCountsByStatus() {
	s.createTask(CreateTaskInput{Name: "a", AssignedTo: "alex"})
	s.createTask(CreateTaskInput{Name: "b", AssignedTo: "alex", Progress: intPtr(50)})
	task := s.createTask(CreateTaskInput{Name: "c", AssignedTo: "alex"})
	_, err := s.service.UpdateProgress(task.ID, 100, "dana")
	s.Require().NoError(err)

	stats, err := s.service.GetStatistics(s.project.ID)
	s.Require().NoError(err)
	s.EqualValues(3, stats.TotalTasks)
	s.EqualValues(1, stats.PendingTasks)
	s.EqualValues(1, stats.InProgressTasks)
	s.EqualValues(1, stats.CompletedTasks)
	s.InDelta(50.0, stats.AverageProgress, 0.01)
}

func (s *TaskServiceTestSuite) TestListByProjectFilters() {
	s.createTask(CreateTaskInput{Name: "a", AssignedTo: "alex"})
	s.createTask(CreateTaskInput{Name: "b", AssignedTo: "botan"})

	assignee := "botan"
	tasks, err := s.service.ListTasksByProject(s.project.ID, repository.TaskFilter{AssignedTo: &assignee})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal("b", tasks[0].Name)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
