package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
	project *models.Project
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Project{},
		&models.Employee{},
		&models.Task{},
		&models.TaskFile{},
		&models.TaskPost{},
		&models.TaskComment{},
		&models.AuditTrail{},
	)
	suite.Require().NoError(err)

	auditService := services.NewAuditService(repository.NewAuditRepository(suite.db))
	taskService := services.NewTaskService(
		repository.NewTaskRepository(suite.db),
		repository.NewProjectRepository(suite.db),
		auditService,
	)
	suite.handler = NewTaskHandler(taskService)

	gin.SetMode(gin.TestMode)

	suite.project = &models.Project{Name: "Test Project", Manager: "dana", Status: models.ProjectStatusInProgress, TeamSize: 3}
	suite.Require().NoError(suite.db.Create(suite.project).Error)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestTask(name string) *models.Task {
	task := &models.Task{
		Name:       name,
		AssignedTo: "alex",
		Priority:   models.TaskPriorityMedium,
		Status:     models.TaskStatusPending,
		Stage:      models.TaskStageDevelopment,
		ProjectID:  suite.project.ID,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

// Helper function to create an authenticated context
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, username string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if username != "" {
		c.Set(constants.ContextKeyUsername, username)
	}

	return c, w
}

func (suite *TaskHandlerTestSuite) taskFromResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response["task"]
}

func (suite *TaskHandlerTestSuite) TestUpdateStatus_CompletedForcesProgress() {
	suite.createTestTask("Ship it")

	body, _ := json.Marshal(map[string]string{"status": "COMPLETED"})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1/status", body, "dana")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateStatus(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	got := suite.taskFromResponse(w)
	assert.Equal(suite.T(), "COMPLETED", got["status"])
	assert.EqualValues(suite.T(), 100, got["progress"])
}

func (suite *TaskHandlerTestSuite) TestUpdateProgress_OnHoldPinsStatus() {
	task := suite.createTestTask("Paused")
	suite.Require().NoError(suite.db.Model(task).Update("status", models.TaskStatusOnHold).Error)

	body, _ := json.Marshal(map[string]int{"progress": 50})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1/progress", body, "dana")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateProgress(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	got := suite.taskFromResponse(w)
	assert.Equal(suite.T(), "ON_HOLD", got["status"])
	assert.EqualValues(suite.T(), 50, got["progress"])
}

func (suite *TaskHandlerTestSuite) TestUpdateProgress_OutOfRange() {
	suite.createTestTask("Bounded")

	body, _ := json.Marshal(map[string]int{"progress": 150})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1/progress", body, "dana")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateProgress(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateStatus_Unauthenticated() {
	suite.createTestTask("Secret")

	body, _ := json.Marshal(map[string]string{"status": "COMPLETED"})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1/status", body, "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdateStatus(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	c, w := suite.createAuthContext("GET", "/api/tasks/999", nil, "dana")
	c.Params = gin.Params{{Key: "id", Value: "999"}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Defaults() {
	body, _ := json.Marshal(map[string]string{
		"name":        "Fresh",
		"assigned_to": "alex",
	})
	c, w := suite.createAuthContext("POST", "/api/projects/1/tasks", body, "dana")
	c.Params = gin.Params{{Key: "projectId", Value: "1"}}

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	got := suite.taskFromResponse(w)
	assert.Equal(suite.T(), "PENDING", got["status"])
	assert.EqualValues(suite.T(), 0, got["progress"])
	assert.Equal(suite.T(), "MEDIUM", got["priority"])

	// creation is audited
	var count int64
	suite.Require().NoError(suite.db.Model(&models.AuditTrail{}).Where("performed_by = ?", "dana").Count(&count).Error)
	assert.EqualValues(suite.T(), 1, count)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
