package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

func setupFeedService(t *testing.T) (*gorm.DB, *TaskFeedService, *models.Task) {
	t.Helper()
	db := setupTestDB(t)
	auditService := NewAuditService(repository.NewAuditRepository(db))
	service := NewTaskFeedService(
		repository.NewTaskFeedRepository(db),
		repository.NewTaskRepository(db),
		auditService,
	)

	project := &models.Project{Name: "P", Manager: "dana", Status: models.ProjectStatusPlanning, TeamSize: 1}
	require.NoError(t, db.Create(project).Error)
	task := &models.Task{
		Name:       "T",
		AssignedTo: "alex",
		Priority:   models.TaskPriorityMedium,
		Status:     models.TaskStatusPending,
		Stage:      models.TaskStageDevelopment,
		ProjectID:  project.ID,
	}
	require.NoError(t, db.Create(task).Error)
	return db, service, task
}

func TestTaskFeedService_PostLifecycle(t *testing.T) {
	_, service, task := setupFeedService(t)

	post, err := service.CreatePost(task.ID, "shipping friday", "alex")
	require.NoError(t, err)

	posts, err := service.ListPosts(task.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	updated, err := service.UpdatePost(post.ID, "shipping monday", "alex")
	require.NoError(t, err)
	require.Equal(t, "shipping monday", updated.Content)
}

func TestTaskFeedService_OnlyAuthorMayEdit(t *testing.T) {
	_, service, task := setupFeedService(t)

	post, err := service.CreatePost(task.ID, "mine", "alex")
	require.NoError(t, err)

	_, err = service.UpdatePost(post.ID, "hijacked", "dana")
	require.ErrorIs(t, err, ErrNotPostAuthor)
	require.ErrorIs(t, service.DeletePost(post.ID, "dana"), ErrNotPostAuthor)
}

func TestTaskFeedService_DeletePostRemovesComments(t *testing.T) {
	db, service, task := setupFeedService(t)

	post, err := service.CreatePost(task.ID, "thread root", "alex")
	require.NoError(t, err)
	_, err = service.CreateComment(post.ID, "first", "dana")
	require.NoError(t, err)
	_, err = service.CreateComment(post.ID, "second", "dana")
	require.NoError(t, err)

	require.NoError(t, service.DeletePost(post.ID, "alex"))

	var count int64
	require.NoError(t, db.Model(&models.TaskComment{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestTaskFeedService_CommentAuthorChecks(t *testing.T) {
	_, service, task := setupFeedService(t)

	post, err := service.CreatePost(task.ID, "root", "alex")
	require.NoError(t, err)
	comment, err := service.CreateComment(post.ID, "note", "dana")
	require.NoError(t, err)

	_, err = service.UpdateComment(comment.ID, "edited", "alex")
	require.ErrorIs(t, err, ErrNotCommentAuthor)
	require.NoError(t, service.DeleteComment(comment.ID, "dana"))
}

func TestTaskFeedService_MissingTargets(t *testing.T) {
	_, service, _ := setupFeedService(t)

	_, err := service.CreatePost(99999, "lost", "alex")
	require.ErrorIs(t, err, ErrTaskNotFound)
	_, err = service.CreateComment(99999, "lost", "alex")
	require.ErrorIs(t, err, ErrPostNotFound)
}
