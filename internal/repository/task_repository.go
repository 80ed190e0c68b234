package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAll returns all tasks
func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByProjectID returns the project's tasks, narrowed by the filter
func (r *GormTaskRepository) FindByProjectID(projectID uint64, filter TaskFilter) ([]models.Task, error) {
	query := r.db.Where("project_id = ?", projectID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", *filter.Stage)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}

	var tasks []models.Task
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindOverdue returns unfinished tasks whose deadline has passed
func (r *GormTaskRepository) FindOverdue(projectID uint64, today time.Time) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.
		Where("project_id = ? AND deadline IS NOT NULL AND deadline < ? AND status <> ?",
			projectID, today, models.TaskStatusCompleted).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindDueSoon returns unfinished tasks with a deadline inside [from, to]
func (r *GormTaskRepository) FindDueSoon(projectID uint64, from, to time.Time) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.
		Where("project_id = ? AND deadline IS NOT NULL AND deadline >= ? AND deadline <= ? AND status <> ?",
			projectID, from, to, models.TaskStatusCompleted).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Statistics aggregates task counts for a project
func (r *GormTaskRepository) Statistics(projectID uint64, today time.Time) (*TaskStatistics, error) {
	stats := &TaskStatistics{}

	base := func() *gorm.DB {
		return r.db.Model(&models.Task{}).Where("project_id = ?", projectID)
	}

	if err := base().Count(&stats.TotalTasks).Error; err != nil {
		return nil, err
	}

	statusCounts := map[models.TaskStatus]*int64{
		models.TaskStatusPending:    &stats.PendingTasks,
		models.TaskStatusInProgress: &stats.InProgressTasks,
		models.TaskStatusCompleted:  &stats.CompletedTasks,
		models.TaskStatusOnHold:     &stats.OnHoldTasks,
	}
	for status, dst := range statusCounts {
		if err := base().Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	priorityCounts := map[models.TaskPriority]*int64{
		models.TaskPriorityHigh:   &stats.HighPriority,
		models.TaskPriorityMedium: &stats.MediumPriority,
		models.TaskPriorityLow:    &stats.LowPriority,
	}
	for priority, dst := range priorityCounts {
		if err := base().Where("priority = ?", priority).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	stageCounts := map[models.TaskStage]*int64{
		models.TaskStageDevelopment: &stats.Development,
		models.TaskStageTesting:     &stats.Testing,
		models.TaskStageStaging:     &stats.Staging,
		models.TaskStageProduction:  &stats.Production,
	}
	for stage, dst := range stageCounts {
		if err := base().Where("stage = ?", stage).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	var avg *float64
	if err := base().Select("AVG(progress)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageProgress = *avg
	}

	if err := base().
		Where("deadline IS NOT NULL AND deadline < ? AND status <> ?", today, models.TaskStatusCompleted).
		Count(&stats.OverdueTasks).Error; err != nil {
		return nil, err
	}

	dueSoonEnd := today.AddDate(0, 0, constants.DueSoonDays)
	if err := base().
		Where("deadline IS NOT NULL AND deadline >= ? AND deadline <= ? AND status <> ?",
			today, dueSoonEnd, models.TaskStatusCompleted).
		Count(&stats.TasksDueSoon).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// ExistsByID reports whether the task exists
func (r *GormTaskRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a task mutation
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// SaveWithAudit persists the task mutation and the audit entry in one
// transaction
func (r *GormTaskRepository) SaveWithAudit(task *models.Task, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
}

// DeleteCascade removes the task's comments, posts and files, then the task
// itself plus the audit entry, atomically. The store has no cascade support;
// comments go first because they reference posts.
func (r *GormTaskRepository) DeleteCascade(taskID uint64, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		postIDs := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.TaskPost{}).
			Select("id").
			Where("task_id = ?", taskID)

		if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.TaskComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskFile{}).Error; err != nil {
			return err
		}
		if err := tx.Create(audit).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, taskID).Error
	})
}

// CreateFile stores a new task file blob
func (r *GormTaskRepository) CreateFile(file *models.TaskFile) error {
	return r.db.Create(file).Error
}

// FindFileByID finds a task file by ID, including its blob
func (r *GormTaskRepository) FindFileByID(id uint64) (*models.TaskFile, error) {
	var file models.TaskFile
	if err := r.db.First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// FindFilesByTaskID lists the task's files without the blob column
func (r *GormTaskRepository) FindFilesByTaskID(taskID uint64) ([]models.TaskFile, error) {
	var files []models.TaskFile
	if err := r.db.Omit("data").Where("task_id = ?", taskID).Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// ExistsFileByID reports whether the task file exists
func (r *GormTaskRepository) ExistsFileByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.TaskFile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteFile deletes a task file by ID
func (r *GormTaskRepository) DeleteFile(id uint64) error {
	return r.db.Delete(&models.TaskFile{}, id).Error
}
