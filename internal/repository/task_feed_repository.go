package repository

import (
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// GormTaskFeedRepository is a GORM implementation of TaskFeedRepository
type GormTaskFeedRepository struct {
	db *gorm.DB
}

// NewTaskFeedRepository creates a new TaskFeedRepository
func NewTaskFeedRepository(db *gorm.DB) TaskFeedRepository {
	return &GormTaskFeedRepository{db: db}
}

// PostsByTaskID returns the task's posts, newest first
func (r *GormTaskFeedRepository) PostsByTaskID(taskID uint64) ([]models.TaskPost, error) {
	var posts []models.TaskPost
	if err := r.db.Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsByTaskIDAndAuthor returns the author's posts on a task, newest first
func (r *GormTaskFeedRepository) PostsByTaskIDAndAuthor(taskID uint64, author string) ([]models.TaskPost, error) {
	var posts []models.TaskPost
	if err := r.db.Where("task_id = ? AND author = ?", taskID, author).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsByAuthor returns the author's posts across all tasks, newest first
func (r *GormTaskFeedRepository) PostsByAuthor(author string) ([]models.TaskPost, error) {
	var posts []models.TaskPost
	if err := r.db.Where("author = ?", author).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindPostByID finds a post by ID
func (r *GormTaskFeedRepository) FindPostByID(id uint64) (*models.TaskPost, error) {
	var post models.TaskPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ExistsPostByID reports whether the post exists
func (r *GormTaskFeedRepository) ExistsPostByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.TaskPost{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePost creates a new post
func (r *GormTaskFeedRepository) CreatePost(post *models.TaskPost) error {
	return r.db.Create(post).Error
}

// UpdatePost updates a post
func (r *GormTaskFeedRepository) UpdatePost(post *models.TaskPost) error {
	return r.db.Save(post).Error
}

// DeletePostCascade removes the post's comments, the post and the audit
// entry in one transaction
func (r *GormTaskFeedRepository) DeletePostCascade(postID uint64, audit *models.AuditTrail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.TaskComment{}).Error; err != nil {
			return err
		}
		if err := tx.Create(audit).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TaskPost{}, postID).Error
	})
}

// CountPostsByTaskID counts the posts on a task
func (r *GormTaskFeedRepository) CountPostsByTaskID(taskID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TaskPost{}).Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

// CommentsByPostID returns the post's comments, oldest first
func (r *GormTaskFeedRepository) CommentsByPostID(postID uint64) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	if err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindCommentByID finds a comment by ID
func (r *GormTaskFeedRepository) FindCommentByID(id uint64) (*models.TaskComment, error) {
	var comment models.TaskComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateComment creates a new comment
func (r *GormTaskFeedRepository) CreateComment(comment *models.TaskComment) error {
	return r.db.Create(comment).Error
}

// UpdateComment updates a comment
func (r *GormTaskFeedRepository) UpdateComment(comment *models.TaskComment) error {
	return r.db.Save(comment).Error
}

// DeleteComment deletes a comment by ID
func (r *GormTaskFeedRepository) DeleteComment(id uint64) error {
	return r.db.Delete(&models.TaskComment{}, id).Error
}

// CountCommentsByPostID counts the comments on a post
func (r *GormTaskFeedRepository) CountCommentsByPostID(postID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TaskComment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
