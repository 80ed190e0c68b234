package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
)

var (
	ErrPostNotFound           = errors.New("post not found")
	ErrCommentNotFound        = errors.New("comment not found")
	ErrPostContentRequired    = errors.New("post content cannot be empty")
	ErrCommentContentRequired = errors.New("comment content cannot be empty")
	ErrNotPostAuthor          = errors.New("only the author may modify this post")
	ErrNotCommentAuthor       = errors.New("only the author may modify this comment")
)

// TaskFeedService handles the discussion feed under tasks: posts and the
// comments hanging off them. Edits and deletes are restricted to the author.
type TaskFeedService struct {
	feedRepo     repository.TaskFeedRepository
	taskRepo     repository.TaskRepository
	auditService *AuditService
}

// NewTaskFeedService creates a new TaskFeedService.
func NewTaskFeedService(feedRepo repository.TaskFeedRepository, taskRepo repository.TaskRepository, auditService *AuditService) *TaskFeedService {
	return &TaskFeedService{
		feedRepo:     feedRepo,
		taskRepo:     taskRepo,
		auditService: auditService,
	}
}

// CreatePost adds a post to the task's feed.
func (s *TaskFeedService) CreatePost(taskID uint64, content, author string) (*models.TaskPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrPostContentRequired
	}
	exists, err := s.taskRepo.ExistsByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	post := &models.TaskPost{
		Content: content,
		Author:  author,
		TaskID:  taskID,
	}
	if err := s.feedRepo.CreatePost(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	if _, err := s.auditService.Record(author, fmt.Sprintf("Posted on task %d", taskID)); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a post by ID.
func (s *TaskFeedService) GetPost(id uint64) (*models.TaskPost, error) {
	post, err := s.feedRepo.FindPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListPosts returns the task's posts, newest first.
func (s *TaskFeedService) ListPosts(taskID uint64) ([]models.TaskPost, error) {
	exists, err := s.taskRepo.ExistsByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}
	posts, err := s.feedRepo.PostsByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListPostsByAuthor returns the posts written by the given author, optionally
// narrowed to one task.
func (s *TaskFeedService) ListPostsByAuthor(taskID *uint64, author string) ([]models.TaskPost, error) {
	var (
		posts []models.TaskPost
		err   error
	)
	if taskID != nil {
		posts, err = s.feedRepo.PostsByTaskIDAndAuthor(*taskID, author)
	} else {
		posts, err = s.feedRepo.PostsByAuthor(author)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// CountPosts returns the number of posts on the task.
func (s *TaskFeedService) CountPosts(taskID uint64) (int64, error) {
	count, err := s.feedRepo.CountPostsByTaskID(taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// UpdatePost edits a post's content. Only the author may edit.
func (s *TaskFeedService) UpdatePost(id uint64, content, actor string) (*models.TaskPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrPostContentRequired
	}
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}
	if post.Author != actor {
		return nil, ErrNotPostAuthor
	}
	post.Content = content
	if err := s.feedRepo.UpdatePost(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated post %d on task %d", post.ID, post.TaskID)); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post together with its comments. Only the author may
// delete.
func (s *TaskFeedService) DeletePost(id uint64, actor string) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	if post.Author != actor {
		return ErrNotPostAuthor
	}
	audit, err := s.auditService.Entry(actor, fmt.Sprintf("Deleted post %d on task %d", post.ID, post.TaskID))
	if err != nil {
		return err
	}
	if err := s.feedRepo.DeletePostCascade(id, audit); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// CreateComment adds a comment under a post.
func (s *TaskFeedService) CreateComment(postID uint64, content, author string) (*models.TaskComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentContentRequired
	}
	exists, err := s.feedRepo.ExistsPostByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &models.TaskComment{
		Content: content,
		Author:  author,
		PostID:  postID,
	}
	if err := s.feedRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	if _, err := s.auditService.Record(author, fmt.Sprintf("Commented on post %d", postID)); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the post's comments, oldest first.
func (s *TaskFeedService) ListComments(postID uint64) ([]models.TaskComment, error) {
	exists, err := s.feedRepo.ExistsPostByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}
	comments, err := s.feedRepo.CommentsByPostID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CountComments returns the number of comments under the post.
func (s *TaskFeedService) CountComments(postID uint64) (int64, error) {
	count, err := s.feedRepo.CountCommentsByPostID(postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// UpdateComment edits a comment's content. Only the author may edit.
func (s *TaskFeedService) UpdateComment(id uint64, content, actor string) (*models.TaskComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrCommentContentRequired
	}
	comment, err := s.feedRepo.FindCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.Author != actor {
		return nil, ErrNotCommentAuthor
	}
	comment.Content = content
	if err := s.feedRepo.UpdateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if _, err := s.auditService.Record(actor, fmt.Sprintf("Updated comment %d on post %d", comment.ID, comment.PostID)); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *TaskFeedService) DeleteComment(id uint64, actor string) error {
	comment, err := s.feedRepo.FindCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.Author != actor {
		return ErrNotCommentAuthor
	}
	if err := s.feedRepo.DeleteComment(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	_, err = s.auditService.Record(actor, fmt.Sprintf("Deleted comment %d on post %d", comment.ID, comment.PostID))
	return err
}
