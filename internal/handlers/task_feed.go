package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/dto"
	apierrors "github.com/jnmnltrnz/workforce-management-api/internal/errors"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

type TaskFeedHandler struct {
	feedService *services.TaskFeedService
}

func NewTaskFeedHandler(feedService *services.TaskFeedService) *TaskFeedHandler {
	return &TaskFeedHandler{
		feedService: feedService,
	}
}

// CreatePost adds a post to the task's feed
func (h *TaskFeedHandler) CreatePost(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	post, err := h.feedService.CreatePost(taskID, req.Content, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": dto.ToTaskPostDTO(*post)})
}

// ListPosts returns the task's posts, newest first. An author query parameter
// narrows the result.
func (h *TaskFeedHandler) ListPosts(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var (
		posts []models.TaskPost
		err   error
	)
	if author := c.Query("author"); author != "" {
		posts, err = h.feedService.ListPostsByAuthor(&taskID, author)
	} else {
		posts, err = h.feedService.ListPosts(taskID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": dto.ToTaskPostDTOs(posts)})
}

// CountPosts returns the number of posts on the task
func (h *TaskFeedHandler) CountPosts(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	count, err := h.feedService.CountPosts(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// UpdatePost edits a post's content; author only
func (h *TaskFeedHandler) UpdatePost(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	post, err := h.feedService.UpdatePost(postID, req.Content, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": dto.ToTaskPostDTO(*post)})
}

// DeletePost removes a post and its comments; author only
func (h *TaskFeedHandler) DeletePost(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	if err := h.feedService.DeletePost(postID, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// CreateComment adds a comment under a post
func (h *TaskFeedHandler) CreateComment(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	comment, err := h.feedService.CreateComment(postID, req.Content, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": dto.ToTaskCommentDTO(*comment)})
}

// ListComments returns the post's comments, oldest first
func (h *TaskFeedHandler) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	comments, err := h.feedService.ListComments(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": dto.ToTaskCommentDTOs(comments)})
}

// CountComments returns the number of comments under the post
func (h *TaskFeedHandler) CountComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}
	count, err := h.feedService.CountComments(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// UpdateComment edits a comment's content; author only
func (h *TaskFeedHandler) UpdateComment(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	comment, err := h.feedService.UpdateComment(commentID, req.Content, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": dto.ToTaskCommentDTO(*comment)})
}

// DeleteComment removes a comment; author only
func (h *TaskFeedHandler) DeleteComment(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}
	if err := h.feedService.DeleteComment(commentID, username); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
