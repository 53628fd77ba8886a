package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karzeg/ztp-project-blog/internal/models"
	"github.com/karzeg/ztp-project-blog/internal/policy"
	"github.com/karzeg/ztp-project-blog/internal/services"
	"github.com/karzeg/ztp-project-blog/internal/utils"
)

type SaveCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentSummary struct {
	ID      uint           `json:"id"`
	Content string         `json:"content"`
	Date    time.Time      `json:"date"`
	PostID  uint           `json:"post_id"`
	Author  *AuthorSummary `json:"author"`
}

func commentSummary(comment models.Comment) CommentSummary {
	summary := CommentSummary{
		ID:      comment.ID,
		Content: comment.Content,
		Date:    comment.Date,
		PostID:  comment.PostID,
	}
	if comment.Author != nil {
		summary.Author = &AuthorSummary{ID: comment.Author.ID, Login: comment.Author.Login}
	}
	return summary
}

func commentSummaries(comments []models.Comment) []CommentSummary {
	summaries := make([]CommentSummary, 0, len(comments))
	for _, comment := range comments {
		summaries = append(summaries, commentSummary(comment))
	}
	return summaries
}

func (h *Handler) CreateComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, ok := paramID(ctx)
	if !ok {
		return
	}

	post, err := h.posts.FindOneByID(postID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			h.logger.Error("failed to fetch post", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionCreate, &models.Comment{}) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req SaveCommentRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := models.Comment{
		Content:  req.Content,
		PostID:   post.ID,
		AuthorID: &currentUser.ID,
	}

	if err := h.comments.Save(&comment); err != nil {
		h.respondSaveError(ctx, err)
		return
	}

	comment.Author = currentUser
	ctx.JSON(http.StatusCreated, commentSummary(comment))
}

func (h *Handler) UpdateComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	comment, err := h.comments.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			h.logger.Error("failed to fetch comment", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionEdit, comment) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req SaveCommentRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment.Content = req.Content

	if err := h.comments.Save(comment); err != nil {
		h.respondSaveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commentSummary(*comment))
}

func (h *Handler) DeleteComment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	comment, err := h.comments.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			h.logger.Error("failed to fetch comment", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionDelete, comment) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := h.comments.Delete(comment); err != nil {
		h.logger.Error("failed to delete comment", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
