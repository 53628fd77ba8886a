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

type SavePostRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
	Tags       string `json:"tags"` // comma-separated titles, free text
}

type TagSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type CategorySummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type AuthorSummary struct {
	ID    uint   `json:"id"`
	Login string `json:"login"`
}

type PostSummary struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Date     time.Time       `json:"date"`
	Category CategorySummary `json:"category"`
	Tags     []TagSummary    `json:"tags"`
}

type PostResponse struct {
	PostSummary
	Content  string           `json:"content"`
	TagsText string           `json:"tags_text"`
	Author   *AuthorSummary   `json:"author"`
	Comments []CommentSummary `json:"comments"`
}

func postSummary(post models.Post) PostSummary {
	tags := make([]TagSummary, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tags = append(tags, TagSummary{ID: tag.ID, Title: tag.Title})
	}

	return PostSummary{
		ID:       post.ID,
		Title:    post.Title,
		Date:     post.Date,
		Category: CategorySummary{ID: post.Category.ID, Title: post.Category.Title},
		Tags:     tags,
	}
}

func (h *Handler) ListPosts(ctx *gin.Context) {
	filters := services.PostFilters{
		CategoryID: uintQuery(ctx, "category_id"),
		TagID:      uintQuery(ctx, "tag_id"),
	}

	page, err := h.posts.GetPaginatedList(pageQuery(ctx), filters)

	if err != nil {
		h.logger.Error("failed to list posts", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	posts := make([]PostSummary, 0, len(page.Items))
	for _, post := range page.Items {
		posts = append(posts, postSummary(post))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"posts":       posts,
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
	})
}

func (h *Handler) GetPost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	post, err := h.posts.FindOneByID(id)

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			h.logger.Error("failed to fetch post", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	comments, err := h.comments.ListForPost(post.ID)

	if err != nil {
		h.logger.Error("failed to fetch comments", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := PostResponse{
		PostSummary: postSummary(*post),
		Content:     post.Content,
		TagsText:    h.tagsText.Transform(post.Tags),
		Comments:    commentSummaries(comments),
	}
	if post.Author != nil {
		response.Author = &AuthorSummary{ID: post.Author.ID, Login: post.Author.Login}
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreatePost(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !policy.Allow(currentUser, policy.ActionCreate, &models.Post{}) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req SavePostRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tags, err := h.tagsText.ReverseTransform(req.Tags)
	if err != nil {
		h.logger.Error("failed to resolve tags", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
		return
	}

	post := models.Post{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		AuthorID:   &currentUser.ID,
		Tags:       tags,
	}

	if err := h.posts.Save(&post); err != nil {
		h.respondSaveError(ctx, err)
		return
	}

	saved, err := h.posts.FindOneByID(post.ID)
	if err != nil {
		h.logger.Error("failed to reload post", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, postSummary(*saved))
}

func (h *Handler) UpdatePost(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	post, err := h.posts.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			h.logger.Error("failed to fetch post", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionEdit, post) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req SavePostRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tags, err := h.tagsText.ReverseTransform(req.Tags)
	if err != nil {
		h.logger.Error("failed to resolve tags", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tags"})
		return
	}

	post.Title = req.Title
	post.Content = req.Content
	post.CategoryID = req.CategoryID
	post.Tags = tags

	if err := h.posts.Save(post); err != nil {
		h.respondSaveError(ctx, err)
		return
	}

	saved, err := h.posts.FindOneByID(post.ID)
	if err != nil {
		h.logger.Error("failed to reload post", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, postSummary(*saved))
}

func (h *Handler) DeletePost(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	post, err := h.posts.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			h.logger.Error("failed to fetch post", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionDelete, post) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := h.posts.Delete(post); err != nil {
		h.logger.Error("failed to delete post", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
