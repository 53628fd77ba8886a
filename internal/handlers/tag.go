package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karzeg/ztp-project-blog/internal/models"
	"github.com/karzeg/ztp-project-blog/internal/policy"
	"github.com/karzeg/ztp-project-blog/internal/services"
	"github.com/karzeg/ztp-project-blog/internal/utils"
)

type SaveTagRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *Handler) ListTags(ctx *gin.Context) {
	page, err := h.tags.GetPaginatedList(pageQuery(ctx))

	if err != nil {
		h.logger.Error("failed to list tags", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	tags := make([]TagSummary, 0, len(page.Items))
	for _, tag := range page.Items {
		tags = append(tags, TagSummary{ID: tag.ID, Title: tag.Title})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"tags":        tags,
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
	})
}

func (h *Handler) GetTag(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	tag, err := h.tags.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			h.logger.Error("failed to fetch tag", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		}
		return
	}

	ctx.JSON(http.StatusOK, TagSummary{ID: tag.ID, Title: tag.Title})
}

func (h *Handler) CreateTag(ctx *gin.Context) {
	h.saveTag(ctx, nil)
}

func (h *Handler) UpdateTag(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	tag, err := h.tags.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			h.logger.Error("failed to fetch tag", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		}
		return
	}

	h.saveTag(ctx, tag)
}

func (h *Handler) saveTag(ctx *gin.Context, tag *models.Tag) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !policy.Allow(currentUser, policy.ActionEdit, &models.Tag{}) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req SaveTagRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status := http.StatusOK
	if tag == nil {
		tag = &models.Tag{}
		status = http.StatusCreated
	}
	tag.Title = req.Title

	if err := h.tags.Save(tag); err != nil {
		h.respondSaveError(ctx, err)
		return
	}

	ctx.JSON(status, TagSummary{ID: tag.ID, Title: tag.Title})
}

func (h *Handler) DeleteTag(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	tag, err := h.tags.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			h.logger.Error("failed to fetch tag", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionDelete, tag) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := h.tags.Delete(tag); err != nil {
		h.logger.Error("failed to delete tag", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
