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

type SaveCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *Handler) ListCategories(ctx *gin.Context) {
	page, err := h.categories.GetPaginatedList(pageQuery(ctx), ctx.Query("title"))

	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	categories := make([]CategorySummary, 0, len(page.Items))
	for _, category := range page.Items {
		categories = append(categories, CategorySummary{ID: category.ID, Title: category.Title})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"categories":  categories,
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
	})
}

func (h *Handler) GetCategory(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	category, err := h.categories.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			h.logger.Error("failed to fetch category", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	postCount, err := h.categories.CountByCategory(category)
	if err != nil {
		h.logger.Error("failed to count posts", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category":   CategorySummary{ID: category.ID, Title: category.Title},
		"post_count": postCount,
	})
}

func (h *Handler) CreateCategory(ctx *gin.Context) {
	h.saveCategory(ctx, nil)
}

func (h *Handler) UpdateCategory(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	category, err := h.categories.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			h.logger.Error("failed to fetch category", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	h.saveCategory(ctx, category)
}

func (h *Handler) saveCategory(ctx *gin.Context, category *models.Category) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !policy.Allow(currentUser, policy.ActionEdit, &models.Category{}) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req SaveCategoryRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status := http.StatusOK
	if category == nil {
		category = &models.Category{}
		status = http.StatusCreated
	}
	category.Title = req.Title

	if err := h.categories.Save(category); err != nil {
		h.respondSaveError(ctx, err)
		return
	}

	ctx.JSON(status, CategorySummary{ID: category.ID, Title: category.Title})
}

func (h *Handler) DeleteCategory(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	category, err := h.categories.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			h.logger.Error("failed to fetch category", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionDelete, category) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := h.categories.Delete(category); err != nil {
		if errors.Is(err, services.ErrCategoryInUse) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Category still has posts"})
			return
		}
		h.logger.Error("failed to delete category", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
