package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karzeg/ztp-project-blog/internal/policy"
	"github.com/karzeg/ztp-project-blog/internal/services"
	"github.com/karzeg/ztp-project-blog/internal/utils"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

func (h *Handler) ListUsers(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	page, err := h.users.GetPaginatedList(pageQuery(ctx))

	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	users := make([]UserResponse, 0, len(page.Items))
	for _, user := range page.Items {
		users = append(users, UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Login: user.Login,
			Roles: user.RoleList(),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"users":       users,
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
	})
}

func (h *Handler) GetUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	user, err := h.users.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			h.logger.Error("failed to fetch user", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionView, user) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Login: user.Login,
			Roles: user.RoleList(),
		},
	})
}

func (h *Handler) ChangePassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := paramID(ctx)
	if !ok {
		return
	}

	user, err := h.users.FindOneByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			h.logger.Error("failed to fetch user", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	if !policy.Allow(currentUser, policy.ActionEdit, user) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req ChangePasswordRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Only admins changing someone else's password may skip the current
	// password check.
	if user.ID == currentUser.ID {
		if _, err := h.users.Authenticate(user.Email, req.CurrentPassword); err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
				return
			}
			h.logger.Error("failed to verify password", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	if err := h.users.ChangePassword(user, req.NewPassword); err != nil {
		h.logger.Error("failed to change password", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
