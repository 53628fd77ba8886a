package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karzeg/ztp-project-blog/internal/services"
	"github.com/karzeg/ztp-project-blog/internal/validate"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	logger     *zap.Logger
	posts      *services.PostService
	comments   *services.CommentService
	categories *services.CategoryService
	tags       *services.TagService
	users      *services.UserService
	tagsText   *services.TagsTransformer
}

func New(db *gorm.DB, logger *zap.Logger) *Handler {
	tags := services.NewTagService(db, logger)
	categories := services.NewCategoryService(db, logger)

	return &Handler{
		logger:     logger,
		posts:      services.NewPostService(db, logger, categories, tags),
		comments:   services.NewCommentService(db, logger),
		categories: categories,
		tags:       tags,
		users:      services.NewUserService(db, logger),
		tagsText:   services.NewTagsTransformer(tags),
	}
}

func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func pageQuery(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func uintQuery(ctx *gin.Context, key string) uint {
	value, err := strconv.ParseUint(ctx.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}

// respondSaveError maps a service save failure onto the right status:
// validation failures carry their violations back to the client, anything
// else is a storage error.
func (h *Handler) respondSaveError(ctx *gin.Context, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": verr.Violations})
		return
	}
	h.logger.Error("save failed", zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
