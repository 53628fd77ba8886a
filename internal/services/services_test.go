package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/karzeg/ztp-project-blog/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	))

	return gdb
}

func newServices(t *testing.T) (*gorm.DB, *CategoryService, *TagService, *PostService, *CommentService) {
	t.Helper()

	gdb := newTestDB(t)
	logger := zap.NewNop()

	categories := NewCategoryService(gdb, logger)
	tags := NewTagService(gdb, logger)
	posts := NewPostService(gdb, logger, categories, tags)
	comments := NewCommentService(gdb, logger)

	return gdb, categories, tags, posts, comments
}

func mustCategory(t *testing.T, gdb *gorm.DB, title string) *models.Category {
	t.Helper()

	category := models.Category{Title: title}
	require.NoError(t, gdb.Create(&category).Error)
	return &category
}

func mustPost(t *testing.T, gdb *gorm.DB, title string, category *models.Category, date time.Time, tags ...models.Tag) *models.Post {
	t.Helper()

	post := models.Post{
		Title:      title,
		Content:    "content of " + title,
		Date:       date,
		CategoryID: category.ID,
		Tags:       tags,
	}
	require.NoError(t, gdb.Create(&post).Error)
	return &post
}
