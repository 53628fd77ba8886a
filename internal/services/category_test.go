package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karzeg/ztp-project-blog/internal/models"
	"github.com/karzeg/ztp-project-blog/internal/validate"
)

func TestCategorySaveAndFind(t *testing.T) {
	_, categories, _, _, _ := newServices(t)

	category := models.Category{Title: "News"}
	require.NoError(t, categories.Save(&category))
	require.NotZero(t, category.ID)

	found, err := categories.FindOneByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "News", found.Title)
}

func TestCategorySaveRejectsBlankTitle(t *testing.T) {
	_, categories, _, _, _ := newServices(t)

	err := categories.Save(&models.Category{Title: ""})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
}

func TestCategoryDeleteBlockedWhileInUse(t *testing.T) {
	gdb, categories, _, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	post := mustPost(t, gdb, "Post", category, time.Now())

	err := categories.Delete(category)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// Still there.
	_, err = categories.FindOneByID(category.ID)
	require.NoError(t, err)

	// Once the last post is gone the delete goes through.
	require.NoError(t, posts.Delete(post))
	require.NoError(t, categories.Delete(category))

	_, err = categories.FindOneByID(category.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryCount(t *testing.T) {
	gdb, categories, _, _, _ := newServices(t)

	news := mustCategory(t, gdb, "News")
	other := mustCategory(t, gdb, "Other")
	mustPost(t, gdb, "A", news, time.Now())
	mustPost(t, gdb, "B", news, time.Now())

	count, err := categories.CountByCategory(news)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = categories.CountByCategory(other)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCategoryListPaginationAndSearch(t *testing.T) {
	gdb, categories, _, _, _ := newServices(t)

	for i := 0; i < 15; i++ {
		mustCategory(t, gdb, fmt.Sprintf("Category %02d", i))
	}
	mustCategory(t, gdb, "Special")

	page, err := categories.GetPaginatedList(1, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, ItemsPerPage)
	assert.EqualValues(t, 16, page.TotalCount)

	page, err = categories.GetPaginatedList(2, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)

	page, err = categories.GetPaginatedList(1, "Special")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Special", page.Items[0].Title)
}
