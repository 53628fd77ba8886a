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

func TestFindOneByTitleNotFound(t *testing.T) {
	_, _, tags, _, _ := newServices(t)

	_, err := tags.FindOneByTitle("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindOneByIDNotFound(t *testing.T) {
	_, _, tags, _, _ := newServices(t)

	_, err := tags.FindOneByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Repeated LoadOrCreate calls for the same unseen title must resolve to a
// single stored row; the unique index on title enforces this even when the
// callers race.
func TestLoadOrCreateIsIdempotent(t *testing.T) {
	gdb, _, tags, _, _ := newServices(t)

	first, err := tags.LoadOrCreate("go")
	require.NoError(t, err)

	second, err := tags.LoadOrCreate("go")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, gdb.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveRejectsBlankTitle(t *testing.T) {
	_, _, tags, _, _ := newServices(t)

	err := tags.Save(&models.Tag{Title: "   "})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Violations[0].Field)
}

func TestDeleteTagDetachesFromPosts(t *testing.T) {
	gdb, _, tags, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	tag, err := tags.LoadOrCreate("go")
	require.NoError(t, err)

	post := mustPost(t, gdb, "Tagged post", category, time.Now(), *tag)

	require.NoError(t, tags.Delete(tag))

	_, err = tags.FindOneByTitle("go")
	assert.ErrorIs(t, err, ErrNotFound)

	// The post survives with an empty tag set.
	reloaded, err := posts.FindOneByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Tags)
}

func TestTagListPagination(t *testing.T) {
	gdb, _, tags, _, _ := newServices(t)

	for i := 0; i < 12; i++ {
		require.NoError(t, gdb.Create(&models.Tag{Title: fmt.Sprintf("tag-%02d", i)}).Error)
	}

	page, err := tags.GetPaginatedList(1)
	require.NoError(t, err)
	assert.Len(t, page.Items, ItemsPerPage)
	assert.EqualValues(t, 12, page.TotalCount)

	page, err = tags.GetPaginatedList(2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}
