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

func TestGetPaginatedListPages(t *testing.T) {
	gdb, _, _, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		mustPost(t, gdb, fmt.Sprintf("Post %02d", i), category, base.AddDate(0, 0, i))
	}

	page, err := posts.GetPaginatedList(1, PostFilters{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.EqualValues(t, 15, page.TotalCount)

	page, err = posts.GetPaginatedList(2, PostFilters{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.EqualValues(t, 15, page.TotalCount)

	// Beyond the last page: empty, not an error.
	page, err = posts.GetPaginatedList(3, PostFilters{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 15, page.TotalCount)
}

func TestGetPaginatedListOrdersByDateDesc(t *testing.T) {
	gdb, _, _, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mustPost(t, gdb, fmt.Sprintf("Post %d", i), category, base.AddDate(0, 0, i))
	}

	page, err := posts.GetPaginatedList(1, PostFilters{})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)

	for i := 1; i < len(page.Items); i++ {
		assert.False(t, page.Items[i].Date.After(page.Items[i-1].Date),
			"posts must be ordered newest first")
	}
}

func TestFilterByCategory(t *testing.T) {
	gdb, _, _, posts, _ := newServices(t)

	news := mustCategory(t, gdb, "News")
	tutorials := mustCategory(t, gdb, "Tutorials")
	empty := mustCategory(t, gdb, "Empty")

	mustPost(t, gdb, "News 1", news, time.Now())
	mustPost(t, gdb, "News 2", news, time.Now())
	mustPost(t, gdb, "Tutorial 1", tutorials, time.Now())

	page, err := posts.GetPaginatedList(1, PostFilters{CategoryID: news.ID})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.TotalCount)

	// A category without posts yields an empty result, not an error.
	page, err = posts.GetPaginatedList(1, PostFilters{CategoryID: empty.ID})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.TotalCount)
}

// An unresolvable filter ID is dropped, so the listing behaves as if
// unfiltered.
func TestFilterByUnknownIDsIgnored(t *testing.T) {
	gdb, _, _, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	mustPost(t, gdb, "Post 1", category, time.Now())
	mustPost(t, gdb, "Post 2", category, time.Now())

	page, err := posts.GetPaginatedList(1, PostFilters{CategoryID: 9999, TagID: 9999})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.TotalCount)
}

func TestFilterByTag(t *testing.T) {
	gdb, _, tags, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	goTag, err := tags.LoadOrCreate("go")
	require.NoError(t, err)
	webTag, err := tags.LoadOrCreate("web")
	require.NoError(t, err)

	// A post carrying both tags must show up exactly once per tag filter.
	mustPost(t, gdb, "Both", category, time.Now(), *goTag, *webTag)
	mustPost(t, gdb, "Only go", category, time.Now(), *goTag)
	mustPost(t, gdb, "Untagged", category, time.Now())

	page, err := posts.GetPaginatedList(1, PostFilters{TagID: goTag.ID})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.TotalCount)

	page, err = posts.GetPaginatedList(1, PostFilters{TagID: webTag.ID})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Both", page.Items[0].Title)
}

func TestFiltersCombineConjunctively(t *testing.T) {
	gdb, _, tags, posts, _ := newServices(t)

	news := mustCategory(t, gdb, "News")
	tutorials := mustCategory(t, gdb, "Tutorials")
	goTag, err := tags.LoadOrCreate("go")
	require.NoError(t, err)

	mustPost(t, gdb, "News go", news, time.Now(), *goTag)
	mustPost(t, gdb, "Tutorial go", tutorials, time.Now(), *goTag)
	mustPost(t, gdb, "News plain", news, time.Now())

	page, err := posts.GetPaginatedList(1, PostFilters{CategoryID: news.ID, TagID: goTag.ID})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "News go", page.Items[0].Title)
}

func TestSaveRequiresCategory(t *testing.T) {
	_, _, _, posts, _ := newServices(t)

	err := posts.Save(&models.Post{Title: "No category", Content: "body"})

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "category", verr.Violations[0].Field)
}

func TestSaveSetsDateAndReplacesTags(t *testing.T) {
	gdb, _, tags, posts, _ := newServices(t)

	category := mustCategory(t, gdb, "News")
	a, err := tags.LoadOrCreate("a")
	require.NoError(t, err)
	b, err := tags.LoadOrCreate("b")
	require.NoError(t, err)
	c, err := tags.LoadOrCreate("c")
	require.NoError(t, err)

	post := &models.Post{
		Title:      "Tagged",
		Content:    "body",
		CategoryID: category.ID,
		Tags:       []models.Tag{*a, *b},
	}
	require.NoError(t, posts.Save(post))
	assert.False(t, post.Date.IsZero())

	reloaded, err := posts.FindOneByID(post.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Tags, 2)

	// Editing swaps the tag set; the detached tag itself survives.
	reloaded.Tags = []models.Tag{*b, *c}
	require.NoError(t, posts.Save(reloaded))

	reloaded, err = posts.FindOneByID(post.ID)
	require.NoError(t, err)
	titles := make([]string, 0, len(reloaded.Tags))
	for _, tag := range reloaded.Tags {
		titles = append(titles, tag.Title)
	}
	assert.ElementsMatch(t, []string{"b", "c"}, titles)

	_, err = tags.FindOneByTitle("a")
	assert.NoError(t, err)
}

func TestDeleteCascadesComments(t *testing.T) {
	gdb, _, _, posts, comments := newServices(t)

	category := mustCategory(t, gdb, "News")
	post := mustPost(t, gdb, "Commented", category, time.Now())
	other := mustPost(t, gdb, "Untouched", category, time.Now())

	for i := 0; i < 3; i++ {
		require.NoError(t, comments.Save(&models.Comment{
			Content: fmt.Sprintf("comment %d", i),
			PostID:  post.ID,
		}))
	}
	require.NoError(t, comments.Save(&models.Comment{Content: "keep me", PostID: other.ID}))

	var postCount, commentCount int64
	require.NoError(t, gdb.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, gdb.Model(&models.Comment{}).Count(&commentCount).Error)
	require.EqualValues(t, 2, postCount)
	require.EqualValues(t, 4, commentCount)

	require.NoError(t, posts.Delete(post))

	require.NoError(t, gdb.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, gdb.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.EqualValues(t, 1, postCount)
	assert.EqualValues(t, 1, commentCount)

	remaining, err := comments.ListForPost(other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteCommentsForPostStandalone(t *testing.T) {
	gdb, _, _, posts, comments := newServices(t)

	category := mustCategory(t, gdb, "News")
	post := mustPost(t, gdb, "Commented", category, time.Now())

	require.NoError(t, comments.Save(&models.Comment{Content: "first", PostID: post.ID}))
	require.NoError(t, comments.Save(&models.Comment{Content: "second", PostID: post.ID}))

	require.NoError(t, posts.DeleteCommentsForPost(post))

	listed, err := comments.ListForPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The post itself is untouched.
	_, err = posts.FindOneByID(post.ID)
	assert.NoError(t, err)
}

func TestFindOneByIDNotFoundPost(t *testing.T) {
	_, _, _, posts, _ := newServices(t)

	_, err := posts.FindOneByID(123)
	assert.ErrorIs(t, err, ErrNotFound)
}
