package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karzeg/ztp-project-blog/internal/models"
)

func violations(t *testing.T, err error) []Violation {
	t.Helper()

	var verr *Error
	require.ErrorAs(t, err, &verr)
	return verr.Violations
}

func TestPostValidation(t *testing.T) {
	assert.NoError(t, Post(&models.Post{Title: "Hello", Content: "body", CategoryID: 1}))

	vs := violations(t, Post(&models.Post{}))
	fields := make([]string, 0, len(vs))
	for _, v := range vs {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"title", "content", "category"}, fields)

	vs = violations(t, Post(&models.Post{
		Title:      strings.Repeat("t", PostTitleMaxLength+1),
		Content:    "body",
		CategoryID: 1,
	}))
	require.Len(t, vs, 1)
	assert.Equal(t, "max_length", vs[0].Rule)
}

func TestCommentValidation(t *testing.T) {
	assert.NoError(t, Comment(&models.Comment{Content: "abc", PostID: 1}))

	vs := violations(t, Comment(&models.Comment{Content: "ab", PostID: 1}))
	require.Len(t, vs, 1)
	assert.Equal(t, "min_length", vs[0].Rule)

	// Whitespace does not count toward the minimum.
	vs = violations(t, Comment(&models.Comment{Content: "  a  ", PostID: 1}))
	require.Len(t, vs, 1)
	assert.Equal(t, "min_length", vs[0].Rule)

	vs = violations(t, Comment(&models.Comment{
		Content: strings.Repeat("x", CommentMaxLength+1),
		PostID:  1,
	}))
	require.Len(t, vs, 1)
	assert.Equal(t, "max_length", vs[0].Rule)

	vs = violations(t, Comment(&models.Comment{Content: "abc"}))
	require.Len(t, vs, 1)
	assert.Equal(t, "post", vs[0].Field)
}

func TestTagAndCategoryTitles(t *testing.T) {
	assert.NoError(t, Tag(&models.Tag{Title: "go"}))
	assert.Error(t, Tag(&models.Tag{Title: " "}))
	assert.Error(t, Tag(&models.Tag{Title: strings.Repeat("t", TagTitleMaxLength+1)}))

	assert.NoError(t, Category(&models.Category{Title: "News"}))
	assert.Error(t, Category(&models.Category{Title: ""}))
	assert.Error(t, Category(&models.Category{Title: strings.Repeat("c", CategoryTitleMaxLength+1)}))
}

func TestErrorMessage(t *testing.T) {
	err := Comment(&models.Comment{Content: "ab", PostID: 1})
	assert.Contains(t, err.Error(), "content")
}
