// Package validate holds the entity constraint checks. Each check returns a
// *validate.Error carrying structured violations so handlers can render them
// field by field instead of a single opaque message.
package validate

import (
	"fmt"
	"strings"

	"github.com/karzeg/ztp-project-blog/internal/models"
)

const (
	CommentMinLength = 3
	CommentMaxLength = 65000

	TagTitleMaxLength      = 45
	CategoryTitleMaxLength = 64
	PostTitleMaxLength     = 255
)

type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type Error struct {
	Violations []Violation `json:"violations"`
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Error) add(field, rule, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Rule: rule, Message: message})
}

func (e *Error) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func Post(p *models.Post) error {
	e := &Error{}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		e.add("title", "required", "title must not be blank")
	} else if len(title) > PostTitleMaxLength {
		e.add("title", "max_length", fmt.Sprintf("title must be at most %d characters", PostTitleMaxLength))
	}
	if strings.TrimSpace(p.Content) == "" {
		e.add("content", "required", "content must not be blank")
	}
	if p.CategoryID == 0 {
		e.add("category", "required", "a post must belong to a category")
	}
	return e.orNil()
}

func Comment(c *models.Comment) error {
	e := &Error{}
	content := strings.TrimSpace(c.Content)
	switch {
	case len(content) < CommentMinLength:
		e.add("content", "min_length", fmt.Sprintf("content must be at least %d characters", CommentMinLength))
	case len(content) > CommentMaxLength:
		e.add("content", "max_length", fmt.Sprintf("content must be at most %d characters", CommentMaxLength))
	}
	if c.PostID == 0 {
		e.add("post", "required", "a comment must belong to a post")
	}
	return e.orNil()
}

func Category(c *models.Category) error {
	e := &Error{}
	title := strings.TrimSpace(c.Title)
	if title == "" {
		e.add("title", "required", "title must not be blank")
	} else if len(title) > CategoryTitleMaxLength {
		e.add("title", "max_length", fmt.Sprintf("title must be at most %d characters", CategoryTitleMaxLength))
	}
	return e.orNil()
}

func Tag(t *models.Tag) error {
	e := &Error{}
	title := strings.TrimSpace(t.Title)
	if title == "" {
		e.add("title", "required", "title must not be blank")
	} else if len(title) > TagTitleMaxLength {
		e.add("title", "max_length", fmt.Sprintf("title must be at most %d characters", TagTitleMaxLength))
	}
	return e.orNil()
}
