package services

import (
	"strings"

	"github.com/karzeg/ztp-project-blog/internal/models"
)

// TagsTransformer converts between the free-text comma-separated tag field
// on the post form and tag entities.
type TagsTransformer struct {
	tags *TagService
}

func NewTagsTransformer(tags *TagService) *TagsTransformer {
	return &TagsTransformer{tags: tags}
}

// Transform renders tags back into the editable comma-separated string,
// preserving order.
func (t *TagsTransformer) Transform(tags []models.Tag) string {
	titles := make([]string, 0, len(tags))
	for _, tag := range tags {
		titles = append(titles, tag.Title)
	}
	return strings.Join(titles, ", ")
}

// ReverseTransform resolves a comma-separated tag list into tag entities in
// input order, creating tags for unseen titles. A repeated term yields a
// repeated entry; the post association layer deduplicates on attach. Any
// storage failure aborts the whole transform.
func (t *TagsTransformer) ReverseTransform(value string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, term := range strings.Split(value, ",") {
		title := strings.TrimSpace(term)
		if title == "" {
			continue
		}
		tag, err := t.tags.LoadOrCreate(title)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
