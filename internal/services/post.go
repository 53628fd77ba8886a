package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/karzeg/ztp-project-blog/internal/models"
	"github.com/karzeg/ztp-project-blog/internal/validate"
)

// PostFilters carries the optional listing filters taken from the request.
// A zero ID means no constraint.
type PostFilters struct {
	CategoryID uint
	TagID      uint
}

type PostService struct {
	db         *gorm.DB
	logger     *zap.Logger
	categories *CategoryService
	tags       *TagService
}

func NewPostService(db *gorm.DB, logger *zap.Logger, categories *CategoryService, tags *TagService) *PostService {
	return &PostService{db: db, logger: logger, categories: categories, tags: tags}
}

// applyFilters resolves each supplied filter ID to its entity and adds the
// matching predicate. An ID that does not resolve is silently dropped, so
// filtering degrades to "no constraint" instead of failing the listing.
func (s *PostService) applyFilters(query *gorm.DB, filters PostFilters) (*gorm.DB, error) {
	if filters.CategoryID != 0 {
		category, err := s.categories.FindOneByID(filters.CategoryID)
		switch {
		case err == nil:
			query = query.Where("posts.category_id = ?", category.ID)
		case !errors.Is(err, ErrNotFound):
			return nil, err
		}
	}

	if filters.TagID != 0 {
		tag, err := s.tags.FindOneByID(filters.TagID)
		switch {
		case err == nil:
			query = query.
				Joins("JOIN post_tags ON post_tags.post_id = posts.id").
				Where("post_tags.tag_id = ?", tag.ID)
		case !errors.Is(err, ErrNotFound):
			return nil, err
		}
	}

	return query, nil
}

// GetPaginatedList returns one page of posts, newest first, with the
// unpaginated total. Filters apply conjunctively before pagination and the
// tag join never yields duplicate rows.
func (s *PostService) GetPaginatedList(page int, filters PostFilters) (Page[models.Post], error) {
	result := Page[models.Post]{Page: page, PageSize: ItemsPerPage}

	query, err := s.applyFilters(s.db.Model(&models.Post{}), filters)
	if err != nil {
		return result, err
	}

	if err := query.Session(&gorm.Session{}).Distinct("posts.id").Count(&result.TotalCount).Error; err != nil {
		return result, err
	}

	err = query.Session(&gorm.Session{}).
		Distinct("posts.*").
		Preload("Category").
		Preload("Tags").
		Preload("Author").
		Order("posts.date DESC").
		Scopes(Paginate(page)).
		Find(&result.Items).Error
	return result, err
}

func (s *PostService) FindOneByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.
		Preload("Category").
		Preload("Tags").
		Preload("Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Save inserts or updates a post depending on identity presence and replaces
// its tag set with post.Tags.
func (s *PostService) Save(post *models.Post) error {
	if err := validate.Post(post); err != nil {
		return err
	}
	if post.Date.IsZero() {
		post.Date = time.Now()
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Tags").Replace(post.Tags)
	})
}

// Delete removes a post. Its comments are removed first as an explicit
// separate step, then the tag association rows, then the post itself.
// Tags themselves survive; they are shared reference data.
func (s *PostService) Delete(post *models.Post) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

// DeleteCommentsForPost bulk-deletes every comment belonging to the post.
// Used by the cascading path in Delete and callable on its own.
func (s *PostService) DeleteCommentsForPost(post *models.Post) error {
	return s.db.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error
}
