package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karzeg/ztp-project-blog/internal/models"
	"github.com/karzeg/ztp-project-blog/internal/validate"
)

type CategoryService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCategoryService(db *gorm.DB, logger *zap.Logger) *CategoryService {
	return &CategoryService{db: db, logger: logger}
}

func (s *CategoryService) FindOneByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Save(category *models.Category) error {
	if err := validate.Category(category); err != nil {
		return err
	}
	return s.db.Save(category).Error
}

// CountByCategory counts the posts referencing the category.
func (s *CategoryService) CountByCategory(category *models.Category) (int64, error) {
	var count int64
	err := s.db.Model(&models.Post{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error
	return count, err
}

// Delete refuses to remove a category that posts still reference; every post
// must belong to a category, so the delete is blocked rather than cascaded.
func (s *CategoryService) Delete(category *models.Category) error {
	count, err := s.CountByCategory(category)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.db.Delete(category).Error
}

// GetPaginatedList returns one page of categories, optionally narrowed to
// titles containing the search term.
func (s *CategoryService) GetPaginatedList(page int, search string) (Page[models.Category], error) {
	result := Page[models.Category]{Page: page, PageSize: ItemsPerPage}

	query := s.db.Model(&models.Category{})
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&result.TotalCount).Error; err != nil {
		return result, err
	}
	err := query.Order("title ASC").Scopes(Paginate(page)).Find(&result.Items).Error
	return result, err
}
