package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karzeg/ztp-project-blog/internal/models"
	"github.com/karzeg/ztp-project-blog/internal/validate"
)

// TagService owns tag titles: it resolves a title to an existing or newly
// created tag and handles the tag CRUD surface.
type TagService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewTagService(db *gorm.DB, logger *zap.Logger) *TagService {
	return &TagService{db: db, logger: logger}
}

func (s *TagService) FindOneByTitle(title string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.Where("title = ?", title).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) FindOneByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// LoadOrCreate resolves a title to its tag, creating the tag on first use.
// The title column carries a unique index, so two concurrent callers racing
// past the lookup cannot both insert; the loser retries as a plain lookup.
func (s *TagService) LoadOrCreate(title string) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("title = ?", title).
			FirstOrCreate(&tag, models.Tag{Title: title}).Error
	})
	if err == nil {
		return &tag, nil
	}

	var found models.Tag
	if lookupErr := s.db.Where("title = ?", title).First(&found).Error; lookupErr == nil {
		return &found, nil
	}
	return nil, err
}

func (s *TagService) Save(tag *models.Tag) error {
	if err := validate.Tag(tag); err != nil {
		return err
	}
	return s.db.Save(tag).Error
}

// Delete removes a tag. Tags are shared reference data, so deletion detaches
// the tag from its posts rather than being blocked by them.
func (s *TagService) Delete(tag *models.Tag) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

func (s *TagService) GetPaginatedList(page int) (Page[models.Tag], error) {
	result := Page[models.Tag]{Page: page, PageSize: ItemsPerPage}

	query := s.db.Model(&models.Tag{})
	if err := query.Count(&result.TotalCount).Error; err != nil {
		return result, err
	}
	err := query.Order("title ASC").Scopes(Paginate(page)).Find(&result.Items).Error
	return result, err
}
