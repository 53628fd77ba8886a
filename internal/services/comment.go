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

type CommentService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCommentService(db *gorm.DB, logger *zap.Logger) *CommentService {
	return &CommentService{db: db, logger: logger}
}

func (s *CommentService) FindOneByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("Post").Preload("Author").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Save inserts or updates a comment. The date is set server-side on first
// save when the caller left it zero.
func (s *CommentService) Save(comment *models.Comment) error {
	if err := validate.Comment(comment); err != nil {
		return err
	}
	if comment.Date.IsZero() {
		comment.Date = time.Now()
	}
	return s.db.Omit(clause.Associations).Save(comment).Error
}

func (s *CommentService) Delete(comment *models.Comment) error {
	return s.db.Delete(comment).Error
}

// ListForPost returns every comment of the post, oldest first.
func (s *CommentService) ListForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("date ASC").
		Find(&comments).Error
	return comments, err
}
