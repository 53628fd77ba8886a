package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	gorm.Model

	Title      string    `gorm:"size:255;not null"`
	Content    string    `gorm:"type:text"`
	Date       time.Time `gorm:"not null;index"`
	CategoryID uint      `gorm:"not null;index"`
	AuthorID   *uint     `gorm:"index"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID"`
	Author   *User    `gorm:"foreignKey:AuthorID"`
	Tags     []Tag    `gorm:"many2many:post_tags;"`
}
