package models

import "gorm.io/gorm"

type Tag struct {
	gorm.Model

	Title string `gorm:"size:45;uniqueIndex;not null"`

	// Relationships
	Posts []Post `gorm:"many2many:post_tags;"`
}
