package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model

	Content  string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"not null"`
	PostID   uint      `gorm:"not null;index"`
	AuthorID *uint     `gorm:"index"`

	// Relationships
	Post   Post  `gorm:"foreignKey:PostID"`
	Author *User `gorm:"foreignKey:AuthorID"`
}
