package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model

	Title string `gorm:"size:64;not null"`

	// Relationships
	Posts []Post `gorm:"foreignKey:CategoryID"`
}
