package model

import "time"

// Post represents a blog-style post authored by a user.
type Post struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"index;not null"`
	Title       string `gorm:"size:100"`
	Content     string `gorm:"type:text"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
