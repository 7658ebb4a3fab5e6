package model

// User represents an application user. Email is the natural key.
type User struct {
	ID             int64  `gorm:"primaryKey"`
	Email          string `gorm:"uniqueIndex;size:256;not null"`
	Name           string `gorm:"size:256"`
	HashedPassword string `gorm:"column:hashed_password"`

	// Associations
	Posts []Post `gorm:"foreignKey:UserID"`
}
