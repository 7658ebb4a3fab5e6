package model

// Category represents a manual category.
type Category struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"column:category_name;size:100;not null"`
	LogoURL string `gorm:"column:logo_url"`

	// Associations
	Groups []Group `gorm:"foreignKey:CategoryID"`
}

// Group represents a group of manuals within a category.
type Group struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"column:group_name;size:100;not null"`
	CategoryID int64  `gorm:"index;not null"`

	// Associations
	Manuals []Manual `gorm:"foreignKey:GroupID"`
}

// Manual represents an equipment manual document.
type Manual struct {
	ID            int64  `gorm:"primaryKey"`
	Title         string `gorm:"size:200;not null"`
	FileURL       string `gorm:"column:file_url"`
	CoverImageURL string `gorm:"column:cover_image_url"`
	CategoryID    int64  `gorm:"index"`
	GroupID       int64  `gorm:"index"`
}
