package model

// MenuItem represents a navigation menu entry.
type MenuItem struct {
	ID    int64  `gorm:"primaryKey"`
	Title string `gorm:"size:100"`
	URL   string `gorm:"default:#"`
}
