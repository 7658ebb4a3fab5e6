package model

import "time"

// StorageLocation represents a warehouse storage place.
type StorageLocation struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Place     string
	UsedPlace string `gorm:"column:used_place"`
	NewPlace  string `gorm:"column:new_place"`

	// Associations
	Equipment []Equipment `gorm:"foreignKey:LocationID"`
}

// Equipment represents stored equipment at a location.
type Equipment struct {
	ID         int64  `gorm:"primaryKey"`
	Group      string `gorm:"column:equipment_group;not null"`
	Name       string
	Specs      string
	Qty        int
	Install    string
	Number     string
	Notes      string
	LocationID int64 `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName keeps the table singular; the default pluralizer mangles it.
func (Equipment) TableName() string { return "equipment" }
