package model

// The converter inventory is a six-level hierarchy:
// mill shop -> production line -> location -> cabinet -> converter -> unit.
// Rows at every level are deleted independently by identifier; cascades, if
// any, live in the database schema.

// MillShop represents a mill shop.
type MillShop struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	ProductionLines []ProductionLine `gorm:"foreignKey:MillShopID"`
}

// ProductionLine represents a production line inside a mill shop.
type ProductionLine struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	MillShopID int64  `gorm:"index;not null"`

	Locations []Location `gorm:"foreignKey:ProductionLineID"`
}

// Location represents a room on a production line.
type Location struct {
	ID               int64  `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	ProductionLineID int64  `gorm:"index;not null"`

	Cabinets []Cabinet `gorm:"foreignKey:LocationID"`
}

// Cabinet represents an electrical cabinet in a location.
type Cabinet struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	LocationID int64  `gorm:"index;not null"`

	Converters []Converter `gorm:"foreignKey:CabinetID"`
}

// Converter represents a frequency converter installed in a cabinet.
type Converter struct {
	ID             int64   `gorm:"primaryKey"`
	CabinetID      int64   `gorm:"index;not null"`
	Brand          string  `gorm:"not null"`
	Model          string  `gorm:"not null"`
	NominalCurrent float64 `gorm:"column:nominal_current"`
	CurrentType    string  `gorm:"column:current_type"`
	Power          float64
	InputVoltage   float64 `gorm:"column:input_voltage"`
	OutputVoltage  float64 `gorm:"column:output_voltage"`

	Units []Unit `gorm:"foreignKey:ConverterID"`
}

// Unit represents an aggregate driven by a converter.
type Unit struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	ConverterID int64  `gorm:"index;not null"`
}
