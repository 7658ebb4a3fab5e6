package schema

// MillShop is the transport representation of a mill shop.
type MillShop struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}

// ProductionLine is the transport representation of a production line.
type ProductionLine struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" binding:"required"`
	MillShopID int64  `json:"mill_shop_id"`
}

// Location is the transport representation of a room on a production line.
type Location struct {
	ID               int64  `json:"id"`
	Name             string `json:"name" binding:"required"`
	ProductionLineID int64  `json:"production_line_id"`
}

// Cabinet is the transport representation of an electrical cabinet.
type Cabinet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" binding:"required"`
	LocationID int64  `json:"location_id"`
}

// Converter is the transport representation of a frequency converter.
type Converter struct {
	ID             int64   `json:"id"`
	CabinetID      int64   `json:"cabinet_id"`
	Brand          string  `json:"brand" binding:"required"`
	Model          string  `json:"model" binding:"required"`
	NominalCurrent float64 `json:"nominal_current"`
	CurrentType    string  `json:"current_type"`
	Power          float64 `json:"power"`
	InputVoltage   float64 `json:"input_voltage"`
	OutputVoltage  float64 `json:"output_voltage"`
}

// Unit is the transport representation of an aggregate.
type Unit struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	ConverterID int64  `json:"converter_id"`
}

// ConverterPage is one page of the converter listing.
type ConverterPage struct {
	Items    []Converter `json:"items"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}
