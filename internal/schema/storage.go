package schema

// StorageLocation is the transport representation of a warehouse place.
type StorageLocation struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" binding:"required"`
	Place     string `json:"place"`
	UsedPlace string `json:"used_place"`
	NewPlace  string `json:"new_place"`
}

// Equipment is the transport representation of stored equipment.
type Equipment struct {
	ID         int64  `json:"id"`
	Group      string `json:"group" binding:"required"`
	Name       string `json:"name"`
	Specs      string `json:"specs"`
	Qty        int    `json:"qty"`
	Install    string `json:"install"`
	Number     string `json:"number"`
	Notes      string `json:"notes"`
	LocationID int64  `json:"location_id"`
}

// NestedStorageLocation is a location with its equipment materialized.
type NestedStorageLocation struct {
	StorageLocation
	Equipment []Equipment `json:"equipment"`
}
