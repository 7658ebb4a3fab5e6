package service

import (
	"fmt"

	"gorm.io/gorm"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/fixture"
	"aedb-backend/internal/model"
	"aedb-backend/internal/schema"
)

// StorageService manages warehouse locations and the equipment stored in
// them.
type StorageService struct {
	db          *gorm.DB
	locations   *datastore.Manager[model.StorageLocation, schema.StorageLocation]
	equipment   *datastore.Manager[model.Equipment, schema.Equipment]
	fixturesDir string
}

// NewStorageService creates a StorageService on the given session.
func NewStorageService(db *gorm.DB, fixturesDir string) *StorageService {
	return &StorageService{
		db:          db,
		locations:   storageLocationManager(db),
		equipment:   equipmentManager(db),
		fixturesDir: fixturesDir,
	}
}

// NestedLocations returns every storage location with its equipment
// eagerly loaded. Locations without equipment appear with an empty list.
func (s *StorageService) NestedLocations() ([]schema.NestedStorageLocation, error) {
	var recs []model.StorageLocation
	if err := s.db.Preload("Equipment").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to load storage locations: %w", err)
	}

	result := make([]schema.NestedStorageLocation, 0, len(recs))
	for _, loc := range recs {
		equipment := make([]schema.Equipment, 0, len(loc.Equipment))
		for _, eq := range loc.Equipment {
			equipment = append(equipment, schema.Equipment{
				ID:         eq.ID,
				Group:      eq.Group,
				Name:       eq.Name,
				Specs:      eq.Specs,
				Qty:        eq.Qty,
				Install:    eq.Install,
				Number:     eq.Number,
				Notes:      eq.Notes,
				LocationID: eq.LocationID,
			})
		}
		result = append(result, schema.NestedStorageLocation{
			StorageLocation: schema.StorageLocation{
				ID:        loc.ID,
				Name:      loc.Name,
				Place:     loc.Place,
				UsedPlace: loc.UsedPlace,
				NewPlace:  loc.NewPlace,
			},
			Equipment: equipment,
		})
	}
	return result, nil
}

// Equipment returns the flat equipment list.
func (s *StorageService) Equipment() ([]schema.Equipment, error) {
	return s.equipment.GetItems()
}

type equipmentFixture struct {
	Group   string `json:"group"`
	Name    string `json:"name"`
	Specs   string `json:"specs"`
	Qty     int    `json:"qty"`
	Install string `json:"install"`
	Number  string `json:"number"`
	Notes   string `json:"notes"`
}

type storageLocationFixture struct {
	Name      string             `json:"name"`
	Place     string             `json:"place"`
	UsedPlace string             `json:"used_place"`
	NewPlace  string             `json:"new_place"`
	Equipment []equipmentFixture `json:"equipment"`
}

// AddAll seeds storage locations and their equipment from the
// storage.json fixture.
func (s *StorageService) AddAll() error {
	locs, err := fixture.Load[storageLocationFixture](s.fixturesDir, "storage.json")
	if err != nil {
		return err
	}

	for _, loc := range locs {
		locRec := model.StorageLocation{
			Name:      loc.Name,
			Place:     loc.Place,
			UsedPlace: loc.UsedPlace,
			NewPlace:  loc.NewPlace,
		}
		if err := s.db.Create(&locRec).Error; err != nil {
			return fmt.Errorf("failed to create storage location %q: %w", loc.Name, err)
		}
		for _, eq := range loc.Equipment {
			eqRec := model.Equipment{
				Group:      eq.Group,
				Name:       eq.Name,
				Specs:      eq.Specs,
				Qty:        eq.Qty,
				Install:    eq.Install,
				Number:     eq.Number,
				Notes:      eq.Notes,
				LocationID: locRec.ID,
			}
			if err := s.db.Create(&eqRec).Error; err != nil {
				return fmt.Errorf("failed to create equipment %q: %w", eq.Name, err)
			}
		}
	}
	return nil
}
