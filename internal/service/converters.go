package service

import (
	"fmt"

	"gorm.io/gorm"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/fixture"
	"aedb-backend/internal/model"
	"aedb-backend/internal/schema"
)

// ConverterService manages the frequency converter inventory hierarchy.
type ConverterService struct {
	db              *gorm.DB
	millShops       *datastore.Manager[model.MillShop, schema.MillShop]
	productionLines *datastore.Manager[model.ProductionLine, schema.ProductionLine]
	locations       *datastore.Manager[model.Location, schema.Location]
	cabinets        *datastore.Manager[model.Cabinet, schema.Cabinet]
	converters      *datastore.Manager[model.Converter, schema.Converter]
	units           *datastore.Manager[model.Unit, schema.Unit]
	fixturesDir     string
}

// NewConverterService creates a ConverterService on the given session.
func NewConverterService(db *gorm.DB, fixturesDir string) *ConverterService {
	return &ConverterService{
		db:              db,
		millShops:       millShopManager(db),
		productionLines: productionLineManager(db),
		locations:       locationManager(db),
		cabinets:        cabinetManager(db),
		converters:      converterManager(db),
		units:           unitManager(db),
		fixturesDir:     fixturesDir,
	}
}

// Converters returns the full converter list.
func (s *ConverterService) Converters() ([]schema.Converter, error) {
	return s.converters.GetItems()
}

// ConvertersPaginated returns one page of the converter list ordered by
// identifier.
func (s *ConverterService) ConvertersPaginated(page, pageSize int) (*schema.ConverterPage, error) {
	var total int64
	if err := s.db.Model(&model.Converter{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count converters: %w", err)
	}

	var recs []model.Converter
	offset := (page - 1) * pageSize
	if err := s.db.Order("id").Offset(offset).Limit(pageSize).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to page converters: %w", err)
	}

	items := make([]schema.Converter, 0, len(recs))
	for i := range recs {
		items = append(items, schema.Converter{
			ID:             recs[i].ID,
			CabinetID:      recs[i].CabinetID,
			Brand:          recs[i].Brand,
			Model:          recs[i].Model,
			NominalCurrent: recs[i].NominalCurrent,
			CurrentType:    recs[i].CurrentType,
			Power:          recs[i].Power,
			InputVoltage:   recs[i].InputVoltage,
			OutputVoltage:  recs[i].OutputVoltage,
		})
	}
	return &schema.ConverterPage{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *ConverterService) DeleteMillShop(id int64) bool       { return s.millShops.DeleteItem(id) }
func (s *ConverterService) DeleteProductionLine(id int64) bool { return s.productionLines.DeleteItem(id) }
func (s *ConverterService) DeleteLocation(id int64) bool       { return s.locations.DeleteItem(id) }
func (s *ConverterService) DeleteCabinet(id int64) bool        { return s.cabinets.DeleteItem(id) }
func (s *ConverterService) DeleteConverter(id int64) bool      { return s.converters.DeleteItem(id) }
func (s *ConverterService) DeleteUnit(id int64) bool           { return s.units.DeleteItem(id) }

// DeleteAll clears every level of the hierarchy, leaves first so foreign
// key constraints hold. Each table reports whether it had rows.
func (s *ConverterService) DeleteAll() map[string]bool {
	return map[string]bool{
		"units":            s.units.DeleteItems(),
		"converters":       s.converters.DeleteItems(),
		"cabinets":         s.cabinets.DeleteItems(),
		"locations":        s.locations.DeleteItems(),
		"production_lines": s.productionLines.DeleteItems(),
		"mill_shops":       s.millShops.DeleteItems(),
	}
}

// Fixture shapes mirror the converters.json tree.

type unitFixture struct {
	Name string `json:"name"`
}

type converterFixture struct {
	Brand          string        `json:"brand"`
	Model          string        `json:"model"`
	NominalCurrent float64       `json:"nominal_current"`
	CurrentType    string        `json:"current_type"`
	Power          float64       `json:"power"`
	InputVoltage   float64       `json:"input_voltage"`
	OutputVoltage  float64       `json:"output_voltage"`
	Units          []unitFixture `json:"units"`
}

type cabinetFixture struct {
	Name       string             `json:"name"`
	Converters []converterFixture `json:"converters"`
}

type locationFixture struct {
	Name     string           `json:"name"`
	Cabinets []cabinetFixture `json:"cabinets"`
}

type productionLineFixture struct {
	Name      string            `json:"name"`
	Locations []locationFixture `json:"locations"`
}

type millShopFixture struct {
	Name            string                  `json:"name"`
	ProductionLines []productionLineFixture `json:"production_lines"`
}

// AddAll seeds the whole six-level hierarchy from the converters.json
// fixture, creating parents before children so generated identifiers can
// be used as foreign keys.
func (s *ConverterService) AddAll() error {
	shops, err := fixture.Load[millShopFixture](s.fixturesDir, "converters.json")
	if err != nil {
		return err
	}

	for _, shop := range shops {
		shopRec := model.MillShop{Name: shop.Name}
		if err := s.db.Create(&shopRec).Error; err != nil {
			return fmt.Errorf("failed to create mill shop %q: %w", shop.Name, err)
		}
		for _, line := range shop.ProductionLines {
			lineRec := model.ProductionLine{Name: line.Name, MillShopID: shopRec.ID}
			if err := s.db.Create(&lineRec).Error; err != nil {
				return fmt.Errorf("failed to create production line %q: %w", line.Name, err)
			}
			for _, loc := range line.Locations {
				locRec := model.Location{Name: loc.Name, ProductionLineID: lineRec.ID}
				if err := s.db.Create(&locRec).Error; err != nil {
					return fmt.Errorf("failed to create location %q: %w", loc.Name, err)
				}
				for _, cab := range loc.Cabinets {
					cabRec := model.Cabinet{Name: cab.Name, LocationID: locRec.ID}
					if err := s.db.Create(&cabRec).Error; err != nil {
						return fmt.Errorf("failed to create cabinet %q: %w", cab.Name, err)
					}
					for _, conv := range cab.Converters {
						convRec := model.Converter{
							CabinetID:      cabRec.ID,
							Brand:          conv.Brand,
							Model:          conv.Model,
							NominalCurrent: conv.NominalCurrent,
							CurrentType:    conv.CurrentType,
							Power:          conv.Power,
							InputVoltage:   conv.InputVoltage,
							OutputVoltage:  conv.OutputVoltage,
						}
						if err := s.db.Create(&convRec).Error; err != nil {
							return fmt.Errorf("failed to create converter %q: %w", conv.Model, err)
						}
						for _, unit := range conv.Units {
							unitRec := model.Unit{Name: unit.Name, ConverterID: convRec.ID}
							if err := s.db.Create(&unitRec).Error; err != nil {
								return fmt.Errorf("failed to create unit %q: %w", unit.Name, err)
							}
						}
					}
				}
			}
		}
	}
	return nil
}
