package service

import (
	"gorm.io/gorm"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/model"
	"aedb-backend/internal/schema"
)

// Per-entity data manager constructors. Each binds a persistence model to
// its transport schema and names the column searched by the search
// endpoints. SearchField refers to database columns, not struct fields.

func manualManager(db *gorm.DB) *datastore.Manager[model.Manual, schema.Manual] {
	return datastore.NewManager(db, datastore.Config[model.Manual, schema.Manual]{
		ToSchema: func(m *model.Manual) schema.Manual {
			return schema.Manual{
				ID:            m.ID,
				Title:         m.Title,
				FileURL:       m.FileURL,
				CoverImageURL: m.CoverImageURL,
				CategoryID:    m.CategoryID,
				GroupID:       m.GroupID,
			}
		},
		Apply: func(m *model.Manual, s schema.Manual) {
			m.Title = s.Title
			m.FileURL = s.FileURL
			m.CoverImageURL = s.CoverImageURL
			m.CategoryID = s.CategoryID
			m.GroupID = s.GroupID
		},
		SearchField: "title",
	})
}

func groupManager(db *gorm.DB) *datastore.Manager[model.Group, schema.Group] {
	return datastore.NewManager(db, datastore.Config[model.Group, schema.Group]{
		ToSchema: func(m *model.Group) schema.Group {
			return schema.Group{ID: m.ID, Name: m.Name, CategoryID: m.CategoryID}
		},
		Apply: func(m *model.Group, s schema.Group) {
			m.Name = s.Name
			m.CategoryID = s.CategoryID
		},
		SearchField: "group_name",
	})
}

func categoryManager(db *gorm.DB) *datastore.Manager[model.Category, schema.Category] {
	return datastore.NewManager(db, datastore.Config[model.Category, schema.Category]{
		ToSchema: func(m *model.Category) schema.Category {
			return schema.Category{ID: m.ID, Name: m.Name, LogoURL: m.LogoURL}
		},
		Apply: func(m *model.Category, s schema.Category) {
			m.Name = s.Name
			m.LogoURL = s.LogoURL
		},
		SearchField: "category_name",
	})
}

func millShopManager(db *gorm.DB) *datastore.Manager[model.MillShop, schema.MillShop] {
	return datastore.NewManager(db, datastore.Config[model.MillShop, schema.MillShop]{
		ToSchema: func(m *model.MillShop) schema.MillShop {
			return schema.MillShop{ID: m.ID, Name: m.Name}
		},
		Apply: func(m *model.MillShop, s schema.MillShop) {
			m.Name = s.Name
		},
		SearchField: "name",
	})
}

func productionLineManager(db *gorm.DB) *datastore.Manager[model.ProductionLine, schema.ProductionLine] {
	return datastore.NewManager(db, datastore.Config[model.ProductionLine, schema.ProductionLine]{
		ToSchema: func(m *model.ProductionLine) schema.ProductionLine {
			return schema.ProductionLine{ID: m.ID, Name: m.Name, MillShopID: m.MillShopID}
		},
		Apply: func(m *model.ProductionLine, s schema.ProductionLine) {
			m.Name = s.Name
			m.MillShopID = s.MillShopID
		},
		SearchField: "name",
	})
}

func locationManager(db *gorm.DB) *datastore.Manager[model.Location, schema.Location] {
	return datastore.NewManager(db, datastore.Config[model.Location, schema.Location]{
		ToSchema: func(m *model.Location) schema.Location {
			return schema.Location{ID: m.ID, Name: m.Name, ProductionLineID: m.ProductionLineID}
		},
		Apply: func(m *model.Location, s schema.Location) {
			m.Name = s.Name
			m.ProductionLineID = s.ProductionLineID
		},
		SearchField: "name",
	})
}

func cabinetManager(db *gorm.DB) *datastore.Manager[model.Cabinet, schema.Cabinet] {
	return datastore.NewManager(db, datastore.Config[model.Cabinet, schema.Cabinet]{
		ToSchema: func(m *model.Cabinet) schema.Cabinet {
			return schema.Cabinet{ID: m.ID, Name: m.Name, LocationID: m.LocationID}
		},
		Apply: func(m *model.Cabinet, s schema.Cabinet) {
			m.Name = s.Name
			m.LocationID = s.LocationID
		},
		SearchField: "name",
	})
}

func converterManager(db *gorm.DB) *datastore.Manager[model.Converter, schema.Converter] {
	return datastore.NewManager(db, datastore.Config[model.Converter, schema.Converter]{
		ToSchema: func(m *model.Converter) schema.Converter {
			return schema.Converter{
				ID:             m.ID,
				CabinetID:      m.CabinetID,
				Brand:          m.Brand,
				Model:          m.Model,
				NominalCurrent: m.NominalCurrent,
				CurrentType:    m.CurrentType,
				Power:          m.Power,
				InputVoltage:   m.InputVoltage,
				OutputVoltage:  m.OutputVoltage,
			}
		},
		Apply: func(m *model.Converter, s schema.Converter) {
			m.CabinetID = s.CabinetID
			m.Brand = s.Brand
			m.Model = s.Model
			m.NominalCurrent = s.NominalCurrent
			m.CurrentType = s.CurrentType
			m.Power = s.Power
			m.InputVoltage = s.InputVoltage
			m.OutputVoltage = s.OutputVoltage
		},
		// Converters have neither a title nor a name attribute.
		SearchField: "",
	})
}

func unitManager(db *gorm.DB) *datastore.Manager[model.Unit, schema.Unit] {
	return datastore.NewManager(db, datastore.Config[model.Unit, schema.Unit]{
		ToSchema: func(m *model.Unit) schema.Unit {
			return schema.Unit{ID: m.ID, Name: m.Name, ConverterID: m.ConverterID}
		},
		Apply: func(m *model.Unit, s schema.Unit) {
			m.Name = s.Name
			m.ConverterID = s.ConverterID
		},
		SearchField: "name",
	})
}

func postManager(db *gorm.DB) *datastore.Manager[model.Post, schema.Post] {
	return datastore.NewManager(db, datastore.Config[model.Post, schema.Post]{
		ToSchema: func(m *model.Post) schema.Post {
			return schema.Post{
				ID:          m.ID,
				UserID:      m.UserID,
				Title:       m.Title,
				Content:     m.Content,
				Description: m.Description,
				CreatedAt:   m.CreatedAt,
				UpdatedAt:   m.UpdatedAt,
			}
		},
		Apply: func(m *model.Post, s schema.Post) {
			m.UserID = s.UserID
			m.Title = s.Title
			m.Content = s.Content
			m.Description = s.Description
		},
		SearchField: "title",
	})
}

func menuItemManager(db *gorm.DB) *datastore.Manager[model.MenuItem, schema.MenuItem] {
	return datastore.NewManager(db, datastore.Config[model.MenuItem, schema.MenuItem]{
		ToSchema: func(m *model.MenuItem) schema.MenuItem {
			return schema.MenuItem{ID: m.ID, Title: m.Title, URL: m.URL}
		},
		Apply: func(m *model.MenuItem, s schema.MenuItem) {
			m.Title = s.Title
			m.URL = s.URL
		},
		SearchField: "title",
	})
}

func storageLocationManager(db *gorm.DB) *datastore.Manager[model.StorageLocation, schema.StorageLocation] {
	return datastore.NewManager(db, datastore.Config[model.StorageLocation, schema.StorageLocation]{
		ToSchema: func(m *model.StorageLocation) schema.StorageLocation {
			return schema.StorageLocation{
				ID:        m.ID,
				Name:      m.Name,
				Place:     m.Place,
				UsedPlace: m.UsedPlace,
				NewPlace:  m.NewPlace,
			}
		},
		Apply: func(m *model.StorageLocation, s schema.StorageLocation) {
			m.Name = s.Name
			m.Place = s.Place
			m.UsedPlace = s.UsedPlace
			m.NewPlace = s.NewPlace
		},
		SearchField: "name",
	})
}

func equipmentManager(db *gorm.DB) *datastore.Manager[model.Equipment, schema.Equipment] {
	return datastore.NewManager(db, datastore.Config[model.Equipment, schema.Equipment]{
		ToSchema: func(m *model.Equipment) schema.Equipment {
			return schema.Equipment{
				ID:         m.ID,
				Group:      m.Group,
				Name:       m.Name,
				Specs:      m.Specs,
				Qty:        m.Qty,
				Install:    m.Install,
				Number:     m.Number,
				Notes:      m.Notes,
				LocationID: m.LocationID,
			}
		},
		Apply: func(m *model.Equipment, s schema.Equipment) {
			m.Group = s.Group
			m.Name = s.Name
			m.Specs = s.Specs
			m.Qty = s.Qty
			m.Install = s.Install
			m.Number = s.Number
			m.Notes = s.Notes
			m.LocationID = s.LocationID
		},
		SearchField: "name",
	})
}
