package service

import (
	"gorm.io/gorm"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/model"
	"aedb-backend/internal/schema"
)

// MenuService serves the navigation menu entries.
type MenuService struct {
	items *datastore.Manager[model.MenuItem, schema.MenuItem]
}

// NewMenuService creates a MenuService on the given session.
func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{items: menuItemManager(db)}
}

func (s *MenuService) MenuItems() ([]schema.MenuItem, error) { return s.items.GetItems() }

func (s *MenuService) AddMenuItem(m schema.MenuItem) (*schema.MenuItem, error) {
	rec := model.MenuItem{Title: m.Title, URL: m.URL}
	return s.items.AddItem(&rec)
}
