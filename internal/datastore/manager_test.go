package datastore

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID    int64  `gorm:"primaryKey"`
	Title string `gorm:"size:100"`
}

type widgetSchema struct {
	ID    int64
	Title string
}

func widgetManager(db *gorm.DB) *Manager[widget, widgetSchema] {
	return NewManager(db, Config[widget, widgetSchema]{
		ToSchema: func(m *widget) widgetSchema {
			return widgetSchema{ID: m.ID, Title: m.Title}
		},
		Apply: func(m *widget, s widgetSchema) {
			m.Title = s.Title
		},
		SearchField: "title",
	})
}

// A helper function to create an in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestGetItemAbsent(t *testing.T) {
	m := widgetManager(newTestDB(t))

	got, err := m.GetItem(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddItemPopulatesID(t *testing.T) {
	m := widgetManager(newTestDB(t))

	created, err := m.AddItem(&widget{Title: "Drive unit"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	got, err := m.GetItem(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Drive unit", got.Title)
}

func TestGetItemsWithCondition(t *testing.T) {
	db := newTestDB(t)
	m := widgetManager(db)

	_, err := m.AddItem(&widget{Title: "alpha"})
	require.NoError(t, err)
	_, err = m.AddItem(&widget{Title: "beta"})
	require.NoError(t, err)

	all, err := m.GetItems()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := m.GetItems("title = ?", "beta")
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "beta", some[0].Title)
}

func TestUpdateItem(t *testing.T) {
	m := widgetManager(newTestDB(t))

	created, err := m.AddItem(&widget{Title: "old"})
	require.NoError(t, err)

	updated, err := m.UpdateItem(created.ID, widgetSchema{Title: "new"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new", updated.Title)

	got, err := m.GetItem(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Title)
}

func TestUpdateItemAbsent(t *testing.T) {
	m := widgetManager(newTestDB(t))

	updated, err := m.UpdateItem(42, widgetSchema{Title: "new"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteItem(t *testing.T) {
	m := widgetManager(newTestDB(t))

	created, err := m.AddItem(&widget{Title: "gone soon"})
	require.NoError(t, err)

	assert.True(t, m.DeleteItem(created.ID))
	assert.False(t, m.DeleteItem(created.ID), "second delete should report no row")

	got, err := m.GetItem(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteItems(t *testing.T) {
	m := widgetManager(newTestDB(t))

	assert.False(t, m.DeleteItems(), "empty table has nothing to delete")

	_, err := m.AddItem(&widget{Title: "one"})
	require.NoError(t, err)
	_, err = m.AddItem(&widget{Title: "two"})
	require.NoError(t, err)

	assert.True(t, m.DeleteItems())

	all, err := m.GetItems()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSearchItemsCaseInsensitive(t *testing.T) {
	m := widgetManager(newTestDB(t))

	_, err := m.AddItem(&widget{Title: "Frequency Converter Handbook"})
	require.NoError(t, err)
	_, err = m.AddItem(&widget{Title: "Wiring Diagram"})
	require.NoError(t, err)

	found, err := m.SearchItems("CONVERTER")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Frequency Converter Handbook", found[0].Title)

	found, err = m.SearchItems("nothing here")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearchItemsNotSearchable(t *testing.T) {
	db := newTestDB(t)
	m := NewManager(db, Config[widget, widgetSchema]{
		ToSchema: func(m *widget) widgetSchema { return widgetSchema{ID: m.ID, Title: m.Title} },
		Apply:    func(m *widget, s widgetSchema) { m.Title = s.Title },
	})

	_, err := m.SearchItems("anything")
	assert.ErrorIs(t, err, ErrNotSearchable)
}
