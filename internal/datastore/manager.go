// Package datastore implements the request-scoped session lifecycle and a
// generic CRUD manager reused by every entity type.
package datastore

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

// ErrNotSearchable is returned by SearchItems when the entity config does
// not name a searchable column.
var ErrNotSearchable = errors.New("entity has no searchable field")

// Config wires a persistence model M to its transport schema S.
type Config[M, S any] struct {
	// ToSchema converts a persisted record to its transport representation.
	ToSchema func(*M) S
	// Apply copies every non-identifier field of the schema onto the record.
	Apply func(*M, S)
	// SearchField is the column matched by SearchItems ("title" or "name"
	// by convention). Empty means the entity is not searchable.
	SearchField string
}

// Manager provides uniform CRUD semantics for one (model, schema) pair.
// All operations run on the session it was created with, normally the
// per-request transaction from Session.
type Manager[M, S any] struct {
	db  *gorm.DB
	cfg Config[M, S]
}

// NewManager creates a Manager bound to the given session.
func NewManager[M, S any](db *gorm.DB, cfg Config[M, S]) *Manager[M, S] {
	return &Manager[M, S]{db: db, cfg: cfg}
}

// GetItem returns the record with the given identifier, or nil if none
// exists. Absence is not an error.
func (m *Manager[M, S]) GetItem(id int64) (*S, error) {
	var rec M
	err := m.db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	s := m.cfg.ToSchema(&rec)
	return &s, nil
}

// GetItems returns all matching records in default result order. The
// optional conds are a gorm condition ("col = ?", v).
func (m *Manager[M, S]) GetItems(conds ...any) ([]S, error) {
	var recs []M
	q := m.db
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	out := make([]S, 0, len(recs))
	for i := range recs {
		out = append(out, m.cfg.ToSchema(&recs[i]))
	}
	return out, nil
}

// SearchItems returns records whose search field contains q,
// case-insensitively. Minimum query length is a boundary concern and is not
// enforced here.
func (m *Manager[M, S]) SearchItems(q string) ([]S, error) {
	if m.cfg.SearchField == "" {
		return nil, ErrNotSearchable
	}
	pattern := "%" + strings.ToLower(q) + "%"
	return m.GetItems(fmt.Sprintf("lower(%s) LIKE ?", m.cfg.SearchField), pattern)
}

// AddItem inserts the record and returns its transport representation with
// the generated identifier populated.
func (m *Manager[M, S]) AddItem(rec *M) (*S, error) {
	if err := m.db.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	s := m.cfg.ToSchema(rec)
	return &s, nil
}

// UpdateItem replaces every non-identifier field of the record with the
// given identifier. A missing record yields (nil, nil), never an error;
// callers must treat nil as not found.
func (m *Manager[M, S]) UpdateItem(id int64, updated S) (*S, error) {
	var rec M
	err := m.db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load item %d for update: %w", id, err)
	}
	m.cfg.Apply(&rec, updated)
	if err := m.db.Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to update item %d: %w", id, err)
	}
	s := m.cfg.ToSchema(&rec)
	return &s, nil
}

// DeleteItem deletes at most one record by primary key and reports whether
// a row was removed. Deletes are best-effort: a storage error rolls the
// statement back and yields false instead of propagating.
func (m *Manager[M, S]) DeleteItem(id int64) bool {
	var deleted bool
	err := m.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(new(M), id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		log.Printf("delete item %d failed: %v", id, err)
		return false
	}
	return deleted
}

// DeleteItems deletes all records of the entity type and reports whether
// any row was removed. Same best-effort contract as DeleteItem.
func (m *Manager[M, S]) DeleteItems() bool {
	var deleted bool
	err := m.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(M))
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		log.Printf("delete all failed: %v", err)
		return false
	}
	return deleted
}
