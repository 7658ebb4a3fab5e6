package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"gorm.io/gorm"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/fixture"
	"aedb-backend/internal/model"
	"aedb-backend/internal/pdfcover"
	"aedb-backend/internal/schema"
)

// ObjectStore is the subset of the object store client needed for uploads.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// ManualService manages the manuals catalog: categories, groups and the
// manuals themselves, plus file uploads and fixture seeding.
type ManualService struct {
	db          *gorm.DB
	manuals     *datastore.Manager[model.Manual, schema.Manual]
	groups      *datastore.Manager[model.Group, schema.Group]
	categories  *datastore.Manager[model.Category, schema.Category]
	store       ObjectStore
	covers      pdfcover.Extractor
	fixturesDir string
	mediaBase   string
}

// NewManualService creates a ManualService on the given session.
func NewManualService(db *gorm.DB, store ObjectStore, covers pdfcover.Extractor, fixturesDir, mediaBase string) *ManualService {
	return &ManualService{
		db:          db,
		manuals:     manualManager(db),
		groups:      groupManager(db),
		categories:  categoryManager(db),
		store:       store,
		covers:      covers,
		fixturesDir: fixturesDir,
		mediaBase:   mediaBase,
	}
}

func (s *ManualService) Manuals() ([]schema.Manual, error)    { return s.manuals.GetItems() }
func (s *ManualService) Groups() ([]schema.Group, error)      { return s.groups.GetItems() }
func (s *ManualService) Categories() ([]schema.Category, error) {
	return s.categories.GetItems()
}

// GroupsByCategory returns the groups belonging to one category.
func (s *ManualService) GroupsByCategory(categoryID int64) ([]schema.Group, error) {
	return s.groups.GetItems("category_id = ?", categoryID)
}

func (s *ManualService) SearchManuals(q string) ([]schema.Manual, error) {
	return s.manuals.SearchItems(q)
}

func (s *ManualService) SearchGroups(q string) ([]schema.Group, error) {
	return s.groups.SearchItems(q)
}

func (s *ManualService) SearchCategories(q string) ([]schema.Category, error) {
	return s.categories.SearchItems(q)
}

// NestedManuals assembles the full category -> group -> manual tree with a
// single eager-loaded query. Categories without groups appear with an
// empty group list.
func (s *ManualService) NestedManuals() ([]schema.NestedCategory, error) {
	var cats []model.Category
	if err := s.db.Preload("Groups.Manuals").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to load nested categories: %w", err)
	}

	result := make([]schema.NestedCategory, 0, len(cats))
	for _, cat := range cats {
		groups := make([]schema.NestedGroup, 0, len(cat.Groups))
		for _, grp := range cat.Groups {
			manuals := make([]schema.NestedManual, 0, len(grp.Manuals))
			for _, man := range grp.Manuals {
				manuals = append(manuals, schema.NestedManual{
					ID:      man.ID,
					Title:   man.Title,
					FileURL: man.FileURL,
					GroupID: man.GroupID,
				})
			}
			groups = append(groups, schema.NestedGroup{
				ID:      grp.ID,
				Name:    grp.Name,
				Manuals: manuals,
			})
		}
		result = append(result, schema.NestedCategory{
			ID:      cat.ID,
			Name:    cat.Name,
			LogoURL: cat.LogoURL,
			Groups:  groups,
		})
	}
	return result, nil
}

// AddManual inserts a manual. When no cover image URL is supplied it is
// derived from the file URL.
func (s *ManualService) AddManual(m schema.Manual) (*schema.Manual, error) {
	cover := m.CoverImageURL
	if cover == "" && m.FileURL != "" {
		cover = s.CoverURL(m.FileURL)
	}
	rec := model.Manual{
		Title:         m.Title,
		FileURL:       m.FileURL,
		CoverImageURL: cover,
		CategoryID:    m.CategoryID,
		GroupID:       m.GroupID,
	}
	return s.manuals.AddItem(&rec)
}

func (s *ManualService) AddGroup(g schema.Group) (*schema.Group, error) {
	rec := model.Group{Name: g.Name, CategoryID: g.CategoryID}
	return s.groups.AddItem(&rec)
}

func (s *ManualService) AddCategory(c schema.Category) (*schema.Category, error) {
	rec := model.Category{Name: c.Name, LogoURL: c.LogoURL}
	return s.categories.AddItem(&rec)
}

func (s *ManualService) UpdateManual(id int64, m schema.Manual) (*schema.Manual, error) {
	return s.manuals.UpdateItem(id, m)
}

func (s *ManualService) UpdateGroup(id int64, g schema.Group) (*schema.Group, error) {
	return s.groups.UpdateItem(id, g)
}

func (s *ManualService) UpdateCategory(id int64, c schema.Category) (*schema.Category, error) {
	return s.categories.UpdateItem(id, c)
}

func (s *ManualService) DeleteManual(id int64) bool   { return s.manuals.DeleteItem(id) }
func (s *ManualService) DeleteManuals() bool          { return s.manuals.DeleteItems() }
func (s *ManualService) DeleteGroup(id int64) bool    { return s.groups.DeleteItem(id) }
func (s *ManualService) DeleteGroups() bool           { return s.groups.DeleteItems() }
func (s *ManualService) DeleteCategory(id int64) bool { return s.categories.DeleteItem(id) }
func (s *ManualService) DeleteCategories() bool       { return s.categories.DeleteItems() }

// AddAllManuals seeds the manuals table from the manuals.json fixture.
func (s *ManualService) AddAllManuals() error {
	items, err := fixture.Load[schema.Manual](s.fixturesDir, "manuals.json")
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := s.AddManual(item); err != nil {
			return err
		}
	}
	return nil
}

// AddAllGroups seeds the groups table from the groups.json fixture.
func (s *ManualService) AddAllGroups() error {
	items, err := fixture.Load[schema.Group](s.fixturesDir, "groups.json")
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := s.AddGroup(item); err != nil {
			return err
		}
	}
	return nil
}

// AddAllCategories seeds the categories table from the categories.json fixture.
func (s *ManualService) AddAllCategories() error {
	items, err := fixture.Load[schema.Category](s.fixturesDir, "categories.json")
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := s.AddCategory(item); err != nil {
			return err
		}
	}
	return nil
}

// UploadManual stores a PDF in the object store, extracts its first page
// as a PNG cover and stores that alongside it.
func (s *ManualService) UploadManual(ctx context.Context, filename string, r io.Reader) (*schema.UploadedManual, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	fileURL, err := s.store.Put(ctx, "manuals/"+filename, bytes.NewReader(data), int64(len(data)), "application/pdf")
	if err != nil {
		return nil, err
	}

	cover, err := s.covers.CoverPNG(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to extract cover: %w", err)
	}

	coverKey := "covers/" + strings.TrimSuffix(filename, path.Ext(filename)) + ".png"
	coverURL, err := s.store.Put(ctx, coverKey, bytes.NewReader(cover), int64(len(cover)), "image/png")
	if err != nil {
		return nil, err
	}

	return &schema.UploadedManual{FileURL: fileURL, CoverImageURL: coverURL}, nil
}

// CoverURL derives the cover image URL for a manual file: the file's base
// name with its extension replaced by .png, served from the media base.
func (s *ManualService) CoverURL(fileURL string) string {
	base := path.Base(fileURL)
	name := strings.TrimSuffix(base, path.Ext(base))
	return s.mediaBase + "/" + name + ".png"
}
