package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aedb-backend/internal/schema"
)

func newManualService(t *testing.T, fixturesDir string) (*ManualService, *gorm.DB) {
	gormDB := newTestDB(t)
	return NewManualService(gormDB, nil, nil, fixturesDir, "/media"), gormDB
}

func TestCoverURL(t *testing.T) {
	svc, _ := newManualService(t, "")

	assert.Equal(t, "/media/washer.png", svc.CoverURL("https://storage.example.com/manuals/washer.pdf"))
	assert.Equal(t, "/media/manual.png", svc.CoverURL("manual.pdf"))
	assert.Equal(t, "/media/noext.png", svc.CoverURL("/files/noext"))
}

func TestAddManualDerivesCover(t *testing.T) {
	svc, _ := newManualService(t, "")

	created, err := svc.AddManual(schema.Manual{
		Title:   "Washer service manual",
		FileURL: "https://storage.example.com/manuals/washer.pdf",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "/media/washer.png", created.CoverImageURL)
}

func TestAddManualKeepsExplicitCover(t *testing.T) {
	svc, _ := newManualService(t, "")

	created, err := svc.AddManual(schema.Manual{
		Title:         "Washer service manual",
		FileURL:       "https://storage.example.com/manuals/washer.pdf",
		CoverImageURL: "https://cdn.example.com/custom.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/custom.png", created.CoverImageURL)
}

func TestGroupsByCategory(t *testing.T) {
	svc, _ := newManualService(t, "")

	catA, err := svc.AddCategory(schema.Category{Name: "Washers"})
	require.NoError(t, err)
	catB, err := svc.AddCategory(schema.Category{Name: "Dryers"})
	require.NoError(t, err)

	_, err = svc.AddGroup(schema.Group{Name: "Front loaders", CategoryID: catA.ID})
	require.NoError(t, err)
	_, err = svc.AddGroup(schema.Group{Name: "Top loaders", CategoryID: catA.ID})
	require.NoError(t, err)
	_, err = svc.AddGroup(schema.Group{Name: "Condensers", CategoryID: catB.ID})
	require.NoError(t, err)

	groups, err := svc.GroupsByCategory(catA.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	all, err := svc.Groups()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNestedManuals(t *testing.T) {
	svc, _ := newManualService(t, "")

	cat, err := svc.AddCategory(schema.Category{Name: "Washers", LogoURL: "/logos/washers.png"})
	require.NoError(t, err)
	_, err = svc.AddCategory(schema.Category{Name: "Spare parts"})
	require.NoError(t, err)

	grp, err := svc.AddGroup(schema.Group{Name: "Front loaders", CategoryID: cat.ID})
	require.NoError(t, err)

	_, err = svc.AddManual(schema.Manual{
		Title:      "WX-500 manual",
		FileURL:    "/files/wx500.pdf",
		CategoryID: cat.ID,
		GroupID:    grp.ID,
	})
	require.NoError(t, err)

	tree, err := svc.NestedManuals()
	require.NoError(t, err)
	require.Len(t, tree, 2)

	byName := map[string]schema.NestedCategory{}
	for _, c := range tree {
		byName[c.Name] = c
	}

	washers := byName["Washers"]
	require.Len(t, washers.Groups, 1)
	assert.Equal(t, "Front loaders", washers.Groups[0].Name)
	require.Len(t, washers.Groups[0].Manuals, 1)
	assert.Equal(t, "WX-500 manual", washers.Groups[0].Manuals[0].Title)

	spare := byName["Spare parts"]
	require.NotNil(t, spare.Groups, "categories without groups carry an empty list, not null")
	assert.Empty(t, spare.Groups)
}

func TestSearchManuals(t *testing.T) {
	svc, _ := newManualService(t, "")

	_, err := svc.AddManual(schema.Manual{Title: "Frequency Converter Handbook"})
	require.NoError(t, err)
	_, err = svc.AddManual(schema.Manual{Title: "Wiring Diagram"})
	require.NoError(t, err)

	found, err := svc.SearchManuals("converter")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Frequency Converter Handbook", found[0].Title)
}

func TestDeleteManuals(t *testing.T) {
	svc, _ := newManualService(t, "")

	created, err := svc.AddManual(schema.Manual{Title: "One"})
	require.NoError(t, err)

	assert.True(t, svc.DeleteManual(created.ID))
	assert.False(t, svc.DeleteManual(created.ID))
	assert.False(t, svc.DeleteManuals())
}

func TestAddAllCategoriesFromFixture(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "categories.json", []schema.Category{
		{Name: "Washers", LogoURL: "/logos/washers.png"},
		{Name: "Dryers"},
	})

	svc, _ := newManualService(t, dir)
	require.NoError(t, svc.AddAllCategories())

	cats, err := svc.Categories()
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}

func TestAddAllManualsMissingFixture(t *testing.T) {
	svc, _ := newManualService(t, t.TempDir())
	assert.Error(t, svc.AddAllManuals())
}
