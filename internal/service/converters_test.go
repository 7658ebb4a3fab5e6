package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aedb-backend/internal/model"
)

func seedConverterFixture(t *testing.T) *ConverterService {
	dir := t.TempDir()
	writeFixture(t, dir, "converters.json", []millShopFixture{
		{
			Name: "Mill shop 1",
			ProductionLines: []productionLineFixture{
				{
					Name: "Line A",
					Locations: []locationFixture{
						{
							Name: "North hall",
							Cabinets: []cabinetFixture{
								{
									Name: "Cabinet 01",
									Converters: []converterFixture{
										{
											Brand:          "Danfoss",
											Model:          "FC-302",
											NominalCurrent: 32,
											CurrentType:    "AC",
											Power:          15,
											InputVoltage:   400,
											OutputVoltage:  400,
											Units: []unitFixture{
												{Name: "Conveyor drive"},
												{Name: "Fan drive"},
											},
										},
										{
											Brand: "ABB",
											Model: "ACS580",
											Power: 7.5,
										},
									},
								},
							},
						},
					},
				},
			},
		},
	})

	svc := NewConverterService(newTestDB(t), dir)
	require.NoError(t, svc.AddAll())
	return svc
}

func TestConverterAddAll(t *testing.T) {
	svc := seedConverterFixture(t)

	converters, err := svc.Converters()
	require.NoError(t, err)
	require.Len(t, converters, 2)

	// Children must point at the generated parent identifiers.
	var cab model.Cabinet
	require.NoError(t, svc.db.First(&cab).Error)
	for _, conv := range converters {
		assert.Equal(t, cab.ID, conv.CabinetID)
	}

	var units []model.Unit
	require.NoError(t, svc.db.Find(&units).Error)
	assert.Len(t, units, 2)
}

func TestConvertersPaginated(t *testing.T) {
	svc := seedConverterFixture(t)

	page, err := svc.ConvertersPaginated(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "FC-302", page.Items[0].Model)

	page, err = svc.ConvertersPaginated(2, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ACS580", page.Items[0].Model)

	page, err = svc.ConvertersPaginated(3, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(2), page.Total)
}

func TestDeleteConverterByID(t *testing.T) {
	svc := seedConverterFixture(t)

	converters, err := svc.Converters()
	require.NoError(t, err)
	require.NotEmpty(t, converters)

	assert.True(t, svc.DeleteConverter(converters[0].ID))
	assert.False(t, svc.DeleteConverter(converters[0].ID))
	assert.False(t, svc.DeleteMillShop(9999))
}

func TestDeleteAllConverters(t *testing.T) {
	svc := seedConverterFixture(t)

	result := svc.DeleteAll()
	assert.Equal(t, map[string]bool{
		"units":            true,
		"converters":       true,
		"cabinets":         true,
		"locations":        true,
		"production_lines": true,
		"mill_shops":       true,
	}, result)

	converters, err := svc.Converters()
	require.NoError(t, err)
	assert.Empty(t, converters)

	// A second pass finds nothing left to delete.
	result = svc.DeleteAll()
	for table, deleted := range result {
		assert.False(t, deleted, table)
	}
}
