package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

func TestTableService_RejectsDuplicateColumnKeys(t *testing.T) {
	db := newTestDB(t)
	bm := models.BusinessModel{Name: "Skema Bagi Hasil", Slug: "bagi-hasil", Order: 1}
	require.NoError(t, db.Create(&bm).Error)
	svc := NewTableService(db)

	order := 0
	_, err := svc.Create(dto.CreateTableRequest{
		BusinessModelID: bm.ID,
		Name:            "Skema",
		Order:           &order,
		Columns: []dto.ColumnPayload{
			{Key: "profit", Label: "Profit"},
			{Key: "profit", Label: "Profit Lagi"},
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateColumnKey)

	table, err := svc.Create(dto.CreateTableRequest{
		BusinessModelID: bm.ID,
		Name:            "Skema",
		Order:           &order,
		Columns:         []dto.ColumnPayload{{Key: "profit", Label: "Profit"}},
	})
	require.NoError(t, err)

	_, err = svc.Update(dto.UpdateTableRequest{
		ID:    table.ID,
		Name:  "Skema",
		Order: &order,
		Columns: []dto.ColumnPayload{
			{ID: table.Columns[0].ID, Key: "profit", Label: "Profit"},
			{Key: "profit", Label: "Duplikat"},
		},
	}, "admin")
	assert.ErrorIs(t, err, ErrDuplicateColumnKey)
}
