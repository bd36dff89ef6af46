package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

func TestBusinessModelSoftDelete_CascadesToTablesOnly(t *testing.T) {
	db := newTestDB(t)
	bm := seedBusinessModel(t, db)
	repo := NewBusinessModelRepository(db)
	tables := NewTableRepository(db)

	table := createProfitTable(t, tables, bm.ID)

	count, err := repo.SoftDelete([]uint{bm.ID}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.FindByID(bm.ID)
	assert.True(t, IsNotFound(err))

	// tables are soft-deleted with the actor stamped
	var gone models.Table
	require.NoError(t, db.Unscoped().First(&gone, "id = ?", table.ID).Error)
	assert.True(t, gone.DeletedAt.Valid)
	require.NotNil(t, gone.DeletedBy)
	assert.Equal(t, "admin", *gone.DeletedBy)

	// the cascade stops at tables
	var columns []models.Column
	require.NoError(t, db.Where("table_id = ?", table.ID).Find(&columns).Error)
	assert.Len(t, columns, 2)
}

func TestBusinessModelFindWithPagination_SearchAndSort(t *testing.T) {
	db := newTestDB(t)
	repo := NewBusinessModelRepository(db)

	for _, bm := range []models.BusinessModel{
		{Name: "Gadai Emas", Order: 3},
		{Name: "Pembiayaan Mikro", Order: 1},
		{Name: "Pembiayaan Usaha", Order: 2},
	} {
		require.NoError(t, db.Create(&bm).Error)
	}

	results, total, err := repo.FindWithPagination(dto.ListParams{
		Page: 1, Limit: 10, Search: "pembiayaan",
		SortColumn: "name", SortDirection: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, results, 2)
	assert.Equal(t, "Pembiayaan Usaha", results[0].Name)

	// default ordering is by "order" ascending
	results, total, err = repo.FindWithPagination(dto.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, results, 2)
	assert.Equal(t, "Pembiayaan Mikro", results[0].Name)
}
