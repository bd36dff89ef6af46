package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

func TestMenuSoftDelete_HiddenFromReadsButStamped(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	menu := models.Menu{Name: "Beranda", Path: "/", Order: 0}
	require.NoError(t, repo.Create(&menu))

	count, err := repo.SoftDelete([]uint{menu.ID}, "editor1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.FindByID(menu.ID)
	assert.True(t, IsNotFound(err))

	var gone models.Menu
	require.NoError(t, db.Unscoped().First(&gone, "id = ?", menu.ID).Error)
	assert.True(t, gone.DeletedAt.Valid)
	require.NotNil(t, gone.DeletedBy)
	assert.Equal(t, "editor1", *gone.DeletedBy)
}

func TestMenuFindWithPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	for _, m := range []models.Menu{
		{Name: "Beranda", Path: "/", Order: 0},
		{Name: "Tentang Kami", Path: "/tentang", Order: 1},
		{Name: "Hubungi Kami", Path: "/kontak", Order: 2},
	} {
		menu := m
		require.NoError(t, repo.Create(&menu))
	}

	// search matches name or path, case-insensitive
	menus, total, err := repo.FindWithPagination(dto.ListParams{Page: 1, Limit: 10, Search: "kami"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, menus, 2)

	// second page of one-per-page, default order ascending
	menus, total, err = repo.FindWithPagination(dto.ListParams{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, menus, 1)
	assert.Equal(t, "Tentang Kami", menus[0].Name)

	// unknown sortColumn falls back to the default ordering
	menus, _, err = repo.FindWithPagination(dto.ListParams{Page: 1, Limit: 10, SortColumn: "evil; DROP TABLE"})
	require.NoError(t, err)
	require.Len(t, menus, 3)
	assert.Equal(t, "Beranda", menus[0].Name)
}

func TestSiteConfigKeyInUse_IgnoresSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewSiteConfigRepository(db)

	cfg := models.SiteConfig{Key: "hero_title", Value: "Pendanaan untuk semua"}
	require.NoError(t, repo.Create(&cfg))

	inUse, err := repo.KeyInUse("hero_title", 0)
	require.NoError(t, err)
	assert.True(t, inUse)

	// the row itself is excluded when updating in place
	inUse, err = repo.KeyInUse("hero_title", cfg.ID)
	require.NoError(t, err)
	assert.False(t, inUse)

	_, err = repo.SoftDelete([]uint{cfg.ID}, "admin")
	require.NoError(t, err)

	inUse, err = repo.KeyInUse("hero_title", 0)
	require.NoError(t, err)
	assert.False(t, inUse, "soft-deleted keys are reusable")
}
