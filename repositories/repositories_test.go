package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danakita/cms-backend/models"
)

// newTestDB opens an isolated in-memory database. Max open conns is
// pinned to one so every query sees the same in-memory file.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.SiteConfig{},
		&models.Event{},
		&models.Legal{},
		&models.Qna{},
		&models.Timeline{},
		&models.BusinessModel{},
		&models.Table{},
		&models.Column{},
		&models.Row{},
		&models.Cell{},
	))

	return db
}

func seedBusinessModel(t *testing.T, db *gorm.DB) models.BusinessModel {
	t.Helper()
	bm := models.BusinessModel{Name: "Skema Bagi Hasil", Slug: "bagi-hasil", Order: 1}
	require.NoError(t, db.Create(&bm).Error)
	return bm
}
