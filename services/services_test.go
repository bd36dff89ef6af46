package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
		&models.BusinessModel{},
		&models.Table{},
		&models.Column{},
		&models.Row{},
		&models.Cell{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	name := "Admin Danakita"
	user := models.User{
		Name:     &name,
		Username: "admin",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
