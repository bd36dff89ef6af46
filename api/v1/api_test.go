package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danakita/cms-backend/models"
	"github.com/danakita/cms-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

// newTestAPI wires the full route tree against an in-memory database.
func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
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

	router := gin.New()
	RegisterRoutes(router.Group("/api"), Deps{
		DB:      db,
		Auth:    services.NewAuthService(db, testSecret, time.Hour),
		Uploads: services.NewUploadService(t.TempDir(), "/uploads", 0),
		Drive:   services.NewDriveService("", "", "", ""),
	})
	return router, db
}

func seedAPIUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Username: "user-" + string(role),
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// doJSON performs a request with an optional JSON body, auth cookie and
// bearer header, returning the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookie, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: cookie})
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// login authenticates against the running router and returns the token.
func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": email, "password": password,
	}, "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
