package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawsgroom-backend/config"
	"pawsgroom-backend/models"
	"pawsgroom-backend/routes"
	"pawsgroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.GalleryImage{},
	)
	require.NoError(t, err)

	config.DB = db
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	t.Setenv("JWT_SECRET", "test-secret")

	uploadDir := t.TempDir()
	cfg := config.Config{
		Port:           "8080",
		UploadDir:      uploadDir,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	return routes.SetupRouter(cfg), uploadDir
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateToken(uuid.NewString(), "admin")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createService(t *testing.T, db *gorm.DB, name string, price float64, duration int, category string, active bool) models.Service {
	t.Helper()

	service := models.Service{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Duration:    duration,
		Category:    category,
		IsActive:    active,
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}
