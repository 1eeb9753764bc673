// file: controllers/main_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Julius10-hub/UEB/config"
	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/models"
	"github.com/Julius10-hub/UEB/routes"
	"github.com/Julius10-hub/UEB/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupEnv 用内存 SQLite 和 miniredis 搭一个完整的应用实例
func setupEnv(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.C = &config.Config{
		Port:        "5000",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		SessionTTL:  time.Hour,
		CORSOrigins: []string{"http://localhost:3000"},
	}
	utils.InitJWT(config.C.JWTSecret, config.C.TokenTTL)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.School{}, &models.Event{}, &models.Job{},
		&models.Bursary{}, &models.Agent{}, &models.PastPaper{}, &models.Suggestion{},
	))
	database.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	mr := miniredis.RunT(t)
	database.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return routes.SetupRouter()
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(models.User{ID: 1, Email: "user@example.com"})
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(models.User{ID: 2, Email: "admin@example.com", IsAdmin: true})
	require.NoError(t, err)
	return token
}

func systemsToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateServiceToken("enrollment-service")
	require.NoError(t, err)
	return token
}

func seedSchool(t *testing.T, s models.School) models.School {
	t.Helper()
	require.NoError(t, database.DB.Create(&s).Error)
	return s
}
