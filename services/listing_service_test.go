// file: services/listing_service_test.go
package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Julius10-hub/UEB/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.School{}, &models.Event{}, &models.Job{},
		&models.Bursary{}, &models.Agent{}, &models.PastPaper{}, &models.Suggestion{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func listContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(listContext(t, ""))
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PerPage)
}

func TestParseListQueryRejectsGarbage(t *testing.T) {
	q := ParseListQuery(listContext(t, "page=abc&per_page=-5"))
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PerPage)
}

func TestPaginateWindowAndTotals(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 5; i++ {
		school := models.School{Name: fmt.Sprintf("School %02d", i), Location: "Yaounde", Category: "Primary", IsActive: true}
		require.NoError(t, db.Create(&school).Error)
	}

	tx := db.Model(&models.School{}).Order("id")
	items, total, pages, err := Paginate(tx, ListQuery{Page: 2, PerPage: 2}, (*models.School).Summary)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, 3, pages)
	require.Len(t, items, 2)
	assert.Equal(t, "School 03", items[0].Name)
}

func TestPaginateOutOfRangePageIsEmptyNotError(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 5; i++ {
		school := models.School{Name: fmt.Sprintf("S%d", i), Location: "Bamenda", Category: "Secondary", IsActive: true}
		require.NoError(t, db.Create(&school).Error)
	}

	tx := db.Model(&models.School{})
	items, total, pages, err := Paginate(tx, ListQuery{Page: 999, PerPage: 20}, (*models.School).Summary)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, 1, pages)
}

func TestFilterSpecApply(t *testing.T) {
	db := newTestDB(t)
	schools := []models.School{
		{Name: "Sacred Heart College", Location: "Mankon", City: "Bamenda", Category: "Secondary", IsVerified: true, IsActive: true},
		{Name: "Government Primary School", Location: "Bonanjo", City: "Douala", Category: "Primary", IsActive: true},
		{Name: "Heart of Hope Academy", Location: "Molyko", City: "Buea", Category: "Secondary", IsActive: true},
	}
	for i := range schools {
		require.NoError(t, db.Create(&schools[i]).Error)
	}

	filters := FilterSpec{
		Equal:     map[string]string{"category": "category", "city": "city"},
		Substring: map[string]string{"search": "name"},
		Flags:     map[string]string{"verified": "is_verified"},
	}

	count := func(rawQuery string) int64 {
		tx := filters.Apply(listContext(t, rawQuery), db.Model(&models.School{}))
		var n int64
		require.NoError(t, tx.Count(&n).Error)
		return n
	}

	assert.Equal(t, int64(2), count("category=Secondary"))
	assert.Equal(t, int64(1), count("city=Douala"))
	assert.Equal(t, int64(2), count("search=heart"))
	assert.Equal(t, int64(1), count("verified=true"))
	assert.Equal(t, int64(3), count("verified=false"))
	assert.Equal(t, int64(1), count("category=Secondary&search=heart&verified=true"))
}
