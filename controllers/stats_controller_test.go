// file: controllers/stats_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformStatsCountsMatchListingRules(t *testing.T) {
	r := setupEnv(t)

	seedSchool(t, models.School{Name: "Active School", Location: "Buea", Category: "Secondary", Students: 800, IsVerified: true, IsActive: true})
	seedSchool(t, models.School{Name: "Inactive School", Location: "Douala", Category: "Primary", Students: 500, IsActive: false})
	seedJob(t, models.Job{Title: "Open Role", Company: "X", Status: models.JobActive, IsActive: true})
	seedJob(t, models.Job{Title: "Closed Role", Company: "X", Status: models.JobClosed, IsActive: true})
	require.NoError(t, database.DB.Create(&models.Suggestion{Name: "A", Email: "a@example.com", Message: "hi"}).Error)

	w := doJSON(r, http.MethodGet, "/api/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode(t, w)
	assert.Equal(t, float64(1), stats["schools"])
	assert.Equal(t, float64(1), stats["jobs"])
	assert.Equal(t, float64(1), stats["suggestions"])
	assert.Equal(t, float64(1), stats["verified_schools"])
	// 在校生只统计 active 学校
	assert.Equal(t, float64(800), stats["total_students"])
}

func TestCategoryStatsGrouping(t *testing.T) {
	r := setupEnv(t)
	seedSchool(t, models.School{Name: "A", Location: "Buea", Category: "Secondary", Students: 300, IsActive: true})
	seedSchool(t, models.School{Name: "B", Location: "Limbe", Category: "Secondary", Students: 200, IsActive: true})
	seedSchool(t, models.School{Name: "C", Location: "Kribi", Category: "Primary", Students: 100, IsActive: true})

	w := doJSON(r, http.MethodGet, "/api/stats/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	rows := decode(t, w)["categories"].([]any)
	require.Len(t, rows, 2)

	byCategory := map[string]map[string]any{}
	for _, row := range rows {
		m := row.(map[string]any)
		byCategory[m["category"].(string)] = m
	}
	assert.Equal(t, float64(2), byCategory["Secondary"]["count"])
	assert.Equal(t, float64(500), byCategory["Secondary"]["total_students"])
	assert.Equal(t, float64(1), byCategory["Primary"]["count"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, w.Body.String())
}
