// file: controllers/school_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"

	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchoolAuthMatrix(t *testing.T) {
	r := setupEnv(t)
	payload := map[string]any{"name": "Unity College", "location": "Buea", "category": "Secondary"}

	w := doJSON(r, http.MethodPost, "/api/schools", payload, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/schools", payload, userToken(t))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/schools", payload, adminToken(t))
	require.Equal(t, http.StatusCreated, w.Code)
	school := decode(t, w)["school"].(map[string]any)
	assert.Equal(t, "Unity College", school["name"])
	assert.Equal(t, true, school["is_active"])
}

func TestCreateSchoolValidation(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/api/schools", map[string]any{"name": "No Location"}, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/schools", map[string]any{
		"name": "Bad Category", "location": "Douala", "category": "Bootcamp",
	}, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid category")
}

func TestSchoolListFiltersAndPagination(t *testing.T) {
	r := setupEnv(t)
	seedSchool(t, models.School{Name: "Sacred Heart College", Location: "Mankon", City: "Bamenda", Category: "Secondary", IsVerified: true, IsActive: true})
	seedSchool(t, models.School{Name: "Government Primary School", Location: "Bonanjo", City: "Douala", Category: "Primary", IsActive: true})
	seedSchool(t, models.School{Name: "Hidden School", Location: "Limbe", Category: "Primary", IsActive: false})

	w := doJSON(r, http.MethodGet, "/api/schools", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["total"], "inactive schools stay out of the list")
	assert.Equal(t, float64(1), body["current_page"])

	w = doJSON(r, http.MethodGet, "/api/schools?category=Secondary", nil, "")
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = doJSON(r, http.MethodGet, "/api/schools?verified=true", nil, "")
	assert.Equal(t, float64(1), decode(t, w)["total"])

	w = doJSON(r, http.MethodGet, "/api/schools?search=heart", nil, "")
	assert.Equal(t, float64(1), decode(t, w)["total"])
}

func TestSchoolSoftDeleteKeepsDetailReachable(t *testing.T) {
	r := setupEnv(t)
	school := seedSchool(t, models.School{Name: "Doomed Academy", Location: "Kribi", Category: "Primary", IsActive: true})

	w := doJSON(r, http.MethodDelete, "/api/schools/1", nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var reread models.School
	require.NoError(t, database.DB.First(&reread, school.ID).Error)
	assert.False(t, reread.IsActive)

	// 列表里消失
	w = doJSON(r, http.MethodGet, "/api/schools", nil, "")
	assert.Equal(t, float64(0), decode(t, w)["total"])

	// 详情仍可按 ID 直达
	w = doJSON(r, http.MethodGet, "/api/schools/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSchoolCategoriesEndpoint(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodGet, "/api/schools/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode(t, w)["categories"].([]any)
	assert.Len(t, categories, 6)
	assert.Contains(t, categories, "University")
}

func TestRateSchoolRequiresLoginAndAverages(t *testing.T) {
	r := setupEnv(t)
	seedSchool(t, models.School{Name: "Rated School", Location: "Buea", Category: "Secondary", Rating: 4.0, TotalReviews: 1, IsActive: true})

	w := doJSON(r, http.MethodPost, "/api/schools/1/rate", map[string]any{"rating": 5}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/schools/1/rate", map[string]any{"rating": 5}, userToken(t))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.InDelta(t, 4.5, body["rating"].(float64), 1e-9)
	assert.Equal(t, float64(2), body["total_reviews"])

	w = doJSON(r, http.MethodPost, "/api/schools/1/rate", map[string]any{"rating": 9}, userToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchoolNotFound(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodGet, "/api/schools/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "School not found"}`, w.Body.String())
}
