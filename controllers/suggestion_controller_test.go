// file: controllers/suggestion_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuggestionIsPublic(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/api/suggestions", map[string]any{
		"name": "Parent", "email": "parent@example.com", "message": "Please add school fees info",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Thank you for your suggestion!", body["message"])
	assert.Equal(t, float64(1), body["suggestion_id"])

	var saved models.Suggestion
	require.NoError(t, database.DB.First(&saved, 1).Error)
	assert.Equal(t, models.SuggestionNew, saved.Status)
	assert.Equal(t, "Normal", saved.Priority)
}

func TestCreateSuggestionValidation(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/api/suggestions", map[string]any{"name": "No Message"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestionReadIsRestricted(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(r, http.MethodGet, "/api/suggestions", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/suggestions", nil, userToken(t))
	assert.Equal(t, http.StatusForbidden, w.Code)

	for _, token := range []string{adminToken(t), systemsToken(t)} {
		w = doJSON(r, http.MethodGet, "/api/suggestions", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSuggestionListNewestFirst(t *testing.T) {
	r := setupEnv(t)
	old := models.Suggestion{Name: "A", Email: "a@example.com", Message: "first", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, database.DB.Create(&old).Error)
	recent := models.Suggestion{Name: "B", Email: "b@example.com", Message: "second"}
	require.NoError(t, database.DB.Create(&recent).Error)

	w := doJSON(r, http.MethodGet, "/api/suggestions", nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	suggestions := decode(t, w)["suggestions"].([]any)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "second", suggestions[0].(map[string]any)["message"])
}

func TestUpdateSuggestionStampsRespondedAt(t *testing.T) {
	r := setupEnv(t)
	require.NoError(t, database.DB.Create(&models.Suggestion{
		Name: "Parent", Email: "parent@example.com", Message: "More bursaries please",
	}).Error)

	w := doJSON(r, http.MethodPut, "/api/suggestions/1", map[string]any{
		"status": "Completed", "response": "Bursary section expanded",
	}, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var reread models.Suggestion
	require.NoError(t, database.DB.First(&reread, 1).Error)
	assert.Equal(t, models.SuggestionCompleted, reread.Status)
	assert.NotNil(t, reread.RespondedAt)
}

func TestDeleteSuggestionIsHardDelete(t *testing.T) {
	r := setupEnv(t)
	require.NoError(t, database.DB.Create(&models.Suggestion{
		Name: "Gone", Email: "gone@example.com", Message: "delete me",
	}).Error)

	w := doJSON(r, http.MethodDelete, "/api/suggestions/1", nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.Suggestion{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
