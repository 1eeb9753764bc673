// file: controllers/suggestion_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/mappers"
	"github.com/Julius10-hub/UEB/models"
	"github.com/Julius10-hub/UEB/services"
	"github.com/Julius10-hub/UEB/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var suggestionFilters = services.FilterSpec{
	Equal: map[string]string{
		"status":   "status",
		"priority": "priority",
		"type":     "suggestion_type",
	},
}

// CreateSuggestion 匿名可用的反馈入口
func CreateSuggestion(c *gin.Context) {
	var req dto.CreateSuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: name, email, message")
		return
	}

	suggestion := mappers.MapCreateSuggestionReq(req)
	if err := database.DB.Create(&suggestion).Error; err != nil {
		logrus.Errorf("suggestion creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Submission failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Thank you for your suggestion!",
		"suggestion_id": suggestion.ID,
	})
}

// --- 管理端接口，读取开放给 admin 与 systems 角色 ---

func GetSuggestions(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.Suggestion{}).Order("created_at DESC")
	tx = suggestionFilters.Apply(c, tx)

	suggestions, total, pages, err := services.Paginate(tx, q, (*models.Suggestion).Detail)
	if err != nil {
		logrus.Errorf("suggestion listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions":  suggestions,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

func GetSuggestionDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	var suggestion models.Suggestion
	if err := database.DB.First(&suggestion, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion.Detail()})
}

func UpdateSuggestion(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var suggestion models.Suggestion
	if err := database.DB.First(&suggestion, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	var req dto.UpdateSuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	mappers.ApplySuggestionUpdate(&suggestion, req)
	if err := database.DB.Save(&suggestion).Error; err != nil {
		logrus.Errorf("suggestion update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Suggestion updated successfully",
		"suggestion": suggestion.Detail(),
	})
}

// DeleteSuggestion 反馈是硬删除，不做软删标记
func DeleteSuggestion(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var suggestion models.Suggestion
	if err := database.DB.First(&suggestion, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Suggestion not found")
		return
	}

	if err := database.DB.Delete(&suggestion).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Suggestion deleted successfully"})
}
