// file: controllers/bursary_controller.go
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

var bursaryFilters = services.FilterSpec{
	Equal:     map[string]string{"type": "bursary_type", "level": "education_level"},
	Substring: map[string]string{"field": "field_of_study"},
	Flags:     map[string]string{"featured": "is_featured"},
}

func GetBursaries(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.Bursary{}).
		Where("is_active = ? AND status = ?", true, models.BursaryActive)
	tx = bursaryFilters.Apply(c, tx)

	bursaries, total, pages, err := services.Paginate(tx, q, (*models.Bursary).Summary)
	if err != nil {
		logrus.Errorf("bursary listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bursaries":    bursaries,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

func GetBursaryDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Bursary not found")
		return
	}

	var bursary models.Bursary
	if err := database.DB.First(&bursary, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bursary not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bursary": bursary.Detail()})
}

// --- 管理员接口 ---

func CreateBursary(c *gin.Context) {
	var req dto.CreateBursaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: title, bursary_type")
		return
	}

	bursary := mappers.MapCreateBursaryReq(req)
	if err := database.DB.Create(&bursary).Error; err != nil {
		logrus.Errorf("bursary creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bursary created successfully",
		"bursary": bursary.Detail(),
	})
}

func UpdateBursary(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var bursary models.Bursary
	if err := database.DB.First(&bursary, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bursary not found")
		return
	}

	var req dto.UpdateBursaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	mappers.ApplyBursaryUpdate(&bursary, req)
	if err := database.DB.Save(&bursary).Error; err != nil {
		logrus.Errorf("bursary update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bursary updated successfully",
		"bursary": bursary.Detail(),
	})
}

func DeleteBursary(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var bursary models.Bursary
	if err := database.DB.First(&bursary, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bursary not found")
		return
	}

	if err := database.DB.Model(&bursary).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bursary deleted successfully"})
}
