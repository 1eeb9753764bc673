// file: controllers/school_controller.go
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

var schoolFilters = services.FilterSpec{
	Equal:     map[string]string{"category": "category", "city": "city"},
	Substring: map[string]string{"search": "name"},
	Flags:     map[string]string{"verified": "is_verified"},
}

func GetSchools(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.School{}).Where("is_active = ?", true)
	tx = schoolFilters.Apply(c, tx)

	schools, total, pages, err := services.Paginate(tx, q, (*models.School).Summary)
	if err != nil {
		logrus.Errorf("school listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schools":      schools,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

// GetSchoolDetail 按 ID 查详情。与列表不同，详情不过滤 is_active，
// 软删除后的记录仍可直接访问（与管理端行为保持一致）。
func GetSchoolDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "School not found")
		return
	}

	var school models.School
	if err := database.DB.First(&school, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "School not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"school": school.Detail()})
}

func GetSchoolCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.SchoolCategories})
}

// --- 管理员接口 ---

func CreateSchool(c *gin.Context) {
	var req dto.CreateSchoolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: name, location, category")
		return
	}
	if err := models.ValidCategory(req.Category); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	school := mappers.MapCreateSchoolReq(req)
	if err := database.DB.Create(&school).Error; err != nil {
		logrus.Errorf("school creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "School created successfully",
		"school":  school.Detail(),
	})
}

func UpdateSchool(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var school models.School
	if err := database.DB.First(&school, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "School not found")
		return
	}

	var req dto.UpdateSchoolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Category != nil {
		if err := models.ValidCategory(*req.Category); err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	mappers.ApplySchoolUpdate(&school, req)
	if err := database.DB.Save(&school).Error; err != nil {
		logrus.Errorf("school update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "School updated successfully",
		"school":  school.Detail(),
	})
}

// DeleteSchool 软删除，只翻 is_active 标记
func DeleteSchool(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var school models.School
	if err := database.DB.First(&school, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "School not found")
		return
	}

	if err := database.DB.Model(&school).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "School deleted successfully"})
}

// RateSchool 追加一条评分并返回新的运行平均值
func RateSchool(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var school models.School
	if err := database.DB.First(&school, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "School not found")
		return
	}

	var req dto.RateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if err := school.UpdateRating(database.DB, req.Rating); err != nil {
		logrus.Errorf("school rating update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Rating update failed")
		return
	}

	if err := database.DB.First(&school, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Rating recorded",
		"rating":        school.Rating,
		"total_reviews": school.TotalReviews,
	})
}
