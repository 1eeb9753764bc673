// file: controllers/past_paper_controller.go
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

var pastPaperFilters = services.FilterSpec{
	Equal: map[string]string{
		"subject":  "subject",
		"category": "category",
		"year":     "year",
		"board":    "exam_board",
	},
	Substring: map[string]string{"search": "title"},
	Flags:     map[string]string{"featured": "is_featured"},
}

func GetPastPapers(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.PastPaper{}).Where("is_active = ?", true)
	tx = pastPaperFilters.Apply(c, tx)

	papers, total, pages, err := services.Paginate(tx, q, (*models.PastPaper).Summary)
	if err != nil {
		logrus.Errorf("past paper listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"papers":       papers,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

// GetPastPaperSubjects 返回库内出现过的全部科目（去重、不含空值）
func GetPastPaperSubjects(c *gin.Context) {
	var subjects []string
	err := database.DB.Model(&models.PastPaper{}).
		Distinct().
		Where("subject <> ''").
		Order("subject").
		Pluck("subject", &subjects).Error
	if err != nil {
		logrus.Errorf("subject listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if subjects == nil {
		subjects = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func GetPastPaperDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Paper not found")
		return
	}

	var paper models.PastPaper
	if err := database.DB.First(&paper, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Paper not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"paper": paper.Detail()})
}

// --- 需要登录的接口 ---

// DownloadPastPaper 记录一次下载并返回下载地址
func DownloadPastPaper(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var paper models.PastPaper
	if err := database.DB.First(&paper, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Paper not found")
		return
	}

	if err := paper.IncrementDownloadCount(database.DB); err != nil {
		logrus.Errorf("download count update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Download tracking failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Download recorded",
		"download_url": paper.DownloadURL,
	})
}

// RatePastPaper 追加一条评分并返回新的运行平均值
func RatePastPaper(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var paper models.PastPaper
	if err := database.DB.First(&paper, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Paper not found")
		return
	}

	var req dto.RateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	if err := paper.UpdateRating(database.DB, req.Rating); err != nil {
		logrus.Errorf("paper rating update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Rating update failed")
		return
	}

	if err := database.DB.First(&paper, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Rating recorded",
		"rating":        paper.Rating,
		"total_reviews": paper.TotalReviews,
	})
}

// --- 管理员接口 ---

func CreatePastPaper(c *gin.Context) {
	var req dto.CreatePastPaperReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: title, subject, year, category")
		return
	}

	paper := mappers.MapCreatePastPaperReq(req)
	if err := database.DB.Create(&paper).Error; err != nil {
		logrus.Errorf("past paper creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Paper created successfully",
		"paper":   paper.Detail(),
	})
}

func UpdatePastPaper(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var paper models.PastPaper
	if err := database.DB.First(&paper, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Paper not found")
		return
	}

	var req dto.UpdatePastPaperReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	mappers.ApplyPastPaperUpdate(&paper, req)
	if err := database.DB.Save(&paper).Error; err != nil {
		logrus.Errorf("past paper update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Paper updated successfully",
		"paper":   paper.Detail(),
	})
}

func DeletePastPaper(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var paper models.PastPaper
	if err := database.DB.First(&paper, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Paper not found")
		return
	}

	if err := database.DB.Model(&paper).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paper deleted successfully"})
}
