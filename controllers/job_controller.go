// file: controllers/job_controller.go
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

var jobFilters = services.FilterSpec{
	Equal:     map[string]string{"type": "job_type"},
	Substring: map[string]string{"search": "title", "company": "company", "location": "location"},
	Flags:     map[string]string{"featured": "is_featured"},
}

func GetJobs(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.Job{}).
		Where("is_active = ? AND status = ?", true, models.JobActive)
	tx = jobFilters.Apply(c, tx)

	jobs, total, pages, err := services.Paginate(tx, q, (*models.Job).Summary)
	if err != nil {
		logrus.Errorf("job listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":         jobs,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

// GetJobDetail 不过滤 is_active，软删除后的岗位仍可按 ID 访问
func GetJobDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	var job models.Job
	if err := database.DB.First(&job, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job.Detail()})
}

// --- 管理员接口 ---

func CreateJob(c *gin.Context) {
	var req dto.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: title, company")
		return
	}

	job := mappers.MapCreateJobReq(req)
	if err := database.DB.Create(&job).Error; err != nil {
		logrus.Errorf("job creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     job.Detail(),
	})
}

func UpdateJob(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var job models.Job
	if err := database.DB.First(&job, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	var req dto.UpdateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	mappers.ApplyJobUpdate(&job, req)
	if err := database.DB.Save(&job).Error; err != nil {
		logrus.Errorf("job update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job.Detail(),
	})
}

func DeleteJob(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var job models.Job
	if err := database.DB.First(&job, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	if err := database.DB.Model(&job).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
