// file: controllers/stats_controller.go
package controllers

import (
	"net/http"

	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/services"
	"github.com/Julius10-hub/UEB/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetPlatformStats(c *gin.Context) {
	stats, err := services.ComputePlatformStats(database.DB)
	if err != nil {
		logrus.Errorf("platform stats failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func GetCategoryStats(c *gin.Context) {
	rows, err := services.ComputeCategoryStats(database.DB)
	if err != nil {
		logrus.Errorf("category stats failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": rows})
}
