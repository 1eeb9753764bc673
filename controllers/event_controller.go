// file: controllers/event_controller.go
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

var eventFilters = services.FilterSpec{
	Equal: map[string]string{"type": "event_type", "status": "status"},
	Flags: map[string]string{"featured": "is_featured"},
}

func GetEvents(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.Event{}).Where("is_active = ?", true)
	tx = eventFilters.Apply(c, tx).Order("date DESC")

	events, total, pages, err := services.Paginate(tx, q, (*models.Event).Summary)
	if err != nil {
		logrus.Errorf("event listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

func GetEventDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Event not found")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event.Detail()})
}

// --- 管理员接口 ---

func CreateEvent(c *gin.Context) {
	var req dto.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: title, date")
		return
	}

	event := mappers.MapCreateEventReq(req)
	if err := database.DB.Create(&event).Error; err != nil {
		logrus.Errorf("event creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event.Detail(),
	})
}

func UpdateEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Event not found")
		return
	}

	var req dto.UpdateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	mappers.ApplyEventUpdate(&event, req)
	if err := database.DB.Save(&event).Error; err != nil {
		logrus.Errorf("event update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event.Detail(),
	})
}

func DeleteEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Event not found")
		return
	}

	if err := database.DB.Model(&event).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
