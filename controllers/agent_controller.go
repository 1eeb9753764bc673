// file: controllers/agent_controller.go
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

var agentFilters = services.FilterSpec{
	Equal: map[string]string{"region": "region", "status": "status"},
	Flags: map[string]string{"featured": "is_featured"},
}

func GetAgents(c *gin.Context) {
	q := services.ParseListQuery(c)
	tx := database.DB.Model(&models.Agent{}).
		Where("is_active = ? AND verification_status = ?", true, models.VerificationVerified)
	tx = agentFilters.Apply(c, tx)

	agents, total, pages, err := services.Paginate(tx, q, (*models.Agent).Summary)
	if err != nil {
		logrus.Errorf("agent listing failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agents":       agents,
		"total":        total,
		"pages":        pages,
		"current_page": q.Page,
	})
}

func GetAgentDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Agent not found")
		return
	}

	var agent models.Agent
	if err := database.DB.First(&agent, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Agent not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"agent": agent.Detail()})
}

// GetAgentByPromo 按推广码查询，只认仍在生效的代理
func GetAgentByPromo(c *gin.Context) {
	code := c.Param("code")

	var agent models.Agent
	err := database.DB.Where("promo_code = ? AND is_active = ?", code, true).First(&agent).Error
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Promo code not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"agent": agent.Detail()})
}

// --- 管理员接口 ---

func CreateAgent(c *gin.Context) {
	var req dto.CreateAgentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: name, email")
		return
	}

	var existing models.Agent
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusConflict, "Email already registered")
		return
	}
	if req.PromoCode != "" {
		if err := database.DB.Where("promo_code = ?", req.PromoCode).First(&existing).Error; err == nil {
			utils.Error(c, http.StatusConflict, "Promo code already in use")
			return
		}
	}

	agent := mappers.MapCreateAgentReq(req)
	if agent.PromoCode == "" {
		// 未提供推广码时生成一个未被占用的 8 位随机码
		for {
			code := utils.GeneratePromoCode(8)
			var count int64
			database.DB.Model(&models.Agent{}).Where("promo_code = ?", code).Count(&count)
			if count == 0 {
				agent.PromoCode = code
				break
			}
		}
	}

	if err := database.DB.Create(&agent).Error; err != nil {
		logrus.Errorf("agent creation failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Agent created successfully",
		"agent":   agent.Detail(),
	})
}

func UpdateAgent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var agent models.Agent
	if err := database.DB.First(&agent, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Agent not found")
		return
	}

	var req dto.UpdateAgentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	mappers.ApplyAgentUpdate(&agent, req)
	if err := database.DB.Save(&agent).Error; err != nil {
		logrus.Errorf("agent update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Agent updated successfully",
		"agent":   agent.Detail(),
	})
}

func DeleteAgent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var agent models.Agent
	if err := database.DB.First(&agent, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Agent not found")
		return
	}

	if err := database.DB.Model(&agent).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Deletion failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent deleted successfully"})
}

// --- 外部系统接口 ---

// RecordAgentReferral 接收招生系统上报的推荐记录，累加代理的业绩计数
func RecordAgentReferral(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var agent models.Agent
	if err := database.DB.First(&agent, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Agent not found")
		return
	}

	var req dto.ReferralReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := agent.RecordReferral(database.DB, req.Enrolled, req.Commission); err != nil {
		logrus.Errorf("agent referral update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Referral update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Referral recorded"})
}
