// file: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Julius10-hub/UEB/config"
	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/middlewares"
	"github.com/Julius10-hub/UEB/models"
	"github.com/Julius10-hub/UEB/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone"`
		Bio      string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: email, password, name")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusConflict, "Email already registered")
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Bio:      req.Bio,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		logrus.Errorf("user registration failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, sid, err := issueCredentials(c, user)
	if err != nil {
		logrus.Errorf("failed to issue credentials: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}
	setSessionCookie(c, sid)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user.Profile(),
		"token":   token,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.IsActive {
		utils.Error(c, http.StatusForbidden, "Account is inactive")
		return
	}

	now := time.Now()
	database.DB.Model(&user).UpdateColumn("last_login", now)
	user.LastLogin = &now

	token, sid, err := issueCredentials(c, user)
	if err != nil {
		logrus.Errorf("failed to issue credentials: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}
	setSessionCookie(c, sid)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"user":    user.Profile(),
		"token":   token,
	})
}

// GetMe 匿名访问时返回 {user: null}，不报错
func GetMe(c *gin.Context) {
	identity, ok := middlewares.CurrentIdentity(c)
	if !ok || identity.UserID == 0 {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	var user models.User
	if err := database.DB.First(&user, identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Profile()})
}

// --- 需要登录的接口 ---

func Logout(c *gin.Context) {
	if sid, err := c.Cookie(utils.SessionCookie); err == nil && sid != "" {
		if err := utils.DestroySession(c.Request.Context(), sid); err != nil {
			logrus.Warnf("failed to destroy session: %v", err)
		}
	}
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func GetProfile(c *gin.Context) {
	identity, _ := middlewares.CurrentIdentity(c)
	var user models.User
	if err := database.DB.First(&user, identity.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Profile()})
}

func UpdateProfile(c *gin.Context) {
	identity, _ := middlewares.CurrentIdentity(c)
	var user models.User
	if err := database.DB.First(&user, identity.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Phone        *string `json:"phone"`
		Bio          *string `json:"bio"`
		ProfileImage *string `json:"profile_image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := database.DB.Save(&user).Error; err != nil {
		logrus.Errorf("profile update failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user.Profile(),
	})
}

// issueCredentials 同时签发 Bearer 令牌与服务端会话，两条认证路径等价
func issueCredentials(c *gin.Context, user models.User) (token, sid string, err error) {
	token, err = utils.GenerateToken(user)
	if err != nil {
		return "", "", err
	}
	sid, err = utils.CreateSession(c.Request.Context(), user.ID, user.IsAdmin, config.C.SessionTTL)
	if err != nil {
		return "", "", err
	}
	return token, sid, nil
}

func setSessionCookie(c *gin.Context, sid string) {
	maxAge := int(config.C.SessionTTL / time.Second)
	c.SetCookie(utils.SessionCookie, sid, maxAge, "/", "", false, true)
}
