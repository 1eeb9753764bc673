// file: models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
	RoleSystems UserRole = "systems"
)

type User struct {
	ID           uint32     `gorm:"primarykey" json:"id"`
	Email        string     `gorm:"size:120;unique;not null" json:"email"`
	Password     string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:120;not null" json:"name"`
	Phone        string     `gorm:"size:20" json:"phone,omitempty"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	ProfileImage string     `gorm:"size:500" json:"profile_image,omitempty"`
	Bio          string     `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (User) TableName() string {
	return "ueb_user"
}

// BeforeSave GORM Hook，在新建用户或修改密码时自动做 bcrypt 哈希
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Role 返回该用户对应的令牌角色
func (u *User) Role() UserRole {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// 公开信息与本人可见信息两种序列化结构
type UserPublicInfo struct {
	ID        uint32    `json:"id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserProfileInfo struct {
	UserPublicInfo
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	ProfileImage string     `json:"profile_image"`
	Bio          string     `json:"bio"`
	LastLogin    *time.Time `json:"last_login"`
}

func (u *User) Public() UserPublicInfo {
	return UserPublicInfo{
		ID:        u.ID,
		Name:      u.Name,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (u *User) Profile() UserProfileInfo {
	return UserProfileInfo{
		UserPublicInfo: u.Public(),
		Email:          u.Email,
		Phone:          u.Phone,
		ProfileImage:   u.ProfileImage,
		Bio:            u.Bio,
		LastLogin:      u.LastLogin,
	}
}
