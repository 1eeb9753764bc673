// file: models/school.go
package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchoolCategories 固定的学校分类列表
var SchoolCategories = []string{"Kindergarten", "Nursery", "Primary", "Secondary", "Technical", "University"}

type School struct {
	ID              uint32                       `gorm:"primarykey" json:"id"`
	Name            string                       `gorm:"size:150;not null;index" json:"name"`
	Location        string                       `gorm:"size:150;not null" json:"location"`
	City            string                       `gorm:"size:100;index" json:"city"`
	Country         string                       `gorm:"size:100" json:"country"`
	Description     string                       `gorm:"type:text" json:"description"`
	LongDescription string                       `gorm:"type:text" json:"long_description"`
	Students        int                          `gorm:"default:0" json:"students"`
	Faculty         int                          `gorm:"default:0" json:"faculty"`
	Image           string                       `gorm:"size:500" json:"image"`
	Logo            string                       `gorm:"size:500" json:"logo"`
	Established     *int                         `json:"established"`
	Category        string                       `gorm:"size:50;not null;index" json:"category"`
	Programs        datatypes.JSONSlice[string]  `json:"programs"`
	ContactEmail    string                       `gorm:"size:120" json:"contact_email"`
	ContactPhone    string                       `gorm:"size:20" json:"contact_phone"`
	Website         string                       `gorm:"size:500" json:"website"`
	Rating          float64                      `gorm:"default:0" json:"rating"`
	TotalReviews    int                          `gorm:"default:0" json:"total_reviews"`
	IsVerified      bool                         `gorm:"default:false" json:"is_verified"`
	IsActive        bool                         `gorm:"default:true;index" json:"is_active"`
	MetaKeywords    string                       `gorm:"size:500" json:"-"`
	MetaDescription string                       `gorm:"type:text" json:"-"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

func (School) TableName() string {
	return "ueb_school"
}

// UpdateRating 以单条 UPDATE 语句追加一条评分，避免读-改-写竞态。
// rating 赋值在 total_reviews 自增之前，两列都基于旧值计算。
func (s *School) UpdateRating(db *gorm.DB, value float64) error {
	return db.Exec(
		"UPDATE ueb_school SET rating = (rating * total_reviews + ?) / (total_reviews + 1), total_reviews = total_reviews + 1, updated_at = ? WHERE id = ?",
		value, time.Now(), s.ID,
	).Error
}

// 列表与详情两种序列化结构
type SchoolSummary struct {
	ID          uint32    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	Students    int       `json:"students"`
	Image       string    `json:"image"`
	Established *int      `json:"established"`
	Category    string    `json:"category"`
	Programs    []string  `json:"programs"`
	Rating      float64   `json:"rating"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

type SchoolDetail struct {
	SchoolSummary
	LongDescription string `json:"long_description"`
	Faculty         int    `json:"faculty"`
	Logo            string `json:"logo"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	Website         string `json:"website"`
	TotalReviews    int    `json:"total_reviews"`
	IsActive        bool   `json:"is_active"`
}

func (s *School) Summary() SchoolSummary {
	programs := []string(s.Programs)
	if programs == nil {
		programs = []string{}
	}
	return SchoolSummary{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		City:        s.City,
		Country:     s.Country,
		Description: s.Description,
		Students:    s.Students,
		Image:       s.Image,
		Established: s.Established,
		Category:    s.Category,
		Programs:    programs,
		Rating:      s.Rating,
		IsVerified:  s.IsVerified,
		CreatedAt:   s.CreatedAt,
	}
}

func (s *School) Detail() SchoolDetail {
	return SchoolDetail{
		SchoolSummary:   s.Summary(),
		LongDescription: s.LongDescription,
		Faculty:         s.Faculty,
		Logo:            s.Logo,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		Website:         s.Website,
		TotalReviews:    s.TotalReviews,
		IsActive:        s.IsActive,
	}
}

// ValidCategory 校验分类取值
func ValidCategory(category string) error {
	for _, c := range SchoolCategories {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("invalid category: %s", category)
}
