// file: models/agent.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type AgentStatus string
type VerificationStatus string

const (
	AgentActive    AgentStatus = "Active"
	AgentInactive  AgentStatus = "Inactive"
	AgentSuspended AgentStatus = "Suspended"

	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationRejected VerificationStatus = "Rejected"
)

type Agent struct {
	ID                   uint32             `gorm:"primarykey" json:"id"`
	Name                 string             `gorm:"size:120;not null;index" json:"name"`
	Email                string             `gorm:"size:120;index" json:"email"`
	PhoneNumber          string             `gorm:"size:20" json:"phone_number"`
	Organization         string             `gorm:"size:150;index" json:"organization"`
	Region               string             `gorm:"size:100;index" json:"region"`
	Country              string             `gorm:"size:100" json:"country"`
	PromoCode            string             `gorm:"size:50;unique;index" json:"promo_code"`
	CommissionPercentage float64            `gorm:"default:10" json:"commission_percentage"`
	StudentsReferred     int                `gorm:"default:0" json:"students_referred"`
	TotalEnrollments     int                `gorm:"default:0" json:"total_enrollments"`
	TotalCommission      float64            `gorm:"default:0" json:"total_commission"`
	ProfileImage         string             `gorm:"size:500" json:"profile_image"`
	Bio                  string             `gorm:"type:text" json:"bio"`
	Status               AgentStatus        `gorm:"size:20;default:'Active';index" json:"status"`
	VerificationStatus   VerificationStatus `gorm:"size:20;default:'Pending';index" json:"verification_status"`
	IsFeatured           bool               `gorm:"default:false" json:"is_featured"`
	IsActive             bool               `gorm:"default:true" json:"is_active"`
	Rating               float64            `gorm:"default:0" json:"rating"`
	TotalReviews         int                `gorm:"default:0" json:"total_reviews"`
	BankAccount          string             `gorm:"size:100" json:"-"`
	TaxID                string             `gorm:"size:50" json:"-"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
	LastActivity         *time.Time         `json:"last_activity,omitempty"`
}

func (Agent) TableName() string {
	return "ueb_agent"
}

// RecordReferral 由外部招生系统上报一次推荐，单条 UPDATE 原子累加各计数器
func (a *Agent) RecordReferral(db *gorm.DB, enrolled bool, commission float64) error {
	enrollInc := 0
	if enrolled {
		enrollInc = 1
	}
	return db.Exec(
		"UPDATE ueb_agent SET students_referred = students_referred + 1, total_enrollments = total_enrollments + ?, total_commission = total_commission + ?, last_activity = ?, updated_at = ? WHERE id = ?",
		enrollInc, commission, time.Now(), time.Now(), a.ID,
	).Error
}

type AgentSummary struct {
	ID               uint32      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Organization     string      `json:"organization"`
	Region           string      `json:"region"`
	PromoCode        string      `json:"promo_code"`
	StudentsReferred int         `json:"students_referred"`
	Status           AgentStatus `json:"status"`
	Rating           float64     `json:"rating"`
	IsFeatured       bool        `json:"is_featured"`
	CreatedAt        time.Time   `json:"created_at"`
}

type AgentDetail struct {
	AgentSummary
	PhoneNumber          string             `json:"phone_number"`
	Country              string             `json:"country"`
	CommissionPercentage float64            `json:"commission_percentage"`
	TotalEnrollments     int                `json:"total_enrollments"`
	TotalCommission      float64            `json:"total_commission"`
	ProfileImage         string             `json:"profile_image"`
	Bio                  string             `json:"bio"`
	VerificationStatus   VerificationStatus `json:"verification_status"`
	TotalReviews         int                `json:"total_reviews"`
}

func (a *Agent) Summary() AgentSummary {
	return AgentSummary{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Organization:     a.Organization,
		Region:           a.Region,
		PromoCode:        a.PromoCode,
		StudentsReferred: a.StudentsReferred,
		Status:           a.Status,
		Rating:           a.Rating,
		IsFeatured:       a.IsFeatured,
		CreatedAt:        a.CreatedAt,
	}
}

func (a *Agent) Detail() AgentDetail {
	return AgentDetail{
		AgentSummary:         a.Summary(),
		PhoneNumber:          a.PhoneNumber,
		Country:              a.Country,
		CommissionPercentage: a.CommissionPercentage,
		TotalEnrollments:     a.TotalEnrollments,
		TotalCommission:      a.TotalCommission,
		ProfileImage:         a.ProfileImage,
		Bio:                  a.Bio,
		VerificationStatus:   a.VerificationStatus,
		TotalReviews:         a.TotalReviews,
	}
}
