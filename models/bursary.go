// file: models/bursary.go
package models

import "time"

type BursaryStatus string

const (
	BursaryActive  BursaryStatus = "Active"
	BursaryClosed  BursaryStatus = "Closed"
	BursaryPending BursaryStatus = "Pending"
)

type Bursary struct {
	ID                  uint32        `gorm:"primarykey" json:"id"`
	Title               string        `gorm:"size:200;not null;index" json:"title"`
	BursaryType         string        `gorm:"size:100;not null;index" json:"bursary_type"`
	Description         string        `gorm:"type:text" json:"description"`
	Amount              *float64      `json:"amount"`
	Currency            string        `gorm:"size:10;default:'USD'" json:"currency"`
	CoverageType        string        `gorm:"size:100" json:"coverage_type"`
	EligibilityCriteria string        `gorm:"type:text" json:"eligibility_criteria"`
	ApplicationDeadline *time.Time    `gorm:"index" json:"application_deadline"`
	Provider            string        `gorm:"size:150;index" json:"provider"`
	ProviderLogo        string        `gorm:"size:500" json:"provider_logo"`
	ProviderWebsite     string        `gorm:"size:500" json:"provider_website"`
	EducationLevel      string        `gorm:"size:100" json:"education_level"`
	FieldOfStudy        string        `gorm:"size:150" json:"field_of_study"`
	AwardFrequency      string        `gorm:"size:50" json:"award_frequency"`
	NumberOfAwards      int           `gorm:"default:0" json:"number_of_awards"`
	Status              BursaryStatus `gorm:"size:20;default:'Active';index" json:"status"`
	IsFeatured          bool          `gorm:"default:false" json:"is_featured"`
	IsActive            bool          `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (Bursary) TableName() string {
	return "ueb_bursary"
}

type BursarySummary struct {
	ID          uint32        `json:"id"`
	Title       string        `json:"title"`
	BursaryType string        `json:"bursary_type"`
	Amount      *float64      `json:"amount"`
	Currency    string        `json:"currency"`
	Provider    string        `json:"provider"`
	Status      BursaryStatus `json:"status"`
	IsFeatured  bool          `json:"is_featured"`
	CreatedAt   time.Time     `json:"created_at"`
}

type BursaryDetail struct {
	BursarySummary
	Description         string     `json:"description"`
	CoverageType        string     `json:"coverage_type"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	ProviderLogo        string     `json:"provider_logo"`
	ProviderWebsite     string     `json:"provider_website"`
	EducationLevel      string     `json:"education_level"`
	FieldOfStudy        string     `json:"field_of_study"`
	AwardFrequency      string     `json:"award_frequency"`
	NumberOfAwards      int        `json:"number_of_awards"`
}

func (b *Bursary) Summary() BursarySummary {
	return BursarySummary{
		ID:          b.ID,
		Title:       b.Title,
		BursaryType: b.BursaryType,
		Amount:      b.Amount,
		Currency:    b.Currency,
		Provider:    b.Provider,
		Status:      b.Status,
		IsFeatured:  b.IsFeatured,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *Bursary) Detail() BursaryDetail {
	return BursaryDetail{
		BursarySummary:      b.Summary(),
		Description:         b.Description,
		CoverageType:        b.CoverageType,
		EligibilityCriteria: b.EligibilityCriteria,
		ApplicationDeadline: b.ApplicationDeadline,
		ProviderLogo:        b.ProviderLogo,
		ProviderWebsite:     b.ProviderWebsite,
		EducationLevel:      b.EducationLevel,
		FieldOfStudy:        b.FieldOfStudy,
		AwardFrequency:      b.AwardFrequency,
		NumberOfAwards:      b.NumberOfAwards,
	}
}
