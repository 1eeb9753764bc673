// file: dto/bursary.go
package dto

import "time"

type CreateBursaryReq struct {
	Title               string     `json:"title" binding:"required"`
	BursaryType         string     `json:"bursary_type" binding:"required"`
	Description         string     `json:"description"`
	Amount              *float64   `json:"amount"`
	Currency            string     `json:"currency"`
	CoverageType        string     `json:"coverage_type"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Provider            string     `json:"provider"`
	ProviderLogo        string     `json:"provider_logo"`
	ProviderWebsite     string     `json:"provider_website"`
	EducationLevel      string     `json:"education_level"`
	FieldOfStudy        string     `json:"field_of_study"`
	AwardFrequency      string     `json:"award_frequency"`
	NumberOfAwards      int        `json:"number_of_awards"`
	IsFeatured          bool       `json:"is_featured"`
}

type UpdateBursaryReq struct {
	Title               *string    `json:"title"`
	BursaryType         *string    `json:"bursary_type"`
	Description         *string    `json:"description"`
	Amount              *float64   `json:"amount"`
	Currency            *string    `json:"currency"`
	CoverageType        *string    `json:"coverage_type"`
	EligibilityCriteria *string    `json:"eligibility_criteria"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Provider            *string    `json:"provider"`
	ProviderLogo        *string    `json:"provider_logo"`
	ProviderWebsite     *string    `json:"provider_website"`
	EducationLevel      *string    `json:"education_level"`
	FieldOfStudy        *string    `json:"field_of_study"`
	AwardFrequency      *string    `json:"award_frequency"`
	NumberOfAwards      *int       `json:"number_of_awards"`
	Status              *string    `json:"status"`
	IsFeatured          *bool      `json:"is_featured"`
}
