// file: dto/job.go
package dto

import "time"

type CreateJobReq struct {
	Title           string     `json:"title" binding:"required"`
	Company         string     `json:"company" binding:"required"`
	Description     string     `json:"description"`
	Requirements    string     `json:"requirements"`
	Location        string     `json:"location"`
	JobType         string     `json:"job_type"`
	SalaryMin       *float64   `json:"salary_min"`
	SalaryMax       *float64   `json:"salary_max"`
	Currency        string     `json:"currency"`
	ExperienceLevel string     `json:"experience_level"`
	Deadline        *time.Time `json:"deadline"`
	CompanyLogo     string     `json:"company_logo"`
	CompanyWebsite  string     `json:"company_website"`
	IsFeatured      bool       `json:"is_featured"`
}

type UpdateJobReq struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Requirements    *string    `json:"requirements"`
	Location        *string    `json:"location"`
	JobType         *string    `json:"job_type"`
	Company         *string    `json:"company"`
	SalaryMin       *float64   `json:"salary_min"`
	SalaryMax       *float64   `json:"salary_max"`
	Currency        *string    `json:"currency"`
	ExperienceLevel *string    `json:"experience_level"`
	Deadline        *time.Time `json:"deadline"`
	Status          *string    `json:"status"`
	IsFeatured      *bool      `json:"is_featured"`
}
