// file: models/job.go
package models

import "time"

type JobStatus string

const (
	JobActive JobStatus = "Active"
	JobClosed JobStatus = "Closed"
	JobFilled JobStatus = "Filled"
)

type Job struct {
	ID                uint32     `gorm:"primarykey" json:"id"`
	Title             string     `gorm:"size:200;not null;index" json:"title"`
	Description       string     `gorm:"type:text" json:"description"`
	Requirements      string     `gorm:"type:text" json:"requirements"`
	Location          string     `gorm:"size:150;index" json:"location"`
	JobType           string     `gorm:"size:50" json:"job_type"`
	Company           string     `gorm:"size:150;index" json:"company"`
	SalaryMin         *float64   `json:"salary_min"`
	SalaryMax         *float64   `json:"salary_max"`
	Currency          string     `gorm:"size:10;default:'USD'" json:"currency"`
	ExperienceLevel   string     `gorm:"size:50" json:"experience_level"`
	Deadline          *time.Time `gorm:"index" json:"deadline"`
	Status            JobStatus  `gorm:"size:20;default:'Active';index" json:"status"`
	ApplicationsCount int        `gorm:"default:0" json:"applications_count"`
	IsFeatured        bool       `gorm:"default:false" json:"is_featured"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	CompanyLogo       string     `gorm:"size:500" json:"company_logo"`
	CompanyWebsite    string     `gorm:"size:500" json:"company_website"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Job) TableName() string {
	return "ueb_job"
}

type JobSummary struct {
	ID         uint32    `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	JobType    string    `json:"job_type"`
	Status     JobStatus `json:"status"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobDetail struct {
	JobSummary
	Description       string     `json:"description"`
	Requirements      string     `json:"requirements"`
	SalaryMin         *float64   `json:"salary_min"`
	SalaryMax         *float64   `json:"salary_max"`
	Currency          string     `json:"currency"`
	ExperienceLevel   string     `json:"experience_level"`
	Deadline          *time.Time `json:"deadline"`
	ApplicationsCount int        `json:"applications_count"`
	CompanyLogo       string     `json:"company_logo"`
	CompanyWebsite    string     `json:"company_website"`
}

func (j *Job) Summary() JobSummary {
	return JobSummary{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		JobType:    j.JobType,
		Status:     j.Status,
		IsFeatured: j.IsFeatured,
		CreatedAt:  j.CreatedAt,
	}
}

func (j *Job) Detail() JobDetail {
	return JobDetail{
		JobSummary:        j.Summary(),
		Description:       j.Description,
		Requirements:      j.Requirements,
		SalaryMin:         j.SalaryMin,
		SalaryMax:         j.SalaryMax,
		Currency:          j.Currency,
		ExperienceLevel:   j.ExperienceLevel,
		Deadline:          j.Deadline,
		ApplicationsCount: j.ApplicationsCount,
		CompanyLogo:       j.CompanyLogo,
		CompanyWebsite:    j.CompanyWebsite,
	}
}
