// file: mappers/job_mapper.go
package mappers

import (
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
)

func MapCreateJobReq(req dto.CreateJobReq) models.Job {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		JobType:         req.JobType,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Currency:        currency,
		ExperienceLevel: req.ExperienceLevel,
		Deadline:        req.Deadline,
		Status:          models.JobActive,
		CompanyLogo:     req.CompanyLogo,
		CompanyWebsite:  req.CompanyWebsite,
		IsFeatured:      req.IsFeatured,
		IsActive:        true,
	}
}

func ApplyJobUpdate(job *models.Job, req dto.UpdateJobReq) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Currency != nil {
		job.Currency = *req.Currency
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}
	if req.IsFeatured != nil {
		job.IsFeatured = *req.IsFeatured
	}
}
