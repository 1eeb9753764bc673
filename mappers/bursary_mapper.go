// file: mappers/bursary_mapper.go
package mappers

import (
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
)

func MapCreateBursaryReq(req dto.CreateBursaryReq) models.Bursary {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return models.Bursary{
		Title:               req.Title,
		BursaryType:         req.BursaryType,
		Description:         req.Description,
		Amount:              req.Amount,
		Currency:            currency,
		CoverageType:        req.CoverageType,
		EligibilityCriteria: req.EligibilityCriteria,
		ApplicationDeadline: req.ApplicationDeadline,
		Provider:            req.Provider,
		ProviderLogo:        req.ProviderLogo,
		ProviderWebsite:     req.ProviderWebsite,
		EducationLevel:      req.EducationLevel,
		FieldOfStudy:        req.FieldOfStudy,
		AwardFrequency:      req.AwardFrequency,
		NumberOfAwards:      req.NumberOfAwards,
		Status:              models.BursaryActive,
		IsFeatured:          req.IsFeatured,
		IsActive:            true,
	}
}

func ApplyBursaryUpdate(bursary *models.Bursary, req dto.UpdateBursaryReq) {
	if req.Title != nil {
		bursary.Title = *req.Title
	}
	if req.BursaryType != nil {
		bursary.BursaryType = *req.BursaryType
	}
	if req.Description != nil {
		bursary.Description = *req.Description
	}
	if req.Amount != nil {
		bursary.Amount = req.Amount
	}
	if req.Currency != nil {
		bursary.Currency = *req.Currency
	}
	if req.CoverageType != nil {
		bursary.CoverageType = *req.CoverageType
	}
	if req.EligibilityCriteria != nil {
		bursary.EligibilityCriteria = *req.EligibilityCriteria
	}
	if req.ApplicationDeadline != nil {
		bursary.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Provider != nil {
		bursary.Provider = *req.Provider
	}
	if req.ProviderLogo != nil {
		bursary.ProviderLogo = *req.ProviderLogo
	}
	if req.ProviderWebsite != nil {
		bursary.ProviderWebsite = *req.ProviderWebsite
	}
	if req.EducationLevel != nil {
		bursary.EducationLevel = *req.EducationLevel
	}
	if req.FieldOfStudy != nil {
		bursary.FieldOfStudy = *req.FieldOfStudy
	}
	if req.AwardFrequency != nil {
		bursary.AwardFrequency = *req.AwardFrequency
	}
	if req.NumberOfAwards != nil {
		bursary.NumberOfAwards = *req.NumberOfAwards
	}
	if req.Status != nil {
		bursary.Status = models.BursaryStatus(*req.Status)
	}
	if req.IsFeatured != nil {
		bursary.IsFeatured = *req.IsFeatured
	}
}
