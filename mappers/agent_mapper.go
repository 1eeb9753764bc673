// file: mappers/agent_mapper.go
package mappers

import (
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
)

func MapCreateAgentReq(req dto.CreateAgentReq) models.Agent {
	commission := 10.0
	if req.CommissionPercentage != nil {
		commission = *req.CommissionPercentage
	}
	return models.Agent{
		Name:                 req.Name,
		Email:                req.Email,
		PhoneNumber:          req.Phone,
		Organization:         req.Organization,
		Region:               req.Region,
		Country:              req.Country,
		PromoCode:            req.PromoCode,
		CommissionPercentage: commission,
		ProfileImage:         req.ProfileImage,
		Bio:                  req.Bio,
		BankAccount:          req.BankAccount,
		TaxID:                req.TaxID,
		Status:               models.AgentActive,
		VerificationStatus:   models.VerificationPending,
		IsActive:             true,
	}
}

func ApplyAgentUpdate(agent *models.Agent, req dto.UpdateAgentReq) {
	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Email != nil {
		agent.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		agent.PhoneNumber = *req.PhoneNumber
	}
	if req.Organization != nil {
		agent.Organization = *req.Organization
	}
	if req.Region != nil {
		agent.Region = *req.Region
	}
	if req.Country != nil {
		agent.Country = *req.Country
	}
	if req.CommissionPercentage != nil {
		agent.CommissionPercentage = *req.CommissionPercentage
	}
	if req.ProfileImage != nil {
		agent.ProfileImage = *req.ProfileImage
	}
	if req.Bio != nil {
		agent.Bio = *req.Bio
	}
	if req.Status != nil {
		agent.Status = models.AgentStatus(*req.Status)
	}
	if req.VerificationStatus != nil {
		agent.VerificationStatus = models.VerificationStatus(*req.VerificationStatus)
	}
	if req.IsFeatured != nil {
		agent.IsFeatured = *req.IsFeatured
	}
}
