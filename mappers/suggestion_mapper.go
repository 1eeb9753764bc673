// file: mappers/suggestion_mapper.go
package mappers

import (
	"time"

	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
)

func MapCreateSuggestionReq(req dto.CreateSuggestionReq) models.Suggestion {
	priority := req.Priority
	if priority == "" {
		priority = "Normal"
	}
	return models.Suggestion{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Subject:        req.Subject,
		SuggestionType: req.SuggestionType,
		Message:        req.Message,
		Priority:       priority,
		Status:         models.SuggestionNew,
		AttachmentURL:  req.AttachmentURL,
	}
}

// ApplySuggestionUpdate 填入回复内容时同时落下回复时间
func ApplySuggestionUpdate(s *models.Suggestion, req dto.UpdateSuggestionReq) {
	if req.Status != nil {
		s.Status = models.SuggestionStatus(*req.Status)
	}
	if req.Priority != nil {
		s.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		s.AssignedTo = *req.AssignedTo
	}
	if req.Response != nil {
		s.Response = *req.Response
		now := time.Now()
		s.RespondedAt = &now
	}
	if req.IsPublic != nil {
		s.IsPublic = *req.IsPublic
	}
	if req.Rating != nil {
		s.Rating = req.Rating
	}
}
