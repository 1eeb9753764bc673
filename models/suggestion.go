// file: models/suggestion.go
package models

import "time"

type SuggestionStatus string

const (
	SuggestionNew        SuggestionStatus = "New"
	SuggestionInReview   SuggestionStatus = "In Review"
	SuggestionInProgress SuggestionStatus = "In Progress"
	SuggestionCompleted  SuggestionStatus = "Completed"
	SuggestionRejected   SuggestionStatus = "Rejected"
)

// Suggestion 是唯一允许匿名写入、且删除为硬删除的资源
type Suggestion struct {
	ID             uint32           `gorm:"primarykey" json:"id"`
	Name           string           `gorm:"size:120;not null" json:"name"`
	Email          string           `gorm:"size:120;not null;index" json:"email"`
	Phone          string           `gorm:"size:20" json:"phone"`
	Subject        string           `gorm:"size:200" json:"subject"`
	SuggestionType string           `gorm:"size:50" json:"suggestion_type"`
	Message        string           `gorm:"type:text;not null" json:"message"`
	Priority       string           `gorm:"size:20;default:'Normal';index" json:"priority"`
	Status         SuggestionStatus `gorm:"size:20;default:'New';index" json:"status"`
	AssignedTo     string           `gorm:"size:120" json:"assigned_to"`
	Response       string           `gorm:"type:text" json:"response"`
	RespondedAt    *time.Time       `json:"responded_at"`
	IsPublic       bool             `gorm:"default:false" json:"is_public"`
	Rating         *int             `json:"rating"`
	AttachmentURL  string           `gorm:"size:500" json:"attachment_url"`
	CreatedAt      time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (Suggestion) TableName() string {
	return "ueb_suggestion"
}

type SuggestionSummary struct {
	ID             uint32           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Subject        string           `json:"subject"`
	SuggestionType string           `json:"suggestion_type"`
	Message        string           `json:"message"`
	Status         SuggestionStatus `json:"status"`
	Priority       string           `json:"priority"`
	Rating         *int             `json:"rating"`
	CreatedAt      time.Time        `json:"created_at"`
}

type SuggestionDetail struct {
	SuggestionSummary
	Phone         string     `json:"phone"`
	AssignedTo    string     `json:"assigned_to"`
	Response      string     `json:"response"`
	RespondedAt   *time.Time `json:"responded_at"`
	IsPublic      bool       `json:"is_public"`
	AttachmentURL string     `json:"attachment_url"`
}

func (s *Suggestion) Summary() SuggestionSummary {
	return SuggestionSummary{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		Subject:        s.Subject,
		SuggestionType: s.SuggestionType,
		Message:        s.Message,
		Status:         s.Status,
		Priority:       s.Priority,
		Rating:         s.Rating,
		CreatedAt:      s.CreatedAt,
	}
}

func (s *Suggestion) Detail() SuggestionDetail {
	return SuggestionDetail{
		SuggestionSummary: s.Summary(),
		Phone:             s.Phone,
		AssignedTo:        s.AssignedTo,
		Response:          s.Response,
		RespondedAt:       s.RespondedAt,
		IsPublic:          s.IsPublic,
		AttachmentURL:     s.AttachmentURL,
	}
}
