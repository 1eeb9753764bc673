// file: dto/suggestion.go
package dto

// CreateSuggestionReq 匿名提交:只要求姓名、邮箱和正文
type CreateSuggestionReq struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Subject        string `json:"subject"`
	SuggestionType string `json:"suggestion_type"`
	Message        string `json:"message" binding:"required"`
	Priority       string `json:"priority"`
	AttachmentURL  string `json:"attachment_url"`
}

// UpdateSuggestionReq 管理端处理用的部分更新
type UpdateSuggestionReq struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *string `json:"assigned_to"`
	Response   *string `json:"response"`
	IsPublic   *bool   `json:"is_public"`
	Rating     *int    `json:"rating"`
}
