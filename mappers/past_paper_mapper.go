// file: mappers/past_paper_mapper.go
package mappers

import (
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
)

func MapCreatePastPaperReq(req dto.CreatePastPaperReq) models.PastPaper {
	return models.PastPaper{
		Title:           req.Title,
		Subject:         req.Subject,
		SubjectCode:     req.SubjectCode,
		Year:            req.Year,
		ExamBoard:       req.ExamBoard,
		Category:        req.Category,
		Level:           req.Level,
		PaperNumber:     req.PaperNumber,
		Duration:        req.Duration,
		FileURL:         req.FileURL,
		DownloadURL:     req.DownloadURL,
		SolutionURL:     req.SolutionURL,
		FileSize:        req.FileSize,
		FileType:        req.FileType,
		DifficultyLevel: req.DifficultyLevel,
		Provider:        req.Provider,
		IsFeatured:      req.IsFeatured,
		IsActive:        true,
	}
}

func ApplyPastPaperUpdate(paper *models.PastPaper, req dto.UpdatePastPaperReq) {
	if req.Title != nil {
		paper.Title = *req.Title
	}
	if req.Subject != nil {
		paper.Subject = *req.Subject
	}
	if req.SubjectCode != nil {
		paper.SubjectCode = *req.SubjectCode
	}
	if req.Year != nil {
		paper.Year = *req.Year
	}
	if req.ExamBoard != nil {
		paper.ExamBoard = *req.ExamBoard
	}
	if req.Category != nil {
		paper.Category = *req.Category
	}
	if req.Level != nil {
		paper.Level = *req.Level
	}
	if req.PaperNumber != nil {
		paper.PaperNumber = req.PaperNumber
	}
	if req.Duration != nil {
		paper.Duration = *req.Duration
	}
	if req.FileURL != nil {
		paper.FileURL = *req.FileURL
	}
	if req.DownloadURL != nil {
		paper.DownloadURL = *req.DownloadURL
	}
	if req.SolutionURL != nil {
		paper.SolutionURL = *req.SolutionURL
	}
	if req.FileSize != nil {
		paper.FileSize = *req.FileSize
	}
	if req.FileType != nil {
		paper.FileType = *req.FileType
	}
	if req.DifficultyLevel != nil {
		paper.DifficultyLevel = *req.DifficultyLevel
	}
	if req.Provider != nil {
		paper.Provider = *req.Provider
	}
	if req.IsFeatured != nil {
		paper.IsFeatured = *req.IsFeatured
	}
}
