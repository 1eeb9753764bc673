// file: models/past_paper.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type PastPaper struct {
	ID              uint32    `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"size:200;not null;index" json:"title"`
	Subject         string    `gorm:"size:100;not null;index" json:"subject"`
	SubjectCode     string    `gorm:"size:50" json:"subject_code"`
	Year            int       `gorm:"not null;index" json:"year"`
	ExamBoard       string    `gorm:"size:100" json:"exam_board"`
	Category        string    `gorm:"size:50;not null;index" json:"category"`
	Level           string    `gorm:"size:50" json:"level"`
	PaperNumber     *int      `json:"paper_number"`
	Duration        string    `gorm:"size:50" json:"duration"`
	FileURL         string    `gorm:"size:500" json:"file_url"`
	DownloadURL     string    `gorm:"size:500" json:"download_url"`
	SolutionURL     string    `gorm:"size:500" json:"solution_url"`
	FileSize        string    `gorm:"size:50" json:"file_size"`
	FileType        string    `gorm:"size:20" json:"file_type"`
	DownloadCount   int       `gorm:"default:0" json:"download_count"`
	Rating          float64   `gorm:"default:0" json:"rating"`
	TotalReviews    int       `gorm:"default:0" json:"total_reviews"`
	DifficultyLevel string    `gorm:"size:50" json:"difficulty_level"`
	IsFeatured      bool      `gorm:"default:false" json:"is_featured"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	Provider        string    `gorm:"size:150" json:"provider"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PastPaper) TableName() string {
	return "ueb_past_paper"
}

// IncrementDownloadCount 原子自增下载计数
func (p *PastPaper) IncrementDownloadCount(db *gorm.DB) error {
	return db.Model(p).UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

// UpdateRating 以单条 UPDATE 语句追加一条评分，避免读-改-写竞态。
// rating 赋值在 total_reviews 自增之前，两列都基于旧值计算。
func (p *PastPaper) UpdateRating(db *gorm.DB, value float64) error {
	return db.Exec(
		"UPDATE ueb_past_paper SET rating = (rating * total_reviews + ?) / (total_reviews + 1), total_reviews = total_reviews + 1, updated_at = ? WHERE id = ?",
		value, time.Now(), p.ID,
	).Error
}

type PastPaperSummary struct {
	ID            uint32  `json:"id"`
	Title         string  `json:"title"`
	Subject       string  `json:"subject"`
	Year          int     `json:"year"`
	Category      string  `json:"category"`
	Level         string  `json:"level"`
	DownloadURL   string  `json:"download_url"`
	IsFeatured    bool    `json:"is_featured"`
	Rating        float64 `json:"rating"`
	DownloadCount int     `json:"download_count"`
}

type PastPaperDetail struct {
	PastPaperSummary
	SubjectCode     string `json:"subject_code"`
	ExamBoard       string `json:"exam_board"`
	PaperNumber     *int   `json:"paper_number"`
	Duration        string `json:"duration"`
	FileSize        string `json:"file_size"`
	FileType        string `json:"file_type"`
	TotalReviews    int    `json:"total_reviews"`
	DifficultyLevel string `json:"difficulty_level"`
	Provider        string `json:"provider"`
}

func (p *PastPaper) Summary() PastPaperSummary {
	return PastPaperSummary{
		ID:            p.ID,
		Title:         p.Title,
		Subject:       p.Subject,
		Year:          p.Year,
		Category:      p.Category,
		Level:         p.Level,
		DownloadURL:   p.DownloadURL,
		IsFeatured:    p.IsFeatured,
		Rating:        p.Rating,
		DownloadCount: p.DownloadCount,
	}
}

func (p *PastPaper) Detail() PastPaperDetail {
	return PastPaperDetail{
		PastPaperSummary: p.Summary(),
		SubjectCode:      p.SubjectCode,
		ExamBoard:        p.ExamBoard,
		PaperNumber:      p.PaperNumber,
		Duration:         p.Duration,
		FileSize:         p.FileSize,
		FileType:         p.FileType,
		TotalReviews:     p.TotalReviews,
		DifficultyLevel:  p.DifficultyLevel,
		Provider:         p.Provider,
	}
}
