// file: dto/past_paper.go
package dto

type CreatePastPaperReq struct {
	Title           string `json:"title" binding:"required"`
	Subject         string `json:"subject" binding:"required"`
	Year            int    `json:"year" binding:"required"`
	Category        string `json:"category" binding:"required"`
	SubjectCode     string `json:"subject_code"`
	ExamBoard       string `json:"exam_board"`
	Level           string `json:"level"`
	PaperNumber     *int   `json:"paper_number"`
	Duration        string `json:"duration"`
	FileURL         string `json:"file_url"`
	DownloadURL     string `json:"download_url"`
	SolutionURL     string `json:"solution_url"`
	FileSize        string `json:"file_size"`
	FileType        string `json:"file_type"`
	DifficultyLevel string `json:"difficulty_level"`
	Provider        string `json:"provider"`
	IsFeatured      bool   `json:"is_featured"`
}

type UpdatePastPaperReq struct {
	Title           *string `json:"title"`
	Subject         *string `json:"subject"`
	SubjectCode     *string `json:"subject_code"`
	Year            *int    `json:"year"`
	ExamBoard       *string `json:"exam_board"`
	Category        *string `json:"category"`
	Level           *string `json:"level"`
	PaperNumber     *int    `json:"paper_number"`
	Duration        *string `json:"duration"`
	FileURL         *string `json:"file_url"`
	DownloadURL     *string `json:"download_url"`
	SolutionURL     *string `json:"solution_url"`
	FileSize        *string `json:"file_size"`
	FileType        *string `json:"file_type"`
	DifficultyLevel *string `json:"difficulty_level"`
	Provider        *string `json:"provider"`
	IsFeatured      *bool   `json:"is_featured"`
}

// RateReq 对学校或真题追加一条 1-5 星评分
type RateReq struct {
	Rating float64 `json:"rating" binding:"required,min=1,max=5"`
}
