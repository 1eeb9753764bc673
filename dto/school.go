// file: dto/school.go
package dto

// ========== 请求 DTO ==========

type CreateSchoolReq struct {
	Name            string   `json:"name" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Students        int      `json:"students"`
	Faculty         int      `json:"faculty"`
	Image           string   `json:"image"`
	Logo            string   `json:"logo"`
	Established     *int     `json:"established"`
	Programs        []string `json:"programs"`
	ContactEmail    string   `json:"contact_email"`
	ContactPhone    string   `json:"contact_phone"`
	Website         string   `json:"website"`
	IsVerified      bool     `json:"is_verified"`
}

// UpdateSchoolReq 全部为指针字段，只更新负载中出现的键
type UpdateSchoolReq struct {
	Name            *string   `json:"name"`
	Location        *string   `json:"location"`
	City            *string   `json:"city"`
	Country         *string   `json:"country"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	Students        *int      `json:"students"`
	Faculty         *int      `json:"faculty"`
	Image           *string   `json:"image"`
	Logo            *string   `json:"logo"`
	Established     *int      `json:"established"`
	Category        *string   `json:"category"`
	Programs        *[]string `json:"programs"`
	ContactEmail    *string   `json:"contact_email"`
	ContactPhone    *string   `json:"contact_phone"`
	Website         *string   `json:"website"`
	IsVerified      *bool     `json:"is_verified"`
}
