// file: dto/agent.go
package dto

type CreateAgentReq struct {
	Name                 string   `json:"name" binding:"required"`
	Email                string   `json:"email" binding:"required,email"`
	Phone                string   `json:"phone"`
	Organization         string   `json:"organization"`
	Region               string   `json:"region"`
	Country              string   `json:"country"`
	PromoCode            string   `json:"promo_code"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	ProfileImage         string   `json:"profile_image"`
	Bio                  string   `json:"bio"`
	BankAccount          string   `json:"bank_account"`
	TaxID                string   `json:"tax_id"`
}

type UpdateAgentReq struct {
	Name                 *string  `json:"name"`
	Email                *string  `json:"email"`
	PhoneNumber          *string  `json:"phone_number"`
	Organization         *string  `json:"organization"`
	Region               *string  `json:"region"`
	Country              *string  `json:"country"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	ProfileImage         *string  `json:"profile_image"`
	Bio                  *string  `json:"bio"`
	Status               *string  `json:"status"`
	VerificationStatus   *string  `json:"verification_status"`
	IsFeatured           *bool    `json:"is_featured"`
}

// ReferralReq 由外部招生系统上报一次推荐记录
type ReferralReq struct {
	Enrolled   bool    `json:"enrolled"`
	Commission float64 `json:"commission"`
}
