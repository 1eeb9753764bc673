// file: mappers/school_mapper.go
package mappers

import (
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
	"gorm.io/datatypes"
)

func MapCreateSchoolReq(req dto.CreateSchoolReq) models.School {
	return models.School{
		Name:            req.Name,
		Location:        req.Location,
		City:            req.City,
		Country:         req.Country,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Students:        req.Students,
		Faculty:         req.Faculty,
		Image:           req.Image,
		Logo:            req.Logo,
		Established:     req.Established,
		Category:        req.Category,
		Programs:        datatypes.NewJSONSlice(req.Programs),
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Website:         req.Website,
		IsVerified:      req.IsVerified,
		IsActive:        true,
	}
}

// ApplySchoolUpdate 只覆盖负载中出现的字段
func ApplySchoolUpdate(school *models.School, req dto.UpdateSchoolReq) {
	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.Location != nil {
		school.Location = *req.Location
	}
	if req.City != nil {
		school.City = *req.City
	}
	if req.Country != nil {
		school.Country = *req.Country
	}
	if req.Description != nil {
		school.Description = *req.Description
	}
	if req.LongDescription != nil {
		school.LongDescription = *req.LongDescription
	}
	if req.Students != nil {
		school.Students = *req.Students
	}
	if req.Faculty != nil {
		school.Faculty = *req.Faculty
	}
	if req.Image != nil {
		school.Image = *req.Image
	}
	if req.Logo != nil {
		school.Logo = *req.Logo
	}
	if req.Established != nil {
		school.Established = req.Established
	}
	if req.Category != nil {
		school.Category = *req.Category
	}
	if req.Programs != nil {
		school.Programs = datatypes.NewJSONSlice(*req.Programs)
	}
	if req.ContactEmail != nil {
		school.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		school.ContactPhone = *req.ContactPhone
	}
	if req.Website != nil {
		school.Website = *req.Website
	}
	if req.IsVerified != nil {
		school.IsVerified = *req.IsVerified
	}
}
