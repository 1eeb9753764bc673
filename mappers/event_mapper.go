// file: mappers/event_mapper.go
package mappers

import (
	"github.com/Julius10-hub/UEB/dto"
	"github.com/Julius10-hub/UEB/models"
)

func MapCreateEventReq(req dto.CreateEventReq) models.Event {
	return models.Event{
		Title:        req.Title,
		Description:  req.Description,
		EventType:    req.EventType,
		Date:         *req.Date,
		EndDate:      req.EndDate,
		Venue:        req.Venue,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Image:        req.Image,
		Organizer:    req.Organizer,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       models.EventUpcoming,
		IsFeatured:   req.IsFeatured,
		IsActive:     true,
	}
}

func ApplyEventUpdate(event *models.Event, req dto.UpdateEventReq) {
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.Organizer != nil {
		event.Organizer = *req.Organizer
	}
	if req.ContactEmail != nil {
		event.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		event.ContactPhone = *req.ContactPhone
	}
	if req.Status != nil {
		event.Status = models.EventStatus(*req.Status)
	}
	if req.IsFeatured != nil {
		event.IsFeatured = *req.IsFeatured
	}
}
