// file: models/event.go
package models

import "time"

type EventStatus string

const (
	EventUpcoming  EventStatus = "Upcoming"
	EventOngoing   EventStatus = "Ongoing"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

type Event struct {
	ID              uint32      `gorm:"primarykey" json:"id"`
	Title           string      `gorm:"size:200;not null;index" json:"title"`
	Description     string      `gorm:"type:text" json:"description"`
	EventType       string      `gorm:"size:50" json:"event_type"`
	Date            time.Time   `gorm:"not null;index" json:"date"`
	EndDate         *time.Time  `json:"end_date"`
	Venue           string      `gorm:"size:200" json:"venue"`
	Location        string      `gorm:"size:150" json:"location"`
	Capacity        int         `gorm:"default:0" json:"capacity"`
	RegisteredCount int         `gorm:"default:0" json:"registered_count"`
	Image           string      `gorm:"size:500" json:"image"`
	Organizer       string      `gorm:"size:150" json:"organizer"`
	ContactEmail    string      `gorm:"size:120" json:"contact_email"`
	ContactPhone    string      `gorm:"size:20" json:"contact_phone"`
	Status          EventStatus `gorm:"size:20;default:'Upcoming';index" json:"status"`
	IsFeatured      bool        `gorm:"default:false" json:"is_featured"`
	IsActive        bool        `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Event) TableName() string {
	return "ueb_event"
}

type EventSummary struct {
	ID         uint32      `json:"id"`
	Title      string      `json:"title"`
	Date       time.Time   `json:"date"`
	Venue      string      `json:"venue"`
	Location   string      `json:"location"`
	Status     EventStatus `json:"status"`
	Image      string      `json:"image"`
	IsFeatured bool        `json:"is_featured"`
}

type EventDetail struct {
	EventSummary
	Description     string     `json:"description"`
	EventType       string     `json:"event_type"`
	EndDate         *time.Time `json:"end_date"`
	Capacity        int        `json:"capacity"`
	RegisteredCount int        `json:"registered_count"`
	Organizer       string     `json:"organizer"`
	ContactEmail    string     `json:"contact_email"`
	ContactPhone    string     `json:"contact_phone"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (e *Event) Summary() EventSummary {
	return EventSummary{
		ID:         e.ID,
		Title:      e.Title,
		Date:       e.Date,
		Venue:      e.Venue,
		Location:   e.Location,
		Status:     e.Status,
		Image:      e.Image,
		IsFeatured: e.IsFeatured,
	}
}

func (e *Event) Detail() EventDetail {
	return EventDetail{
		EventSummary:    e.Summary(),
		Description:     e.Description,
		EventType:       e.EventType,
		EndDate:         e.EndDate,
		Capacity:        e.Capacity,
		RegisteredCount: e.RegisteredCount,
		Organizer:       e.Organizer,
		ContactEmail:    e.ContactEmail,
		ContactPhone:    e.ContactPhone,
		CreatedAt:       e.CreatedAt,
	}
}
