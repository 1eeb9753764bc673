// file: dto/event.go
package dto

import "time"

type CreateEventReq struct {
	Title        string     `json:"title" binding:"required"`
	Date         *time.Time `json:"date" binding:"required"`
	Description  string     `json:"description"`
	EventType    string     `json:"event_type"`
	EndDate      *time.Time `json:"end_date"`
	Venue        string     `json:"venue"`
	Location     string     `json:"location"`
	Capacity     int        `json:"capacity"`
	Image        string     `json:"image"`
	Organizer    string     `json:"organizer"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone string     `json:"contact_phone"`
	IsFeatured   bool       `json:"is_featured"`
}

type UpdateEventReq struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	EventType    *string    `json:"event_type"`
	Date         *time.Time `json:"date"`
	EndDate      *time.Time `json:"end_date"`
	Venue        *string    `json:"venue"`
	Location     *string    `json:"location"`
	Capacity     *int       `json:"capacity"`
	Image        *string    `json:"image"`
	Organizer    *string    `json:"organizer"`
	ContactEmail *string    `json:"contact_email"`
	ContactPhone *string    `json:"contact_phone"`
	Status       *string    `json:"status"`
	IsFeatured   *bool      `json:"is_featured"`
}
