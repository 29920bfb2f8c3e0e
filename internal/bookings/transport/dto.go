package transport

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents booking status values
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// IsValid checks if the status is a known value
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusScheduled, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// MeetingTypeResponse is a bookable meeting kind shown in the wizard's first step.
type MeetingTypeResponse struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
}

// TimeSlot is one offerable start time within a day.
type TimeSlot struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"` // local wall-clock, 15:04
}

// DaySlots groups the open slots of a single date.
type DaySlots struct {
	Date  string     `json:"date"` // 2006-01-02 in the studio timezone
	Slots []TimeSlot `json:"slots"`
}

// AvailableSlotsResponse is the payload for the public availability endpoint.
type AvailableSlotsResponse struct {
	Timezone string     `json:"timezone"`
	Days     []DaySlots `json:"days"`
}

// CreateBookingRequest is the terminal submit of the booking wizard. The
// idempotency key is minted client-side when the wizard starts, so a retried
// submit lands on the same booking row.
type CreateBookingRequest struct {
	IdempotencyKey string `json:"idempotencyKey" validate:"required,uuid"`
	MeetingTypeID  string `json:"meetingTypeId" validate:"required,max=64"`
	Date           string `json:"date" validate:"required"` // 2006-01-02
	Slot           string `json:"slot" validate:"required"` // 15:04

	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Company   string `json:"company" validate:"omitempty,max=200"`
	Notes     string `json:"notes" validate:"omitempty,max=2000"`
}

// BookingResponse is returned to the visitor on confirmation and to staff in
// the back office.
type BookingResponse struct {
	ID            uuid.UUID     `json:"id"`
	MeetingTypeID string        `json:"meetingTypeId"`
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	Status        BookingStatus `json:"status"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	Company       string        `json:"company,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ListBookingsRequest captures admin list filters.
type ListBookingsRequest struct {
	Status    *BookingStatus `form:"status"`
	StartFrom string         `form:"startFrom"` // 2006-01-02
	StartTo   string         `form:"startTo"`   // 2006-01-02
	Page      int            `form:"page"`
	PageSize  int            `form:"pageSize"`
}

// BookingListResponse is a paginated admin listing.
type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// UpdateBookingStatusRequest moves a booking between lifecycle statuses.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required"`
}
