package events

import (
	"time"

	"webforge_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Quotes Domain Events
// =============================================================================

// QuoteSubmitted is published when a visitor submits a quote request.
type QuoteSubmitted struct {
	BaseEvent
	QuoteID      uuid.UUID `json:"quoteId"`
	ServiceID    string    `json:"serviceId"`
	ServiceLabel string    `json:"serviceLabel"`
	TotalMinor   int64     `json:"totalMinor"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
}

func (e QuoteSubmitted) EventName() string { return "quotes.submitted" }

// QuoteStatusChanged is published when staff move a quote through the pipeline.
type QuoteStatusChanged struct {
	BaseEvent
	QuoteID   uuid.UUID `json:"quoteId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedBy uuid.UUID `json:"changedBy"`
}

func (e QuoteStatusChanged) EventName() string { return "quotes.status.changed" }

// =============================================================================
// Bookings Domain Events
// =============================================================================

// BookingConfirmed is published when a booking insert succeeds.
type BookingConfirmed struct {
	BaseEvent
	BookingID        uuid.UUID `json:"bookingId"`
	MeetingTypeID    string    `json:"meetingTypeId"`
	MeetingTypeLabel string    `json:"meetingTypeLabel"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	ContactName      string    `json:"contactName"`
	ContactEmail     string    `json:"contactEmail"`
}

func (e BookingConfirmed) EventName() string { return "bookings.confirmed" }

// BookingStatusChanged is published when staff update a booking's status.
type BookingStatusChanged struct {
	BaseEvent
	BookingID uuid.UUID `json:"bookingId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedBy uuid.UUID `json:"changedBy"`
}

func (e BookingStatusChanged) EventName() string { return "bookings.status.changed" }

// BookingReminderDue is published by the worker when a scheduled booking's
// reminder task fires, 24 hours before the meeting starts.
type BookingReminderDue struct {
	BaseEvent
	BookingID        uuid.UUID `json:"bookingId"`
	MeetingTypeID    string    `json:"meetingTypeId"`
	MeetingTypeLabel string    `json:"meetingTypeLabel"`
	StartTime        time.Time `json:"startTime"`
	ContactName      string    `json:"contactName"`
	ContactEmail     string    `json:"contactEmail"`
}

func (e BookingReminderDue) EventName() string { return "bookings.reminder.due" }

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a visitor submits the contact form.
type LeadCreated struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	Topic        string    `json:"topic"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
}

func (e LeadCreated) EventName() string { return "leads.created" }
