// Package email renders and delivers transactional mail for bookings,
// quotes and leads.
package email

import (
	"context"
	"time"
)

// BookingEmailData carries the booking fields shared by the confirmation
// and reminder mails.
type BookingEmailData struct {
	ContactName      string
	MeetingTypeLabel string
	StartTime        time.Time
	Timezone         *time.Location
}

// QuoteEmailData carries the fields for the back-office quote notification.
type QuoteEmailData struct {
	ContactName  string
	ContactEmail string
	ServiceLabel string
	TotalMinor   int64
	PageCount    int
}

// LeadEmailData carries the fields for the back-office lead notification.
type LeadEmailData struct {
	ContactName  string
	ContactEmail string
	Topic        string
	Message      string
}

type Sender interface {
	SendBookingConfirmationEmail(ctx context.Context, toEmail string, data BookingEmailData) error
	SendBookingReminderEmail(ctx context.Context, toEmail string, data BookingEmailData) error
	SendQuoteReceivedEmail(ctx context.Context, toEmail string, data QuoteEmailData) error
	SendLeadReceivedEmail(ctx context.Context, toEmail string, data LeadEmailData) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// NoopSender satisfies Sender without delivering anything. Used when email
// is disabled in configuration.
type NoopSender struct{}

func (NoopSender) SendBookingConfirmationEmail(ctx context.Context, toEmail string, data BookingEmailData) error {
	return nil
}

func (NoopSender) SendBookingReminderEmail(ctx context.Context, toEmail string, data BookingEmailData) error {
	return nil
}

func (NoopSender) SendQuoteReceivedEmail(ctx context.Context, toEmail string, data QuoteEmailData) error {
	return nil
}

func (NoopSender) SendLeadReceivedEmail(ctx context.Context, toEmail string, data LeadEmailData) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

var _ Sender = NoopSender{}
