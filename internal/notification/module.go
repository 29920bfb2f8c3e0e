// Package notification sends transactional email in response to domain
// events. Domain modules publish events; this module owns the mapping to
// templates and recipients so they never touch the email provider.
package notification

import (
	"context"
	"fmt"
	"time"

	"webforge_backend/internal/email"
	"webforge_backend/internal/events"
	"webforge_backend/platform/config"
	"webforge_backend/platform/logger"
)

// Module subscribes to domain events and delivers the matching emails.
type Module struct {
	sender          email.Sender
	backofficeEmail string
	timezone        *time.Location
	log             *logger.Logger
}

// NewModule creates the notification module. When email is disabled in
// configuration a NoopSender is used so event handling stays wired.
func NewModule(cfg config.EmailConfig, bookingCfg config.BookingConfig, log *logger.Logger) *Module {
	var sender email.Sender = email.NoopSender{}
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(
			cfg.GetSMTPHost(),
			cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(),
			cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(),
			cfg.GetEmailFromName(),
		)
	} else {
		log.Info("email sending disabled, using noop sender")
	}

	tz, err := time.LoadLocation(bookingCfg.GetBookingTimezone())
	if err != nil {
		log.Warn("invalid booking timezone, falling back to UTC", "timezone", bookingCfg.GetBookingTimezone())
		tz = time.UTC
	}

	return &Module{
		sender:          sender,
		backofficeEmail: cfg.GetBackofficeEmail(),
		timezone:        tz,
		log:             log,
	}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.BookingConfirmed{}.EventName(), m)
	bus.Subscribe(events.BookingReminderDue{}.EventName(), m)
	bus.Subscribe(events.QuoteSubmitted{}.EventName(), m)
	bus.Subscribe(events.LeadCreated{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.BookingConfirmed:
		return m.handleBookingConfirmed(ctx, e)
	case events.BookingReminderDue:
		return m.handleBookingReminderDue(ctx, e)
	case events.QuoteSubmitted:
		return m.handleQuoteSubmitted(ctx, e)
	case events.LeadCreated:
		return m.handleLeadCreated(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleBookingConfirmed(ctx context.Context, e events.BookingConfirmed) error {
	err := m.sender.SendBookingConfirmationEmail(ctx, e.ContactEmail, email.BookingEmailData{
		ContactName:      e.ContactName,
		MeetingTypeLabel: e.MeetingTypeLabel,
		StartTime:        e.StartTime,
		Timezone:         m.timezone,
	})
	if err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	m.log.Info("sent booking confirmation email", "bookingId", e.BookingID)
	return nil
}

func (m *Module) handleBookingReminderDue(ctx context.Context, e events.BookingReminderDue) error {
	err := m.sender.SendBookingReminderEmail(ctx, e.ContactEmail, email.BookingEmailData{
		ContactName:      e.ContactName,
		MeetingTypeLabel: e.MeetingTypeLabel,
		StartTime:        e.StartTime,
		Timezone:         m.timezone,
	})
	if err != nil {
		return fmt.Errorf("failed to send booking reminder: %w", err)
	}
	m.log.Info("sent booking reminder email", "bookingId", e.BookingID)
	return nil
}

func (m *Module) handleQuoteSubmitted(ctx context.Context, e events.QuoteSubmitted) error {
	if m.backofficeEmail == "" {
		return nil
	}
	err := m.sender.SendQuoteReceivedEmail(ctx, m.backofficeEmail, email.QuoteEmailData{
		ContactName:  e.ContactName,
		ContactEmail: e.ContactEmail,
		ServiceLabel: e.ServiceLabel,
		TotalMinor:   e.TotalMinor,
	})
	if err != nil {
		return fmt.Errorf("failed to send quote notification: %w", err)
	}
	m.log.Info("sent quote notification email", "quoteId", e.QuoteID)
	return nil
}

func (m *Module) handleLeadCreated(ctx context.Context, e events.LeadCreated) error {
	if m.backofficeEmail == "" {
		return nil
	}
	err := m.sender.SendLeadReceivedEmail(ctx, m.backofficeEmail, email.LeadEmailData{
		ContactName:  e.ContactName,
		ContactEmail: e.ContactEmail,
		Topic:        e.Topic,
	})
	if err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}
	m.log.Info("sent lead notification email", "leadId", e.LeadID)
	return nil
}

var _ events.Handler = (*Module)(nil)
