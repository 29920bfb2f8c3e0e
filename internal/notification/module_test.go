package notification

import (
	"context"
	"testing"
	"time"

	"webforge_backend/internal/email"
	"webforge_backend/internal/events"
	"webforge_backend/platform/logger"

	"github.com/google/uuid"
)

type testSender struct {
	confirmationCalls int
	reminderCalls     int
	quoteCalls        int
	leadCalls         int
	lastTo            string
}

func (s *testSender) SendBookingConfirmationEmail(_ context.Context, to string, _ email.BookingEmailData) error {
	s.confirmationCalls++
	s.lastTo = to
	return nil
}

func (s *testSender) SendBookingReminderEmail(_ context.Context, to string, _ email.BookingEmailData) error {
	s.reminderCalls++
	s.lastTo = to
	return nil
}

func (s *testSender) SendQuoteReceivedEmail(_ context.Context, to string, _ email.QuoteEmailData) error {
	s.quoteCalls++
	s.lastTo = to
	return nil
}

func (s *testSender) SendLeadReceivedEmail(_ context.Context, to string, _ email.LeadEmailData) error {
	s.leadCalls++
	s.lastTo = to
	return nil
}

func (s *testSender) SendCustomEmail(context.Context, string, string, string) error { return nil }

func newTestModule(sender email.Sender, backoffice string) *Module {
	return &Module{
		sender:          sender,
		backofficeEmail: backoffice,
		timezone:        time.UTC,
		log:             logger.New("test"),
	}
}

func TestHandleBookingConfirmed_SendsToVisitor(t *testing.T) {
	sender := &testSender{}
	m := newTestModule(sender, "office@example.com")

	err := m.Handle(context.Background(), events.BookingConfirmed{
		BaseEvent:        events.NewBaseEvent(),
		BookingID:        uuid.New(),
		MeetingTypeLabel: "Discovery Call",
		StartTime:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		ContactName:      "Priya Sharma",
		ContactEmail:     "priya@example.com",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if sender.confirmationCalls != 1 {
		t.Fatalf("confirmationCalls = %d, want 1", sender.confirmationCalls)
	}
	if sender.lastTo != "priya@example.com" {
		t.Errorf("sent to %q, want visitor address", sender.lastTo)
	}
}

func TestHandleQuoteSubmitted_SendsToBackoffice(t *testing.T) {
	sender := &testSender{}
	m := newTestModule(sender, "office@example.com")

	err := m.Handle(context.Background(), events.QuoteSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		QuoteID:      uuid.New(),
		ServiceLabel: "Website",
		TotalMinor:   652350,
		ContactName:  "Priya Sharma",
		ContactEmail: "priya@example.com",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if sender.quoteCalls != 1 {
		t.Fatalf("quoteCalls = %d, want 1", sender.quoteCalls)
	}
	if sender.lastTo != "office@example.com" {
		t.Errorf("sent to %q, want backoffice address", sender.lastTo)
	}
}

func TestHandleQuoteSubmitted_NoBackofficeConfigured(t *testing.T) {
	sender := &testSender{}
	m := newTestModule(sender, "")

	err := m.Handle(context.Background(), events.QuoteSubmitted{
		BaseEvent: events.NewBaseEvent(),
		QuoteID:   uuid.New(),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if sender.quoteCalls != 0 {
		t.Fatalf("quoteCalls = %d, want 0", sender.quoteCalls)
	}
}

func TestHandleLeadCreated_SendsToBackoffice(t *testing.T) {
	sender := &testSender{}
	m := newTestModule(sender, "office@example.com")

	err := m.Handle(context.Background(), events.LeadCreated{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       uuid.New(),
		Topic:        "Redesign project",
		ContactName:  "Arjun Mehta",
		ContactEmail: "arjun@example.com",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if sender.leadCalls != 1 {
		t.Fatalf("leadCalls = %d, want 1", sender.leadCalls)
	}
}

func TestHandle_IgnoresUnknownEvents(t *testing.T) {
	sender := &testSender{}
	m := newTestModule(sender, "office@example.com")

	err := m.Handle(context.Background(), events.QuoteStatusChanged{
		BaseEvent: events.NewBaseEvent(),
		QuoteID:   uuid.New(),
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if sender.confirmationCalls+sender.reminderCalls+sender.quoteCalls+sender.leadCalls != 0 {
		t.Fatal("unexpected send for unhandled event type")
	}
}
