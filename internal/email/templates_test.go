package email

import (
	"strings"
	"testing"
)

func TestRenderBookingConfirmation(t *testing.T) {
	content, err := renderEmailTemplate("booking_confirmation.html", bookingConfirmationEmailData{
		baseEmailData: baseEmailData{
			Title:   "Booking confirmed",
			Heading: "Your booking is confirmed",
		},
		ContactName:      "Priya Sharma",
		MeetingTypeLabel: "Discovery Call",
		DateFormatted:    "Tuesday, 1 September 2026",
		TimeFormatted:    "10:00",
		Timezone:         "Asia/Kolkata",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Priya Sharma", "Discovery Call", "Tuesday, 1 September 2026", "10:00", "Asia/Kolkata"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered template missing %q", want)
		}
	}
}

func TestRenderQuoteReceived_FormatsCurrency(t *testing.T) {
	content, err := renderEmailTemplate("quote_received.html", quoteReceivedEmailData{
		baseEmailData: baseEmailData{Title: "New quote request", Heading: "New quote request"},
		ContactName:    "Arjun Mehta",
		ContactEmail:   "arjun@example.com",
		ServiceLabel:   "Website",
		TotalFormatted: formatCurrencyINR(652350),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(content, "₹6523.50") {
		t.Errorf("rendered template missing formatted total, got: %s", content)
	}
}

func TestRenderLeadReceived(t *testing.T) {
	content, err := renderEmailTemplate("lead_received.html", leadReceivedEmailData{
		baseEmailData: baseEmailData{Title: "New enquiry", Heading: "New enquiry"},
		ContactName:   "Arjun Mehta",
		ContactEmail:  "arjun@example.com",
		Topic:         "Redesign project",
		Message:       "We would like to refresh our site.",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(content, "Redesign project") {
		t.Error("rendered template missing topic")
	}
}

func TestFormatCurrencyINR(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "₹0.00"},
		{50, "₹0.50"},
		{2500000, "₹25000.00"},
		{652350, "₹6523.50"},
	}
	for _, tc := range cases {
		if got := formatCurrencyINR(tc.minor); got != tc.want {
			t.Errorf("formatCurrencyINR(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}
