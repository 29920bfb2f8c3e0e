package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

const dateFormatLong = "Monday, 2 January 2006"

// SMTPSender implements the Sender interface over a direct SMTP connection
// via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendBookingConfirmationEmail(ctx context.Context, toEmail string, data BookingEmailData) error {
	subject := fmt.Sprintf(subjectBookingConfirmationFmt, data.MeetingTypeLabel)
	local := data.StartTime.In(data.Timezone)
	content, err := renderEmailTemplate("booking_confirmation.html", bookingConfirmationEmailData{
		baseEmailData: baseEmailData{
			Title:   "Booking confirmed",
			Heading: "Your booking is confirmed",
		},
		ContactName:      data.ContactName,
		MeetingTypeLabel: data.MeetingTypeLabel,
		DateFormatted:    local.Format(dateFormatLong),
		TimeFormatted:    local.Format("15:04"),
		Timezone:         data.Timezone.String(),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendBookingReminderEmail(ctx context.Context, toEmail string, data BookingEmailData) error {
	subject := fmt.Sprintf(subjectBookingReminderFmt, data.MeetingTypeLabel)
	local := data.StartTime.In(data.Timezone)
	content, err := renderEmailTemplate("booking_reminder.html", bookingReminderEmailData{
		baseEmailData: baseEmailData{
			Title:   "Booking reminder",
			Heading: "See you tomorrow",
		},
		ContactName:      data.ContactName,
		MeetingTypeLabel: data.MeetingTypeLabel,
		DateFormatted:    local.Format(dateFormatLong),
		TimeFormatted:    local.Format("15:04"),
		Timezone:         data.Timezone.String(),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendQuoteReceivedEmail(ctx context.Context, toEmail string, data QuoteEmailData) error {
	subject := fmt.Sprintf(subjectQuoteReceivedFmt, data.ContactName)
	content, err := renderEmailTemplate("quote_received.html", quoteReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:   "New quote request",
			Heading: "New quote request",
		},
		ContactName:    data.ContactName,
		ContactEmail:   data.ContactEmail,
		ServiceLabel:   data.ServiceLabel,
		TotalFormatted: formatCurrencyINR(data.TotalMinor),
		PageCount:      data.PageCount,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendLeadReceivedEmail(ctx context.Context, toEmail string, data LeadEmailData) error {
	subject := fmt.Sprintf(subjectLeadReceivedFmt, data.Topic)
	content, err := renderEmailTemplate("lead_received.html", leadReceivedEmailData{
		baseEmailData: baseEmailData{
			Title:   "New enquiry",
			Heading: "New enquiry",
		},
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		Topic:        data.Topic,
		Message:      data.Message,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return s.send(ctx, toEmail, subject, htmlContent)
}

var _ Sender = (*SMTPSender)(nil)
