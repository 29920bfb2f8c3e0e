package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
}

type bookingConfirmationEmailData struct {
	baseEmailData
	ContactName      string
	MeetingTypeLabel string
	DateFormatted    string
	TimeFormatted    string
	Timezone         string
}

type bookingReminderEmailData struct {
	baseEmailData
	ContactName      string
	MeetingTypeLabel string
	DateFormatted    string
	TimeFormatted    string
	Timezone         string
}

type quoteReceivedEmailData struct {
	baseEmailData
	ContactName    string
	ContactEmail   string
	ServiceLabel   string
	TotalFormatted string
	PageCount      int
}

type leadReceivedEmailData struct {
	baseEmailData
	ContactName  string
	ContactEmail string
	Topic        string
	Message      string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatCurrencyINR(minor int64) string {
	return fmt.Sprintf("₹%.2f", float64(minor)/100)
}
