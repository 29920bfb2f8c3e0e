package email

const (
	subjectBookingConfirmationFmt = "Your %s is confirmed"
	subjectBookingReminderFmt     = "Reminder: your %s is tomorrow"
	subjectQuoteReceivedFmt       = "New quote request from %s"
	subjectLeadReceivedFmt        = "New enquiry: %s"
)
