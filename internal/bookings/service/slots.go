package service

import (
	"time"

	"webforge_backend/internal/bookings/transport"
)

const (
	dateFormat = "2006-01-02"
	slotFormat = "15:04"
)

// SlotConfig describes the studio's bookable hours. One consultant, one
// calendar: every meeting type draws from the same pool of slots.
type SlotConfig struct {
	Location    *time.Location
	WindowDays  int // last bookable day is today + WindowDays
	StartHour   int // first slot starts at this local hour
	EndHour     int // last slot must end by this local hour
	SlotMinutes int
}

// Interval is an occupied range taken by an existing booking.
type Interval struct {
	Start time.Time
	End   time.Time
}

// dateBookable reports whether a calendar day can take new bookings: a
// weekday inside [today, today+windowDays]. Both arguments must be midnight
// values in the studio timezone.
func dateBookable(day, today time.Time, windowDays int) bool {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return false
	}
	if day.Before(today) {
		return false
	}
	return !day.After(today.AddDate(0, 0, windowDays))
}

// availableDays walks the booking window day by day and collects the open
// slots of each bookable date. Days with zero open slots are still listed so
// the schedule step can render them as full rather than missing.
func availableDays(now time.Time, cfg SlotConfig, busy []Interval) []transport.DaySlots {
	today := startOfDay(now.In(cfg.Location))

	days := make([]transport.DaySlots, 0, cfg.WindowDays)
	for i := 0; i <= cfg.WindowDays; i++ {
		day := today.AddDate(0, 0, i)
		if !dateBookable(day, today, cfg.WindowDays) {
			continue
		}
		days = append(days, generateDaySlots(day, cfg, now, busy))
	}
	return days
}

// generateDaySlots produces the open slots for one day, excluding slots that
// overlap an existing booking and, on the current day, slots already started.
func generateDaySlots(day time.Time, cfg SlotConfig, now time.Time, busy []Interval) transport.DaySlots {
	daySlots := transport.DaySlots{Date: day.Format(dateFormat), Slots: []transport.TimeSlot{}}

	slotDuration := time.Duration(cfg.SlotMinutes) * time.Minute
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), cfg.StartHour, 0, 0, 0, cfg.Location)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), cfg.EndHour, 0, 0, 0, cfg.Location)

	for slotStart := windowStart; !slotStart.Add(slotDuration).After(windowEnd); slotStart = slotStart.Add(slotDuration) {
		if !slotStart.After(now) {
			continue
		}

		slotEnd := slotStart.Add(slotDuration)
		conflicts := false
		for _, b := range busy {
			if slotStart.Before(b.End) && slotEnd.After(b.Start) {
				conflicts = true
				break
			}
		}
		if conflicts {
			continue
		}

		daySlots.Slots = append(daySlots.Slots, transport.TimeSlot{
			Start: slotStart,
			Label: slotStart.Format(slotFormat),
		})
	}

	return daySlots
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
