package service

import (
	"testing"
	"time"

	"webforge_backend/internal/bookings/transport"
)

func testSlotConfig() SlotConfig {
	return SlotConfig{
		Location:    time.UTC,
		WindowDays:  7,
		StartHour:   10,
		EndHour:     17,
		SlotMinutes: 60,
	}
}

// Monday 2026-08-31.
var testNow = time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

func findDay(t *testing.T, days []transport.DaySlots, date string) *transport.DaySlots {
	t.Helper()
	for i := range days {
		if days[i].Date == date {
			return &days[i]
		}
	}
	return nil
}

func slotLabels(day *transport.DaySlots) []string {
	labels := make([]string, len(day.Slots))
	for i, s := range day.Slots {
		labels[i] = s.Label
	}
	return labels
}

func TestAvailableDays_ExcludesWeekends(t *testing.T) {
	days := availableDays(testNow, testSlotConfig(), nil)

	for _, weekend := range []string{"2026-09-05", "2026-09-06"} {
		if findDay(t, days, weekend) != nil {
			t.Fatalf("weekend %s offered for booking", weekend)
		}
	}
	if findDay(t, days, "2026-09-04") == nil {
		t.Fatal("friday 2026-09-04 missing")
	}
	if findDay(t, days, "2026-09-07") == nil {
		t.Fatal("monday 2026-09-07 missing")
	}
}

func TestAvailableDays_WindowBounds(t *testing.T) {
	days := availableDays(testNow, testSlotConfig(), nil)

	if len(days) == 0 {
		t.Fatal("no bookable days")
	}
	if days[0].Date != "2026-08-31" {
		t.Fatalf("first day = %s, want today", days[0].Date)
	}
	// today + 7 days is Monday 2026-09-07, the last bookable date
	if last := days[len(days)-1].Date; last != "2026-09-07" {
		t.Fatalf("last day = %s, want 2026-09-07", last)
	}
}

func TestGenerateDaySlots_BusinessHours(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	got := generateDaySlots(day, testSlotConfig(), testNow, nil)

	want := []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	labels := slotLabels(&got)
	if len(labels) != len(want) {
		t.Fatalf("slots = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("slot %d = %s, want %s", i, labels[i], want[i])
		}
	}
}

func TestGenerateDaySlots_PastSlotsOnCurrentDayExcluded(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	day := startOfDay(now)

	got := generateDaySlots(day, testSlotConfig(), now, nil)
	labels := slotLabels(&got)

	if len(labels) == 0 {
		t.Fatal("no slots left on current day")
	}
	if labels[0] != "13:00" {
		t.Fatalf("first open slot = %s, want 13:00", labels[0])
	}
}

func TestGenerateDaySlots_BookedSlotExcluded(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	busy := []Interval{{
		Start: time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC),
	}}

	got := generateDaySlots(day, testSlotConfig(), testNow, busy)

	for _, label := range slotLabels(&got) {
		if label == "11:00" {
			t.Fatal("booked 11:00 slot still offered")
		}
	}
	if got.Slots[0].Label != "10:00" {
		t.Fatalf("first slot = %s, want 10:00", got.Slots[0].Label)
	}
	if len(got.Slots) != 6 {
		t.Fatalf("open slots = %d, want 6", len(got.Slots))
	}
}

func TestGenerateDaySlots_PartialOverlapExcluded(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	// 90-minute booking starting mid-slot blocks both 11:00 and 12:00
	busy := []Interval{{
		Start: time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 2, 13, 0, 0, 0, time.UTC),
	}}

	got := generateDaySlots(day, testSlotConfig(), testNow, busy)

	for _, label := range slotLabels(&got) {
		if label == "11:00" || label == "12:00" {
			t.Fatalf("overlapped slot %s still offered", label)
		}
	}
}

func TestDateBookable(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // Monday

	cases := []struct {
		day  time.Time
		want bool
	}{
		{today, true},
		{today.AddDate(0, 0, -1), false},                  // past (Sunday anyway)
		{today.AddDate(0, 0, -7), false},                  // past Monday
		{time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), false}, // Saturday
		{today.AddDate(0, 0, 60), true},                   // window edge, a Friday
		{today.AddDate(0, 0, 61), false},                  // beyond window
	}

	for _, tc := range cases {
		if got := dateBookable(tc.day, today, 60); got != tc.want {
			t.Fatalf("dateBookable(%s) = %v, want %v", tc.day.Format(dateFormat), got, tc.want)
		}
	}
}
