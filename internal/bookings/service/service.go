package service

import (
	"context"
	"time"

	"webforge_backend/internal/bookings/repository"
	"webforge_backend/internal/bookings/transport"
	"webforge_backend/internal/events"
	"webforge_backend/internal/scheduler"
	"webforge_backend/platform/apperr"
	"webforge_backend/platform/config"
	"webforge_backend/platform/phone"
	"webforge_backend/platform/sanitize"

	"github.com/google/uuid"
)

const reminderLead = 24 * time.Hour

// Locker serializes concurrent submits sharing an idempotency key.
type Locker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Service provides business logic for the booking wizard and back office
type Service struct {
	repo              *repository.Repository
	lock              Locker
	eventBus          events.Bus
	reminderScheduler scheduler.ReminderScheduler
	slotCfg           SlotConfig
	now               func() time.Time
}

// New creates a new bookings service
func New(repo *repository.Repository, lock Locker, eventBus events.Bus, reminderScheduler scheduler.ReminderScheduler, cfg config.BookingConfig) *Service {
	loc, err := time.LoadLocation(cfg.GetBookingTimezone())
	if err != nil {
		loc = time.UTC
	}

	return &Service{
		repo:              repo,
		lock:              lock,
		eventBus:          eventBus,
		reminderScheduler: reminderScheduler,
		slotCfg: SlotConfig{
			Location:    loc,
			WindowDays:  cfg.GetBookingWindowDays(),
			StartHour:   cfg.GetBookingDayStartHour(),
			EndHour:     cfg.GetBookingDayEndHour(),
			SlotMinutes: 60,
		},
		now: time.Now,
	}
}

// ListMeetingTypes returns the options for the wizard's first step.
func (s *Service) ListMeetingTypes(ctx context.Context) ([]transport.MeetingTypeResponse, error) {
	items, err := s.repo.ListMeetingTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]transport.MeetingTypeResponse, len(items))
	for i, mt := range items {
		resp[i] = transport.MeetingTypeResponse{
			ID:              mt.ID,
			Label:           mt.Label,
			Description:     mt.Description,
			DurationMinutes: mt.DurationMinutes,
		}
	}
	return resp, nil
}

// GetAvailableSlots returns the open slots for the whole booking window.
func (s *Service) GetAvailableSlots(ctx context.Context) (*transport.AvailableSlotsResponse, error) {
	now := s.now()
	today := startOfDay(now.In(s.slotCfg.Location))
	windowEnd := today.AddDate(0, 0, s.slotCfg.WindowDays+1)

	booked, err := s.repo.ListScheduledBetween(ctx, today, windowEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]Interval, len(booked))
	for i, b := range booked {
		busy[i] = Interval{Start: b.StartTime, End: b.EndTime}
	}

	return &transport.AvailableSlotsResponse{
		Timezone: s.slotCfg.Location.String(),
		Days:     availableDays(now, s.slotCfg, busy),
	}, nil
}

// Create handles the wizard's terminal submit. Retries carrying the same
// idempotency key confirm the booking created by the first attempt.
func (s *Service) Create(ctx context.Context, req transport.CreateBookingRequest) (*transport.BookingResponse, error) {
	idemKey, err := uuid.Parse(req.IdempotencyKey)
	if err != nil {
		return nil, apperr.BadRequest("invalid idempotencyKey format")
	}

	meetingType, err := s.repo.GetMeetingType(ctx, req.MeetingTypeID)
	if err != nil {
		return nil, err
	}

	start, err := s.parseSlotStart(req.Date, req.Slot)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(meetingType.DurationMinutes) * time.Minute)

	if err := s.validateWizardFlow(req); err != nil {
		return nil, err
	}
	if err := s.validateSlot(start, end); err != nil {
		return nil, err
	}

	if s.lock != nil {
		acquired, err := s.lock.Acquire(ctx, idemKey.String())
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, apperr.Conflict("booking submission already in progress")
		}
		defer func() { _ = s.lock.Release(ctx, idemKey.String()) }()
	}

	if err := s.checkSlotConflict(ctx, idemKey, start, end); err != nil {
		return nil, err
	}

	booking := s.buildBooking(idemKey, req, start, end)
	saved, created, err := s.repo.CreateIdempotent(ctx, booking)
	if err != nil {
		return nil, err
	}

	resp := saved.ToResponse()
	if !created {
		return &resp, nil
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.BookingConfirmed{
			BaseEvent:        events.NewBaseEvent(),
			BookingID:        saved.ID,
			MeetingTypeID:    saved.MeetingTypeID,
			MeetingTypeLabel: meetingType.Label,
			StartTime:        saved.StartTime,
			EndTime:          saved.EndTime,
			ContactName:      saved.FirstName + " " + saved.LastName,
			ContactEmail:     saved.Email,
		})
	}

	if s.reminderScheduler != nil {
		reminderAt := saved.StartTime.Add(-reminderLead)
		if reminderAt.After(s.now()) {
			_ = s.reminderScheduler.ScheduleBookingReminder(ctx, scheduler.BookingReminderPayload{
				BookingID: saved.ID.String(),
			}, reminderAt)
		}
	}

	return &resp, nil
}

// validateWizardFlow replays the wizard's transitions over the submitted
// draft. A request that skips a step or misses a guard is rejected the same
// way the step-by-step flow would have rejected it.
func (s *Service) validateWizardFlow(req transport.CreateBookingRequest) error {
	draft := Draft{
		MeetingTypeID: req.MeetingTypeID,
		Date:          req.Date,
		Slot:          req.Slot,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
	}

	step := StepSelectType
	for _, event := range []WizardEvent{EventConfirmType, EventConfirmSchedule} {
		next, err := Transition(step, draft, event)
		if err != nil {
			return apperr.Validation(err.Error())
		}
		step = next
	}
	if !draft.HasContact() {
		return apperr.Validation(ErrContactIncomplete.Error())
	}
	return nil
}

func (s *Service) parseSlotStart(date, slot string) (time.Time, error) {
	day, err := time.ParseInLocation(dateFormat, date, s.slotCfg.Location)
	if err != nil {
		return time.Time{}, apperr.BadRequest("invalid date format")
	}
	clock, err := time.Parse(slotFormat, slot)
	if err != nil {
		return time.Time{}, apperr.BadRequest("invalid slot format")
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, s.slotCfg.Location), nil
}

func (s *Service) validateSlot(start, end time.Time) error {
	now := s.now()
	today := startOfDay(now.In(s.slotCfg.Location))
	day := startOfDay(start)

	if !dateBookable(day, today, s.slotCfg.WindowDays) {
		return apperr.Validation("selected date is not bookable")
	}
	if !start.After(now) {
		return apperr.Validation("selected slot has already passed")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), s.slotCfg.StartHour, 0, 0, 0, s.slotCfg.Location)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), s.slotCfg.EndHour, 0, 0, 0, s.slotCfg.Location)
	if start.Before(dayStart) || end.After(dayEnd) {
		return apperr.Validation("selected slot is outside bookable hours")
	}
	return nil
}

// checkSlotConflict rejects a submit when another booking occupies the slot.
// The submitter's own earlier attempt does not count as a conflict.
func (s *Service) checkSlotConflict(ctx context.Context, idemKey uuid.UUID, start, end time.Time) error {
	existing, err := s.repo.ListScheduledBetween(ctx, start, end)
	if err != nil {
		return err
	}
	for _, b := range existing {
		if b.IdempotencyKey == idemKey {
			continue
		}
		return apperr.Conflict("time slot is no longer available")
	}
	return nil
}

func (s *Service) buildBooking(idemKey uuid.UUID, req transport.CreateBookingRequest, start, end time.Time) *repository.Booking {
	now := s.now()
	return &repository.Booking{
		ID:             uuid.New(),
		IdempotencyKey: idemKey,
		MeetingTypeID:  req.MeetingTypeID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(transport.BookingStatusScheduled),
		FirstName:      sanitize.Text(req.FirstName),
		LastName:       sanitize.Text(req.LastName),
		Email:          sanitize.Text(req.Email),
		Phone:          nilIfEmpty(phone.Normalize(req.Phone)),
		Company:        sanitize.TextPtr(nilIfEmpty(req.Company)),
		Notes:          sanitize.TextPtr(nilIfEmpty(req.Notes)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// GetByID retrieves a booking for the back office
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*transport.BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := booking.ToResponse()
	return &resp, nil
}

// List retrieves bookings with filtering for the back office
func (s *Service) List(ctx context.Context, req transport.ListBookingsRequest) (*transport.BookingListResponse, error) {
	params := repository.ListParams{
		Page:     max(req.Page, 1),
		PageSize: clampPageSize(req.PageSize),
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperr.BadRequest("invalid status filter")
		}
		status := string(*req.Status)
		params.Status = &status
	}

	startFrom, err := parseDateFilter(req.StartFrom, "startFrom", s.slotCfg.Location)
	if err != nil {
		return nil, err
	}
	startTo, err := parseDateFilter(req.StartTo, "startTo", s.slotCfg.Location)
	if err != nil {
		return nil, err
	}
	if startTo != nil {
		endOfDay := startTo.Add(24*time.Hour - time.Nanosecond)
		startTo = &endOfDay
	}
	params.StartFrom = startFrom
	params.StartTo = startTo

	result, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]transport.BookingResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return &transport.BookingListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// UpdateStatus moves a booking through its lifecycle
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, changedBy uuid.UUID, req transport.UpdateBookingStatusRequest) (*transport.BookingResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperr.BadRequest("invalid status")
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	if string(req.Status) == oldStatus {
		resp := booking.ToResponse()
		return &resp, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, string(req.Status)); err != nil {
		return nil, err
	}

	booking, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.BookingStatusChanged{
			BaseEvent: events.NewBaseEvent(),
			BookingID: id,
			OldStatus: oldStatus,
			NewStatus: string(req.Status),
			ChangedBy: changedBy,
		})
	}

	resp := booking.ToResponse()
	return &resp, nil
}

// clampPageSize ensures page size is within valid range.
func clampPageSize(size int) int {
	if size < 1 || size > 100 {
		return 50
	}
	return size
}

func parseDateFilter(s string, fieldName string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateFormat, s, loc)
	if err != nil {
		return nil, apperr.BadRequest("invalid " + fieldName + " date format")
	}
	return &t, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
