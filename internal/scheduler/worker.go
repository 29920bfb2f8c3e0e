package scheduler

import (
	"context"
	"fmt"
	"strings"

	"webforge_backend/internal/bookings/repository"
	"webforge_backend/internal/events"
	"webforge_backend/platform/config"
	"webforge_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	repo   *repository.Repository
	bus    events.Bus
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, bus events.Bus, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		repo:   repository.New(pool),
		bus:    bus,
		log:    log,
	}

	mux.HandleFunc(TaskBookingReminder, w.handleBookingReminder)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleBookingReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseBookingReminderPayload(task)
	if err != nil {
		return err
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return err
	}

	booking, err := w.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	// Cancelled or already handled bookings get no reminder.
	if booking.Status != "scheduled" {
		return nil
	}

	meetingLabel := booking.MeetingTypeID
	if mt, err := w.repo.GetMeetingType(ctx, booking.MeetingTypeID); err == nil {
		meetingLabel = mt.Label
	}

	contactName := strings.TrimSpace(booking.FirstName + " " + booking.LastName)

	if w.bus == nil {
		return nil
	}

	return w.bus.PublishSync(ctx, events.BookingReminderDue{
		BaseEvent:        events.NewBaseEvent(),
		BookingID:        booking.ID,
		MeetingTypeID:    booking.MeetingTypeID,
		MeetingTypeLabel: meetingLabel,
		StartTime:        booking.StartTime,
		ContactName:      contactName,
		ContactEmail:     booking.Email,
	})
}
