package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webforge_backend/internal/bookings/transport"
	"webforge_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MeetingType represents a bookable meeting kind
type MeetingType struct {
	ID              string `db:"id"`
	Label           string `db:"label"`
	Description     string `db:"description"`
	DurationMinutes int    `db:"duration_minutes"`
	SortOrder       int    `db:"sort_order"`
	Active          bool   `db:"active"`
}

// Booking represents the booking database model
type Booking struct {
	ID             uuid.UUID `db:"id"`
	IdempotencyKey uuid.UUID `db:"idempotency_key"`
	MeetingTypeID  string    `db:"meeting_type_id"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	Status         string    `db:"status"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	Phone          *string   `db:"phone"`
	Company        *string   `db:"company"`
	Notes          *string   `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ToResponse converts the model to its API representation
func (b *Booking) ToResponse() transport.BookingResponse {
	return transport.BookingResponse{
		ID:            b.ID,
		MeetingTypeID: b.MeetingTypeID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        transport.BookingStatus(b.Status),
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Phone:         derefOrEmpty(b.Phone),
		Company:       derefOrEmpty(b.Company),
		Notes:         derefOrEmpty(b.Notes),
		CreatedAt:     b.CreatedAt,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListParams holds filters for the admin booking list
type ListParams struct {
	Status    *string
	StartFrom *time.Time
	StartTo   *time.Time
	Page      int
	PageSize  int
}

// ListResult holds a page of bookings
type ListResult struct {
	Items      []Booking
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Repository provides database operations for bookings
type Repository struct {
	pool *pgxpool.Pool
}

const bookingNotFoundMsg = "booking not found"

const bookingColumns = `id, idempotency_key, meeting_type_id, start_time, end_time, status,
	first_name, last_name, email, phone, company, notes, created_at, updated_at`

// New creates a new bookings repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListMeetingTypes returns active meeting types in display order
func (r *Repository) ListMeetingTypes(ctx context.Context) ([]MeetingType, error) {
	query := `SELECT id, label, description, duration_minutes, sort_order, active
		FROM meeting_types WHERE active ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting types: %w", err)
	}
	defer rows.Close()

	var items []MeetingType
	for rows.Next() {
		var mt MeetingType
		if err := rows.Scan(&mt.ID, &mt.Label, &mt.Description, &mt.DurationMinutes, &mt.SortOrder, &mt.Active); err != nil {
			return nil, fmt.Errorf("failed to scan meeting type: %w", err)
		}
		items = append(items, mt)
	}
	return items, rows.Err()
}

// GetMeetingType retrieves an active meeting type by ID
func (r *Repository) GetMeetingType(ctx context.Context, id string) (*MeetingType, error) {
	var mt MeetingType
	query := `SELECT id, label, description, duration_minutes, sort_order, active
		FROM meeting_types WHERE id = $1 AND active`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&mt.ID, &mt.Label, &mt.Description, &mt.DurationMinutes, &mt.SortOrder, &mt.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("meeting type not found")
		}
		return nil, fmt.Errorf("failed to get meeting type: %w", err)
	}

	return &mt, nil
}

// CreateIdempotent inserts a booking keyed by its idempotency key. When the
// key already exists the insert is a no-op and the original row is returned,
// so a retried submit confirms the same booking instead of creating a second.
func (r *Repository) CreateIdempotent(ctx context.Context, b *Booking) (*Booking, bool, error) {
	query := `
		INSERT INTO bookings (
			id, idempotency_key, meeting_type_id, start_time, end_time, status,
			first_name, last_name, email, phone, company, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (idempotency_key) DO NOTHING`

	result, err := r.pool.Exec(ctx, query,
		b.ID, b.IdempotencyKey, b.MeetingTypeID, b.StartTime, b.EndTime, b.Status,
		b.FirstName, b.LastName, b.Email, b.Phone, b.Company, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create booking: %w", err)
	}

	if result.RowsAffected() == 1 {
		return b, true, nil
	}

	existing, err := r.GetByIdempotencyKey(ctx, b.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByIdempotencyKey retrieves a booking by its idempotency key
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE idempotency_key = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, key))
}

// GetByID retrieves a booking by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.IdempotencyKey, &b.MeetingTypeID, &b.StartTime, &b.EndTime, &b.Status,
		&b.FirstName, &b.LastName, &b.Email, &b.Phone, &b.Company, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(bookingNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

// ListScheduledBetween returns scheduled bookings overlapping [from, to),
// used to mark slots as taken
func (r *Repository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'scheduled' AND start_time < $2 AND end_time > $1
		ORDER BY start_time`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List returns a page of bookings matching the filters
func (r *Repository) List(ctx context.Context, params ListParams) (*ListResult, error) {
	where := []string{}
	args := []interface{}{}
	argIdx := 1

	if params.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.StartFrom != nil {
		where = append(where, fmt.Sprintf("start_time >= $%d", argIdx))
		args = append(args, *params.StartFrom)
		argIdx++
	}
	if params.StartTo != nil {
		where = append(where, fmt.Sprintf("start_time <= $%d", argIdx))
		args = append(args, *params.StartTo)
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM bookings" + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings%s ORDER BY start_time DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, whereClause, argIdx, argIdx+1)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	items, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	totalPages := (total + params.PageSize - 1) / params.PageSize
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus updates the status of a booking
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(bookingNotFoundMsg)
	}

	return nil
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var items []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.IdempotencyKey, &b.MeetingTypeID, &b.StartTime, &b.EndTime, &b.Status,
			&b.FirstName, &b.LastName, &b.Email, &b.Phone, &b.Company, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
