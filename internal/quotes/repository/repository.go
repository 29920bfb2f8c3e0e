package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webforge_backend/internal/quotes/transport"
	"webforge_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Quote represents the quote database model. The estimate columns freeze the
// price shown at submit time; later catalog edits do not rewrite history.
type Quote struct {
	ID         uuid.UUID `db:"id"`
	Status     string    `db:"status"`
	ServiceID  string    `db:"service_id"`
	FeatureIDs []string  `db:"feature_ids"`
	PageCount  int       `db:"page_count"`
	TimelineID string    `db:"timeline_id"`

	TotalMinor             int64 `db:"total_minor"`
	BaseMinor              int64 `db:"base_minor"`
	FeatureTotalMinor      int64 `db:"feature_total_minor"`
	PageOverageMinor       int64 `db:"page_overage_minor"`
	TimelineSurchargeMinor int64 `db:"timeline_surcharge_minor"`

	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Phone     *string `db:"phone"`
	Company   *string `db:"company"`
	Message   *string `db:"message"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToResponse converts the model to its API representation
func (q *Quote) ToResponse() transport.QuoteResponse {
	featureIDs := q.FeatureIDs
	if featureIDs == nil {
		featureIDs = []string{}
	}
	return transport.QuoteResponse{
		ID:         q.ID,
		Status:     transport.QuoteStatus(q.Status),
		ServiceID:  q.ServiceID,
		FeatureIDs: featureIDs,
		PageCount:  q.PageCount,
		TimelineID: q.TimelineID,
		Estimate: transport.EstimateResponse{
			TotalMinor:             q.TotalMinor,
			BaseMinor:              q.BaseMinor,
			FeatureTotalMinor:      q.FeatureTotalMinor,
			PageOverageMinor:       q.PageOverageMinor,
			TimelineSurchargeMinor: q.TimelineSurchargeMinor,
		},
		FirstName: q.FirstName,
		LastName:  q.LastName,
		Email:     q.Email,
		Phone:     derefOrEmpty(q.Phone),
		Company:   derefOrEmpty(q.Company),
		Message:   derefOrEmpty(q.Message),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListParams holds filters for the admin quote list
type ListParams struct {
	Status   *string
	Search   string
	Page     int
	PageSize int
}

// ListResult holds a page of quotes
type ListResult struct {
	Items      []Quote
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Repository provides database operations for quotes
type Repository struct {
	pool *pgxpool.Pool
}

const quoteNotFoundMsg = "quote not found"

const quoteColumns = `id, status, service_id, feature_ids, page_count, timeline_id,
	total_minor, base_minor, feature_total_minor, page_overage_minor, timeline_surcharge_minor,
	first_name, last_name, email, phone, company, message, created_at, updated_at`

// New creates a new quotes repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new quote
func (r *Repository) Create(ctx context.Context, q *Quote) error {
	query := `
		INSERT INTO quotes (
			id, status, service_id, feature_ids, page_count, timeline_id,
			total_minor, base_minor, feature_total_minor, page_overage_minor, timeline_surcharge_minor,
			first_name, last_name, email, phone, company, message, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		)`

	_, err := r.pool.Exec(ctx, query,
		q.ID, q.Status, q.ServiceID, q.FeatureIDs, q.PageCount, q.TimelineID,
		q.TotalMinor, q.BaseMinor, q.FeatureTotalMinor, q.PageOverageMinor, q.TimelineSurchargeMinor,
		q.FirstName, q.LastName, q.Email, q.Phone, q.Company, q.Message, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetByID retrieves a quote by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	var q Quote
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.Status, &q.ServiceID, &q.FeatureIDs, &q.PageCount, &q.TimelineID,
		&q.TotalMinor, &q.BaseMinor, &q.FeatureTotalMinor, &q.PageOverageMinor, &q.TimelineSurchargeMinor,
		&q.FirstName, &q.LastName, &q.Email, &q.Phone, &q.Company, &q.Message, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(quoteNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &q, nil
}

// List returns a page of quotes matching the filters
func (r *Repository) List(ctx context.Context, params ListParams) (*ListResult, error) {
	where := []string{}
	args := []interface{}{}
	argIdx := 1

	if params.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Search != "" {
		where = append(where, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR company ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM quotes" + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM quotes%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		quoteColumns, whereClause, argIdx, argIdx+1)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var items []Quote
	for rows.Next() {
		var q Quote
		if err := rows.Scan(
			&q.ID, &q.Status, &q.ServiceID, &q.FeatureIDs, &q.PageCount, &q.TimelineID,
			&q.TotalMinor, &q.BaseMinor, &q.FeatureTotalMinor, &q.PageOverageMinor, &q.TimelineSurchargeMinor,
			&q.FirstName, &q.LastName, &q.Email, &q.Phone, &q.Company, &q.Message, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		items = append(items, q)
	}
	if err := rows.Err(); err != nil {
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

// UpdateStatus updates the status of a quote
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE quotes SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(quoteNotFoundMsg)
	}
	return nil
}
