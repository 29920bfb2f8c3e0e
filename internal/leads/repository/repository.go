package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webforge_backend/internal/leads/transport"
	"webforge_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Lead represents the lead database model
type Lead struct {
	ID        uuid.UUID `db:"id"`
	Status    string    `db:"status"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Company   *string   `db:"company"`
	Topic     string    `db:"topic"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToResponse converts the model to its API representation
func (l *Lead) ToResponse() transport.LeadResponse {
	return transport.LeadResponse{
		ID:        l.ID,
		Status:    transport.LeadStatus(l.Status),
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Phone:     derefOrEmpty(l.Phone),
		Company:   derefOrEmpty(l.Company),
		Topic:     l.Topic,
		Message:   l.Message,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListParams holds filters for the admin lead list
type ListParams struct {
	Status   *string
	Search   string
	Page     int
	PageSize int
}

// ListResult holds a page of leads
type ListResult struct {
	Items      []Lead
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Repository provides database operations for leads
type Repository struct {
	pool *pgxpool.Pool
}

const leadNotFoundMsg = "lead not found"

const leadColumns = `id, status, first_name, last_name, email, phone, company, topic, message, created_at, updated_at`

// New creates a new leads repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new lead
func (r *Repository) Create(ctx context.Context, l *Lead) error {
	query := `
		INSERT INTO leads (id, status, first_name, last_name, email, phone, company, topic, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.Status, l.FirstName, l.LastName, l.Email, l.Phone, l.Company, l.Topic, l.Message, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// GetByID retrieves a lead by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var l Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Status, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.Company, &l.Topic, &l.Message, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(leadNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &l, nil
}

// List returns a page of leads matching the filters
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
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR topic ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM leads" + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM leads%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		leadColumns, whereClause, argIdx, argIdx+1)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var items []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(
			&l.ID, &l.Status, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.Company, &l.Topic, &l.Message, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		items = append(items, l)
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

// UpdateStatus updates the status of a lead
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE leads SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMsg)
	}
	return nil
}
