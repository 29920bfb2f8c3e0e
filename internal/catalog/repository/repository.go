package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webforge_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Service represents a purchasable service row
type Service struct {
	ID             string    `db:"id"`
	Label          string    `db:"label"`
	BasePriceMinor int64     `db:"base_price_minor"`
	PerPagePriced  bool      `db:"per_page_priced"`
	SortOrder      int       `db:"sort_order"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Feature represents an add-on feature row
type Feature struct {
	ID         string    `db:"id"`
	Label      string    `db:"label"`
	PriceMinor int64     `db:"price_minor"`
	SortOrder  int       `db:"sort_order"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Timeline represents a delivery timeline row
type Timeline struct {
	ID         string    `db:"id"`
	Label      string    `db:"label"`
	Multiplier float64   `db:"multiplier"`
	SortOrder  int       `db:"sort_order"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Settings holds the catalog-wide pricing knobs. Single row, id always 1.
type Settings struct {
	PerPageRateMinor int64 `db:"per_page_rate_minor"`
	IncludedPages    int   `db:"included_pages"`
}

// Asset represents a marketing asset stored in object storage
type Asset struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	FileKey     string    `db:"file_key"`
	FileName    string    `db:"file_name"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	CreatedAt   time.Time `db:"created_at"`
}

// Repository provides database operations for the catalog
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListServices returns services ordered for display
func (r *Repository) ListServices(ctx context.Context, activeOnly bool) ([]Service, error) {
	query := `SELECT id, label, base_price_minor, per_page_priced, sort_order, active, created_at, updated_at
		FROM catalog_services`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var items []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Label, &s.BasePriceMinor, &s.PerPagePriced, &s.SortOrder, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// ListFeatures returns features ordered for display
func (r *Repository) ListFeatures(ctx context.Context, activeOnly bool) ([]Feature, error) {
	query := `SELECT id, label, price_minor, sort_order, active, created_at, updated_at
		FROM catalog_features`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	var items []Feature
	for rows.Next() {
		var f Feature
		if err := rows.Scan(&f.ID, &f.Label, &f.PriceMinor, &f.SortOrder, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// ListTimelines returns timelines ordered for display
func (r *Repository) ListTimelines(ctx context.Context, activeOnly bool) ([]Timeline, error) {
	query := `SELECT id, label, multiplier, sort_order, active, created_at, updated_at
		FROM catalog_timelines`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list timelines: %w", err)
	}
	defer rows.Close()

	var items []Timeline
	for rows.Next() {
		var t Timeline
		if err := rows.Scan(&t.ID, &t.Label, &t.Multiplier, &t.SortOrder, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// GetSettings returns the catalog-wide pricing settings
func (r *Repository) GetSettings(ctx context.Context) (*Settings, error) {
	var s Settings
	query := `SELECT per_page_rate_minor, included_pages FROM catalog_settings WHERE id = 1`

	err := r.pool.QueryRow(ctx, query).Scan(&s.PerPageRateMinor, &s.IncludedPages)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("catalog settings not found")
		}
		return nil, fmt.Errorf("failed to get catalog settings: %w", err)
	}
	return &s, nil
}

// CountServices reports how many service rows exist, used for seeding
func (r *Repository) CountServices(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

// UpsertService inserts or replaces a service row
func (r *Repository) UpsertService(ctx context.Context, s Service) error {
	query := `
		INSERT INTO catalog_services (id, label, base_price_minor, per_page_priced, sort_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			base_price_minor = EXCLUDED.base_price_minor,
			per_page_priced = EXCLUDED.per_page_priced,
			sort_order = EXCLUDED.sort_order,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, s.ID, s.Label, s.BasePriceMinor, s.PerPagePriced, s.SortOrder, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert service: %w", err)
	}
	return nil
}

// UpsertFeature inserts or replaces a feature row
func (r *Repository) UpsertFeature(ctx context.Context, f Feature) error {
	query := `
		INSERT INTO catalog_features (id, label, price_minor, sort_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			price_minor = EXCLUDED.price_minor,
			sort_order = EXCLUDED.sort_order,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, f.ID, f.Label, f.PriceMinor, f.SortOrder, f.Active, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert feature: %w", err)
	}
	return nil
}

// UpsertTimeline inserts or replaces a timeline row
func (r *Repository) UpsertTimeline(ctx context.Context, t Timeline) error {
	query := `
		INSERT INTO catalog_timelines (id, label, multiplier, sort_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			multiplier = EXCLUDED.multiplier,
			sort_order = EXCLUDED.sort_order,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, t.ID, t.Label, t.Multiplier, t.SortOrder, t.Active, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert timeline: %w", err)
	}
	return nil
}

// UpsertSettings inserts or replaces the settings row
func (r *Repository) UpsertSettings(ctx context.Context, s Settings) error {
	query := `
		INSERT INTO catalog_settings (id, per_page_rate_minor, included_pages)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			per_page_rate_minor = EXCLUDED.per_page_rate_minor,
			included_pages = EXCLUDED.included_pages`

	_, err := r.pool.Exec(ctx, query, s.PerPageRateMinor, s.IncludedPages)
	if err != nil {
		return fmt.Errorf("failed to upsert catalog settings: %w", err)
	}
	return nil
}

// CreateAsset records an uploaded marketing asset
func (r *Repository) CreateAsset(ctx context.Context, a Asset) error {
	query := `
		INSERT INTO catalog_assets (id, title, file_key, file_name, content_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query, a.ID, a.Title, a.FileKey, a.FileName, a.ContentType, a.SizeBytes, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetAsset retrieves an asset by ID
func (r *Repository) GetAsset(ctx context.Context, id uuid.UUID) (*Asset, error) {
	var a Asset
	query := `SELECT id, title, file_key, file_name, content_type, size_bytes, created_at
		FROM catalog_assets WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Title, &a.FileKey, &a.FileName, &a.ContentType, &a.SizeBytes, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("asset not found")
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &a, nil
}

// ListAssets returns all assets, newest first
func (r *Repository) ListAssets(ctx context.Context) ([]Asset, error) {
	query := `SELECT id, title, file_key, file_name, content_type, size_bytes, created_at
		FROM catalog_assets ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var items []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.ID, &a.Title, &a.FileKey, &a.FileName, &a.ContentType, &a.SizeBytes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// DeleteAsset removes an asset record
func (r *Repository) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM catalog_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("asset not found")
	}
	return nil
}
