package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webforge_backend/internal/events"
	"webforge_backend/internal/pricing"
	"webforge_backend/internal/quotes/repository"
	"webforge_backend/internal/quotes/transport"
	"webforge_backend/platform/apperr"
	"webforge_backend/platform/phone"
	"webforge_backend/platform/sanitize"

	"github.com/google/uuid"
)

// CatalogProvider supplies the current pricing catalog. The catalog module
// implements this against its database tables.
type CatalogProvider interface {
	PricingCatalog(ctx context.Context) (pricing.Catalog, error)
}

// allowedStatusTransitions encodes the pipeline: new -> contacted -> won|lost.
var allowedStatusTransitions = map[transport.QuoteStatus][]transport.QuoteStatus{
	transport.QuoteStatusNew:       {transport.QuoteStatusContacted},
	transport.QuoteStatusContacted: {transport.QuoteStatusWon, transport.QuoteStatusLost},
}

// Service provides business logic for quote requests
type Service struct {
	repo     *repository.Repository
	catalogs CatalogProvider
	eventBus events.Bus
}

// New creates a new quotes service
func New(repo *repository.Repository, catalogs CatalogProvider, eventBus events.Bus) *Service {
	return &Service{
		repo:     repo,
		catalogs: catalogs,
		eventBus: eventBus,
	}
}

// Estimate prices a selection without persisting anything. The public
// calculator calls this on every recompute.
func (s *Service) Estimate(ctx context.Context, req transport.SelectionRequest) (*transport.EstimateResponse, error) {
	catalog, err := s.catalogs.PricingCatalog(ctx)
	if err != nil {
		return nil, err
	}

	est, err := pricing.Calculate(catalog, toSelection(req))
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownService) {
			return nil, apperr.BadRequest(err.Error())
		}
		return nil, err
	}

	resp := toEstimateResponse(est)
	return &resp, nil
}

// Create persists a quote request. The estimate is recomputed server-side
// from the current catalog; whatever total the client displayed is ignored.
func (s *Service) Create(ctx context.Context, req transport.CreateQuoteRequest) (*transport.QuoteResponse, error) {
	catalog, err := s.catalogs.PricingCatalog(ctx)
	if err != nil {
		return nil, err
	}

	est, err := pricing.Calculate(catalog, toSelection(req.Selection))
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownService) {
			return nil, apperr.BadRequest(err.Error())
		}
		return nil, err
	}

	now := time.Now()
	quote := &repository.Quote{
		ID:         uuid.New(),
		Status:     string(transport.QuoteStatusNew),
		ServiceID:  req.Selection.ServiceID,
		FeatureIDs: dedupFeatureIDs(req.Selection.FeatureIDs),
		PageCount:  req.Selection.PageCount,
		TimelineID: req.Selection.TimelineID,

		TotalMinor:             est.TotalMinor,
		BaseMinor:              est.BaseMinor,
		FeatureTotalMinor:      est.FeatureTotalMinor,
		PageOverageMinor:       est.PageOverageMinor,
		TimelineSurchargeMinor: est.TimelineSurchargeMinor,

		FirstName: sanitize.Text(req.FirstName),
		LastName:  sanitize.Text(req.LastName),
		Email:     sanitize.Text(req.Email),
		Phone:     nilIfEmpty(phone.Normalize(req.Phone)),
		Company:   sanitize.TextPtr(nilIfEmpty(req.Company)),
		Message:   sanitize.TextPtr(nilIfEmpty(req.Message)),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		serviceLabel := quote.ServiceID
		if svc, ok := catalog.Services[quote.ServiceID]; ok {
			serviceLabel = svc.Label
		}
		s.eventBus.Publish(ctx, events.QuoteSubmitted{
			BaseEvent:    events.NewBaseEvent(),
			QuoteID:      quote.ID,
			ServiceID:    quote.ServiceID,
			ServiceLabel: serviceLabel,
			TotalMinor:   quote.TotalMinor,
			ContactName:  quote.FirstName + " " + quote.LastName,
			ContactEmail: quote.Email,
		})
	}

	resp := quote.ToResponse()
	return &resp, nil
}

// GetByID retrieves a quote for the back office
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*transport.QuoteResponse, error) {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := quote.ToResponse()
	return &resp, nil
}

// List retrieves quotes with filtering for the back office
func (s *Service) List(ctx context.Context, req transport.ListQuotesRequest) (*transport.QuoteListResponse, error) {
	params := repository.ListParams{
		Search:   req.Search,
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

	result, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]transport.QuoteResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return &transport.QuoteListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// UpdateStatus moves a quote through the pipeline
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, changedBy uuid.UUID, req transport.UpdateQuoteStatusRequest) (*transport.QuoteResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperr.BadRequest("invalid status")
	}

	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := transport.QuoteStatus(quote.Status)
	if req.Status == oldStatus {
		resp := quote.ToResponse()
		return &resp, nil
	}

	if !StatusTransitionAllowed(oldStatus, req.Status) {
		return nil, apperr.Conflict(fmt.Sprintf("cannot move quote from %s to %s", oldStatus, req.Status))
	}

	if err := s.repo.UpdateStatus(ctx, id, string(req.Status)); err != nil {
		return nil, err
	}

	quote, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.QuoteStatusChanged{
			BaseEvent: events.NewBaseEvent(),
			QuoteID:   id,
			OldStatus: string(oldStatus),
			NewStatus: string(req.Status),
			ChangedBy: changedBy,
		})
	}

	resp := quote.ToResponse()
	return &resp, nil
}

// StatusTransitionAllowed reports whether the pipeline permits a move.
func StatusTransitionAllowed(from, to transport.QuoteStatus) bool {
	for _, allowed := range allowedStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func toSelection(req transport.SelectionRequest) pricing.Selection {
	return pricing.Selection{
		ServiceID:  req.ServiceID,
		FeatureIDs: req.FeatureIDs,
		PageCount:  req.PageCount,
		TimelineID: req.TimelineID,
	}
}

func toEstimateResponse(est pricing.Estimate) transport.EstimateResponse {
	return transport.EstimateResponse{
		TotalMinor:             est.TotalMinor,
		BaseMinor:              est.BaseMinor,
		FeatureTotalMinor:      est.FeatureTotalMinor,
		PageOverageMinor:       est.PageOverageMinor,
		TimelineSurchargeMinor: est.TimelineSurchargeMinor,
	}
}

func dedupFeatureIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func clampPageSize(size int) int {
	if size < 1 || size > 100 {
		return 50
	}
	return size
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
