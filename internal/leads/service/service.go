package service

import (
	"context"
	"time"

	"webforge_backend/internal/events"
	"webforge_backend/internal/leads/repository"
	"webforge_backend/internal/leads/transport"
	"webforge_backend/platform/apperr"
	"webforge_backend/platform/phone"
	"webforge_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Service provides business logic for contact-form leads
type Service struct {
	repo     *repository.Repository
	eventBus events.Bus
}

// New creates a new leads service
func New(repo *repository.Repository, eventBus events.Bus) *Service {
	return &Service{repo: repo, eventBus: eventBus}
}

// Create persists a contact-form submission
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (*transport.LeadResponse, error) {
	now := time.Now()
	lead := &repository.Lead{
		ID:        uuid.New(),
		Status:    string(transport.LeadStatusNew),
		FirstName: sanitize.Text(req.FirstName),
		LastName:  sanitize.Text(req.LastName),
		Email:     sanitize.Text(req.Email),
		Phone:     nilIfEmpty(phone.Normalize(req.Phone)),
		Company:   sanitize.TextPtr(nilIfEmpty(req.Company)),
		Topic:     sanitize.Text(req.Topic),
		Message:   sanitize.Text(req.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.LeadCreated{
			BaseEvent:    events.NewBaseEvent(),
			LeadID:       lead.ID,
			Topic:        lead.Topic,
			ContactName:  lead.FirstName + " " + lead.LastName,
			ContactEmail: lead.Email,
		})
	}

	resp := lead.ToResponse()
	return &resp, nil
}

// GetByID retrieves a lead for the back office
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := lead.ToResponse()
	return &resp, nil
}

// List retrieves leads with filtering for the back office
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (*transport.LeadListResponse, error) {
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

	items := make([]transport.LeadResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return &transport.LeadListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// UpdateStatus moves a lead between statuses
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req transport.UpdateLeadStatusRequest) (*transport.LeadResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperr.BadRequest("invalid status")
	}

	if err := s.repo.UpdateStatus(ctx, id, string(req.Status)); err != nil {
		return nil, err
	}

	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := lead.ToResponse()
	return &resp, nil
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
