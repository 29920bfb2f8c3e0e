package transport

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus tracks a request through the sales pipeline.
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusWon       QuoteStatus = "won"
	QuoteStatusLost      QuoteStatus = "lost"
)

// IsValid checks if the status is a known value
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusWon, QuoteStatusLost:
		return true
	}
	return false
}

// SelectionRequest mirrors the calculator's state at submit time.
type SelectionRequest struct {
	ServiceID  string   `json:"serviceId" validate:"required,max=64"`
	FeatureIDs []string `json:"featureIds" validate:"omitempty,max=20,dive,max=64"`
	PageCount  int      `json:"pageCount" validate:"omitempty,gte=0,lte=500"`
	TimelineID string   `json:"timelineId" validate:"omitempty,max=64"`
}

// EstimateResponse is the server-side price decomposition.
type EstimateResponse struct {
	TotalMinor             int64 `json:"totalMinor"`
	BaseMinor              int64 `json:"baseMinor"`
	FeatureTotalMinor      int64 `json:"featureTotalMinor"`
	PageOverageMinor       int64 `json:"pageOverageMinor"`
	TimelineSurchargeMinor int64 `json:"timelineSurchargeMinor"`
}

// CreateQuoteRequest is the public quote submission: the calculator selection
// plus the visitor's contact details.
type CreateQuoteRequest struct {
	Selection SelectionRequest `json:"selection" validate:"required"`

	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Company   string `json:"company" validate:"omitempty,max=200"`
	Message   string `json:"message" validate:"omitempty,max=4000"`
}

// QuoteResponse is a quote as returned to the visitor and the back office.
type QuoteResponse struct {
	ID         uuid.UUID        `json:"id"`
	Status     QuoteStatus      `json:"status"`
	ServiceID  string           `json:"serviceId"`
	FeatureIDs []string         `json:"featureIds"`
	PageCount  int              `json:"pageCount"`
	TimelineID string           `json:"timelineId"`
	Estimate   EstimateResponse `json:"estimate"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListQuotesRequest captures admin list filters.
type ListQuotesRequest struct {
	Status   *QuoteStatus `form:"status"`
	Search   string       `form:"search"`
	Page     int          `form:"page"`
	PageSize int          `form:"pageSize"`
}

// QuoteListResponse is a paginated admin listing.
type QuoteListResponse struct {
	Items      []QuoteResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// UpdateQuoteStatusRequest moves a quote through the pipeline.
type UpdateQuoteStatusRequest struct {
	Status QuoteStatus `json:"status" validate:"required"`
}
