package transport

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks a contact-form lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// IsValid checks if the status is a known value
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	}
	return false
}

// CreateLeadRequest is the public contact-form submission.
type CreateLeadRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Company   string `json:"company" validate:"omitempty,max=200"`
	Topic     string `json:"topic" validate:"required,max=200"`
	Message   string `json:"message" validate:"required,max=4000"`
}

// LeadResponse is a lead as shown in the back office.
type LeadResponse struct {
	ID        uuid.UUID  `json:"id"`
	Status    LeadStatus `json:"status"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Company   string     `json:"company,omitempty"`
	Topic     string     `json:"topic"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ListLeadsRequest captures admin list filters.
type ListLeadsRequest struct {
	Status   *LeadStatus `form:"status"`
	Search   string      `form:"search"`
	Page     int         `form:"page"`
	PageSize int         `form:"pageSize"`
}

// LeadListResponse is a paginated admin listing.
type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// UpdateLeadStatusRequest moves a lead between statuses.
type UpdateLeadStatusRequest struct {
	Status LeadStatus `json:"status" validate:"required"`
}
