package models

import "time"

// Payment method metadata shared by fee and tax services.
const (
	ServiceOneTime   = "one_time"
	ServiceRecurring = "recurring"
)

// FeeService is a fee definition owned by an organization.
type FeeService struct {
	ID             ID            `json:"id"`
	Name           string        `json:"name"`
	Type           string        `json:"type"`
	State          string        `json:"state"`
	Amount         string        `json:"amount"`
	Status         int           `json:"status"` // 1 active, 0 inactive
	OrganizationID ID            `json:"organization_id,omitempty"`
	PaymentType    string        `json:"payment_type,omitempty"` // one_time | recurring
	Channels       []string      `json:"channels,omitempty"`
	Items          []ServiceItem `json:"items,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ServiceItem is a sub-service entry nested under a fee.
type ServiceItem struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// TaxService is a tax definition owned by an organization.
type TaxService struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	State          string    `json:"state"`
	Amount         string    `json:"amount"`
	Status         int       `json:"status"` // 1 active, 0 inactive
	OrganizationID ID        `json:"organization_id,omitempty"`
	PaymentType    string    `json:"payment_type,omitempty"`
	Channels       []string  `json:"channels,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Active reports whether the service status flag is set.
func (f FeeService) Active() bool { return f.Status == 1 }

// Active reports whether the service status flag is set.
func (t TaxService) Active() bool { return t.Status == 1 }
