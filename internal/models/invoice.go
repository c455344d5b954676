package models

import "time"

// InvoiceStatus is the backend's small-integer invoice state.
type InvoiceStatus int

const (
	InvoicePending InvoiceStatus = iota
	InvoicePaid
	InvoiceOverdue
)

func (s InvoiceStatus) Label() string {
	switch s {
	case InvoicePending:
		return "Pending"
	case InvoicePaid:
		return "Paid"
	case InvoiceOverdue:
		return "Overdue"
	default:
		return "Unknown"
	}
}

// Invoice mirrors the backend invoice record.
type Invoice struct {
	ID        ID            `json:"id"`
	PayerName string        `json:"payer_name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone_number,omitempty"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	Items     []InvoiceItem `json:"items,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// InvoiceItem is one line item of an invoice.
type InvoiceItem struct {
	ID          ID      `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
	Amount      float64 `json:"amount"`
}

// InvoicePayload is the form shape submitted on create/update.
type InvoicePayload struct {
	PayerName string        `json:"payer_name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone_number,omitempty"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	Note      string        `json:"note,omitempty"`
	Items     []InvoiceItem `json:"items,omitempty"`
}
