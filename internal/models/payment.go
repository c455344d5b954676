package models

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the backend's small-integer payment state.
type PaymentStatus int

const (
	PaymentPending PaymentStatus = iota
	PaymentCompleted
	PaymentFailed
)

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentCompleted:
		return "Completed"
	case PaymentFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Payment mirrors the backend payment/receipt record. Provider is the raw
// gateway payload passed through untouched.
type Payment struct {
	ID            ID              `json:"id"`
	InvoiceID     ID              `json:"invoice_id"`
	ReceiptNumber string          `json:"receipt_number"`
	PayerName     string          `json:"payer_name,omitempty"`
	Amount        float64         `json:"amount"`
	Status        PaymentStatus   `json:"status"`
	Provider      json.RawMessage `json:"provider,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
