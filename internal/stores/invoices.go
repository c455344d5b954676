package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// InvoiceStore manages the /platforms/invoices collection.
type InvoiceStore struct {
	*remote.Resource[models.Invoice]
}

func NewInvoiceStore(client *apiclient.Client) *InvoiceStore {
	return &InvoiceStore{
		Resource: remote.New(remote.Config[models.Invoice]{
			Client:   client,
			BasePath: "/platforms/invoices",
			ListKeys: []string{"invoices", "platformInvoices"},
			ItemKeys: []string{"invoice", "platformInvoice"},
			ID:       func(i models.Invoice) string { return i.ID.String() },
		}),
	}
}

// CreateInvoice submits a new invoice payload.
func (s *InvoiceStore) CreateInvoice(ctx context.Context, payload models.InvoicePayload) (*models.Invoice, error) {
	return s.Create(ctx, payload)
}

// UpdateInvoice submits changes for an existing invoice.
func (s *InvoiceStore) UpdateInvoice(ctx context.Context, id string, payload models.InvoicePayload) (*models.Invoice, error) {
	return s.Update(ctx, id, payload)
}
