package stores

import (
	"context"
	"strconv"
	"time"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// taxCreateTimeout caps tax submissions tighter than the client default; the
// backend's tax endpoint is known to hang rather than fail.
const taxCreateTimeout = 10 * time.Second

// TaxStore manages the /services/taxes collection.
type TaxStore struct {
	*remote.Resource[models.TaxService]
}

func NewTaxStore(client *apiclient.Client) *TaxStore {
	return &TaxStore{
		Resource: remote.New(remote.Config[models.TaxService]{
			Client:   client,
			BasePath: "/services/taxes",
			ListKeys: []string{"serviceTaxes", "taxes"},
			ItemKeys: []string{"serviceTax", "tax"},
			ID:       func(t models.TaxService) string { return t.ID.String() },
		}),
	}
}

// TaxForm is the operator-facing create/update shape for a tax service.
type TaxForm struct {
	Name           string
	Type           string
	State          string
	Amount         float64
	Active         bool
	OrganizationID string
	PaymentType    string
	Channels       []string
}

// payload builds the wire shape the backend insists on: status as a 0/1
// integer, amount as a decimal string.
func (f TaxForm) payload() map[string]interface{} {
	status := 0
	if f.Active {
		status = 1
	}
	p := map[string]interface{}{
		"name":   f.Name,
		"type":   f.Type,
		"state":  f.State,
		"amount": strconv.FormatFloat(f.Amount, 'f', -1, 64),
		"status": status,
	}
	if f.OrganizationID != "" {
		p["organization_id"] = f.OrganizationID
	}
	if f.PaymentType != "" {
		p["payment_type"] = f.PaymentType
	}
	if len(f.Channels) > 0 {
		p["channels"] = f.Channels
	}
	return p
}

// CreateTax submits a new tax service with the short per-request timeout.
func (s *TaxStore) CreateTax(ctx context.Context, form TaxForm) (*models.TaxService, error) {
	return s.Create(ctx, form.payload(), apiclient.WithTimeout(taxCreateTimeout))
}

// UpdateTax submits changes for an existing tax service.
func (s *TaxStore) UpdateTax(ctx context.Context, id string, form TaxForm) (*models.TaxService, error) {
	return s.Update(ctx, id, form.payload())
}
