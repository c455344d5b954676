package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// FeeStore manages the /services/fees collection.
type FeeStore struct {
	*remote.Resource[models.FeeService]
}

func NewFeeStore(client *apiclient.Client) *FeeStore {
	return &FeeStore{
		Resource: remote.New(remote.Config[models.FeeService]{
			Client:   client,
			BasePath: "/services/fees",
			ListKeys: []string{"fees", "serviceFees"},
			ItemKeys: []string{"fee", "serviceFee"},
			ID:       func(f models.FeeService) string { return f.ID.String() },
		}),
	}
}

// FeeForm is the operator-facing create/update shape for a fee service.
type FeeForm struct {
	Name           string
	Type           string
	State          string
	Amount         string
	Active         bool
	OrganizationID string
	PaymentType    string
	Channels       []string
}

func (f FeeForm) payload() map[string]interface{} {
	status := 0
	if f.Active {
		status = 1
	}
	p := map[string]interface{}{
		"name":   f.Name,
		"type":   f.Type,
		"state":  f.State,
		"amount": f.Amount,
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

// CreateFee submits a new fee service.
func (s *FeeStore) CreateFee(ctx context.Context, form FeeForm) (*models.FeeService, error) {
	return s.Create(ctx, form.payload())
}

// UpdateFee submits changes for an existing fee service.
func (s *FeeStore) UpdateFee(ctx context.Context, id string, form FeeForm) (*models.FeeService, error) {
	return s.Update(ctx, id, form.payload())
}
