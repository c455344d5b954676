package stores

import (
	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// PaymentStore manages the read-only /platforms/payments collection.
type PaymentStore struct {
	*remote.Resource[models.Payment]
}

func NewPaymentStore(client *apiclient.Client) *PaymentStore {
	return &PaymentStore{
		Resource: remote.New(remote.Config[models.Payment]{
			Client:   client,
			BasePath: "/platforms/payments",
			ListKeys: []string{"payments", "platformPayments"},
			ItemKeys: []string{"payment", "platformPayment"},
			ID:       func(p models.Payment) string { return p.ID.String() },
		}),
	}
}

// CountByStatus tallies the snapshot into the three status buckets.
func (s *PaymentStore) CountByStatus() (pending, completed, failed int) {
	for _, p := range s.Items() {
		switch p.Status {
		case models.PaymentPending:
			pending++
		case models.PaymentCompleted:
			completed++
		case models.PaymentFailed:
			failed++
		}
	}
	return pending, completed, failed
}
