package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/forms"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// NotificationStore manages platform-wide broadcasts plus the signed-in
// user's own notification feed.
type NotificationStore struct {
	*remote.Resource[models.Notification]
	client *apiclient.Client
}

func NewNotificationStore(client *apiclient.Client) *NotificationStore {
	return &NotificationStore{
		Resource: remote.New(remote.Config[models.Notification]{
			Client:   client,
			BasePath: "/notifications",
			ListKeys: []string{"notifications"},
			ItemKeys: []string{"notification"},
			ID:       func(n models.Notification) string { return n.ID.String() },
		}),
		client: client,
	}
}

// Broadcast validates and submits a new notification.
func (s *NotificationStore) Broadcast(ctx context.Context, form forms.NotificationForm) (*models.Notification, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.Create(ctx, form)
}

// Mine fetches the notifications addressed to the signed-in user.
func (s *NotificationStore) Mine(ctx context.Context) ([]models.Notification, error) {
	var env apiclient.Envelope
	err := s.client.Get(ctx, "/notifications/user/my-notifications", &env,
		apiclient.WithResource("notifications"))
	if err != nil {
		return nil, err
	}

	var items []models.Notification
	if err := env.Unmarshal(&items, "notifications", "myNotifications"); err != nil {
		return nil, err
	}
	return items, nil
}
