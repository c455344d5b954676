package stores

import (
	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// ActivityStore manages the read-only /users/activity feed.
type ActivityStore struct {
	*remote.Resource[models.Activity]
}

func NewActivityStore(client *apiclient.Client) *ActivityStore {
	return &ActivityStore{
		Resource: remote.New(remote.Config[models.Activity]{
			Client:   client,
			BasePath: "/users/activity",
			ListKeys: []string{"activities", "activity"},
			ItemKeys: []string{"activity"},
			ID:       func(a models.Activity) string { return a.ID.String() },
		}),
	}
}
