package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// UserStore manages the /roles/users collection.
type UserStore struct {
	*remote.Resource[models.User]
	client *apiclient.Client
}

func NewUserStore(client *apiclient.Client) *UserStore {
	return &UserStore{
		Resource: remote.New(remote.Config[models.User]{
			Client:   client,
			BasePath: "/roles/users",
			ListKeys: []string{"users"},
			ItemKeys: []string{"user"},
			ID:       func(u models.User) string { return u.ID.String() },
		}),
		client: client,
	}
}

// States fetches the list of states users can be assigned to.
func (s *UserStore) States(ctx context.Context) ([]string, error) {
	var env apiclient.Envelope
	if err := s.client.Get(ctx, "/roles/users/states", &env, apiclient.WithResource("users")); err != nil {
		return nil, err
	}

	var states []string
	if err := env.Unmarshal(&states, "states"); err != nil {
		return nil, err
	}
	return states, nil
}

// CreateUser submits a new user payload.
func (s *UserStore) CreateUser(ctx context.Context, payload models.UserPayload) (*models.User, error) {
	return s.Create(ctx, payload)
}

// UpdateUser submits changes for an existing user.
func (s *UserStore) UpdateUser(ctx context.Context, id string, payload models.UserPayload) (*models.User, error) {
	return s.Update(ctx, id, payload)
}
