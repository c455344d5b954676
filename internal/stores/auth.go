// Package stores holds one store per backend resource. Each store owns the
// collection snapshot for its resource and the operations against its
// endpoints; shared concerns (bearer injection, 401 handling, error mapping)
// live in the HTTP client underneath.
package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/forms"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
)

// AuthStore drives the login/logout lifecycle against /auth.
type AuthStore struct {
	client *apiclient.Client
	logger logger.Logger
}

func NewAuthStore(client *apiclient.Client, log logger.Logger) *AuthStore {
	return &AuthStore{client: client, logger: log}
}

// Login validates the credentials locally, exchanges them for a bearer token,
// and persists token plus user to the session.
func (s *AuthStore) Login(ctx context.Context, form forms.LoginForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var env apiclient.Envelope
	err := s.client.Post(ctx, "/auth/login", form, &env,
		apiclient.WithoutAuth(), apiclient.WithResource("auth"))
	if err != nil {
		return nil, err
	}

	var token string
	if err := env.Unmarshal(&token, "token", "access_token"); err != nil {
		return nil, err
	}
	var user models.User
	if err := env.Unmarshal(&user, "user"); err != nil {
		return nil, err
	}

	if err := s.client.Session().SetCredentials(token, user); err != nil {
		return nil, err
	}

	s.logger.Info("Signed in", map[string]interface{}{
		"user_id": user.ID.String(),
		"role":    user.Role,
	})
	return &user, nil
}

// Logout revokes the token on the backend and clears the session either way.
func (s *AuthStore) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/auth/logout", nil, nil, apiclient.WithResource("auth"))
	s.client.Session().Clear()
	return err
}

// CurrentUser fetches the authenticated user from the backend and refreshes
// the persisted copy.
func (s *AuthStore) CurrentUser(ctx context.Context) (*models.User, error) {
	var env apiclient.Envelope
	if err := s.client.Get(ctx, "/auth/user", &env, apiclient.WithResource("auth")); err != nil {
		return nil, err
	}

	var user models.User
	if err := env.Unmarshal(&user, "user"); err != nil {
		return nil, err
	}

	if token, err := s.client.Session().Token(); err == nil {
		_ = s.client.Session().SetCredentials(token, user)
	}
	return &user, nil
}

// StoredUser returns the persisted user without a round trip.
func (s *AuthStore) StoredUser() (*models.User, error) {
	var user models.User
	if err := s.client.Session().User(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
