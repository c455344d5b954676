package stores

import (
	"context"
	"sync"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/forms"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

// IdentityConfigStore manages identity-verification field configs, which are
// nested under their owning organization. Each organization gets its own
// collection snapshot.
type IdentityConfigStore struct {
	client *apiclient.Client

	mu    sync.Mutex
	byOrg map[string]*remote.Resource[models.IdentityConfig]
}

func NewIdentityConfigStore(client *apiclient.Client) *IdentityConfigStore {
	return &IdentityConfigStore{
		client: client,
		byOrg:  make(map[string]*remote.Resource[models.IdentityConfig]),
	}
}

// For returns the collection for one organization, creating it on first use.
func (s *IdentityConfigStore) For(orgID string) *remote.Resource[models.IdentityConfig] {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.byOrg[orgID]
	if !ok {
		res = remote.New(remote.Config[models.IdentityConfig]{
			Client:   s.client,
			BasePath: "/organizations/" + orgID + "/id-configs",
			ListKeys: []string{"idConfigs", "identityConfigs", "configs"},
			ItemKeys: []string{"idConfig", "identityConfig", "config"},
			ID:       func(c models.IdentityConfig) string { return c.ID.String() },
		})
		s.byOrg[orgID] = res
	}
	return res
}

// ConfigForm is the create/update shape for one identity field definition.
type ConfigForm struct {
	Name      string                   `json:"name"`
	Label     string                   `json:"label"`
	Type      models.IdentityFieldType `json:"type"`
	Required  bool                     `json:"required"`
	Active    bool                     `json:"active"`
	SortOrder int                      `json:"sort_order"`
}

// CreateConfig adds a field definition to the organization's form.
func (s *IdentityConfigStore) CreateConfig(ctx context.Context, orgID string, form ConfigForm) (*models.IdentityConfig, error) {
	return s.For(orgID).Create(ctx, form)
}

// UpdateConfig changes an existing field definition.
func (s *IdentityConfigStore) UpdateConfig(ctx context.Context, orgID, configID string, form ConfigForm) (*models.IdentityConfig, error) {
	return s.For(orgID).Update(ctx, configID, form)
}

// DeleteConfig removes a field definition.
func (s *IdentityConfigStore) DeleteConfig(ctx context.Context, orgID, configID string) error {
	return s.For(orgID).Delete(ctx, configID)
}

// ValidateSubmission checks candidate identity values against the
// organization's current field configs.
func (s *IdentityConfigStore) ValidateSubmission(orgID string, input map[string]interface{}) error {
	return forms.ValidateIdentityInput(s.For(orgID).Items(), input)
}
