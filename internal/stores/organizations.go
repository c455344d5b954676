package stores

import (
	"context"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/cache"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
	"github.com/crakton/cashworxs-admin-sub000/internal/remote"
)

const orgsCacheKey = "reference:organizations"

// OrganizationStore manages the /organizations collection. The list doubles
// as reference data for dropdowns elsewhere, so it is served from cache when
// one is configured.
type OrganizationStore struct {
	*remote.Resource[models.Organization]
	cache *cache.Cache
}

func NewOrganizationStore(client *apiclient.Client, c *cache.Cache) *OrganizationStore {
	return &OrganizationStore{
		Resource: remote.New(remote.Config[models.Organization]{
			Client:   client,
			BasePath: "/organizations",
			ListKeys: []string{"organizations"},
			ItemKeys: []string{"organization"},
			ID:       func(o models.Organization) string { return o.ID.String() },
		}),
		cache: c,
	}
}

// FetchAll serves the list from cache when possible, falling back to the
// backend and repopulating the cache on the way out.
func (s *OrganizationStore) FetchAll(ctx context.Context, opts ...apiclient.RequestOption) error {
	var cached []models.Organization
	if hit, err := s.cache.GetJSON(ctx, orgsCacheKey, &cached); err == nil && hit {
		s.Hydrate(cached)
		return nil
	}

	if err := s.Resource.FetchAll(ctx, opts...); err != nil {
		return err
	}
	_ = s.cache.SetJSON(ctx, orgsCacheKey, s.Items())
	return nil
}

// CreateOrganization submits a new organization and invalidates the cached
// reference list.
func (s *OrganizationStore) CreateOrganization(ctx context.Context, name, orgType string) (*models.Organization, error) {
	org, err := s.Create(ctx, map[string]string{"name": name, "type": orgType})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, orgsCacheKey)
	return org, nil
}

// UpdateOrganization submits changes and invalidates the cached list.
func (s *OrganizationStore) UpdateOrganization(ctx context.Context, id, name, orgType string) (*models.Organization, error) {
	org, err := s.Update(ctx, id, map[string]string{"name": name, "type": orgType})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, orgsCacheKey)
	return org, nil
}

// DeleteOrganization removes the organization and invalidates the cached list.
func (s *OrganizationStore) DeleteOrganization(ctx context.Context, id string) error {
	if err := s.Delete(ctx, id); err != nil {
		return err
	}
	return s.cache.Del(ctx, orgsCacheKey)
}
