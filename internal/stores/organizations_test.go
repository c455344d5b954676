package stores

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/cache"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewWithClient(client, time.Minute)
}

func orgsHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/organizations":
			*hits++
			w.Write([]byte(`{"data":{"organizations":[{"id":1,"name":"Lagos IRS","type":"government"}]}}`))
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"data":{"organization":{"id":2,"name":"Kano IRS","type":"government"}}}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestOrganizationsServedFromCache(t *testing.T) {
	hits := 0
	client, _ := newBackend(t, orgsHandler(&hits))
	store := NewOrganizationStore(client, newTestCache(t))

	require.NoError(t, store.FetchAll(context.Background()))
	require.NoError(t, store.FetchAll(context.Background()))

	assert.Equal(t, 1, hits, "second fetch served from cache")
	require.Len(t, store.Items(), 1)
	assert.Equal(t, "Lagos IRS", store.Items()[0].Name)
}

func TestOrganizationsWithoutCache(t *testing.T) {
	hits := 0
	client, _ := newBackend(t, orgsHandler(&hits))
	store := NewOrganizationStore(client, nil)

	require.NoError(t, store.FetchAll(context.Background()))
	require.NoError(t, store.FetchAll(context.Background()))
	assert.Equal(t, 2, hits, "nil cache always goes to the backend")
}

func TestCreateOrganizationInvalidatesCache(t *testing.T) {
	hits := 0
	client, _ := newBackend(t, orgsHandler(&hits))
	store := NewOrganizationStore(client, newTestCache(t))

	require.NoError(t, store.FetchAll(context.Background()))
	_, err := store.CreateOrganization(context.Background(), "Kano IRS", "government")
	require.NoError(t, err)

	require.NoError(t, store.FetchAll(context.Background()))
	assert.Equal(t, 2, hits, "cache invalidated by the create")
}
