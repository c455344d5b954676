package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/errors"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/session"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestResource(t *testing.T, handler http.Handler) (*Resource[widget], *session.Session, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)

	sess, err := session.New(t.TempDir(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, sess.SetCredentials("test-token", nil))

	client := apiclient.New(apiclient.Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Session: sess,
		Logger:  logger.NewNoOpLogger(),
	})

	res := New(Config[widget]{
		Client:   client,
		BasePath: "/widgets",
		ListKeys: []string{"widgets"},
		ItemKeys: []string{"widget"},
		ID:       func(w widget) string { return w.ID },
	})
	return res, sess, srv.Close
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// ==========================
// 1. Lifecycle
// ==========================

func TestLifecycleStates(t *testing.T) {
	res, _, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
			"widgets": []widget{{ID: "1", Name: "a"}},
		}})
	}))
	defer closeFn()

	assert.Equal(t, NotAsked, res.State())

	require.NoError(t, res.FetchAll(context.Background()))
	assert.Equal(t, Loaded, res.State())
	assert.NoError(t, res.Err())
	assert.Len(t, res.Items(), 1)
}

func TestFailureKeepsPriorData(t *testing.T) {
	fail := false
	res, _, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
			"widgets": []widget{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}},
		}})
	}))
	defer closeFn()

	require.NoError(t, res.FetchAll(context.Background()))
	require.Len(t, res.Items(), 2)

	fail = true
	err := res.FetchAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, Failed, res.State())
	assert.Len(t, res.Items(), 2, "failed refresh must not discard the last good snapshot")
}

func TestUnauthorizedThenLocalRefusal(t *testing.T) {
	res, sess, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer closeFn()

	err := res.FetchAll(context.Background())
	assert.True(t, errors.IsUnauthorized(err))
	assert.False(t, sess.Authenticated())

	err = res.FetchAll(context.Background())
	assert.True(t, errors.IsNoToken(err), "second call refused before any round trip")
	assert.Equal(t, Failed, res.State())
}

// ==========================
// 2. Mutations
// ==========================

func TestCreateAppends(t *testing.T) {
	res, _, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widgets": []widget{{ID: "1", Name: "a"}},
			}})
		case http.MethodPost:
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widget": widget{ID: "2", Name: "b"},
			}})
		}
	}))
	defer closeFn()

	require.NoError(t, res.FetchAll(context.Background()))
	created, err := res.Create(context.Background(), map[string]string{"name": "b"})
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)

	items := res.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[1].ID, "created record appended at the end")
}

func TestUpdateReplacesAndRefreshesCurrent(t *testing.T) {
	res, _, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/widgets":
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widgets": []widget{{ID: "1", Name: "old"}, {ID: "2", Name: "keep"}},
			}})
		case r.Method == http.MethodGet:
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widget": widget{ID: "1", Name: "old"},
			}})
		case r.Method == http.MethodPut:
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widget": widget{ID: "1", Name: "new"},
			}})
		}
	}))
	defer closeFn()

	require.NoError(t, res.FetchAll(context.Background()))
	require.NoError(t, res.FetchOne(context.Background(), "1"))

	updated, err := res.Update(context.Background(), "1", map[string]string{"name": "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)

	items := res.Items()
	assert.Equal(t, "new", items[0].Name)
	assert.Equal(t, "keep", items[1].Name)
	require.NotNil(t, res.Current())
	assert.Equal(t, "new", res.Current().Name, "current record refreshed on update")
}

func TestDeleteRemovesAndClearsCurrent(t *testing.T) {
	res, _, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/widgets" {
				writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
					"widgets": []widget{{ID: "1"}, {ID: "2"}},
				}})
				return
			}
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widget": widget{ID: "1"},
			}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer closeFn()

	require.NoError(t, res.FetchAll(context.Background()))
	require.NoError(t, res.FetchOne(context.Background(), "1"))

	require.NoError(t, res.Delete(context.Background(), "1"))
	items := res.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
	assert.Nil(t, res.Current(), "deleting the current record clears it")
}

func TestDeleteOtherKeepsCurrent(t *testing.T) {
	res, _, closeFn := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/widgets" {
				writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
					"widgets": []widget{{ID: "1"}, {ID: "2"}},
				}})
				return
			}
			writeJSON(w, map[string]interface{}{"data": map[string]interface{}{
				"widget": widget{ID: "1"},
			}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer closeFn()

	require.NoError(t, res.FetchAll(context.Background()))
	require.NoError(t, res.FetchOne(context.Background(), "1"))

	require.NoError(t, res.Delete(context.Background(), "2"))
	require.NotNil(t, res.Current())
	assert.Equal(t, "1", res.Current().ID)
}

// ==========================
// 3. Hydrate and reset
// ==========================

func TestHydrate(t *testing.T) {
	res, _, closeFn := newTestResource(t, http.NotFoundHandler())
	defer closeFn()

	res.Hydrate([]widget{{ID: "1"}})
	assert.Equal(t, Loaded, res.State())
	assert.Len(t, res.Items(), 1)

	res.Reset()
	assert.Equal(t, NotAsked, res.State())
	assert.Empty(t, res.Items())
}
