package stores

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/apiclient"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/session"
)

// newBackend starts a fake backend and returns a client signed in against it.
func newBackend(t *testing.T, handler http.Handler) (*apiclient.Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(t.TempDir(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, sess.SetCredentials("test-token", nil))

	client := apiclient.New(apiclient.Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Session: sess,
		Logger:  logger.NewNoOpLogger(),
	})
	return client, sess
}
