package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/errors"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/common/session"
)

func testSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(t.TempDir(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, sess.SetCredentials("test-token", nil))
	return sess
}

func testClient(t *testing.T, srv *httptest.Server, sess *session.Session) *Client {
	t.Helper()
	return New(Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Session: sess,
		Logger:  logger.NewNoOpLogger(),
	})
}

// ==========================
// 1. Request shaping
// ==========================

func TestBearerAndHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"data":{"stats":{}}}`))
	}))
	defer srv.Close()

	client := testClient(t, srv, testSession(t))
	var env Envelope
	require.NoError(t, client.Get(context.Background(), "/dashboard/stats", &env))

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRefusesWithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	sess, err := session.New(t.TempDir(), time.Hour)
	require.NoError(t, err)
	client := testClient(t, srv, sess)

	err = client.Get(context.Background(), "/platforms/invoices", nil)
	assert.True(t, errors.IsNoToken(err))
	assert.False(t, called, "no round trip without a credential")
}

func TestWithoutAuthSkipsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"token":"t"}}`))
	}))
	defer srv.Close()

	sess, err := session.New(t.TempDir(), time.Hour)
	require.NoError(t, err)
	client := testClient(t, srv, sess)

	var env Envelope
	require.NoError(t, client.Post(context.Background(), "/auth/login", map[string]string{}, &env, WithoutAuth()))
	assert.Empty(t, gotAuth)
}

// ==========================
// 2. Error mapping
// ==========================

func TestUnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	sess := testSession(t)
	cleared := false
	sess.Subscribe(func() { cleared = true })
	client := testClient(t, srv, sess)

	err := client.Get(context.Background(), "/platforms/invoices", nil)
	assert.True(t, errors.IsUnauthorized(err))
	assert.True(t, cleared, "401 must clear the shared session")
	assert.False(t, sess.Authenticated())

	// The next call is refused locally, before any round trip.
	err = client.Get(context.Background(), "/platforms/invoices", nil)
	assert.True(t, errors.IsNoToken(err))
}

func TestValidationErrorFlattening(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"name":["is required"],"amount":["must be positive"]}}`))
	}))
	defer srv.Close()

	client := testClient(t, srv, testSession(t))
	err := client.Post(context.Background(), "/services/fees", map[string]string{}, nil)
	require.True(t, errors.IsValidation(err))
	assert.Equal(t, "amount: must be positive, name: is required", errors.Convert(err).Message)
}

func TestServerErrorFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := testClient(t, srv, testSession(t))
	err := client.Get(context.Background(), "/platforms/invoices", nil)
	assert.Equal(t, errors.GenericMessage, errors.Convert(err).Message)
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := testClient(t, srv, testSession(t))
	err := client.Get(context.Background(), "/platforms/invoices/999", nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestPerRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := testClient(t, srv, testSession(t))
	err := client.Get(context.Background(), "/services/taxes", nil, WithTimeout(20*time.Millisecond))
	assert.Equal(t, errors.ErrCodeRequestTimeout, errors.Code(err))
}

func TestClientDefaultTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(Options{
		BaseURL: srv.URL,
		Timeout: 20 * time.Millisecond,
		Session: testSession(t),
		Logger:  logger.NewNoOpLogger(),
	})

	// No per-request deadline here; the http.Client timeout must still
	// classify as a timeout, not a network failure.
	err := client.Get(context.Background(), "/services/taxes", nil)
	assert.Equal(t, errors.ErrCodeRequestTimeout, errors.Code(err))
}

// ==========================
// 3. Envelope decoding
// ==========================

func TestEnvelopeKeyCandidates(t *testing.T) {
	env := Envelope{Data: map[string]json.RawMessage{
		"serviceTaxes": json.RawMessage(`[{"name":"VAT"}]`),
	}}

	var out []struct {
		Name string `json:"name"`
	}
	require.NoError(t, env.Unmarshal(&out, "taxes", "serviceTaxes"))
	require.Len(t, out, 1)
	assert.Equal(t, "VAT", out[0].Name)
}

func TestEnvelopeSingleEntryFallback(t *testing.T) {
	env := Envelope{Data: map[string]json.RawMessage{
		"whatever": json.RawMessage(`{"name":"x"}`),
	}}

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, env.Unmarshal(&out, "invoice"))
	assert.Equal(t, "x", out.Name)
}

func TestEnvelopeAmbiguousKeysFail(t *testing.T) {
	env := Envelope{Data: map[string]json.RawMessage{
		"a": json.RawMessage(`1`),
		"b": json.RawMessage(`2`),
	}}
	var out int
	assert.Error(t, env.Unmarshal(&out, "c"))
}

func TestResourceFromPath(t *testing.T) {
	assert.Equal(t, "invoices", resourceFromPath("/platforms/invoices/3"))
	assert.Equal(t, "taxes", resourceFromPath("/services/taxes"))
	assert.Equal(t, "users", resourceFromPath("/roles/users/states"))
	assert.Equal(t, "organizations", resourceFromPath("/organizations/5/id-configs"))
	assert.Equal(t, "unknown", resourceFromPath("/"))
}
