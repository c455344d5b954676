package stores

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/logger"
	"github.com/crakton/cashworxs-admin-sub000/internal/forms"
	"github.com/crakton/cashworxs-admin-sub000/internal/models"
)

func TestLoginPersistsCredentials(t *testing.T) {
	var gotBody map[string]string
	client, sess := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login goes out without a bearer")
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"data":{"token":"fresh-token","user":{"id":1,"name":"Ada","role":"admin"}}}`))
	}))
	sess.Clear()

	store := NewAuthStore(client, logger.NewNoOpLogger())
	user, err := store.Login(context.Background(), forms.LoginForm{
		Phone:    "+2348012345678",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "+2348012345678", gotBody["phone_number"])
	assert.Equal(t, "Ada", user.Name)

	token, err := sess.Token()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	var stored models.User
	require.NoError(t, sess.User(&stored))
	assert.Equal(t, "admin", stored.Role)
}

func TestLoginRejectedLocally(t *testing.T) {
	called := false
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	store := NewAuthStore(client, logger.NewNoOpLogger())
	_, err := store.Login(context.Background(), forms.LoginForm{Phone: "short", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone_number")
	assert.False(t, called, "invalid form never reaches the backend")
}

func TestLogoutClearsSessionEvenOnBackendFailure(t *testing.T) {
	client, sess := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	store := NewAuthStore(client, logger.NewNoOpLogger())
	err := store.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, sess.Authenticated(), "session cleared regardless of the revoke outcome")
}

func TestCurrentUserFetch(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/user", r.URL.Path)
		w.Write([]byte(`{"data":{"user":{"id":7,"name":"Chidi"}}}`))
	}))

	store := NewAuthStore(client, logger.NewNoOpLogger())
	user, err := store.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Chidi", user.Name)
	assert.Equal(t, "7", user.ID.String())
}
