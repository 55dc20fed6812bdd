package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cvhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminClient_CreateUser(t *testing.T) {
	t.Run("Should send service key and return the new id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
			assert.Equal(t, "service-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "jane@example.com", body["email"])
			assert.Equal(t, false, body["email_confirm"])
			meta := body["user_metadata"].(map[string]any)
			assert.Equal(t, "applicant", meta["role"])

			_, _ = w.Write([]byte(`{"id":"user-123","email":"jane@example.com"}`))
		}))
		defer srv.Close()

		client := NewAdminClient(srv.URL+"/", "service-key")
		id, err := client.CreateUser(context.Background(), "jane@example.com", "secret1", map[string]any{"role": "applicant"})
		require.NoError(t, err)
		assert.Equal(t, "user-123", id)
	})

	t.Run("Should surface GoTrue rejection as bad request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"msg":"A user with this email address has already been registered"}`))
		}))
		defer srv.Close()

		_, err := NewAdminClient(srv.URL, "k").CreateUser(context.Background(), "a@b.co", "secret1", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "already been registered")
	})

	t.Run("Should map server errors to upstream", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewAdminClient(srv.URL, "k").CreateUser(context.Background(), "a@b.co", "secret1", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperror.CodeOf(err))
	})
}

func TestAdminClient_DeleteUser(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewAdminClient(srv.URL, "k").DeleteUser(context.Background(), "user-123")
	assert.NoError(t, err)
	assert.Equal(t, "/auth/v1/admin/users/user-123", path)
}

func TestAdminClient_IsServiceKey(t *testing.T) {
	c := NewAdminClient("https://x.supabase.co", "secret")
	assert.True(t, c.IsServiceKey("secret"))
	assert.False(t, c.IsServiceKey("other"))
	assert.False(t, NewAdminClient("https://x", "").IsServiceKey(""))
}
