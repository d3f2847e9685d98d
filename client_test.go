package dhis2

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a client against a test server with a short timeout
// so polling tests terminate quickly.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:  baseURL,
		Username: "admin",
		Password: "district",
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("Should require a base URL", func(t *testing.T) {
		_, err := NewClient(Config{Username: "admin", Password: "district"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "base URL")
	})

	t.Run("Should trim trailing slash from base URL", func(t *testing.T) {
		client, err := NewClient(Config{BaseURL: "https://play.dhis2.org/demo/"})

		require.NoError(t, err)
		assert.Equal(t, "https://play.dhis2.org/demo", client.BaseURL())
	})

	t.Run("Should expose the configured username", func(t *testing.T) {
		client, err := NewClient(Config{BaseURL: "https://play.dhis2.org/demo", Username: "admin"})

		require.NoError(t, err)
		assert.Equal(t, "admin", client.Username())
	})
}

func TestClientAuthentication(t *testing.T) {
	t.Run("Should send basic auth credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "admin", username)
			assert.Equal(t, "district", password)

			w.Write([]byte(`{"version":"2.41"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		info, err := client.GetSystemInfo(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "2.41", info.Version)
	})
}

func TestClientErrors(t *testing.T) {
	t.Run("Should map error statuses to ClientError", func(t *testing.T) {
		tests := []struct {
			name       string
			statusCode int
			check      func(*ClientError) bool
		}{
			{
				name:       "Unauthorized",
				statusCode: http.StatusUnauthorized,
				check:      (*ClientError).IsUnauthorized,
			},
			{
				name:       "Forbidden",
				statusCode: http.StatusForbidden,
				check:      (*ClientError).IsForbidden,
			},
			{
				name:       "Not found",
				statusCode: http.StatusNotFound,
				check:      (*ClientError).IsNotFound,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.statusCode)
					w.Write([]byte(`{"message":"Access denied"}`))
				}))
				defer server.Close()

				client := newTestClient(t, server.URL)

				_, err := client.GetOrgUnit(context.Background(), "O6uvpzGd5pu")

				require.Error(t, err)
				clientErr, ok := AsClientError(err)
				require.True(t, ok)
				assert.Equal(t, tt.statusCode, clientErr.StatusCode)
				assert.Equal(t, "Access denied", clientErr.Message)
				assert.True(t, tt.check(clientErr))
			})
		}
	})

	t.Run("Should fall back to HTTP status text when body has no message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetOrgUnit(context.Background(), "missing")

		require.Error(t, err)
		clientErr, ok := AsClientError(err)
		require.True(t, ok)
		assert.NotEmpty(t, clientErr.Message)
	})

	t.Run("Should decode conflict responses instead of failing", func(t *testing.T) {
		// 409 is not on the error allow-list; the body carries the outcome.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"httpStatusCode":409,"status":"ERROR","message":"Object already exists"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		response, err := client.SaveOrgUnit(context.Background(), &OrgUnit{
			Identifiable: Identifiable{Name: "Duplicate"},
		})

		require.NoError(t, err)
		assert.Equal(t, StatusError, response.Status)
		assert.Equal(t, "Object already exists", response.Message)
		assert.Equal(t, http.StatusConflict, response.HTTPStatusCode)
	})
}
