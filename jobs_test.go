package dhis2

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJobNotifications(t *testing.T) {
	t.Run("Should fetch notifications for job category and id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/system/tasks/DATAVALUE_IMPORT/x7kPvQnR2Lm", r.URL.Path)

			json.NewEncoder(w).Encode([]JobNotification{
				{UID: "n2", Level: NotificationLevelInfo, Message: "Import done", Completed: true},
				{UID: "n1", Level: NotificationLevelInfo, Message: "Import started"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		notifications, err := client.GetJobNotifications(context.Background(), JobCategoryDataValueImport, "x7kPvQnR2Lm")

		require.NoError(t, err)
		require.Len(t, notifications, 2)
		assert.True(t, notifications[0].Completed)
	})
}

func TestWaitForJob(t *testing.T) {
	t.Run("Should poll until the job completes", func(t *testing.T) {
		var polls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := atomic.AddInt32(&polls, 1)
			if count < 3 {
				json.NewEncoder(w).Encode([]JobNotification{
					{Level: NotificationLevelInfo, Message: "In progress"},
				})
				return
			}
			json.NewEncoder(w).Encode([]JobNotification{
				{Level: NotificationLevelInfo, Message: "Import done", Completed: true},
				{Level: NotificationLevelInfo, Message: "In progress"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		notification, err := client.WaitForJob(context.Background(), JobCategoryDataValueImport, "x7kPvQnR2Lm", 10*time.Second)

		require.NoError(t, err)
		require.NotNil(t, notification)
		assert.True(t, notification.Completed)
		assert.Equal(t, "Import done", notification.Message)
		assert.GreaterOrEqual(t, atomic.LoadInt32(&polls), int32(3))
	})

	t.Run("Should return timeout error when job never completes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]JobNotification{
				{Level: NotificationLevelInfo, Message: "Still running"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		notification, err := client.WaitForJob(context.Background(), JobCategoryMetadataImport, "x7kPvQnR2Lm", time.Second)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrJobTimeout)
		require.NotNil(t, notification)
		assert.Equal(t, "Still running", notification.Message)
	})

	t.Run("Should fail when job completes with error level", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]JobNotification{
				{Level: NotificationLevelError, Message: "Process failed: conflict", Completed: true},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		notification, err := client.WaitForJob(context.Background(), JobCategoryDataValueImport, "x7kPvQnR2Lm", 10*time.Second)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Process failed: conflict")
		require.NotNil(t, notification)
		assert.Equal(t, NotificationLevelError, notification.Level)
	})

	t.Run("Should stop polling on client error", func(t *testing.T) {
		var polls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&polls, 1)
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Job not found"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.WaitForJob(context.Background(), JobCategoryDataValueImport, "x7kPvQnR2Lm", 10*time.Second)

		require.Error(t, err)
		_, ok := AsClientError(err)
		assert.True(t, ok)
		assert.Equal(t, int32(1), atomic.LoadInt32(&polls))
	})

	t.Run("Should reject empty job id", func(t *testing.T) {
		client := newTestClient(t, "http://localhost:9999")

		_, err := client.WaitForJob(context.Background(), JobCategoryDataValueImport, "", time.Second)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "identifier is required")
	})
}
