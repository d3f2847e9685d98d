package dhis2

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
)

// JobCategory represents a server-side job category.
type JobCategory string

const (
	JobCategoryMetadataImport  JobCategory = "METADATA_IMPORT"
	JobCategoryDataValueImport JobCategory = "DATAVALUE_IMPORT"
	JobCategoryEventImport     JobCategory = "EVENT_IMPORT"
	JobCategoryAnalyticsTable  JobCategory = "ANALYTICS_TABLE"
	JobCategoryResourceTable   JobCategory = "RESOURCE_TABLE"
	JobCategoryDataIntegrity   JobCategory = "DATA_INTEGRITY"
)

// Notification levels reported by job notifications.
const (
	NotificationLevelInfo  = "INFO"
	NotificationLevelWarn  = "WARN"
	NotificationLevelError = "ERROR"
)

// JobNotification is a polled status record for a long-running server-side
// task. The server returns notifications latest first.
type JobNotification struct {
	UID       string      `json:"uid,omitempty"`
	Level     string      `json:"level,omitempty"`
	Category  JobCategory `json:"category,omitempty"`
	Time      string      `json:"time,omitempty"`
	Message   string      `json:"message,omitempty"`
	Completed bool        `json:"completed"`
}

// GetJobNotifications retrieves the notifications for the given job.
func (c *Client) GetJobNotifications(ctx context.Context, category JobCategory, jobID string) ([]JobNotification, error) {
	var notifications []JobNotification
	if err := c.getJSON(ctx, apiPath("system", "tasks", string(category), jobID), nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// errJobPending signals the poll loop that the job has not reached a
// terminal state yet.
var errJobPending = errors.New("job still in progress")

// WaitForJob polls the job notification endpoint until the job reports
// completion or the timeout elapses. It returns the last observed
// notification. A job completing at level ERROR is returned together with an
// error carrying the failure message; a job that never completes yields
// ErrJobTimeout.
func (c *Client) WaitForJob(ctx context.Context, category JobCategory, jobID string, timeout time.Duration) (*JobNotification, error) {
	if err := requireID(jobID); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = c.config.Timeout
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = timeout

	var last *JobNotification

	operation := func() error {
		notifications, err := c.GetJobNotifications(ctx, category, jobID)
		if err != nil {
			if _, ok := AsClientError(err); ok {
				return backoff.Permanent(err)
			}
			return err
		}
		if len(notifications) == 0 {
			return errJobPending
		}

		latest := notifications[0]
		last = &latest
		if !latest.Completed {
			return errJobPending
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		if _, ok := AsClientError(err); ok {
			return last, err
		}
		if errors.Is(err, errJobPending) {
			return last, fmt.Errorf("job %s: %w", jobID, ErrJobTimeout)
		}
		return last, fmt.Errorf("polling job %s: %w", jobID, err)
	}

	if last.Level == NotificationLevelError {
		return last, fmt.Errorf("job %s failed: %s", jobID, last.Message)
	}
	return last, nil
}
