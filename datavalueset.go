package dhis2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DataValue represents a single data value.
type DataValue struct {
	DataElement          string `json:"dataElement"`
	Period               string `json:"period,omitempty"`
	OrgUnit              string `json:"orgUnit,omitempty"`
	CategoryOptionCombo  string `json:"categoryOptionCombo,omitempty"`
	AttributeOptionCombo string `json:"attributeOptionCombo,omitempty"`
	Value                string `json:"value"`
	StoredBy             string `json:"storedBy,omitempty"`
	Created              string `json:"created,omitempty"`
	LastUpdated          string `json:"lastUpdated,omitempty"`
	Comment              string `json:"comment,omitempty"`
	FollowUp             bool   `json:"followup,omitempty"`
}

// DataValueSet represents a collection of data values. The header fields are
// optional; values may carry their own period and org unit for bulk imports.
type DataValueSet struct {
	DataSet      string      `json:"dataSet,omitempty"`
	CompleteDate string      `json:"completeDate,omitempty"`
	Period       string      `json:"period,omitempty"`
	OrgUnit      string      `json:"orgUnit,omitempty"`
	DataValues   []DataValue `json:"dataValues"`
}

// ImportOptions specifies options for data value set imports. Imports are
// always submitted asynchronously and polled to completion.
type ImportOptions struct {
	DataElementIDScheme         IDScheme
	OrgUnitIDScheme             IDScheme
	CategoryOptionComboIDScheme IDScheme
	IDScheme                    IDScheme
	ImportStrategy              ImportStrategy
	SkipAudit                   *bool
	DryRun                      *bool
	PreheatCache                *bool
}

func (o ImportOptions) params() url.Values {
	values := url.Values{}
	values.Set("async", "true") // Always use async

	if o.DataElementIDScheme != "" {
		values.Set("dataElementIdScheme", string(o.DataElementIDScheme))
	}
	if o.OrgUnitIDScheme != "" {
		values.Set("orgUnitIdScheme", string(o.OrgUnitIDScheme))
	}
	if o.CategoryOptionComboIDScheme != "" {
		values.Set("categoryOptionComboIdScheme", string(o.CategoryOptionComboIDScheme))
	}
	if o.IDScheme != "" {
		values.Set("idScheme", string(o.IDScheme))
	}
	if o.ImportStrategy != "" {
		values.Set("importStrategy", string(o.ImportStrategy))
	}
	if o.SkipAudit != nil {
		values.Set("skipAudit", strconv.FormatBool(*o.SkipAudit))
	}
	if o.DryRun != nil {
		values.Set("dryRun", strconv.FormatBool(*o.DryRun))
	}
	if o.PreheatCache != nil {
		values.Set("preheatCache", strconv.FormatBool(*o.PreheatCache))
	}

	return values
}

// DataValueSetQuery specifies the selection for a data value set export.
type DataValueSetQuery struct {
	DataSets              []string
	Periods               []string
	OrgUnits              []string
	StartDate             string
	EndDate               string
	Children              bool
	AttributeOptionCombos []string
}

func (q DataValueSetQuery) params() url.Values {
	values := url.Values{}
	for _, dataSet := range q.DataSets {
		values.Add("dataSet", dataSet)
	}
	for _, period := range q.Periods {
		values.Add("period", period)
	}
	for _, orgUnit := range q.OrgUnits {
		values.Add("orgUnit", orgUnit)
	}
	for _, combo := range q.AttributeOptionCombos {
		values.Add("attributeOptionCombo", combo)
	}
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	if q.Children {
		values.Set("children", "true")
	}
	values.Set("paging", "false") // ensure we always get the full result set
	return values
}

// GetDataValueSet exports the data values matching the given query.
func (c *Client) GetDataValueSet(ctx context.Context, query DataValueSetQuery) (*DataValueSet, error) {
	var dataValueSet DataValueSet
	if err := c.getJSON(ctx, apiPath("dataValueSets"), query.params(), &dataValueSet); err != nil {
		return nil, err
	}
	return &dataValueSet, nil
}

// SaveDataValueSet imports the given data value set. The import is submitted
// as an asynchronous job, polled until the job completes or the client
// timeout elapses, after which the import summary is fetched and returned.
func (c *Client) SaveDataValueSet(ctx context.Context, dataValueSet *DataValueSet, options ImportOptions) (*DataValueSetResponse, error) {
	job, err := c.submitDataValueSet(ctx, dataValueSet, options)
	if err != nil {
		return nil, err
	}

	if _, err := c.WaitForJob(ctx, JobCategoryDataValueImport, job.ID, c.config.Timeout); err != nil {
		return nil, err
	}

	return c.getTaskSummary(ctx, JobCategoryDataValueImport, job.ID)
}

// submitDataValueSet posts the data value set with async=true and returns
// the job handle from the response envelope.
func (c *Client) submitDataValueSet(ctx context.Context, dataValueSet *DataValueSet, options ImportOptions) (*JobInfo, error) {
	var submitted struct {
		Response
		JobInfo JobInfo `json:"response"`
	}
	if err := c.writeJSON(ctx, http.MethodPost, apiPath("dataValueSets"), options.params(), dataValueSet, &submitted); err != nil {
		return nil, err
	}
	if submitted.JobInfo.ID == "" {
		return nil, fmt.Errorf("no job ID returned: %s", submitted.Message)
	}
	return &submitted.JobInfo, nil
}

// getTaskSummary fetches the import summary for a completed task.
func (c *Client) getTaskSummary(ctx context.Context, category JobCategory, jobID string) (*DataValueSetResponse, error) {
	var summary DataValueSetResponse
	if err := c.getJSON(ctx, apiPath("system", "taskSummaries", string(category), jobID), nil, &summary); err != nil {
		return nil, fmt.Errorf("fetching task summary: %w", err)
	}
	return &summary, nil
}

// CompleteDataSetRegistration marks a data set as complete for an
// organisation unit and period.
type CompleteDataSetRegistration struct {
	DataSet          string `json:"dataSet"`
	Period           string `json:"period"`
	OrganisationUnit string `json:"organisationUnit"`
	Completed        bool   `json:"completed"`
	CompleteDate     string `json:"completeDate,omitempty"`
	StoredBy         string `json:"storedBy,omitempty"`
}

// SaveCompleteDataSetRegistrations registers the given completions in a
// single batched request.
func (c *Client) SaveCompleteDataSetRegistrations(ctx context.Context, registrations []CompleteDataSetRegistration) (*Response, error) {
	for i := range registrations {
		if registrations[i].CompleteDate == "" {
			registrations[i].CompleteDate = time.Now().Format("2006-01-02")
		}
	}

	payload := map[string]interface{}{
		"completeDataSetRegistrations": registrations,
	}

	var response Response
	if err := c.writeJSON(ctx, http.MethodPost, apiPath("completeDataSetRegistrations"), nil, payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
