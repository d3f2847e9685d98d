package dhis2

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Well-known analytics dimension identifiers.
const (
	DimensionData    = "dx"
	DimensionPeriod  = "pe"
	DimensionOrgUnit = "ou"
)

// AggregationType represents a server-side aggregation type.
type AggregationType string

const (
	AggregationSum           AggregationType = "SUM"
	AggregationAverage       AggregationType = "AVERAGE"
	AggregationCount         AggregationType = "COUNT"
	AggregationStddev        AggregationType = "STDDEV"
	AggregationVariance      AggregationType = "VARIANCE"
	AggregationMin           AggregationType = "MIN"
	AggregationMax           AggregationType = "MAX"
	AggregationFirst         AggregationType = "FIRST"
	AggregationLast          AggregationType = "LAST"
	AggregationAverageSumOrg AggregationType = "AVERAGE_SUM_ORG_UNIT"
)

// IDScheme represents an identifier scheme for analytics and import requests.
type IDScheme string

const (
	IDSchemeUID  IDScheme = "UID"
	IDSchemeCode IDScheme = "CODE"
	IDSchemeName IDScheme = "NAME"
)

// AnalyticsDimension represents an analytics dimension or filter with its
// items, rendered as dimension:item1;item2.
type AnalyticsDimension struct {
	Dimension string
	Items     []string
}

func (d AnalyticsDimension) queryValue() string {
	if len(d.Items) == 0 {
		return d.Dimension
	}
	return d.Dimension + ":" + strings.Join(d.Items, ";")
}

// AnalyticsQuery specifies dimensions, filters and options for analytics
// requests. Parameters are a flat enumeration of the optional fields.
type AnalyticsQuery struct {
	dimensions      []AnalyticsDimension
	filters         []AnalyticsDimension
	aggregationType AggregationType
	startDate       string
	endDate         string
	skipMeta        *bool
	skipData        *bool
	skipRounding    *bool
	ignoreLimit     *bool
	outputIDScheme  IDScheme
	inputIDScheme   IDScheme
}

// NewAnalyticsQuery creates an empty analytics query.
func NewAnalyticsQuery() *AnalyticsQuery {
	return &AnalyticsQuery{}
}

// AddDimension adds a dimension with items to the query.
func (q *AnalyticsQuery) AddDimension(dimension string, items ...string) *AnalyticsQuery {
	q.dimensions = append(q.dimensions, AnalyticsDimension{Dimension: dimension, Items: items})
	return q
}

// AddFilter adds a filter dimension with items to the query.
func (q *AnalyticsQuery) AddFilter(dimension string, items ...string) *AnalyticsQuery {
	q.filters = append(q.filters, AnalyticsDimension{Dimension: dimension, Items: items})
	return q
}

// WithAggregationType overrides the aggregation type.
func (q *AnalyticsQuery) WithAggregationType(aggregationType AggregationType) *AnalyticsQuery {
	q.aggregationType = aggregationType
	return q
}

// WithStartEndDate sets the start and end date, format 2006-01-02.
func (q *AnalyticsQuery) WithStartEndDate(startDate, endDate string) *AnalyticsQuery {
	q.startDate = startDate
	q.endDate = endDate
	return q
}

// WithSkipMeta sets whether to omit metadata from the response.
func (q *AnalyticsQuery) WithSkipMeta(skip bool) *AnalyticsQuery {
	q.skipMeta = &skip
	return q
}

// WithSkipData sets whether to omit data from the response.
func (q *AnalyticsQuery) WithSkipData(skip bool) *AnalyticsQuery {
	q.skipData = &skip
	return q
}

// WithSkipRounding sets whether to skip rounding of values.
func (q *AnalyticsQuery) WithSkipRounding(skip bool) *AnalyticsQuery {
	q.skipRounding = &skip
	return q
}

// WithIgnoreLimit sets whether to ignore the server row limit.
func (q *AnalyticsQuery) WithIgnoreLimit(ignore bool) *AnalyticsQuery {
	q.ignoreLimit = &ignore
	return q
}

// WithOutputIDScheme sets the identifier scheme of the response.
func (q *AnalyticsQuery) WithOutputIDScheme(scheme IDScheme) *AnalyticsQuery {
	q.outputIDScheme = scheme
	return q
}

// WithInputIDScheme sets the identifier scheme of the request.
func (q *AnalyticsQuery) WithInputIDScheme(scheme IDScheme) *AnalyticsQuery {
	q.inputIDScheme = scheme
	return q
}

func (q *AnalyticsQuery) params() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	for _, dimension := range q.dimensions {
		values.Add("dimension", dimension.queryValue())
	}
	for _, filter := range q.filters {
		values.Add("filter", filter.queryValue())
	}
	if q.aggregationType != "" {
		values.Set("aggregationType", string(q.aggregationType))
	}
	if q.startDate != "" {
		values.Set("startDate", q.startDate)
	}
	if q.endDate != "" {
		values.Set("endDate", q.endDate)
	}
	if q.skipMeta != nil {
		values.Set("skipMeta", strconv.FormatBool(*q.skipMeta))
	}
	if q.skipData != nil {
		values.Set("skipData", strconv.FormatBool(*q.skipData))
	}
	if q.skipRounding != nil {
		values.Set("skipRounding", strconv.FormatBool(*q.skipRounding))
	}
	if q.ignoreLimit != nil {
		values.Set("ignoreLimit", strconv.FormatBool(*q.ignoreLimit))
	}
	if q.outputIDScheme != "" {
		values.Set("outputIdScheme", string(q.outputIDScheme))
	}
	if q.inputIDScheme != "" {
		values.Set("inputIdScheme", string(q.inputIDScheme))
	}

	return values
}

// GetAnalyticsDataValueSet retrieves an aggregated data value set for the
// given analytics query.
func (c *Client) GetAnalyticsDataValueSet(ctx context.Context, query *AnalyticsQuery) (*DataValueSet, error) {
	var dataValueSet DataValueSet
	if err := c.getJSON(ctx, apiPath("analytics", "dataValueSet.json"), query.params(), &dataValueSet); err != nil {
		return nil, err
	}
	return &dataValueSet, nil
}
