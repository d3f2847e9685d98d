package dhis2

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsQueryParams(t *testing.T) {
	t.Run("Should render dimensions with items", func(t *testing.T) {
		query := NewAnalyticsQuery().
			AddDimension(DimensionData, "fbfJHSPpUQD", "cYeuwXTCPkU").
			AddDimension(DimensionPeriod, "202401").
			AddFilter(DimensionOrgUnit, "O6uvpzGd5pu")

		params := query.params()

		assert.Equal(t, []string{"dx:fbfJHSPpUQD;cYeuwXTCPkU", "pe:202401"}, params["dimension"])
		assert.Equal(t, "ou:O6uvpzGd5pu", params.Get("filter"))
	})

	t.Run("Should render dimension without items as bare identifier", func(t *testing.T) {
		params := NewAnalyticsQuery().AddDimension("co").params()

		assert.Equal(t, "co", params.Get("dimension"))
	})

	t.Run("Should enumerate optional parameters", func(t *testing.T) {
		query := NewAnalyticsQuery().
			WithAggregationType(AggregationAverage).
			WithStartEndDate("2024-01-01", "2024-06-30").
			WithSkipMeta(true).
			WithSkipRounding(false).
			WithOutputIDScheme(IDSchemeCode)

		params := query.params()

		assert.Equal(t, "AVERAGE", params.Get("aggregationType"))
		assert.Equal(t, "2024-01-01", params.Get("startDate"))
		assert.Equal(t, "2024-06-30", params.Get("endDate"))
		assert.Equal(t, "true", params.Get("skipMeta"))
		assert.Equal(t, "false", params.Get("skipRounding"))
		assert.Equal(t, "CODE", params.Get("outputIdScheme"))
	})

	t.Run("Should omit unset options", func(t *testing.T) {
		params := NewAnalyticsQuery().params()

		assert.Empty(t, params.Get("skipMeta"))
		assert.Empty(t, params.Get("aggregationType"))
		assert.Empty(t, params.Get("startDate"))
	})
}

func TestGetAnalyticsDataValueSet(t *testing.T) {
	t.Run("Should request analytics data value set endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/analytics/dataValueSet.json", r.URL.Path)
			assert.Equal(t, "dx:fbfJHSPpUQD", r.URL.Query().Get("dimension"))

			json.NewEncoder(w).Encode(DataValueSet{
				DataValues: []DataValue{
					{DataElement: "fbfJHSPpUQD", Period: "202401", OrgUnit: "O6uvpzGd5pu", Value: "12"},
				},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		query := NewAnalyticsQuery().AddDimension(DimensionData, "fbfJHSPpUQD")
		dataValueSet, err := client.GetAnalyticsDataValueSet(context.Background(), query)

		require.NoError(t, err)
		require.Len(t, dataValueSet.DataValues, 1)
		assert.Equal(t, "12", dataValueSet.DataValues[0].Value)
	})
}
