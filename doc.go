// Package dhis2 is a client library for the DHIS2 web API. It provides typed
// access to metadata objects, aggregate data value sets, analytics queries
// and asynchronous job tracking.
//
// A client is created from a base URL and basic authentication credentials:
//
//	client, err := dhis2.NewClient(dhis2.Config{
//		BaseURL:  "https://play.dhis2.org/demo",
//		Username: "admin",
//		Password: "district",
//	})
//
// Read operations take an optional Query for filtering, ordering and paging:
//
//	orgUnits, err := client.GetOrgUnits(ctx, dhis2.NewQuery().
//		AddFilter(dhis2.Like("name", "Clinic")).
//		WithPaging(1, 50))
//
// Responses with HTTP status 401, 403 or 404 are returned as *ClientError;
// all other statuses are decoded into the typed response envelopes.
package dhis2
