package dhis2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Field selection constants for metadata queries, mirroring the fields the
// web API exposes for each object family.
const (
	idFields             = "id,code,name,created,lastUpdated,attributeValues"
	nameFields           = idFields + ",shortName,description"
	dataElementFields    = nameFields + ",aggregationType,valueType,domainType,legendSets[" + nameFields + "]"
	categoryOptionFields = idFields + ",shortName,startDate,endDate,formName"
	categoryFields       = nameFields + ",dataDimensionType,dataDimension"
	teAttributeFields    = nameFields + ",valueType,confidential,unique"
)

// ImportStrategy represents a metadata or data import strategy.
type ImportStrategy string

const (
	ImportStrategyCreate          ImportStrategy = "CREATE"
	ImportStrategyUpdate          ImportStrategy = "UPDATE"
	ImportStrategyCreateAndUpdate ImportStrategy = "CREATE_AND_UPDATE"
	ImportStrategyDelete          ImportStrategy = "DELETE"
)

// AtomicMode controls whether a metadata import is all-or-nothing.
type AtomicMode string

const (
	AtomicModeAll  AtomicMode = "ALL"
	AtomicModeNone AtomicMode = "NONE"
)

// MetadataImportOptions specifies options for bulk metadata imports.
type MetadataImportOptions struct {
	ImportStrategy ImportStrategy
	AtomicMode     AtomicMode
	DryRun         bool
}

func (o MetadataImportOptions) params() url.Values {
	strategy := o.ImportStrategy
	if strategy == "" {
		strategy = ImportStrategyCreateAndUpdate
	}
	atomicMode := o.AtomicMode
	if atomicMode == "" {
		atomicMode = AtomicModeAll
	}

	values := url.Values{}
	values.Set("importStrategy", string(strategy))
	values.Set("atomicMode", string(atomicMode))
	if o.DryRun {
		values.Set("dryRun", "true")
	}
	return values
}

// SaveMetadataObject saves a metadata object at the given collection path
// using HTTP POST.
func (c *Client) SaveMetadataObject(ctx context.Context, path string, object interface{}) (*ObjectResponse, error) {
	var response ObjectResponse
	if err := c.writeJSON(ctx, http.MethodPost, apiPath(path), nil, object, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateMetadataObject updates a metadata object at the given object path
// using HTTP PUT.
func (c *Client) UpdateMetadataObject(ctx context.Context, path string, object interface{}) (*ObjectResponse, error) {
	var response ObjectResponse
	if err := c.writeJSON(ctx, http.MethodPut, apiPath(path), nil, object, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RemoveMetadataObject removes a metadata object at the given object path
// using HTTP DELETE.
func (c *Client) RemoveMetadataObject(ctx context.Context, path string) (*ObjectResponse, error) {
	var response ObjectResponse
	if err := c.writeJSON(ctx, http.MethodDelete, apiPath(path), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetMetadataObject retrieves a metadata object at the given path into out.
func (c *Client) GetMetadataObject(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.getJSON(ctx, apiPath(path), params, out)
}

// ObjectExists indicates whether an object exists at the given API path
// using HTTP HEAD.
func (c *Client) ObjectExists(ctx context.Context, path string) (bool, error) {
	statusCode, err := c.head(ctx, apiPath(path))
	if err != nil {
		return false, err
	}
	return statusCode == http.StatusOK, nil
}

// SaveMetadata saves or updates the metadata object collections of the given
// envelope in a single bulk import.
func (c *Client) SaveMetadata(ctx context.Context, metadata *Metadata, options MetadataImportOptions) (*ObjectsResponse, error) {
	var response ObjectsResponse
	if err := c.writeJSON(ctx, http.MethodPost, apiPath("metadata"), options.params(), metadata, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// getCollection retrieves a metadata collection with the given fields and
// query into the Metadata envelope.
func (c *Client) getCollection(ctx context.Context, collection, fields string, query *Query) (*Metadata, error) {
	params := query.params()
	if fields != "" {
		params.Set("fields", fields)
	}

	var metadata Metadata
	if err := c.getJSON(ctx, apiPath(collection), params, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

// getItem retrieves a single metadata object by identifier with the given
// fields into out.
func (c *Client) getItem(ctx context.Context, collection, id, fields string, out interface{}) error {
	params := url.Values{}
	if fields != "" {
		params.Set("fields", fields)
	}
	return c.getJSON(ctx, apiPath(collection, id), params, out)
}

// requireID guards update and remove operations against empty identifiers.
func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("identifier is required")
	}
	return nil
}
