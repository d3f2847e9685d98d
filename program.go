package dhis2

import (
	"context"
	"fmt"
	"net/http"
)

func programFields(expanded bool) string {
	if !expanded {
		return nameFields + ",programType,version"
	}
	stageFields := fmt.Sprintf("%s,programStageDataElements[%s,compulsory,dataElement[%s]]",
		idFields, idFields, dataElementFields)
	attributeFields := fmt.Sprintf("%s,mandatory,trackedEntityAttribute[%s]", idFields, teAttributeFields)
	return fmt.Sprintf("%s,programType,version,categoryCombo[%s],programStages[%s],programTrackedEntityAttributes[%s]",
		nameFields, idFields, stageFields, attributeFields)
}

// GetProgram retrieves the program with the given identifier, including its
// stages and tracked entity attributes.
func (c *Client) GetProgram(ctx context.Context, id string) (*Program, error) {
	var program Program
	if err := c.getItem(ctx, "programs", id, programFields(true), &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// GetPrograms retrieves the programs matching the given query. Associated
// stages and attributes are included when the query asks for expanded
// associations.
func (c *Client) GetPrograms(ctx context.Context, query *Query) ([]Program, error) {
	metadata, err := c.getCollection(ctx, "programs", programFields(query.isExpandAssociations()), query)
	if err != nil {
		return nil, err
	}
	return metadata.Programs, nil
}

// GetDimension retrieves the dimension with the given identifier.
func (c *Client) GetDimension(ctx context.Context, id string) (*Dimension, error) {
	var dimension Dimension
	if err := c.getItem(ctx, "dimensions", id, idFields+",dimensionType", &dimension); err != nil {
		return nil, err
	}
	return &dimension, nil
}

// GetDimensions retrieves the dimensions matching the given query.
func (c *Client) GetDimensions(ctx context.Context, query *Query) ([]Dimension, error) {
	metadata, err := c.getCollection(ctx, "dimensions", idFields+",dimensionType", query)
	if err != nil {
		return nil, err
	}
	return metadata.Dimensions, nil
}

// GetPeriodTypes retrieves the available period types.
func (c *Client) GetPeriodTypes(ctx context.Context, query *Query) ([]PeriodType, error) {
	metadata, err := c.getCollection(ctx, "periodTypes", "frequencyOrder,name,isoDuration,isoFormat", query)
	if err != nil {
		return nil, err
	}
	return metadata.PeriodTypes, nil
}

// SaveTableHook saves an analytics table hook.
func (c *Client) SaveTableHook(ctx context.Context, hook *TableHook) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "analyticsTableHooks", hook)
}

// UpdateTableHook updates an analytics table hook.
func (c *Client) UpdateTableHook(ctx context.Context, hook *TableHook) (*ObjectResponse, error) {
	if err := requireID(hook.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "analyticsTableHooks/"+hook.ID, hook)
}

// RemoveTableHook removes the analytics table hook with the given identifier.
func (c *Client) RemoveTableHook(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "analyticsTableHooks/"+id)
}

// GetTableHook retrieves the analytics table hook with the given identifier.
func (c *Client) GetTableHook(ctx context.Context, id string) (*TableHook, error) {
	fields := idFields + ",phase,resourceTableType,analyticsTableType,sql"
	var hook TableHook
	if err := c.getItem(ctx, "analyticsTableHooks", id, fields, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// GetTableHooks retrieves the analytics table hooks matching the given query.
func (c *Client) GetTableHooks(ctx context.Context, query *Query) ([]TableHook, error) {
	fields := idFields + ",phase,resourceTableType,analyticsTableType,sql"
	metadata, err := c.getCollection(ctx, "analyticsTableHooks", fields, query)
	if err != nil {
		return nil, err
	}
	return metadata.AnalyticsTableHooks, nil
}

// TableHookExists indicates whether an analytics table hook with the given
// identifier exists.
func (c *Client) TableHookExists(ctx context.Context, id string) (bool, error) {
	if err := requireID(id); err != nil {
		return false, err
	}
	statusCode, err := c.head(ctx, apiPath("analyticsTableHooks", id))
	if err != nil {
		return false, err
	}
	return statusCode == http.StatusOK, nil
}
