package dhis2

import (
	"context"
	"fmt"
)

// GetDataElement retrieves the data element with the given identifier.
func (c *Client) GetDataElement(ctx context.Context, id string) (*DataElement, error) {
	fields := fmt.Sprintf("%s,categoryCombo[%s],optionSet[%s]", dataElementFields, idFields, idFields)
	var dataElement DataElement
	if err := c.getItem(ctx, "dataElements", id, fields, &dataElement); err != nil {
		return nil, err
	}
	return &dataElement, nil
}

// GetDataElements retrieves the data elements matching the given query.
func (c *Client) GetDataElements(ctx context.Context, query *Query) ([]DataElement, error) {
	metadata, err := c.getCollection(ctx, "dataElements", dataElementFields, query)
	if err != nil {
		return nil, err
	}
	return metadata.DataElements, nil
}

// SaveDataElementGroup saves a data element group.
func (c *Client) SaveDataElementGroup(ctx context.Context, group *DataElementGroup) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "dataElementGroups", group)
}

// UpdateDataElementGroup updates a data element group.
func (c *Client) UpdateDataElementGroup(ctx context.Context, group *DataElementGroup) (*ObjectResponse, error) {
	if err := requireID(group.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "dataElementGroups/"+group.ID, group)
}

// RemoveDataElementGroup removes the data element group with the given
// identifier.
func (c *Client) RemoveDataElementGroup(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "dataElementGroups/"+id)
}

// GetDataElementGroup retrieves the data element group with the given
// identifier.
func (c *Client) GetDataElementGroup(ctx context.Context, id string) (*DataElementGroup, error) {
	fields := fmt.Sprintf("%s,dataElements[%s]", nameFields, dataElementFields)
	var group DataElementGroup
	if err := c.getItem(ctx, "dataElementGroups", id, fields, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// GetDataElementGroups retrieves the data element groups matching the given
// query.
func (c *Client) GetDataElementGroups(ctx context.Context, query *Query) ([]DataElementGroup, error) {
	metadata, err := c.getCollection(ctx, "dataElementGroups", nameFields, query)
	if err != nil {
		return nil, err
	}
	return metadata.DataElementGroups, nil
}

// GetDataElementGroupSet retrieves the data element group set with the given
// identifier.
func (c *Client) GetDataElementGroupSet(ctx context.Context, id string) (*DataElementGroupSet, error) {
	fields := fmt.Sprintf("%s,compulsory,dataElementGroups[%s]", nameFields, nameFields)
	var groupSet DataElementGroupSet
	if err := c.getItem(ctx, "dataElementGroupSets", id, fields, &groupSet); err != nil {
		return nil, err
	}
	return &groupSet, nil
}

// GetDataElementGroupSets retrieves the data element group sets matching the
// given query.
func (c *Client) GetDataElementGroupSets(ctx context.Context, query *Query) ([]DataElementGroupSet, error) {
	metadata, err := c.getCollection(ctx, "dataElementGroupSets", nameFields+",compulsory", query)
	if err != nil {
		return nil, err
	}
	return metadata.DataElementGroupSets, nil
}
