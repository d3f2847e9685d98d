package dhis2

import (
	"context"
	"fmt"
)

// GetDataSet retrieves the data set with the given identifier.
func (c *Client) GetDataSet(ctx context.Context, id string) (*DataSet, error) {
	fields := fmt.Sprintf("%s,periodType,categoryCombo[%s],dataSetElements[dataElement[%s]]",
		nameFields, idFields, dataElementFields)
	var dataSet DataSet
	if err := c.getItem(ctx, "dataSets", id, fields, &dataSet); err != nil {
		return nil, err
	}
	return &dataSet, nil
}

// GetDataSets retrieves the data sets matching the given query.
func (c *Client) GetDataSets(ctx context.Context, query *Query) ([]DataSet, error) {
	metadata, err := c.getCollection(ctx, "dataSets", nameFields+",periodType", query)
	if err != nil {
		return nil, err
	}
	return metadata.DataSets, nil
}

// GetOptionSet retrieves the option set with the given identifier.
func (c *Client) GetOptionSet(ctx context.Context, id string) (*OptionSet, error) {
	fields := fmt.Sprintf("%s,valueType,options[%s,sortOrder]", idFields, idFields)
	var optionSet OptionSet
	if err := c.getItem(ctx, "optionSets", id, fields, &optionSet); err != nil {
		return nil, err
	}
	return &optionSet, nil
}

// GetOptionSets retrieves the option sets matching the given query.
func (c *Client) GetOptionSets(ctx context.Context, query *Query) ([]OptionSet, error) {
	metadata, err := c.getCollection(ctx, "optionSets", idFields+",valueType", query)
	if err != nil {
		return nil, err
	}
	return metadata.OptionSets, nil
}
