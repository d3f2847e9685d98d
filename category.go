package dhis2

import (
	"context"
	"fmt"
)

// SaveCategoryOption saves a category option.
func (c *Client) SaveCategoryOption(ctx context.Context, option *CategoryOption) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "categoryOptions", option)
}

// UpdateCategoryOption updates a category option.
func (c *Client) UpdateCategoryOption(ctx context.Context, option *CategoryOption) (*ObjectResponse, error) {
	if err := requireID(option.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "categoryOptions/"+option.ID, option)
}

// RemoveCategoryOption removes the category option with the given identifier.
func (c *Client) RemoveCategoryOption(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "categoryOptions/"+id)
}

// GetCategoryOption retrieves the category option with the given identifier.
func (c *Client) GetCategoryOption(ctx context.Context, id string) (*CategoryOption, error) {
	var option CategoryOption
	if err := c.getItem(ctx, "categoryOptions", id, categoryOptionFields, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

// GetCategoryOptions retrieves the category options matching the given query.
func (c *Client) GetCategoryOptions(ctx context.Context, query *Query) ([]CategoryOption, error) {
	metadata, err := c.getCollection(ctx, "categoryOptions", categoryOptionFields, query)
	if err != nil {
		return nil, err
	}
	return metadata.CategoryOptions, nil
}

// SaveCategory saves a category.
func (c *Client) SaveCategory(ctx context.Context, category *Category) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "categories", category)
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, category *Category) (*ObjectResponse, error) {
	if err := requireID(category.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "categories/"+category.ID, category)
}

// RemoveCategory removes the category with the given identifier.
func (c *Client) RemoveCategory(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "categories/"+id)
}

// GetCategory retrieves the category with the given identifier.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	fields := fmt.Sprintf("%s,categoryOptions[%s]", categoryFields, categoryOptionFields)
	var category Category
	if err := c.getItem(ctx, "categories", id, fields, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategories retrieves the categories matching the given query.
func (c *Client) GetCategories(ctx context.Context, query *Query) ([]Category, error) {
	metadata, err := c.getCollection(ctx, "categories", categoryFields, query)
	if err != nil {
		return nil, err
	}
	return metadata.Categories, nil
}

// GetCategoryCombo retrieves the category combination with the given
// identifier.
func (c *Client) GetCategoryCombo(ctx context.Context, id string) (*CategoryCombo, error) {
	fields := fmt.Sprintf("%s,dataDimensionType,skipTotal,categories[%s],categoryOptionCombos[%s]",
		idFields, categoryFields, idFields)
	var combo CategoryCombo
	if err := c.getItem(ctx, "categoryCombos", id, fields, &combo); err != nil {
		return nil, err
	}
	return &combo, nil
}

// GetCategoryCombos retrieves the category combinations matching the given
// query.
func (c *Client) GetCategoryCombos(ctx context.Context, query *Query) ([]CategoryCombo, error) {
	metadata, err := c.getCollection(ctx, "categoryCombos", idFields+",dataDimensionType,skipTotal", query)
	if err != nil {
		return nil, err
	}
	return metadata.CategoryCombos, nil
}

// GetCategoryOptionCombo retrieves the category option combination with the
// given identifier.
func (c *Client) GetCategoryOptionCombo(ctx context.Context, id string) (*CategoryOptionCombo, error) {
	fields := fmt.Sprintf("%s,categoryCombo[%s],categoryOptions[%s]", idFields, idFields, categoryOptionFields)
	var combo CategoryOptionCombo
	if err := c.getItem(ctx, "categoryOptionCombos", id, fields, &combo); err != nil {
		return nil, err
	}
	return &combo, nil
}

// GetCategoryOptionCombos retrieves the category option combinations matching
// the given query.
func (c *Client) GetCategoryOptionCombos(ctx context.Context, query *Query) ([]CategoryOptionCombo, error) {
	fields := fmt.Sprintf("%s,categoryCombo[%s]", idFields, idFields)
	metadata, err := c.getCollection(ctx, "categoryOptionCombos", fields, query)
	if err != nil {
		return nil, err
	}
	return metadata.CategoryOptionCombos, nil
}

// GetCategoryOptionGroupSet retrieves the category option group set with the
// given identifier.
func (c *Client) GetCategoryOptionGroupSet(ctx context.Context, id string) (*CategoryOptionGroupSet, error) {
	var groupSet CategoryOptionGroupSet
	if err := c.getItem(ctx, "categoryOptionGroupSets", id, nameFields+",dataDimension", &groupSet); err != nil {
		return nil, err
	}
	return &groupSet, nil
}

// GetCategoryOptionGroupSets retrieves the category option group sets
// matching the given query.
func (c *Client) GetCategoryOptionGroupSets(ctx context.Context, query *Query) ([]CategoryOptionGroupSet, error) {
	metadata, err := c.getCollection(ctx, "categoryOptionGroupSets", nameFields+",dataDimension", query)
	if err != nil {
		return nil, err
	}
	return metadata.CategoryOptionGroupSets, nil
}
