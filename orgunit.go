package dhis2

import (
	"context"
	"fmt"
	"net/http"
)

// SaveOrgUnit saves an organisation unit.
func (c *Client) SaveOrgUnit(ctx context.Context, orgUnit *OrgUnit) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "organisationUnits", orgUnit)
}

// SaveOrgUnits saves or updates the given organisation units in bulk.
func (c *Client) SaveOrgUnits(ctx context.Context, orgUnits []OrgUnit) (*ObjectsResponse, error) {
	return c.SaveMetadata(ctx, &Metadata{OrganisationUnits: orgUnits}, MetadataImportOptions{})
}

// UpdateOrgUnit updates an organisation unit.
func (c *Client) UpdateOrgUnit(ctx context.Context, orgUnit *OrgUnit) (*ObjectResponse, error) {
	if err := requireID(orgUnit.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "organisationUnits/"+orgUnit.ID, orgUnit)
}

// RemoveOrgUnit removes the organisation unit with the given identifier.
func (c *Client) RemoveOrgUnit(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "organisationUnits/"+id)
}

// GetOrgUnit retrieves the organisation unit with the given identifier.
func (c *Client) GetOrgUnit(ctx context.Context, id string) (*OrgUnit, error) {
	fields := nameFields + ",path,level"
	var orgUnit OrgUnit
	if err := c.getItem(ctx, "organisationUnits", id, fmt.Sprintf("%s,parent[%s]", fields, fields), &orgUnit); err != nil {
		return nil, err
	}
	return &orgUnit, nil
}

// GetOrgUnits retrieves the organisation units matching the given query.
func (c *Client) GetOrgUnits(ctx context.Context, query *Query) ([]OrgUnit, error) {
	fields := nameFields + ",path,level"
	metadata, err := c.getCollection(ctx, "organisationUnits", fmt.Sprintf("%s,parent[%s]", fields, fields), query)
	if err != nil {
		return nil, err
	}
	return metadata.OrganisationUnits, nil
}

// SplitOrgUnit performs an organisation unit split operation.
func (c *Client) SplitOrgUnit(ctx context.Context, request *OrgUnitSplitRequest) (*Response, error) {
	var response Response
	if err := c.writeJSON(ctx, http.MethodPost, apiPath("organisationUnits", "split"), nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// MergeOrgUnits performs an organisation unit merge operation.
func (c *Client) MergeOrgUnits(ctx context.Context, request *OrgUnitMergeRequest) (*Response, error) {
	var response Response
	if err := c.writeJSON(ctx, http.MethodPost, apiPath("organisationUnits", "merge"), nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SaveOrgUnitGroup saves an organisation unit group.
func (c *Client) SaveOrgUnitGroup(ctx context.Context, group *OrgUnitGroup) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "organisationUnitGroups", group)
}

// UpdateOrgUnitGroup updates an organisation unit group.
func (c *Client) UpdateOrgUnitGroup(ctx context.Context, group *OrgUnitGroup) (*ObjectResponse, error) {
	if err := requireID(group.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "organisationUnitGroups/"+group.ID, group)
}

// RemoveOrgUnitGroup removes the organisation unit group with the given
// identifier.
func (c *Client) RemoveOrgUnitGroup(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "organisationUnitGroups/"+id)
}

// GetOrgUnitGroup retrieves the organisation unit group with the given
// identifier.
func (c *Client) GetOrgUnitGroup(ctx context.Context, id string) (*OrgUnitGroup, error) {
	var group OrgUnitGroup
	if err := c.getItem(ctx, "organisationUnitGroups", id, nameFields, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// GetOrgUnitGroups retrieves the organisation unit groups matching the
// given query.
func (c *Client) GetOrgUnitGroups(ctx context.Context, query *Query) ([]OrgUnitGroup, error) {
	metadata, err := c.getCollection(ctx, "organisationUnitGroups", nameFields, query)
	if err != nil {
		return nil, err
	}
	return metadata.OrganisationUnitGroups, nil
}

// SaveOrgUnitGroupSet saves an organisation unit group set.
func (c *Client) SaveOrgUnitGroupSet(ctx context.Context, groupSet *OrgUnitGroupSet) (*ObjectResponse, error) {
	return c.SaveMetadataObject(ctx, "organisationUnitGroupSets", groupSet)
}

// UpdateOrgUnitGroupSet updates an organisation unit group set.
func (c *Client) UpdateOrgUnitGroupSet(ctx context.Context, groupSet *OrgUnitGroupSet) (*ObjectResponse, error) {
	if err := requireID(groupSet.ID); err != nil {
		return nil, err
	}
	return c.UpdateMetadataObject(ctx, "organisationUnitGroupSets/"+groupSet.ID, groupSet)
}

// RemoveOrgUnitGroupSet removes the organisation unit group set with the
// given identifier.
func (c *Client) RemoveOrgUnitGroupSet(ctx context.Context, id string) (*ObjectResponse, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return c.RemoveMetadataObject(ctx, "organisationUnitGroupSets/"+id)
}

// GetOrgUnitGroupSet retrieves the organisation unit group set with the
// given identifier.
func (c *Client) GetOrgUnitGroupSet(ctx context.Context, id string) (*OrgUnitGroupSet, error) {
	fields := fmt.Sprintf("%s,organisationUnitGroups[%s]", nameFields, nameFields)
	var groupSet OrgUnitGroupSet
	if err := c.getItem(ctx, "organisationUnitGroupSets", id, fields, &groupSet); err != nil {
		return nil, err
	}
	return &groupSet, nil
}

// GetOrgUnitGroupSets retrieves the organisation unit group sets matching
// the given query.
func (c *Client) GetOrgUnitGroupSets(ctx context.Context, query *Query) ([]OrgUnitGroupSet, error) {
	fields := fmt.Sprintf("%s,organisationUnitGroups[%s]", nameFields, nameFields)
	metadata, err := c.getCollection(ctx, "organisationUnitGroupSets", fields, query)
	if err != nil {
		return nil, err
	}
	return metadata.OrganisationUnitGroupSets, nil
}

// GetOrgUnitLevel retrieves the organisation unit level with the given
// identifier.
func (c *Client) GetOrgUnitLevel(ctx context.Context, id string) (*OrgUnitLevel, error) {
	var level OrgUnitLevel
	if err := c.getItem(ctx, "organisationUnitLevels", id, idFields+",level", &level); err != nil {
		return nil, err
	}
	return &level, nil
}

// GetOrgUnitLevels retrieves the organisation unit levels matching the
// given query.
func (c *Client) GetOrgUnitLevels(ctx context.Context, query *Query) ([]OrgUnitLevel, error) {
	metadata, err := c.getCollection(ctx, "organisationUnitLevels", idFields+",level", query)
	if err != nil {
		return nil, err
	}
	return metadata.OrganisationUnitLevels, nil
}

// GetFilledOrgUnitLevels retrieves the organisation unit levels with any
// gaps in the persisted levels filled by generated ones. The endpoint
// returns a bare array rather than a wrapper entity.
func (c *Client) GetFilledOrgUnitLevels(ctx context.Context) ([]OrgUnitLevel, error) {
	var levels []OrgUnitLevel
	if err := c.getJSON(ctx, apiPath("filledOrganisationUnitLevels"), nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}
