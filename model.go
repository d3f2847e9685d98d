package dhis2

// Identifiable holds the fields shared by all DHIS2 metadata objects.
// Timestamps are kept as strings in the server's own format.
type Identifiable struct {
	ID              string           `json:"id,omitempty"`
	Code            string           `json:"code,omitempty"`
	Name            string           `json:"name,omitempty"`
	Created         string           `json:"created,omitempty"`
	LastUpdated     string           `json:"lastUpdated,omitempty"`
	AttributeValues []AttributeValue `json:"attributeValues,omitempty"`
}

// AttributeValue represents a custom attribute value on a metadata object.
type AttributeValue struct {
	Attribute Attribute `json:"attribute"`
	Value     string    `json:"value,omitempty"`
}

// Attribute represents a custom metadata attribute.
type Attribute struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// OrgUnit represents an organisation unit.
type OrgUnit struct {
	Identifiable
	ShortName   string   `json:"shortName,omitempty"`
	Description string   `json:"description,omitempty"`
	Path        string   `json:"path,omitempty"`
	Level       int      `json:"level,omitempty"`
	Parent      *OrgUnit `json:"parent,omitempty"`
	OpeningDate string   `json:"openingDate,omitempty"`
	ClosedDate  string   `json:"closedDate,omitempty"`
}

// OrgUnitGroup represents an organisation unit group.
type OrgUnitGroup struct {
	Identifiable
	ShortName         string    `json:"shortName,omitempty"`
	Description       string    `json:"description,omitempty"`
	OrganisationUnits []OrgUnit `json:"organisationUnits,omitempty"`
}

// OrgUnitGroupSet represents an organisation unit group set.
type OrgUnitGroupSet struct {
	Identifiable
	ShortName              string         `json:"shortName,omitempty"`
	Description            string         `json:"description,omitempty"`
	DataDimension          bool           `json:"dataDimension,omitempty"`
	Compulsory             bool           `json:"compulsory,omitempty"`
	OrganisationUnitGroups []OrgUnitGroup `json:"organisationUnitGroups,omitempty"`
}

// OrgUnitLevel represents an organisation unit hierarchy level.
type OrgUnitLevel struct {
	Identifiable
	Level int `json:"level,omitempty"`
}

// OrgUnitSplitRequest specifies an organisation unit split operation.
type OrgUnitSplitRequest struct {
	Source        string   `json:"source"`
	Targets       []string `json:"targets"`
	PrimaryTarget string   `json:"primaryTarget,omitempty"`
	DeleteSource  bool     `json:"deleteSource,omitempty"`
}

// OrgUnitMergeRequest specifies an organisation unit merge operation.
type OrgUnitMergeRequest struct {
	Sources       []string `json:"sources"`
	Target        string   `json:"target"`
	DeleteSources bool     `json:"deleteSources,omitempty"`
}

// CategoryOption represents a category option.
type CategoryOption struct {
	Identifiable
	ShortName string `json:"shortName,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	FormName  string `json:"formName,omitempty"`
}

// Category represents a data element category.
type Category struct {
	Identifiable
	ShortName         string           `json:"shortName,omitempty"`
	Description       string           `json:"description,omitempty"`
	DataDimensionType string           `json:"dataDimensionType,omitempty"`
	DataDimension     bool             `json:"dataDimension,omitempty"`
	CategoryOptions   []CategoryOption `json:"categoryOptions,omitempty"`
}

// CategoryCombo represents a category combination.
type CategoryCombo struct {
	Identifiable
	DataDimensionType    string                `json:"dataDimensionType,omitempty"`
	SkipTotal            bool                  `json:"skipTotal,omitempty"`
	Categories           []Category            `json:"categories,omitempty"`
	CategoryOptionCombos []CategoryOptionCombo `json:"categoryOptionCombos,omitempty"`
}

// CategoryOptionCombo represents a category option combination.
type CategoryOptionCombo struct {
	Identifiable
	CategoryCombo   *CategoryCombo   `json:"categoryCombo,omitempty"`
	CategoryOptions []CategoryOption `json:"categoryOptions,omitempty"`
}

// CategoryOptionGroupSet represents a category option group set.
type CategoryOptionGroupSet struct {
	Identifiable
	ShortName     string `json:"shortName,omitempty"`
	Description   string `json:"description,omitempty"`
	DataDimension bool   `json:"dataDimension,omitempty"`
}

// DataElement represents a data element.
type DataElement struct {
	Identifiable
	ShortName       string         `json:"shortName,omitempty"`
	Description     string         `json:"description,omitempty"`
	AggregationType string         `json:"aggregationType,omitempty"`
	ValueType       string         `json:"valueType,omitempty"`
	DomainType      string         `json:"domainType,omitempty"`
	CategoryCombo   *CategoryCombo `json:"categoryCombo,omitempty"`
	OptionSet       *OptionSet     `json:"optionSet,omitempty"`
	LegendSets      []LegendSet    `json:"legendSets,omitempty"`
}

// LegendSet represents a legend set.
type LegendSet struct {
	Identifiable
	ShortName   string `json:"shortName,omitempty"`
	Description string `json:"description,omitempty"`
}

// DataElementGroup represents a data element group.
type DataElementGroup struct {
	Identifiable
	ShortName    string        `json:"shortName,omitempty"`
	Description  string        `json:"description,omitempty"`
	DataElements []DataElement `json:"dataElements,omitempty"`
}

// DataElementGroupSet represents a data element group set.
type DataElementGroupSet struct {
	Identifiable
	ShortName         string             `json:"shortName,omitempty"`
	Description       string             `json:"description,omitempty"`
	Compulsory        bool               `json:"compulsory,omitempty"`
	DataElementGroups []DataElementGroup `json:"dataElementGroups,omitempty"`
}

// DataSet represents a data set.
type DataSet struct {
	Identifiable
	ShortName       string           `json:"shortName,omitempty"`
	Description     string           `json:"description,omitempty"`
	PeriodType      string           `json:"periodType,omitempty"`
	CategoryCombo   *CategoryCombo   `json:"categoryCombo,omitempty"`
	DataSetElements []DataSetElement `json:"dataSetElements,omitempty"`
}

// DataSetElement is the wrapper DHIS2 uses around data elements of a data set.
type DataSetElement struct {
	DataElement DataElement `json:"dataElement"`
}

// OptionSet represents an option set.
type OptionSet struct {
	Identifiable
	ValueType string   `json:"valueType,omitempty"`
	Options   []Option `json:"options,omitempty"`
}

// Option represents an option of an option set.
type Option struct {
	Identifiable
	SortOrder int `json:"sortOrder,omitempty"`
}

// Program represents a tracker or event program.
type Program struct {
	Identifiable
	ShortName                      string                          `json:"shortName,omitempty"`
	Description                    string                          `json:"description,omitempty"`
	ProgramType                    string                          `json:"programType,omitempty"`
	Version                        int                             `json:"version,omitempty"`
	CategoryCombo                  *CategoryCombo                  `json:"categoryCombo,omitempty"`
	ProgramStages                  []ProgramStage                  `json:"programStages,omitempty"`
	ProgramTrackedEntityAttributes []ProgramTrackedEntityAttribute `json:"programTrackedEntityAttributes,omitempty"`
}

// ProgramStage represents a stage of a program.
type ProgramStage struct {
	Identifiable
	ProgramStageDataElements []ProgramStageDataElement `json:"programStageDataElements,omitempty"`
}

// ProgramStageDataElement is the wrapper around data elements of a program stage.
type ProgramStageDataElement struct {
	Identifiable
	DataElement DataElement `json:"dataElement"`
	Compulsory  bool        `json:"compulsory,omitempty"`
}

// ProgramTrackedEntityAttribute links a tracked entity attribute to a program.
type ProgramTrackedEntityAttribute struct {
	Identifiable
	TrackedEntityAttribute TrackedEntityAttribute `json:"trackedEntityAttribute"`
	Mandatory              bool                   `json:"mandatory,omitempty"`
}

// TrackedEntityAttribute represents a tracked entity attribute.
type TrackedEntityAttribute struct {
	Identifiable
	ShortName    string `json:"shortName,omitempty"`
	Description  string `json:"description,omitempty"`
	ValueType    string `json:"valueType,omitempty"`
	Confidential bool   `json:"confidential,omitempty"`
	Unique       bool   `json:"unique,omitempty"`
}

// Dimension represents a dynamic dimension.
type Dimension struct {
	Identifiable
	DimensionType string `json:"dimensionType,omitempty"`
}

// PeriodType represents a period type.
type PeriodType struct {
	Name           string `json:"name,omitempty"`
	FrequencyOrder int    `json:"frequencyOrder,omitempty"`
	IsoDuration    string `json:"isoDuration,omitempty"`
	IsoFormat      string `json:"isoFormat,omitempty"`
}

// TableHook represents an analytics table hook.
type TableHook struct {
	Identifiable
	Phase              string `json:"phase,omitempty"`
	ResourceTableType  string `json:"resourceTableType,omitempty"`
	AnalyticsTableType string `json:"analyticsTableType,omitempty"`
	SQL                string `json:"sql,omitempty"`
}

// SystemInfo holds a subset of the DHIS2 system information.
type SystemInfo struct {
	Version       string `json:"version,omitempty"`
	Revision      string `json:"revision,omitempty"`
	BuildTime     string `json:"buildTime,omitempty"`
	ServerDate    string `json:"serverDate,omitempty"`
	ContextPath   string `json:"contextPath,omitempty"`
	CalendarName  string `json:"calendar,omitempty"`
	DateFormat    string `json:"dateFormat,omitempty"`
	SystemID      string `json:"systemId,omitempty"`
	SystemName    string `json:"systemName,omitempty"`
	InstanceBase  string `json:"instanceBaseUrl,omitempty"`
	LastAnalytics string `json:"lastAnalyticsTableSuccess,omitempty"`
}

// SystemSettings holds the system settings as raw key-value pairs. DHIS2
// exposes settings of mixed types under dynamic keys.
type SystemSettings map[string]interface{}

// Metadata is the envelope holding metadata object collections. It serves
// both as the list-response shape and as the bulk import payload.
type Metadata struct {
	OrganisationUnits         []OrgUnit                `json:"organisationUnits,omitempty"`
	OrganisationUnitGroups    []OrgUnitGroup           `json:"organisationUnitGroups,omitempty"`
	OrganisationUnitGroupSets []OrgUnitGroupSet        `json:"organisationUnitGroupSets,omitempty"`
	OrganisationUnitLevels    []OrgUnitLevel           `json:"organisationUnitLevels,omitempty"`
	CategoryOptions           []CategoryOption         `json:"categoryOptions,omitempty"`
	Categories                []Category               `json:"categories,omitempty"`
	CategoryCombos            []CategoryCombo          `json:"categoryCombos,omitempty"`
	CategoryOptionCombos      []CategoryOptionCombo    `json:"categoryOptionCombos,omitempty"`
	CategoryOptionGroupSets   []CategoryOptionGroupSet `json:"categoryOptionGroupSets,omitempty"`
	DataElements              []DataElement            `json:"dataElements,omitempty"`
	DataElementGroups         []DataElementGroup       `json:"dataElementGroups,omitempty"`
	DataElementGroupSets      []DataElementGroupSet    `json:"dataElementGroupSets,omitempty"`
	DataSets                  []DataSet                `json:"dataSets,omitempty"`
	OptionSets                []OptionSet              `json:"optionSets,omitempty"`
	Programs                  []Program                `json:"programs,omitempty"`
	Dimensions                []Dimension              `json:"dimensions,omitempty"`
	PeriodTypes               []PeriodType             `json:"periodTypes,omitempty"`
	AnalyticsTableHooks       []TableHook              `json:"analyticsTableHooks,omitempty"`
}
