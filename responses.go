package dhis2

import "net/http"

// Status represents the outcome status reported by the DHIS2 web API.
type Status string

const (
	StatusOK      Status = "OK"
	StatusSuccess Status = "SUCCESS"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// httpResponse is implemented by response envelopes that record the HTTP
// status code and headers of the underlying response.
type httpResponse interface {
	setHTTPResponse(statusCode int, headers http.Header)
}

// Response is the generic message envelope of DHIS2 web API responses.
type Response struct {
	HTTPStatusCode int         `json:"httpStatusCode,omitempty"`
	HTTPHeaders    http.Header `json:"-"`
	Status         Status      `json:"status,omitempty"`
	Code           int         `json:"code,omitempty"`
	Message        string      `json:"message,omitempty"`
	DevMessage     string      `json:"devMessage,omitempty"`
}

func (r *Response) setHTTPResponse(statusCode int, headers http.Header) {
	r.HTTPStatusCode = statusCode
	r.HTTPHeaders = headers
}

// Header returns the value of the HTTP header with the given name, or the
// empty string if not present.
func (r *Response) Header(name string) string {
	if r.HTTPHeaders == nil {
		return ""
	}
	return r.HTTPHeaders.Get(name)
}

// ErrorReport describes a single import error for a metadata object.
type ErrorReport struct {
	Message       string `json:"message,omitempty"`
	MainKlass     string `json:"mainKlass,omitempty"`
	ErrorCode     string `json:"errorCode,omitempty"`
	MainID        string `json:"mainId,omitempty"`
	ErrorProperty string `json:"errorProperty,omitempty"`
}

// ObjectReport describes the import outcome for a single metadata object.
type ObjectReport struct {
	Klass        string        `json:"klass,omitempty"`
	Index        int           `json:"index,omitempty"`
	UID          string        `json:"uid,omitempty"`
	ErrorReports []ErrorReport `json:"errorReports,omitempty"`
}

// ObjectResponse holds information about a single metadata save, update or
// remove operation.
type ObjectResponse struct {
	Response
	ObjectReport *ObjectReport `json:"response,omitempty"`
}

// ObjectStatistics holds the counts of a metadata import.
type ObjectStatistics struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Ignored int `json:"ignored"`
}

// Total returns the total object count of the statistics.
func (s ObjectStatistics) Total() int {
	return s.Created + s.Updated + s.Deleted + s.Ignored
}

// TypeReport holds import statistics for a single metadata type.
type TypeReport struct {
	Klass         string           `json:"klass,omitempty"`
	Stats         ObjectStatistics `json:"stats"`
	ObjectReports []ObjectReport   `json:"objectReports,omitempty"`
}

// ObjectsResponse holds information about a bulk metadata import.
type ObjectsResponse struct {
	Response
	Stats       ObjectStatistics `json:"stats"`
	TypeReports []TypeReport     `json:"typeReports,omitempty"`
}

// ImportCount holds the counts of a data value set import.
type ImportCount struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Ignored  int `json:"ignored"`
	Deleted  int `json:"deleted"`
}

// Conflict describes a data value import conflict.
type Conflict struct {
	Object    string `json:"object,omitempty"`
	Value     string `json:"value,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// DataValueSetResponse holds the import summary of a data value set import.
type DataValueSetResponse struct {
	Response
	Description string      `json:"description,omitempty"`
	ImportCount ImportCount `json:"importCount"`
	Conflicts   []Conflict  `json:"conflicts,omitempty"`
}

// JobInfo identifies a server-side asynchronous job.
type JobInfo struct {
	ID                       string      `json:"id,omitempty"`
	Name                     string      `json:"name,omitempty"`
	JobType                  JobCategory `json:"jobType,omitempty"`
	Created                  string      `json:"created,omitempty"`
	RelativeNotifierEndpoint string      `json:"relativeNotifierEndpoint,omitempty"`
}
