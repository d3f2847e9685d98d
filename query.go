package dhis2

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Operator represents a metadata query filter operator.
type Operator string

const (
	OperatorEq      Operator = "eq"
	OperatorNe      Operator = "ne"
	OperatorLike    Operator = "like"
	OperatorIlike   Operator = "ilike"
	OperatorGt      Operator = "gt"
	OperatorGe      Operator = "ge"
	OperatorLt      Operator = "lt"
	OperatorLe      Operator = "le"
	OperatorIn      Operator = "in"
	OperatorNotIn   Operator = "!in"
	OperatorNull    Operator = "null"
	OperatorNotNull Operator = "!null"
)

// Filter represents an object filter on a metadata query.
type Filter struct {
	Property string
	Operator Operator
	Value    string
}

// Eq creates an equals filter.
func Eq(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorEq, Value: value}
}

// Ne creates a not-equals filter.
func Ne(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorNe, Value: value}
}

// Like creates a case-sensitive token filter.
func Like(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorLike, Value: value}
}

// Ilike creates a case-insensitive token filter.
func Ilike(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorIlike, Value: value}
}

// Gt creates a greater-than filter.
func Gt(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorGt, Value: value}
}

// Ge creates a greater-than-or-equal filter.
func Ge(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorGe, Value: value}
}

// Lt creates a less-than filter.
func Lt(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorLt, Value: value}
}

// Le creates a less-than-or-equal filter.
func Le(property, value string) Filter {
	return Filter{Property: property, Operator: OperatorLe, Value: value}
}

// In creates an in filter for the given values.
func In(property string, values ...string) Filter {
	return Filter{Property: property, Operator: OperatorIn, Value: strings.Join(values, ",")}
}

// NotIn creates a not-in filter for the given values.
func NotIn(property string, values ...string) Filter {
	return Filter{Property: property, Operator: OperatorNotIn, Value: strings.Join(values, ",")}
}

// Null creates an is-null filter.
func Null(property string) Filter {
	return Filter{Property: property, Operator: OperatorNull}
}

// NotNull creates an is-not-null filter.
func NotNull(property string) Filter {
	return Filter{Property: property, Operator: OperatorNotNull}
}

// Direction represents an order direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order represents the ordering of a metadata query.
type Order struct {
	Property  string
	Direction Direction
}

// Paging represents the paging of a metadata query. A zero Paging disables
// paging entirely (paging=false).
type Paging struct {
	Page     int
	PageSize int
}

func (p Paging) hasPaging() bool {
	return p.Page > 0 || p.PageSize > 0
}

// Query specifies filtering, paging and ordering for metadata object lists.
// A nil *Query is valid and disables paging.
type Query struct {
	filters            []Filter
	paging             Paging
	order              Order
	expandAssociations bool
}

// NewQuery creates an empty metadata query.
func NewQuery() *Query {
	return &Query{}
}

// AddFilter adds an object filter to the query.
func (q *Query) AddFilter(filter Filter) *Query {
	q.filters = append(q.filters, filter)
	return q
}

// WithPaging sets the page and page size of the query.
func (q *Query) WithPaging(page, pageSize int) *Query {
	q.paging = Paging{Page: page, PageSize: pageSize}
	return q
}

// WithOrder sets the ordering of the query.
func (q *Query) WithOrder(property string, direction Direction) *Query {
	q.order = Order{Property: property, Direction: direction}
	return q
}

// WithExpandAssociations requests full associated objects where supported.
func (q *Query) WithExpandAssociations() *Query {
	q.expandAssociations = true
	return q
}

// Filters returns the object filters of the query.
func (q *Query) Filters() []Filter {
	if q == nil {
		return nil
	}
	return q.filters
}

func (q *Query) isExpandAssociations() bool {
	return q != nil && q.expandAssociations
}

// params enumerates the query as URL parameters. Filters repeat the filter
// parameter, in-filter values are bracketed, and absent paging is emitted
// explicitly as paging=false.
func (q *Query) params() url.Values {
	values := url.Values{}
	if q == nil {
		values.Set("paging", "false")
		return values
	}

	for _, filter := range q.filters {
		value := filter.Value
		if filter.Operator == OperatorIn || filter.Operator == OperatorNotIn {
			value = "[" + value + "]"
		}
		values.Add("filter", fmt.Sprintf("%s:%s:%s", filter.Property, filter.Operator, value))
	}

	if q.paging.hasPaging() {
		if q.paging.Page > 0 {
			values.Set("page", strconv.Itoa(q.paging.Page))
		}
		if q.paging.PageSize > 0 {
			values.Set("pageSize", strconv.Itoa(q.paging.PageSize))
		}
	} else {
		values.Set("paging", "false")
	}

	if q.order.Property != "" {
		direction := q.order.Direction
		if direction == "" {
			direction = Asc
		}
		values.Set("order", fmt.Sprintf("%s:%s", q.order.Property, direction))
	}

	return values
}
