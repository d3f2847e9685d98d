package dhis2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters(t *testing.T) {
	t.Run("Should create equals filter", func(t *testing.T) {
		filter := Eq("name", "Kigali Clinic")

		assert.Equal(t, "name", filter.Property)
		assert.Equal(t, OperatorEq, filter.Operator)
		assert.Equal(t, "Kigali Clinic", filter.Value)
	})

	t.Run("Should create ilike filter", func(t *testing.T) {
		filter := Ilike("code", "OU_")

		assert.Equal(t, "code", filter.Property)
		assert.Equal(t, OperatorIlike, filter.Operator)
		assert.Equal(t, "OU_", filter.Value)
	})

	t.Run("Should join in-filter values with commas", func(t *testing.T) {
		filter := In("id", "O6uvpzGd5pu", "fdc6uOvgoji")

		assert.Equal(t, OperatorIn, filter.Operator)
		assert.Equal(t, "O6uvpzGd5pu,fdc6uOvgoji", filter.Value)
	})

	t.Run("Should join not-in-filter values with commas", func(t *testing.T) {
		filter := NotIn("id", "O6uvpzGd5pu", "fdc6uOvgoji")

		assert.Equal(t, OperatorNotIn, filter.Operator)
		assert.Equal(t, "O6uvpzGd5pu,fdc6uOvgoji", filter.Value)
	})

	t.Run("Should create null filters without value", func(t *testing.T) {
		assert.Equal(t, OperatorNull, Null("closedDate").Operator)
		assert.Equal(t, OperatorNotNull, NotNull("code").Operator)
		assert.Empty(t, Null("closedDate").Value)
	})
}

func TestQueryParams(t *testing.T) {
	t.Run("Should disable paging for nil query", func(t *testing.T) {
		var query *Query

		params := query.params()

		assert.Equal(t, "false", params.Get("paging"))
	})

	t.Run("Should disable paging for empty query", func(t *testing.T) {
		params := NewQuery().params()

		assert.Equal(t, "false", params.Get("paging"))
		assert.Empty(t, params.Get("page"))
	})

	t.Run("Should render filters as property:operator:value", func(t *testing.T) {
		query := NewQuery().
			AddFilter(Eq("level", "4")).
			AddFilter(Like("name", "Clinic"))

		params := query.params()

		assert.Equal(t, []string{"level:eq:4", "name:like:Clinic"}, params["filter"])
	})

	t.Run("Should bracket in-filter values", func(t *testing.T) {
		query := NewQuery().AddFilter(In("id", "O6uvpzGd5pu", "fdc6uOvgoji"))

		params := query.params()

		assert.Equal(t, "id:in:[O6uvpzGd5pu,fdc6uOvgoji]", params.Get("filter"))
	})

	t.Run("Should bracket not-in-filter values", func(t *testing.T) {
		query := NewQuery().AddFilter(NotIn("id", "O6uvpzGd5pu", "fdc6uOvgoji"))

		params := query.params()

		assert.Equal(t, "id:!in:[O6uvpzGd5pu,fdc6uOvgoji]", params.Get("filter"))
	})

	t.Run("Should set page and pageSize when paging requested", func(t *testing.T) {
		params := NewQuery().WithPaging(2, 50).params()

		assert.Equal(t, "2", params.Get("page"))
		assert.Equal(t, "50", params.Get("pageSize"))
		assert.Empty(t, params.Get("paging"))
	})

	t.Run("Should render order as property:direction", func(t *testing.T) {
		params := NewQuery().WithOrder("name", Desc).params()

		assert.Equal(t, "name:desc", params.Get("order"))
	})

	t.Run("Should default order direction to ascending", func(t *testing.T) {
		query := NewQuery()
		query.order = Order{Property: "name"}

		assert.Equal(t, "name:asc", query.params().Get("order"))
	})

	t.Run("Should track expand associations", func(t *testing.T) {
		assert.False(t, NewQuery().isExpandAssociations())
		assert.True(t, NewQuery().WithExpandAssociations().isExpandAssociations())

		var query *Query
		assert.False(t, query.isExpandAssociations())
	})
}
