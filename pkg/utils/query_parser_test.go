package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListQueryDefaults(t *testing.T) {
	params := ParseListQuery(url.Values{})

	assert.Equal(t, uint64(20), params.Limit)
	assert.Equal(t, uint64(1), params.Page)
	assert.Equal(t, uint64(0), params.Offset)
	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestParseListQueryClampsLimit(t *testing.T) {
	params := ParseListQuery(url.Values{"limit": {"500"}})
	assert.Equal(t, uint64(100), params.Limit)

	params = ParseListQuery(url.Values{"limit": {"0"}})
	assert.Equal(t, uint64(20), params.Limit)

	params = ParseListQuery(url.Values{"limit": {"-3"}})
	assert.Equal(t, uint64(20), params.Limit)
}

func TestParseListQueryPaging(t *testing.T) {
	params := ParseListQuery(url.Values{"page": {"3"}, "limit": {"10"}})
	assert.Equal(t, uint64(3), params.Page)
	assert.Equal(t, uint64(20), params.Offset)

	params = ParseListQuery(url.Values{"page": {"0"}})
	assert.Equal(t, uint64(1), params.Page)
}

func TestParseListQueryFiltersAndSort(t *testing.T) {
	params := ParseListQuery(url.Values{
		"category":  {"cat-1"},
		"condition": {"GOOD"},
		"location":  {"Warehouse A"},
		"search":    {"sm58"},
		"sortBy":    {"purchasePrice"},
		"sortOrder": {"DESC"},
	})

	assert.Equal(t, "cat-1", params.CategoryID)
	assert.Equal(t, "GOOD", params.Condition)
	assert.Equal(t, "Warehouse A", params.Location)
	assert.Equal(t, "sm58", params.Search)
	assert.Equal(t, "purchasePrice", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
}
