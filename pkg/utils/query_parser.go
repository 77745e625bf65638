package utils

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type ListParams struct {
	CategoryID string
	Condition  string
	Location   string
	Search     string
	SortBy     string
	SortOrder  string
	Limit      uint64
	Offset     uint64
	Page       uint64
}

// ParseListQuery normalizes the listing query string. Out-of-range
// paging values are clamped rather than rejected, and an unknown sort
// field is left for the repository to fall back on.
func ParseListQuery(query url.Values) ListParams {
	params := ListParams{
		CategoryID: query.Get("category"),
		Condition:  query.Get("condition"),
		Location:   query.Get("location"),
		Search:     query.Get("search"),
		SortBy:     "name",
		SortOrder:  "asc",
		Limit:      defaultLimit,
		Page:       1,
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			params.Limit = l
		}
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			params.Page = p
		}
	}
	params.Offset = (params.Page - 1) * params.Limit

	if sortBy := query.Get("sortBy"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := strings.ToLower(query.Get("sortOrder")); order == "desc" {
		params.SortOrder = "desc"
	}

	return params
}
