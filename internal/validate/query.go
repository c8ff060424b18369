package validate

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListParams are validated task-list query parameters. Completed is nil when
// no completion filter was requested.
type ListParams struct {
	Page      int
	PerPage   int
	Completed *bool
	SortBy    string
	SortOrder string
}

var sortColumns = map[string]bool{
	"id":          true,
	"priority":    true,
	"created_at":  true,
	"description": true,
}

// ParseListParams validates the task-list query string. Unknown parameters are
// ignored; every offending parameter yields its own field error.
func ParseListParams(query url.Values) (ListParams, Errors) {
	params := ListParams{
		Page:      DefaultPage,
		PerPage:   DefaultPerPage,
		SortBy:    "id",
		SortOrder: "asc",
	}
	errs := Errors{}

	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs.Add("page", "must be an integer greater than or equal to 1")
		} else {
			params.Page = n
		}
	}

	if raw := query.Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPerPage {
			errs.Add("per_page", "must be an integer between 1 and 100")
		} else {
			params.PerPage = n
		}
	}

	if raw := query.Get("completed"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add("completed", "must be a boolean")
		} else {
			params.Completed = &b
		}
	}

	if raw := query.Get("sort_by"); raw != "" {
		if !sortColumns[raw] {
			errs.Add("sort_by", "must be one of: id, priority, created_at, description")
		} else {
			params.SortBy = raw
		}
	}

	if raw := query.Get("sort_order"); raw != "" {
		if raw != "asc" && raw != "desc" {
			errs.Add("sort_order", "must be one of: asc, desc")
		} else {
			params.SortOrder = raw
		}
	}

	if errs.Any() {
		return ListParams{}, errs
	}
	return params, nil
}
