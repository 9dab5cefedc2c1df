package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds parsed pagination and sorting parameters
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

// Meta describes one page of a list response
type Meta struct {
	Limit      int   `json:"limit"`
	Page       int   `json:"page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// FromQuery parses page/limit/sortBy/sortOrder/search from query values.
// allowedSort maps the caller-facing field name to the database column;
// an unknown sort field or direction is an error.
func FromQuery(values url.Values, allowedSort map[string]string) (Params, error) {
	p := Params{
		Page:      1,
		Limit:     DefaultLimit,
		SortBy:    "created_at",
		SortOrder: "desc",
		Search:    strings.TrimSpace(values.Get("search")),
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, fmt.Errorf("invalid page: %q", raw)
		}
		p.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return Params{}, fmt.Errorf("invalid limit: %q", raw)
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		p.Limit = limit
	}

	if raw := values.Get("sortBy"); raw != "" {
		column, ok := allowedSort[raw]
		if !ok {
			return Params{}, fmt.Errorf("unsortable field: %q", raw)
		}
		p.SortBy = column
	}

	if raw := values.Get("sortOrder"); raw != "" {
		order := strings.ToLower(raw)
		if order != "asc" && order != "desc" {
			return Params{}, fmt.Errorf("invalid sort order: %q", raw)
		}
		p.SortOrder = order
	}

	return p, nil
}

// Offset returns the row offset for the current page
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause returns the SQL ORDER BY expression
func (p Params) OrderClause() string {
	return p.SortBy + " " + p.SortOrder
}

// NewMeta computes page metadata for a total row count
func NewMeta(p Params, total int64) Meta {
	totalPages := int(total / int64(p.Limit))
	if total%int64(p.Limit) != 0 {
		totalPages++
	}
	return Meta{
		Limit:      p.Limit,
		Page:       p.Page,
		Total:      total,
		TotalPages: totalPages,
	}
}
