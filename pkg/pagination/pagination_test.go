package pagination_test

import (
	"net/url"
	"testing"

	"github.com/bizstack/backoffice/pkg/pagination"
)

var allowedSort = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

func TestFromQuery_Defaults(t *testing.T) {
	p, err := pagination.FromQuery(url.Values{}, allowedSort)
	if err != nil {
		t.Fatalf("FromQuery failed: %v", err)
	}
	if p.Page != 1 || p.Limit != pagination.DefaultLimit {
		t.Errorf("Defaults = page %d limit %d, want 1 and %d", p.Page, p.Limit, pagination.DefaultLimit)
	}
	if got := p.OrderClause(); got != "created_at desc" {
		t.Errorf("OrderClause = %q, want %q", got, "created_at desc")
	}
	if p.Offset() != 0 {
		t.Errorf("Offset = %d, want 0", p.Offset())
	}
}

func TestFromQuery_ParsesAndMapsSort(t *testing.T) {
	values := url.Values{
		"page":      {"3"},
		"limit":     {"25"},
		"sortBy":    {"createdAt"},
		"sortOrder": {"ASC"},
		"search":    {"  espresso "},
	}
	p, err := pagination.FromQuery(values, allowedSort)
	if err != nil {
		t.Fatalf("FromQuery failed: %v", err)
	}
	if p.Page != 3 || p.Limit != 25 {
		t.Errorf("Parsed = page %d limit %d, want 3 and 25", p.Page, p.Limit)
	}
	if p.Offset() != 50 {
		t.Errorf("Offset = %d, want 50", p.Offset())
	}
	if got := p.OrderClause(); got != "created_at asc" {
		t.Errorf("OrderClause = %q, want %q", got, "created_at asc")
	}
	if p.Search != "espresso" {
		t.Errorf("Search = %q, want trimmed %q", p.Search, "espresso")
	}
}

func TestFromQuery_CapsLimit(t *testing.T) {
	p, err := pagination.FromQuery(url.Values{"limit": {"5000"}}, allowedSort)
	if err != nil {
		t.Fatalf("FromQuery failed: %v", err)
	}
	if p.Limit != pagination.MaxLimit {
		t.Errorf("Limit = %d, want capped at %d", p.Limit, pagination.MaxLimit)
	}
}

func TestFromQuery_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
	}{
		{"non-numeric page", url.Values{"page": {"abc"}}},
		{"zero page", url.Values{"page": {"0"}}},
		{"negative limit", url.Values{"limit": {"-5"}}},
		{"unknown sort field", url.Values{"sortBy": {"password"}}},
		{"bad sort order", url.Values{"sortOrder": {"sideways"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := pagination.FromQuery(tc.values, allowedSort); err == nil {
				t.Error("FromQuery accepted invalid input")
			}
		})
	}
}

func TestNewMeta_TotalPages(t *testing.T) {
	cases := []struct {
		limit int
		total int64
		want  int
	}{
		{10, 0, 0},
		{10, 1, 1},
		{10, 10, 1},
		{10, 11, 2},
		{10, 95, 10},
		{25, 50, 2},
	}
	for _, tc := range cases {
		meta := pagination.NewMeta(pagination.Params{Page: 1, Limit: tc.limit}, tc.total)
		if meta.TotalPages != tc.want {
			t.Errorf("NewMeta(limit=%d, total=%d).TotalPages = %d, want %d",
				tc.limit, tc.total, meta.TotalPages, tc.want)
		}
	}
}
