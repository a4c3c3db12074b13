package query

import (
	"net/url"
	"strconv"

	"gorm.io/gorm"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Pagination is a validated page window. Use PaginationFromValues to
// build one from client input.
type Pagination struct {
	Page    int
	PerPage int
}

// PaginationFromValues parses page and per_page (perpage is accepted as
// an alias), substituting defaults for missing or non-positive input and
// capping per_page.
func PaginationFromValues(values url.Values) Pagination {
	p := Pagination{Page: DefaultPage, PerPage: DefaultPerPage}

	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	perPage := values.Get("per_page")
	if perPage == "" {
		perPage = values.Get("perpage")
	}
	if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
		if n > MaxPerPage {
			n = MaxPerPage
		}
		p.PerPage = n
	}
	return p
}

// Offset is the number of rows preceding this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Apply limits the query to this page. Pages past the end simply come
// back empty.
func (p Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.PerPage)
}

// Meta describes the full result set a page was cut from.
type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

// MetaFor computes paging metadata for a total row count.
func (p Pagination) MetaFor(total int64) Meta {
	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Meta{
		Total:    total,
		Page:     p.Page,
		PerPage:  p.PerPage,
		LastPage: lastPage,
	}
}

// Params bundles everything a list endpoint takes from the query string.
type Params struct {
	Filters    Filters
	Sort       string
	Pagination Pagination
}

// ParamsFromValues splits a parsed query string into filters, the sort
// token and the page window.
func ParamsFromValues(values url.Values) Params {
	return Params{
		Filters:    FiltersFromValues(values),
		Sort:       values.Get("sort"),
		Pagination: PaginationFromValues(values),
	}
}
