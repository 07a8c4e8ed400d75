package query

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterSet holds the search criteria as entered by the user. Empty or
// blank fields are treated as absent and never reach the query string.
// Numeric limits are kept as the raw digit strings from the inputs so
// that "not filled in" and "zero" stay distinguishable.
type FilterSet struct {
	Search      string
	Cuisine     string
	Diet        string
	Difficulty  string
	MaxPrepTime string
	MaxCookTime string
	MaxCalories string
	Ingredients string // comma-delimited
}

// SearchOnly builds the filter set for a free-text submission (navbar or
// hero search box): the term alone, every other criterion cleared.
func SearchOnly(term string) FilterSet {
	return FilterSet{Search: strings.TrimSpace(term)}
}

func (f FilterSet) IsZero() bool {
	return f == FilterSet{}
}

// Request is one composed list query: a filter set plus its page.
type Request struct {
	Filters  FilterSet
	Page     int
	PageSize int
}

func NewRequest(pageSize int) Request {
	return Request{Page: 1, PageSize: pageSize}
}

// Apply is a filter-panel submission. The entered criteria (including
// the free-text search) are kept as-is; the page resets to 1 only when
// the filter set actually changed.
func (r Request) Apply(f FilterSet) Request {
	if f != r.Filters {
		r.Filters = f
		r.Page = 1
	}
	return r
}

// Submit is a search-box submission: the term replaces the whole filter
// set and the page resets to 1.
func (r Request) Submit(term string) Request {
	r.Filters = SearchOnly(term)
	r.Page = 1
	return r
}

// Clear drops every criterion and returns to the first page.
func (r Request) Clear() Request {
	r.Filters = FilterSet{}
	r.Page = 1
	return r
}

// GoTo moves to another page of the same filter set.
func (r Request) GoTo(page int) Request {
	r.Page = page
	return r
}

// Values composes the query parameters. Blank criteria are omitted;
// page and limit are always present. url.Values encodes keys in sorted
// order, so the output is deterministic.
func (r Request) Values() url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			params.Set(key, v)
		}
	}
	set("search", r.Filters.Search)
	set("cuisine", r.Filters.Cuisine)
	set("diet", r.Filters.Diet)
	set("difficulty", r.Filters.Difficulty)
	set("maxPrepTime", r.Filters.MaxPrepTime)
	set("maxCookTime", r.Filters.MaxCookTime)
	set("maxCalories", r.Filters.MaxCalories)
	set("ingredients", r.Filters.Ingredients)
	params.Set("page", strconv.Itoa(r.Page))
	params.Set("limit", strconv.Itoa(r.PageSize))
	return params
}
