package query

import (
	"testing"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest(12)

	if req.Page != 1 {
		t.Errorf("Expected page 1, got %d", req.Page)
	}
	if req.PageSize != 12 {
		t.Errorf("Expected page size 12, got %d", req.PageSize)
	}
	if !req.Filters.IsZero() {
		t.Error("Expected empty filter set")
	}
}

func TestValuesOmitsBlankCriteria(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{
		Search:  "pasta",
		Cuisine: "  ",
		Diet:    "",
	}

	params := req.Values()

	if got := params.Get("search"); got != "pasta" {
		t.Errorf("Expected search=pasta, got %q", got)
	}
	if _, ok := params["cuisine"]; ok {
		t.Error("Blank cuisine should not be in the query")
	}
	if _, ok := params["diet"]; ok {
		t.Error("Empty diet should not be in the query")
	}
	if got := params.Get("page"); got != "1" {
		t.Errorf("Expected page=1, got %q", got)
	}
	if got := params.Get("limit"); got != "12" {
		t.Errorf("Expected limit=12, got %q", got)
	}
}

func TestValuesAlwaysIncludesPageAndLimit(t *testing.T) {
	req := NewRequest(12)

	params := req.Values()

	if len(params) != 2 {
		t.Errorf("Expected only page and limit, got %d params", len(params))
	}
}

func TestValuesTrimsWhitespace(t *testing.T) {
	req := NewRequest(12)
	req.Filters.Search = "  chicken soup  "

	if got := req.Values().Get("search"); got != "chicken soup" {
		t.Errorf("Expected trimmed term, got %q", got)
	}
}

func TestValuesIncludesAllFilters(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{
		Search:      "curry",
		Cuisine:     "Indian",
		Diet:        "Vegan",
		Difficulty:  "Medium",
		MaxPrepTime: "30",
		MaxCookTime: "60",
		MaxCalories: "800",
		Ingredients: "lentils,tomato",
	}
	req.Page = 3

	params := req.Values()

	expectations := map[string]string{
		"search":      "curry",
		"cuisine":     "Indian",
		"diet":        "Vegan",
		"difficulty":  "Medium",
		"maxPrepTime": "30",
		"maxCookTime": "60",
		"maxCalories": "800",
		"ingredients": "lentils,tomato",
		"page":        "3",
		"limit":       "12",
	}
	for key, want := range expectations {
		if got := params.Get(key); got != want {
			t.Errorf("Expected %s=%s, got %q", key, want, got)
		}
	}
}

func TestApplyResetsPageOnChange(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{Cuisine: "Italian"}
	req.Page = 4

	req = req.Apply(FilterSet{Cuisine: "Thai"})

	if req.Page != 1 {
		t.Errorf("Expected page reset to 1, got %d", req.Page)
	}
	if req.Filters.Cuisine != "Thai" {
		t.Errorf("Expected cuisine Thai, got %q", req.Filters.Cuisine)
	}
}

func TestApplyKeepsPageWhenUnchanged(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{Cuisine: "Italian"}
	req.Page = 4

	req = req.Apply(FilterSet{Cuisine: "Italian"})

	if req.Page != 4 {
		t.Errorf("Expected page 4 to be kept, got %d", req.Page)
	}
}

func TestSubmitReplacesFilters(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{
		Cuisine:     "Mexican",
		MaxPrepTime: "20",
	}
	req.Page = 5

	req = req.Submit("tacos")

	if req.Page != 1 {
		t.Errorf("Expected page 1, got %d", req.Page)
	}
	if req.Filters.Search != "tacos" {
		t.Errorf("Expected search tacos, got %q", req.Filters.Search)
	}
	if req.Filters.Cuisine != "" {
		t.Errorf("Expected cuisine cleared, got %q", req.Filters.Cuisine)
	}
	if req.Filters.MaxPrepTime != "" {
		t.Errorf("Expected max prep cleared, got %q", req.Filters.MaxPrepTime)
	}
}

func TestClear(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{Search: "pizza", Diet: "Keto"}
	req.Page = 7

	req = req.Clear()

	if !req.Filters.IsZero() {
		t.Error("Expected all filters cleared")
	}
	if req.Page != 1 {
		t.Errorf("Expected page 1, got %d", req.Page)
	}
	if req.PageSize != 12 {
		t.Errorf("Expected page size preserved, got %d", req.PageSize)
	}
}

func TestGoToKeepsFilters(t *testing.T) {
	req := NewRequest(12)
	req.Filters = FilterSet{Search: "soup"}

	req = req.GoTo(3)

	if req.Page != 3 {
		t.Errorf("Expected page 3, got %d", req.Page)
	}
	if req.Filters.Search != "soup" {
		t.Errorf("Expected search preserved, got %q", req.Filters.Search)
	}
}

func TestSearchOnlyTrims(t *testing.T) {
	f := SearchOnly("  ramen  ")

	if f.Search != "ramen" {
		t.Errorf("Expected trimmed term, got %q", f.Search)
	}
}
