package components

import (
	"strings"
	"testing"

	"github.com/tastebook/tastebook/pkg/query"
)

func TestRenderStarsCounts(t *testing.T) {
	bar := RenderStars(3.5, 12)

	if got := strings.Count(bar, "★"); got != 3 {
		t.Errorf("Expected 3 filled stars, got %d", got)
	}
	if !strings.Contains(bar, "½") {
		t.Error("Expected a half star")
	}
	if got := strings.Count(bar, "☆"); got != 1 {
		t.Errorf("Expected 1 empty star, got %d", got)
	}
	if !strings.Contains(bar, "(12 ratings)") {
		t.Errorf("Expected rating count, got %q", bar)
	}
}

func TestRenderStarsSingular(t *testing.T) {
	bar := RenderStars(5, 1)

	if !strings.Contains(bar, "(1 rating)") {
		t.Errorf("Expected singular label, got %q", bar)
	}
}

func TestRenderUserStars(t *testing.T) {
	unrated := RenderUserStars(0)
	if !strings.Contains(unrated, "not rated") {
		t.Errorf("Expected hint for unrated, got %q", unrated)
	}

	rated := RenderUserStars(4)
	if got := strings.Count(rated, "★"); got != 4 {
		t.Errorf("Expected 4 filled stars, got %d", got)
	}
	if got := strings.Count(rated, "☆"); got != 1 {
		t.Errorf("Expected 1 empty star, got %d", got)
	}
}

func TestRenderPaginationSinglePage(t *testing.T) {
	if got := RenderPagination(query.NewPage(1, 1, 5)); got != "" {
		t.Errorf("Expected no controls for a single page, got %q", got)
	}
}

func TestRenderPaginationWindow(t *testing.T) {
	controls := RenderPagination(query.NewPage(10, 20, 240))

	for _, want := range []string{"prev", "next", "1", "8", "12", "20", "…"} {
		if !strings.Contains(controls, want) {
			t.Errorf("Expected %q in the controls", want)
		}
	}
	if strings.Contains(controls, "15") {
		t.Error("Pages outside the window should be collapsed")
	}
}
