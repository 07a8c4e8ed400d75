package components

import (
	"strings"
	"testing"
)

func newTestSelector() *Selector {
	return NewSelector("Cuisine", []string{"", "Italian", "Thai"})
}

func TestSelectorStartsAtFirstOption(t *testing.T) {
	sel := newTestSelector()

	if sel.Value() != "" {
		t.Errorf("Expected the first option, got %q", sel.Value())
	}
}

func TestSelectorNextPrevWrap(t *testing.T) {
	sel := newTestSelector()

	sel.Next()
	if sel.Value() != "Italian" {
		t.Errorf("Expected Italian, got %q", sel.Value())
	}

	sel.Next()
	sel.Next()
	if sel.Value() != "" {
		t.Errorf("Expected wrap to the first option, got %q", sel.Value())
	}

	sel.Prev()
	if sel.Value() != "Thai" {
		t.Errorf("Expected wrap to the last option, got %q", sel.Value())
	}
}

func TestSelectorSelect(t *testing.T) {
	sel := newTestSelector()

	sel.Select("Thai")
	if sel.Value() != "Thai" {
		t.Errorf("Expected Thai, got %q", sel.Value())
	}

	sel.Select("Italian")
	if sel.Value() != "Italian" {
		t.Errorf("Expected Italian, got %q", sel.Value())
	}
}

func TestSelectorSelectUnknownKeepsValue(t *testing.T) {
	sel := newTestSelector()
	sel.Select("Thai")

	sel.Select("Klingon")

	if sel.Value() != "Thai" {
		t.Errorf("Unknown option should be ignored, got %q", sel.Value())
	}
}

func TestSelectorSelectEmptyMeansAny(t *testing.T) {
	sel := newTestSelector()
	sel.Select("Thai")

	sel.Select("")

	if sel.Value() != "" {
		t.Errorf("Expected the blank option selected, got %q", sel.Value())
	}
	if !strings.Contains(sel.View(false), "any") {
		t.Error("Blank option should render as any")
	}
}

func TestSelectorReset(t *testing.T) {
	sel := newTestSelector()
	sel.Select("Italian")

	sel.Reset()

	if sel.Value() != "" {
		t.Errorf("Expected reset to the first option, got %q", sel.Value())
	}
}
