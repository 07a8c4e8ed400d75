package components

import "github.com/tastebook/tastebook/pkg/app/styles"

// Selector is a left/right cycling choice field for enum filters
// (cuisine, diet, difficulty).
type Selector struct {
	Label   string
	Options []string
	index   int
}

// NewSelector builds a selector; the first option is the initial value.
// Filters use "" as their first option, meaning "any".
func NewSelector(label string, options []string) *Selector {
	return &Selector{Label: label, Options: options}
}

func (s *Selector) Value() string {
	return s.Options[s.index]
}

// Select moves to the given value if it is a known option.
func (s *Selector) Select(value string) {
	for i, opt := range s.Options {
		if opt == value {
			s.index = i
			return
		}
	}
}

func (s *Selector) Next() {
	s.index = (s.index + 1) % len(s.Options)
}

func (s *Selector) Prev() {
	s.index--
	if s.index < 0 {
		s.index = len(s.Options) - 1
	}
}

func (s *Selector) Reset() {
	s.index = 0
}

func (s *Selector) View(focused bool) string {
	value := s.Value()
	if value == "" {
		value = "any"
	}
	text := "‹ " + value + " ›"
	if focused {
		return styles.FocusedInputStyle.Render(text)
	}
	return styles.InputStyle.Render(text)
}
