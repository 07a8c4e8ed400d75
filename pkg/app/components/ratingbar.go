package components

import (
	"fmt"
	"strings"

	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/engage"
)

// RenderStars draws a five-star bar for an average rating, with the
// rating count appended, e.g. "★★★½☆ (12 ratings)".
func RenderStars(rating float64, count int) string {
	stars := engage.ComputeStars(rating)

	var b strings.Builder
	b.WriteString(styles.StarFilled.Render(strings.Repeat("★", stars.Filled)))
	if stars.Half == 1 {
		b.WriteString(styles.StarFilled.Render("½"))
	}
	b.WriteString(styles.StarEmpty.Render(strings.Repeat("☆", stars.Empty)))

	label := fmt.Sprintf(" (%d ratings)", count)
	if count == 1 {
		label = " (1 rating)"
	}
	b.WriteString(styles.MutedStyle.Render(label))
	return b.String()
}

// RenderUserStars draws the interactive rating row: the user's own
// rating filled in, a hint when they have not rated yet.
func RenderUserStars(userRating int) string {
	if userRating == 0 {
		return styles.MutedStyle.Render("not rated — press 1-5 to rate")
	}
	var b strings.Builder
	b.WriteString(styles.StarFilled.Render(strings.Repeat("★", userRating)))
	b.WriteString(styles.StarEmpty.Render(strings.Repeat("☆", 5-userRating)))
	b.WriteString(styles.MutedStyle.Render(" (your rating)"))
	return b.String()
}
