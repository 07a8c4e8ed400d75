package components

import (
	"strconv"
	"strings"

	"github.com/tastebook/tastebook/pkg/app/styles"
	"github.com/tastebook/tastebook/pkg/query"
)

// RenderPagination draws the page controls for the tracked page: prev
// and next (dimmed when unavailable), the windowed page numbers and the
// collapsed ellipsis runs.
func RenderPagination(page query.Page) string {
	if page.TotalPages <= 1 {
		return ""
	}

	var parts []string
	if page.HasPrev {
		parts = append(parts, styles.PageStyle.Render("‹ prev"))
	} else {
		parts = append(parts, styles.DisabledPageStyle.Render("‹ prev"))
	}

	for _, item := range query.PageNumbers(page.CurrentPage, page.TotalPages) {
		switch {
		case item.Ellipsis:
			parts = append(parts, styles.DisabledPageStyle.Render("…"))
		case item.Number == page.CurrentPage:
			parts = append(parts, styles.ActivePageStyle.Render(strconv.Itoa(item.Number)))
		default:
			parts = append(parts, styles.PageStyle.Render(strconv.Itoa(item.Number)))
		}
	}

	if page.HasNext {
		parts = append(parts, styles.PageStyle.Render("next ›"))
	} else {
		parts = append(parts, styles.DisabledPageStyle.Render("next ›"))
	}

	return strings.Join(parts, "")
}
