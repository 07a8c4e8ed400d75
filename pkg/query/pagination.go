package query

// Page is the pagination metadata returned by the server alongside a
// result page. HasPrev and HasNext are derived, never stored out of sync
// with CurrentPage and TotalPages.
type Page struct {
	CurrentPage  int
	TotalPages   int
	TotalRecipes int
	HasPrev      bool
	HasNext      bool
}

func NewPage(current, totalPages, totalRecipes int) Page {
	return Page{
		CurrentPage:  current,
		TotalPages:   totalPages,
		TotalRecipes: totalRecipes,
		HasPrev:      current > 1,
		HasNext:      current < totalPages,
	}
}

// Paginator tracks the page metadata of the search view and validates
// page jumps. The tracked Page is only ever replaced wholesale, from a
// fresh server response.
type Paginator struct {
	page  Page
	known bool
}

func (p *Paginator) Current() Page {
	return p.page
}

// Replace swaps in the metadata from a new server response.
func (p *Paginator) Replace(page Page) {
	p.page = page
	p.known = true
}

// Reset forgets the tracked metadata, e.g. when the filter set changes.
func (p *Paginator) Reset() {
	p.page = Page{}
	p.known = false
}

// CanGoTo reports whether a jump to the given page should be issued.
// Pages below 1 are always rejected; an upper bound applies only once
// the total is known.
func (p *Paginator) CanGoTo(page int) bool {
	if page < 1 {
		return false
	}
	if p.known && page > p.page.TotalPages {
		return false
	}
	return true
}

// PageItem is one element of the rendered page controls: either a page
// number or a collapsed run shown as an ellipsis.
type PageItem struct {
	Number   int
	Ellipsis bool
}

// PageNumbers lays out the page controls: the first and last page are
// always shown, pages within two of the current page are shown, and each
// omitted run collapses into a single ellipsis.
func PageNumbers(current, total int) []PageItem {
	if total <= 1 {
		return nil
	}
	var items []PageItem
	for i := 1; i <= total; i++ {
		switch {
		case i == 1 || i == total || (i >= current-2 && i <= current+2):
			items = append(items, PageItem{Number: i})
		case i == current-3 || i == current+3:
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	return items
}
