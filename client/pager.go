package client

// PageSize is the fixed page length of every collection view.
const PageSize = 10

// Pager holds one collection's display state: the cached records and the
// current page. Page numbers are 1-based and always clamped into range.
type Pager[T any] struct {
	items []T
	page  int
}

// SetItems replaces the cached records and resets the view to page 1.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.page = 1
}

// ReplaceItems swaps the records but keeps the current page, clamping it
// when the collection shrank below it (the after-delete case).
func (p *Pager[T]) ReplaceItems(items []T) {
	p.items = items
	p.clamp()
}

// Items returns all cached records.
func (p *Pager[T]) Items() []T {
	return p.items
}

// Len returns the total record count.
func (p *Pager[T]) Len() int {
	return len(p.items)
}

// Page returns the current page number.
func (p *Pager[T]) Page() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// PageCount returns the number of pages; an empty collection has one page.
func (p *Pager[T]) PageCount() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + PageSize - 1) / PageSize
}

// Next advances one page; past the last page it stays put.
func (p *Pager[T]) Next() {
	p.page = p.Page() + 1
	p.clamp()
}

// Prev goes back one page; before page 1 it stays put.
func (p *Pager[T]) Prev() {
	p.page = p.Page() - 1
	p.clamp()
}

// SetPage jumps to the given page, clamped into range.
func (p *Pager[T]) SetPage(page int) {
	p.page = page
	p.clamp()
}

// Current returns the records on the current page.
func (p *Pager[T]) Current() []T {
	page := p.Page()
	from := (page - 1) * PageSize
	if from >= len(p.items) {
		return nil
	}
	to := from + PageSize
	if to > len(p.items) {
		to = len(p.items)
	}
	return p.items[from:to]
}

func (p *Pager[T]) clamp() {
	if p.page < 1 {
		p.page = 1
	}
	if max := p.PageCount(); p.page > max {
		p.page = max
	}
}
