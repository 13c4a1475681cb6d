package query

// Paginator slices a filtered result set into fixed-size pages. Page numbers
// are 1-based. Callers must Clamp after every filter change so the current
// page never points past the shrunken result set.
type Paginator struct {
	PageSize int
	page     int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator{PageSize: pageSize, page: 1}
}

func (p *Paginator) Current() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// PageCount is ceil(total/pageSize), minimum 1 even for an empty set (the UI
// renders an empty state rather than a zero-page control).
func (p *Paginator) PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// Clamp pins the current page into [1, PageCount(total)].
func (p *Paginator) Clamp(total int) {
	n := p.PageCount(total)
	if p.page > n {
		p.page = n
	}
	if p.page < 1 {
		p.page = 1
	}
}

// Next, Prev and Goto are no-ops when they would leave [1, PageCount(total)].
func (p *Paginator) Next(total int) {
	if p.Current() < p.PageCount(total) {
		p.page = p.Current() + 1
	}
}

func (p *Paginator) Prev() {
	if p.Current() > 1 {
		p.page = p.Current() - 1
	}
}

func (p *Paginator) Goto(n, total int) {
	if n >= 1 && n <= p.PageCount(total) {
		p.page = n
	}
}

// Reset returns to page 1 (the simplest correct policy after a filter change).
func (p *Paginator) Reset() { p.page = 1 }

// PageSlice returns records[(page-1)*size : page*size], bounds-checked.
func PageSlice[T any](records []T, pageSize, page int) []T {
	if pageSize < 1 || page < 1 {
		return nil
	}
	lo := (page - 1) * pageSize
	if lo >= len(records) {
		return nil
	}
	hi := lo + pageSize
	if hi > len(records) {
		hi = len(records)
	}
	return records[lo:hi]
}

// Page returns the current page of records.
func Page[T any](p *Paginator, records []T) []T {
	return PageSlice(records, p.PageSize, p.Current())
}
