package listing

// DefaultPageSize matches the dashboard tables.
const DefaultPageSize = 10

// MaxPageSize bounds page_size query parameters.
const MaxPageSize = 100

// Page is one window of a paginated slice.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TotalPages returns ceil(total/size).
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return (total + size - 1) / size
}

// ClampPage clamps page to [1, totalPages]. With no pages at all the
// result is 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate slices items into the requested page. Out of range pages are
// clamped and a non-positive size falls back to DefaultPageSize.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := TotalPages(total, size)
	page = ClampPage(page, pages)

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	window := make([]T, end-start)
	copy(window, items[start:end])

	return Page[T]{
		Items:      window,
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
	}
}

// Paginator keeps a current page over a fixed slice.
type Paginator[T any] struct {
	items   []T
	size    int
	current int
}

func NewPaginator[T any](items []T, size int) *Paginator[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator[T]{items: items, size: size, current: 1}
}

func (p *Paginator[T]) CurrentPage() int { return p.current }

func (p *Paginator[T]) TotalPages() int { return TotalPages(len(p.items), p.size) }

// CurrentItems returns the window for the current page.
func (p *Paginator[T]) CurrentItems() []T {
	return Paginate(p.items, p.current, p.size).Items
}

// GoToPage moves to page, clamped to [1, TotalPages()].
func (p *Paginator[T]) GoToPage(page int) int {
	p.current = ClampPage(page, p.TotalPages())
	return p.current
}
