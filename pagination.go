package datatable

import "fmt"

// MaxPageButtons is the width of the page-number window.
const MaxPageButtons = 5

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize uint32 = 10

// PageSizeOptions are the page sizes offered by the page-size selector.
var PageSizeOptions = []uint32{5, 10, 15, 20, 25, 50, 100}

// TotalPages returns ceil(totalRows / pageSize). A zero page size is a
// caller error.
func TotalPages(totalRows, pageSize uint32) (uint32, error) {
	if pageSize == 0 {
		return 0, ErrInvalidPageSize
	}
	pages := totalRows / pageSize
	if totalRows%pageSize != 0 {
		pages++
	}
	return pages, nil
}

// PageWindow returns the page numbers to show as buttons: every page when
// there are at most [MaxPageButtons], otherwise a window of that width kept
// around currentPage and pinned to either end.
func PageWindow(currentPage, totalPages uint32) []uint32 {
	if totalPages == 0 {
		return []uint32{}
	}
	if totalPages <= MaxPageButtons {
		return pageRange(1, totalPages)
	}
	const half = MaxPageButtons / 2
	var start uint32
	switch {
	case currentPage <= half+1:
		start = 1
	case uint64(currentPage)+half > uint64(totalPages):
		start = totalPages - (MaxPageButtons - 1)
	default:
		start = currentPage - half
	}
	end := min(start+(MaxPageButtons-1), totalPages)
	return pageRange(start, end)
}

func pageRange(start, end uint32) []uint32 {
	n := end - start + 1
	out := make([]uint32, n)
	for i := range n {
		out[i] = start + i
	}
	return out
}

// PageInfo is serialisable pagination metadata.
type PageInfo struct {
	CurrentPage uint32   `json:"current_page" yaml:"current_page"`
	PageSize    uint32   `json:"page_size"    yaml:"page_size"`
	TotalPages  uint32   `json:"total_pages"  yaml:"total_pages"`
	TotalItems  uint32   `json:"total_items"  yaml:"total_items"`
	RowFrom     uint32   `json:"row_from"     yaml:"row_from"`
	RowTo       uint32   `json:"row_to"       yaml:"row_to"`
	HasPrevious bool     `json:"has_previous" yaml:"has_previous"`
	HasNext     bool     `json:"has_next"     yaml:"has_next"`
	Pages       []uint32 `json:"pages"        yaml:"pages"`
}

// Pager holds pagination state for one table. The current page always stays
// within [1, TotalPages()].
type Pager struct {
	total       uint32
	pageSize    uint32
	currentPage uint32
}

// NewPager returns a pager on page 1. A zero size falls back to
// [DefaultPageSize].
func NewPager(pageSize uint32) *Pager {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize, currentPage: 1}
}

// Total returns the total row count.
func (p *Pager) Total() uint32 { return p.total }

// PageSize returns the rows per page.
func (p *Pager) PageSize() uint32 { return p.pageSize }

// Page returns the 1-based current page.
func (p *Pager) Page() uint32 { return p.currentPage }

// TotalPages returns the page count, at least 1 so an empty table still has
// a page to display.
func (p *Pager) TotalPages() uint32 {
	n, _ := TotalPages(p.total, p.pageSize)
	return max(n, 1)
}

// SetTotal updates the row count and clamps the current page.
func (p *Pager) SetTotal(total uint32) {
	p.total = total
	p.clamp()
}

// SetPageSize changes the rows per page, keeping the current page when it
// still exists.
func (p *Pager) SetPageSize(size uint32) error {
	if size == 0 {
		return ErrInvalidPageSize
	}
	p.pageSize = size
	p.clamp()
	return nil
}

// SetPage moves to page n, clamped to the valid range.
func (p *Pager) SetPage(n uint32) {
	p.currentPage = n
	p.clamp()
}

// First moves to page 1.
func (p *Pager) First() { p.currentPage = 1 }

// Last moves to the final page.
func (p *Pager) Last() { p.currentPage = p.TotalPages() }

// Next advances one page. It reports false on the last page.
func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.currentPage++
	return true
}

// Prev goes back one page. It reports false on the first page.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.currentPage--
	return true
}

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.currentPage > 1 }

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool { return p.currentPage < p.TotalPages() }

// Offset returns the index of the first row of the current page.
func (p *Pager) Offset() uint32 { return (p.currentPage - 1) * p.pageSize }

// RowFrom returns the 1-based index of the first row shown, or 0 when there
// are no rows.
func (p *Pager) RowFrom() uint32 {
	if p.total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// RowTo returns the 1-based index of the last row shown.
func (p *Pager) RowTo() uint32 {
	return uint32(min(uint64(p.Offset())+uint64(p.pageSize), uint64(p.total)))
}

// ShowControls reports whether pagination controls are needed at all, that
// is whether the rows span more than one page.
func (p *Pager) ShowControls() bool { return p.pageSize < p.total }

// Window returns the page buttons around the current page.
func (p *Pager) Window() []uint32 {
	n, _ := TotalPages(p.total, p.pageSize)
	return PageWindow(p.currentPage, n)
}

// Summary returns the "Showing X to Y of Z entries" line.
func (p *Pager) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", p.RowFrom(), p.RowTo(), p.total)
}

// Info snapshots the state as [PageInfo].
func (p *Pager) Info() PageInfo {
	n, _ := TotalPages(p.total, p.pageSize)
	return PageInfo{
		CurrentPage: p.currentPage,
		PageSize:    p.pageSize,
		TotalPages:  n,
		TotalItems:  p.total,
		RowFrom:     p.RowFrom(),
		RowTo:       p.RowTo(),
		HasPrevious: p.HasPrev(),
		HasNext:     p.HasNext(),
		Pages:       p.Window(),
	}
}

func (p *Pager) clamp() {
	if p.currentPage < 1 {
		p.currentPage = 1
	}
	if last := p.TotalPages(); p.currentPage > last {
		p.currentPage = last
	}
}
