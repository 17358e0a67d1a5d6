package datatable

import (
	"context"
	"fmt"
)

// Query describes the page a data source should return. Search and sort
// are executed by the source, never by this package.
type Query struct {
	Search     string `json:"search,omitempty"  yaml:"search,omitempty"`
	SortBy     string `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
	Descending bool   `json:"descending"        yaml:"descending"`
	Limit      uint32 `json:"limit"             yaml:"limit"`
	Offset     uint32 `json:"offset"            yaml:"offset"`
}

// DownloadRequest asks a data source for the full export of a table.
type DownloadRequest struct {
	TableName string   `json:"table_name" yaml:"table_name"`
	Filter    string   `json:"filter"     yaml:"filter"`
	Fields    []string `json:"fields"     yaml:"fields"`
	Search    string   `json:"search"     yaml:"search"`
}

// Page is one page of records plus the total number of matching rows.
type Page struct {
	Records []Record
	Total   uint32
}

// Source fetches pages of records. It owns filtering, searching and
// sorting.
type Source interface {
	Fetch(ctx context.Context, q Query) (Page, error)
}

// Exporter returns every record matching a download request.
type Exporter interface {
	Download(ctx context.Context, req DownloadRequest) ([]Record, error)
}

// State is the mutable table state owned by the embedding application:
// pagination, the search term and the sort column.
type State struct {
	*Pager
	search     string
	sortBy     string
	descending bool
}

// NewState returns state on page 1 with the given page size.
func NewState(pageSize uint32) *State {
	return &State{Pager: NewPager(pageSize)}
}

// Search returns the search term.
func (s *State) Search() string { return s.search }

// SortBy returns the sort field, empty when unsorted.
func (s *State) SortBy() string { return s.sortBy }

// Descending reports the sort direction.
func (s *State) Descending() bool { return s.descending }

// SetSearch stores the search term and returns to page 1.
func (s *State) SetSearch(term string) {
	s.search = term
	s.First()
}

// SetPageSize changes the page size and returns to page 1.
func (s *State) SetPageSize(size uint32) error {
	if err := s.Pager.SetPageSize(size); err != nil {
		return err
	}
	s.First()
	return nil
}

// ToggleSort flips the sort direction and sorts by column.
func (s *State) ToggleSort(column Column) {
	s.descending = !s.descending
	s.sortBy = column.SortField()
}

// SetSort sets the sort field and direction explicitly.
func (s *State) SetSort(field string, descending bool) {
	s.sortBy = field
	s.descending = descending
}

// Query returns the query for the current page.
func (s *State) Query() Query {
	return Query{
		Search:     s.search,
		SortBy:     s.sortBy,
		Descending: s.descending,
		Limit:      s.PageSize(),
		Offset:     s.Offset(),
	}
}

// DownloadRequest builds the export request for the current search.
func (s *State) DownloadRequest(table, filter string, columns Columns) DownloadRequest {
	return DownloadRequest{
		TableName: table,
		Filter:    filter,
		Fields:    columns.Keys(),
		Search:    s.search,
	}
}

// Load fetches the current page from src and records the total.
// When the total shrank below the current page, the last page is fetched
// instead.
func (s *State) Load(ctx context.Context, src Source) ([]Record, error) {
	page, err := src.Fetch(ctx, s.Query())
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", s.Page(), err)
	}
	before := s.Page()
	s.SetTotal(page.Total)
	if s.Page() == before {
		return page.Records, nil
	}
	page, err = src.Fetch(ctx, s.Query())
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", s.Page(), err)
	}
	s.SetTotal(page.Total)
	return page.Records, nil
}

// SliceSource serves pages from an in-memory slice. It applies only limit
// and offset; search and sort terms are ignored.
type SliceSource []Record

// Fetch implements [Source].
func (src SliceSource) Fetch(ctx context.Context, q Query) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	total := uint32(len(src))
	if q.Offset >= total {
		return Page{Total: total}, nil
	}
	end := total
	if q.Limit > 0 {
		end = uint32(min(uint64(q.Offset)+uint64(q.Limit), uint64(total)))
	}
	return Page{Records: src[q.Offset:end], Total: total}, nil
}

// Download implements [Exporter] by returning every record.
func (src SliceSource) Download(ctx context.Context, _ DownloadRequest) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return src, nil
}
