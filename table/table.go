// Package table holds the contact table view state: a name filter, a single
// sort column with direction, and fixed-size pagination. Every render
// recomputes the visible page from the full collection.
package table

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/blogem/contact-book/models"
)

// DefaultPageSize is the number of rows on one page
const DefaultPageSize = 10

// Sort directions
const (
	Asc  = "asc"
	Desc = "desc"
)

// Columns lists the sortable columns in display order
var Columns = []string{"name", "company", "email", "phone", "country", "status"}

// Query is the table state carried in the URL
type Query struct {
	Filter string
	SortBy string
	Order  string
	Page   int
}

// DefaultQuery sorts by name ascending on the first page
func DefaultQuery() Query {
	return Query{SortBy: "name", Order: Asc, Page: 1}
}

// ParseQuery reads q, sort, order and page, falling back to defaults for anything unknown
func ParseQuery(values url.Values) Query {
	q := DefaultQuery()
	q.Filter = values.Get("q")

	if isColumn(values.Get("sort")) {
		q.SortBy = values.Get("sort")
	}
	if o := values.Get("order"); o == Asc || o == Desc {
		q.Order = o
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	return q
}

func isColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Values encodes the query back into URL parameters
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("q", q.Filter)
	}
	v.Set("sort", q.SortBy)
	v.Set("order", q.Order)
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// Encode renders the query as a URL query string
func (q Query) Encode() string {
	return q.Values().Encode()
}

// Link is the table page URL for this query
func (q Query) Link() string {
	return "/?" + q.Encode()
}

// Toggle returns the query after clicking the header of column: the active
// ascending column flips to descending, anything else sorts ascending.
// Pagination restarts at the first page.
func (q Query) Toggle(column string) Query {
	next := q
	next.Page = 1
	if q.SortBy == column && q.Order == Asc {
		next.Order = Desc
	} else {
		next.Order = Asc
	}
	next.SortBy = column
	return next
}

// WithPage returns the query pointing at another page
func (q Query) WithPage(page int) Query {
	next := q
	next.Page = page
	return next
}

// Filter keeps the contacts whose name contains term, ignoring case
func Filter(contacts []models.Contact, term string) []models.Contact {
	needle := strings.ToLower(term)
	filtered := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Sort orders contacts in place by column. The sort is stable, so equal keys
// keep their collection order in both directions.
func Sort(contacts []models.Contact, column, order string) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, _ := contacts[i].Field(column)
		b, _ := contacts[j].Field(column)
		if order == Desc {
			return a > b
		}
		return a < b
	})
}

// Page is one rendered page of the table
type Page struct {
	Query      Query
	Rows       []models.Contact
	Total      int // rows after filtering
	PageSize   int
	TotalPages int
}

// Apply filters, sorts and paginates a copy of contacts
func Apply(contacts []models.Contact, q Query, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	rows := Filter(contacts, q.Filter)
	Sort(rows, q.SortBy, q.Order)

	totalPages := (len(rows) + pageSize - 1) / pageSize
	q.Page = clamp(q.Page, 1, max(totalPages, 1))

	start := min((q.Page-1)*pageSize, len(rows))
	end := min(start+pageSize, len(rows))

	return Page{
		Query:      q,
		Rows:       rows[start:end],
		Total:      len(rows),
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool {
	return p.Query.Page > 1
}

// HasNext reports whether a following page exists
func (p Page) HasNext() bool {
	return p.Query.Page < p.TotalPages
}

// Pages lists every page number for the pager
func (p Page) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// FirstRow is the 1-based index of the first visible row, 0 when empty
func (p Page) FirstRow() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return (p.Query.Page-1)*p.PageSize + 1
}

// LastRow is the 1-based index of the last visible row
func (p Page) LastRow() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.FirstRow() + len(p.Rows) - 1
}
